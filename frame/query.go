// Package frame materializes DuckDB query results as Arrow tables.
//
// The driver hands results over as a sequence of record batches in one Go
// Arrow implementation (apache/arrow-go/v18); downstream analytics use
// another (apache/arrow/go/v10). This package reconciles the two column by
// column and stacks all batches into a single table.
package frame

import (
	"context"
	"runtime"
	"time"

	duckarrow "github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow/go/v10/arrow"
	"golang.org/x/sync/errgroup"
)

// RecordSource executes a query and returns the full, ordered sequence of
// result record batches. It is implemented by duck.DB; the engine itself is
// an external collaborator.
type RecordSource interface {
	QueryRecords(ctx context.Context, query string) ([]duckarrow.Record, error)
}

// Query runs the query against src and materializes the result as one table.
func Query(ctx context.Context, src RecordSource, query string) (arrow.Table, error) {
	recs, err := src.QueryRecords(ctx, query)
	if err != nil {
		return nil, duckErrf(err, "executing query")
	}
	return FromRecords(recs)
}

// FromRecords converts a batch sequence into one table. Column names and
// order are fixed by the first batch's schema; the remaining batches reuse
// them by position. Batches are converted in parallel and collected by batch
// index, so row order in the table is the concatenation of batch order no
// matter how the work is scheduled.
//
// FromRecords consumes recs: the records are released once converted, and the
// returned table owns its memory independently of them. A sequence with no
// batches is an error, never an empty table.
func FromRecords(recs []duckarrow.Record) (arrow.Table, error) {
	start := time.Now()
	if len(recs) == 0 {
		conversionFailures.Inc()
		return nil, internalf("no record batches to convert")
	}
	defer func() {
		for _, rec := range recs {
			rec.Release()
		}
	}()

	srcFields := recs[0].Schema().Fields()
	names := make([]string, len(srcFields))
	for i, f := range srcFields {
		names[i] = f.Name
	}

	segments := make([]arrow.Record, len(recs))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, rec := range recs {
		g.Go(func() error {
			segment, err := convertRecord(rec, names)
			if err != nil {
				return err
			}
			segments[i] = segment
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		conversionFailures.Inc()
		for _, segment := range segments {
			if segment != nil {
				segment.Release()
			}
		}
		return nil, err
	}

	table := stackSegments(segments)
	for _, segment := range segments {
		segment.Release()
	}

	batchesConverted.Add(float64(len(recs)))
	rowsConverted.Add(float64(table.NumRows()))
	conversionDuration.Observe(time.Since(start).Seconds())
	return table, nil
}
