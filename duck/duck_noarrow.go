//go:build !duckdb_arrow

package duck

import (
	"context"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/pkg/errors"
)

var errNoArrow = errors.New("duckdb arrow interface unavailable, rebuild with -tags duckdb_arrow")

// DB is a stub for builds without the duckdb_arrow tag.
type DB struct{}

func Open(path string) (*DB, error) { return nil, errNoArrow }

func (db *DB) QueryRecords(ctx context.Context, query string) ([]arrow.Record, error) {
	return nil, errNoArrow
}

func (db *DB) Close() error { return nil }
