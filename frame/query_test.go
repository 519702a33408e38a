package frame

import (
	"context"
	"testing"

	duckarrow "github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow/go/v10/arrow/array"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	recs []duckarrow.Record
	err  error
}

func (f *fakeSource) QueryRecords(_ context.Context, _ string) ([]duckarrow.Record, error) {
	return f.recs, f.err
}

func TestFromRecordsEmptySequence(t *testing.T) {
	_, err := FromRecords(nil)
	require.Error(t, err)

	var convErr *Error
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, KindInternal, convErr.Kind)
	require.Contains(t, err.Error(), "no record batches")
}

func TestFromRecordsSingleEmptyBatch(t *testing.T) {
	// A sequence with one zero-row batch is a valid zero-row table, distinct
	// from the zero-batch error.
	rec := makeInt64Record(t, []string{"a", "b"}, [][]int64{{}, {}})

	table, err := FromRecords([]duckarrow.Record{rec})
	require.NoError(t, err)
	defer table.Release()

	require.EqualValues(t, 0, table.NumRows())
	require.Equal(t, []string{"a", "b"}, fieldNames(table.Schema()))
}

func TestFromRecordsOrderAcrossBatches(t *testing.T) {
	const (
		numBatches = 16
		batchRows  = 64
	)
	recs := make([]duckarrow.Record, numBatches)
	next := int64(0)
	for i := range recs {
		vals := make([]int64, batchRows)
		for j := range vals {
			vals[j] = next
			next++
		}
		recs[i] = makeInt64Record(t, []string{"x"}, [][]int64{vals})
	}

	table, err := FromRecords(recs)
	require.NoError(t, err)
	defer table.Release()

	require.EqualValues(t, numBatches*batchRows, table.NumRows())

	// Row order equals batch order no matter how conversion was scheduled.
	var got []int64
	for _, chunk := range table.Column(0).Data().Chunks() {
		got = append(got, chunk.(*array.Int64).Int64Values()...)
	}
	for i, v := range got {
		require.EqualValues(t, i, v)
	}
}

func TestFromRecordsSchemaFromFirstBatch(t *testing.T) {
	// Later batches reuse the first batch's names positionally, even if their
	// own schemas carry different names.
	first := makeInt64Record(t, []string{"a", "b"}, [][]int64{{1}, {2}})
	second := makeInt64Record(t, []string{"ignored", "names"}, [][]int64{{3}, {4}})

	table, err := FromRecords([]duckarrow.Record{first, second})
	require.NoError(t, err)
	defer table.Release()

	require.Equal(t, []string{"a", "b"}, fieldNames(table.Schema()))
	require.EqualValues(t, 2, table.NumRows())
}

func TestFromRecordsConversionFailureAborts(t *testing.T) {
	good := makeInt64Record(t, []string{"v"}, [][]int64{{1, 2}})
	bad := makeStringViewRecord(t)

	_, err := FromRecords([]duckarrow.Record{good, bad})
	require.Error(t, err)

	var convErr *Error
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, KindArrow, convErr.Kind)
}

func TestQuerySourceError(t *testing.T) {
	src := &fakeSource{err: errors.New("catalog: table missing")}

	_, err := Query(context.Background(), src, "SELECT * FROM missing")
	require.Error(t, err)

	var convErr *Error
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, KindDuckDB, convErr.Kind)
	require.Contains(t, err.Error(), "catalog: table missing")
}

func TestQueryConvertsSourceRecords(t *testing.T) {
	src := &fakeSource{recs: []duckarrow.Record{
		makeInt64Record(t, []string{"n"}, [][]int64{{10, 20}}),
		makeInt64Record(t, []string{"n"}, [][]int64{{30}}),
	}}

	table, err := Query(context.Background(), src, "SELECT n FROM t")
	require.NoError(t, err)
	defer table.Release()

	require.EqualValues(t, 3, table.NumRows())
	require.Equal(t, []string{"n"}, fieldNames(table.Schema()))
}
