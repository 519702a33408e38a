package frame

import (
	"testing"

	"github.com/apache/arrow/go/v10/arrow"
	"github.com/apache/arrow/go/v10/arrow/array"
	"github.com/apache/arrow/go/v10/arrow/memory"
	"github.com/stretchr/testify/require"
)

func TestStackSegments(t *testing.T) {
	seg1 := makeSegment(t, []int64{1, 2}, []string{"one", "two"})
	defer seg1.Release()
	seg2 := makeSegment(t, []int64{3, 4, 5}, []string{"three", "four", "five"})
	defer seg2.Release()

	table := stackSegments([]arrow.Record{seg1, seg2})
	defer table.Release()

	require.EqualValues(t, 5, table.NumRows())
	require.EqualValues(t, 2, table.NumCols())
	require.True(t, table.Schema().Equal(seg1.Schema()))

	// Stacking keeps each segment as one chunk, in original order.
	chunks := table.Column(0).Data().Chunks()
	require.Len(t, chunks, 2)
	require.Equal(t, []int64{1, 2}, chunks[0].(*array.Int64).Int64Values())
	require.Equal(t, []int64{3, 4, 5}, chunks[1].(*array.Int64).Int64Values())

	labels := table.Column(1).Data().Chunks()
	require.Equal(t, "three", labels[1].(*array.String).Value(0))
}

func makeSegment(t *testing.T, ids []int64, labels []string) arrow.Record {
	t.Helper()
	require.Equal(t, len(ids), len(labels))
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
		{Name: "label", Type: arrow.BinaryTypes.String, Nullable: true},
	}, nil)
	builder := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	defer builder.Release()
	builder.Field(0).(*array.Int64Builder).AppendValues(ids, nil)
	builder.Field(1).(*array.StringBuilder).AppendValues(labels, nil)
	return builder.NewRecord()
}
