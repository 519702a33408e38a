package frame

import (
	"github.com/apache/arrow/go/v10/arrow"
	"github.com/apache/arrow/go/v10/arrow/array"
)

// stackSegments concatenates table segments vertically into one table.
// Every output column is a chunked array whose chunks are the segments'
// columns in their original order, so no column data is moved.
//
// Precondition: all segments carry the first segment's schema. Segments are
// produced from one query's batch sequence, where the engine guarantees a
// uniform schema, so this is not re-validated here. A violated precondition
// panics during chunked-array construction rather than producing a corrupt
// table.
func stackSegments(segments []arrow.Record) arrow.Table {
	schema := segments[0].Schema()
	cols := make([]arrow.Column, len(schema.Fields()))
	for i, field := range schema.Fields() {
		chunks := make([]arrow.Array, len(segments))
		for j, segment := range segments {
			chunks[j] = segment.Column(i)
		}
		chunked := arrow.NewChunked(field.Type, chunks)
		cols[i] = *arrow.NewColumn(field, chunked)
		chunked.Release()
	}
	return array.NewTable(schema, cols, -1)
}
