package frame

import (
	duckarrow "github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow/go/v10/arrow"
	"github.com/apache/arrow/go/v10/arrow/array"

	"duckframe/generic"
)

// convertRecord converts one record batch into a table segment. Columns are
// converted in parallel and collected by their original index, so the
// segment's column order always matches the batch's. Column names come from
// the shared name list derived from the first batch in the sequence.
func convertRecord(rec duckarrow.Record, names []string) (arrow.Record, error) {
	var (
		srcSchema = rec.Schema()
		cols      = make([]arrow.Array, rec.NumCols())
		fields    = make([]arrow.Field, rec.NumCols())
	)
	err := generic.ParallelEach(rec.Columns(), func(i int, col duckarrow.Array) error {
		if i >= len(names) {
			return internalf("column name not found for index %d", i)
		}
		arr, err := toArrowArray(col)
		if err != nil {
			return arrowErrf(err, "converting column %d (%s)", i, names[i])
		}
		cols[i] = arr
		fields[i] = arrow.Field{Name: names[i], Type: arr.DataType(), Nullable: srcSchema.Field(i).Nullable}
		return nil
	})
	if err != nil {
		for _, col := range cols {
			if col != nil {
				col.Release()
			}
		}
		return nil, err
	}
	return array.NewRecord(arrow.NewSchema(fields, nil), cols, rec.NumRows()), nil
}
