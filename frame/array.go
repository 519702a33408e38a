package frame

import (
	duckarrow "github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow/go/v10/arrow"
	"github.com/apache/arrow/go/v10/arrow/array"
	"github.com/apache/arrow/go/v10/arrow/memory"
)

// toArrowArray reinterprets one column from the driver's Arrow representation
// into the analytics-side one. Both libraries lay arrays out identically, so
// the conversion rebuilds the array metadata (type, length, offset, null
// count, children, dictionary) around the same buffer contents instead of
// re-encoding values one by one.
func toArrowArray(src duckarrow.Array) (arrow.Array, error) {
	data, err := toArrowData(src.Data())
	if err != nil {
		return nil, err
	}
	defer data.Release()
	return array.MakeFromData(data), nil
}

func toArrowData(src duckarrow.ArrayData) (*array.Data, error) {
	dtype, err := toArrowType(src.DataType())
	if err != nil {
		return nil, err
	}

	// Buffer bytes are copied: driver record batches can be backed by
	// C-allocated memory that is freed when the source record is released,
	// and the output table must own its memory independently.
	buffers := make([]*memory.Buffer, len(src.Buffers()))
	for i, buf := range src.Buffers() {
		if buf == nil {
			continue
		}
		buffers[i] = memory.NewBufferBytes(append([]byte(nil), buf.Bytes()...))
	}

	children := make([]arrow.ArrayData, len(src.Children()))
	for i, child := range src.Children() {
		childData, err := toArrowData(child)
		if err != nil {
			return nil, err
		}
		children[i] = childData
	}

	data := array.NewData(dtype, src.Len(), buffers, children, src.NullN(), src.Offset())
	for _, child := range children {
		child.Release()
	}

	if dict := src.Dictionary(); dict != nil {
		dictData, err := toArrowData(dict)
		if err != nil {
			data.Release()
			return nil, err
		}
		data.SetDictionary(dictData)
		dictData.Release()
	}
	return data, nil
}
