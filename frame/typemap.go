package frame

import (
	duckarrow "github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow/go/v10/arrow"
	"github.com/pkg/errors"
)

// toArrowType maps a data type from the driver's Arrow implementation onto
// the analytics-side one. Both libraries implement the same columnar format,
// so the mapping is structural: every element type maps to its counterpart
// and nested types are converted recursively. Types the target library has no
// counterpart for yield an error.
func toArrowType(dt duckarrow.DataType) (arrow.DataType, error) {
	switch dt := dt.(type) {
	case *duckarrow.NullType:
		return arrow.Null, nil
	case *duckarrow.BooleanType:
		return arrow.FixedWidthTypes.Boolean, nil
	case *duckarrow.Int8Type:
		return arrow.PrimitiveTypes.Int8, nil
	case *duckarrow.Int16Type:
		return arrow.PrimitiveTypes.Int16, nil
	case *duckarrow.Int32Type:
		return arrow.PrimitiveTypes.Int32, nil
	case *duckarrow.Int64Type:
		return arrow.PrimitiveTypes.Int64, nil
	case *duckarrow.Uint8Type:
		return arrow.PrimitiveTypes.Uint8, nil
	case *duckarrow.Uint16Type:
		return arrow.PrimitiveTypes.Uint16, nil
	case *duckarrow.Uint32Type:
		return arrow.PrimitiveTypes.Uint32, nil
	case *duckarrow.Uint64Type:
		return arrow.PrimitiveTypes.Uint64, nil
	case *duckarrow.Float16Type:
		return arrow.FixedWidthTypes.Float16, nil
	case *duckarrow.Float32Type:
		return arrow.PrimitiveTypes.Float32, nil
	case *duckarrow.Float64Type:
		return arrow.PrimitiveTypes.Float64, nil
	case *duckarrow.Decimal128Type:
		return &arrow.Decimal128Type{Precision: dt.Precision, Scale: dt.Scale}, nil
	case *duckarrow.Decimal256Type:
		return &arrow.Decimal256Type{Precision: dt.Precision, Scale: dt.Scale}, nil
	case *duckarrow.StringType:
		return arrow.BinaryTypes.String, nil
	case *duckarrow.LargeStringType:
		return arrow.BinaryTypes.LargeString, nil
	case *duckarrow.BinaryType:
		return arrow.BinaryTypes.Binary, nil
	case *duckarrow.LargeBinaryType:
		return arrow.BinaryTypes.LargeBinary, nil
	case *duckarrow.FixedSizeBinaryType:
		return &arrow.FixedSizeBinaryType{ByteWidth: dt.ByteWidth}, nil
	case *duckarrow.Date32Type:
		return arrow.FixedWidthTypes.Date32, nil
	case *duckarrow.Date64Type:
		return arrow.FixedWidthTypes.Date64, nil
	case *duckarrow.Time32Type:
		return &arrow.Time32Type{Unit: arrow.TimeUnit(dt.Unit)}, nil
	case *duckarrow.Time64Type:
		return &arrow.Time64Type{Unit: arrow.TimeUnit(dt.Unit)}, nil
	case *duckarrow.TimestampType:
		return &arrow.TimestampType{Unit: arrow.TimeUnit(dt.Unit), TimeZone: dt.TimeZone}, nil
	case *duckarrow.DurationType:
		return &arrow.DurationType{Unit: arrow.TimeUnit(dt.Unit)}, nil
	case *duckarrow.MonthIntervalType:
		return arrow.FixedWidthTypes.MonthInterval, nil
	case *duckarrow.DayTimeIntervalType:
		return arrow.FixedWidthTypes.DayTimeInterval, nil
	case *duckarrow.MonthDayNanoIntervalType:
		return arrow.FixedWidthTypes.MonthDayNanoInterval, nil
	case *duckarrow.ListType:
		elem, err := toArrowType(dt.Elem())
		if err != nil {
			return nil, err
		}
		return arrow.ListOf(elem), nil
	case *duckarrow.LargeListType:
		elem, err := toArrowType(dt.Elem())
		if err != nil {
			return nil, err
		}
		return arrow.LargeListOf(elem), nil
	case *duckarrow.FixedSizeListType:
		elem, err := toArrowType(dt.Elem())
		if err != nil {
			return nil, err
		}
		return arrow.FixedSizeListOf(dt.Len(), elem), nil
	case *duckarrow.StructType:
		fields := make([]arrow.Field, len(dt.Fields()))
		for i, f := range dt.Fields() {
			field, err := toArrowField(f)
			if err != nil {
				return nil, err
			}
			fields[i] = field
		}
		return arrow.StructOf(fields...), nil
	case *duckarrow.MapType:
		key, err := toArrowType(dt.KeyType())
		if err != nil {
			return nil, err
		}
		item, err := toArrowType(dt.ItemType())
		if err != nil {
			return nil, err
		}
		mt := arrow.MapOf(key, item)
		mt.KeysSorted = dt.KeysSorted
		return mt, nil
	case *duckarrow.DictionaryType:
		index, err := toArrowType(dt.IndexType)
		if err != nil {
			return nil, err
		}
		value, err := toArrowType(dt.ValueType)
		if err != nil {
			return nil, err
		}
		return &arrow.DictionaryType{IndexType: index, ValueType: value, Ordered: dt.Ordered}, nil
	default:
		return nil, errors.Errorf("unsupported data type %s", dt)
	}
}

func toArrowField(f duckarrow.Field) (arrow.Field, error) {
	dt, err := toArrowType(f.Type)
	if err != nil {
		return arrow.Field{}, err
	}
	return arrow.Field{
		Name:     f.Name,
		Type:     dt,
		Nullable: f.Nullable,
		Metadata: arrow.NewMetadata(f.Metadata.Keys(), f.Metadata.Values()),
	}, nil
}
