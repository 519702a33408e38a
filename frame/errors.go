package frame

import "github.com/pkg/errors"

// ErrorKind tags a conversion failure with the subsystem it originated from.
type ErrorKind int

const (
	// KindInternal marks invariant violations inside the conversion itself,
	// such as a column index with no matching name or an empty batch sequence.
	KindInternal ErrorKind = iota
	// KindArrow marks failures from the target Arrow implementation, such as
	// a source type that cannot be represented.
	KindArrow
	// KindDuckDB marks failures preparing or executing the query against the
	// source engine.
	KindDuckDB
)

func (k ErrorKind) String() string {
	switch k {
	case KindInternal:
		return "internal"
	case KindArrow:
		return "arrow"
	case KindDuckDB:
		return "duckdb"
	default:
		return "unknown"
	}
}

// Error is the single error type surfaced by this package. The Kind
// classifies the failure, the wrapped cause carries the details.
type Error struct {
	Kind ErrorKind
	err  error
}

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

func internalf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInternal, err: errors.Errorf(format, args...)}
}

func arrowErrf(cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindArrow, err: errors.Wrapf(cause, format, args...)}
}

func duckErrf(cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindDuckDB, err: errors.Wrapf(cause, format, args...)}
}
