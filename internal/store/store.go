package store

import (
	"fmt"
	"strconv"
	"time"

	"whatabook/internal/dberr"
)

// Action selects the document-store operation a Query performs.
// Relational queries leave it empty; their statement text carries the intent.
type Action string

const (
	ActionFind    Action = "find"
	ActionFindOne Action = "find_one"
	ActionInsert  Action = "insert"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
)

// Query is one request to a backing store.
type Query struct {
	// Name is the catalog operation name, used in errors and logs.
	Name string

	// Statement and Args describe a relational query. Args are always bound, never interpolated.
	Statement string
	Args      []any

	// Collection, Action, Filter and Payload describe a document query.
	Collection string
	Action     Action
	Filter     any
	Payload    any
}

// Result is what a write reports back.
type Result struct {
	Affected   int64
	InsertedID any
}

// Record is one row or one document returned by a read.
// Fields holds column names or document keys in the order the store returned them.
type Record struct {
	Fields []string
	Values []any
}

// NewRecord pairs names with values. Both slices must have the same length.
func NewRecord(fields []string, values ...any) Record {
	return Record{Fields: fields, Values: values}
}

func (r Record) Len() int {
	return len(r.Values)
}

// Get returns the value stored under name.
func (r Record) Get(name string) (any, bool) {
	for i, f := range r.Fields {
		if f == name && i < len(r.Values) {
			return r.Values[i], true
		}
	}
	return nil, false
}

// Expect fails with ErrMalformedRecord unless the record has exactly n values.
func (r Record) Expect(op string, n int) error {
	if len(r.Values) != n {
		return dberr.Malformed(op, "expected %d fields, got %d", n, len(r.Values))
	}
	return nil
}

// Int64 reads the value at position i as an integer.
func (r Record) Int64(op string, i int) (int64, error) {
	if i < 0 || i >= len(r.Values) {
		return 0, dberr.Malformed(op, "field %d out of range", i)
	}
	n, err := AsInt64(r.Values[i])
	if err != nil {
		return 0, dberr.Malformed(op, "field %d: %v", i, err)
	}
	return n, nil
}

// String reads the value at position i as text.
func (r Record) String(op string, i int) (string, error) {
	if i < 0 || i >= len(r.Values) {
		return "", dberr.Malformed(op, "field %d out of range", i)
	}
	s, err := AsString(r.Values[i])
	if err != nil {
		return "", dberr.Malformed(op, "field %d: %v", i, err)
	}
	return s, nil
}

// Field reads the named value as text.
func (r Record) Field(op, name string) (string, error) {
	v, ok := r.Get(name)
	if !ok {
		return "", dberr.Malformed(op, "missing field %q", name)
	}
	s, err := AsString(v)
	if err != nil {
		return "", dberr.Malformed(op, "field %q: %v", name, err)
	}
	return s, nil
}

// AsInt64 converts the integer representations drivers hand back.
// MySQL returns []byte for text-protocol columns.
func AsInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case int:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case []byte:
		return strconv.ParseInt(string(n), 10, 64)
	case string:
		return strconv.ParseInt(n, 10, 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to integer", v)
	}
}

// AsString converts the text representations drivers hand back. NULL becomes "".
func AsString(v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	case int64, int32, int, uint64, uint32, float64:
		return fmt.Sprint(s), nil
	case time.Time:
		return s.Format(time.RFC3339), nil
	case fmt.Stringer:
		return s.String(), nil
	default:
		return "", fmt.Errorf("cannot convert %T to string", v)
	}
}

// Collect maps every record with fn, stopping at the first failure.
func Collect[T any](records []Record, fn func(Record) (T, error)) ([]T, error) {
	out := make([]T, 0, len(records))
	for _, r := range records {
		v, err := fn(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
