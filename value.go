// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package sqlitemgr

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the storage class held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindInteger
	KindReal
	KindText
	KindBlob
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindText:
		return "text"
	case KindBlob:
		return "blob"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a single SQLite scalar. It is used both for bound parameters
// and for result cells. The zero Value is NULL.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    []byte
}

// Null returns the NULL value.
func Null() Value { return Value{} }

// Int returns an INTEGER value.
func Int(v int64) Value { return Value{kind: KindInteger, i: v} }

// Float returns a REAL value.
func Float(v float64) Value { return Value{kind: KindReal, f: v} }

// Text returns a TEXT value.
func Text(v string) Value { return Value{kind: KindText, s: v} }

// Blob returns a BLOB value. The slice is not copied.
func Blob(v []byte) Value { return Value{kind: KindBlob, b: v} }

// ValueOf converts a value returned by the driver (or supplied by a caller)
// into a Value. Unsupported types are rendered as text with %v.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case int64:
		return Int(x)
	case int:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case float64:
		return Float(x)
	case float32:
		return Float(float64(x))
	case bool:
		if x {
			return Int(1)
		}
		return Int(0)
	case string:
		return Text(x)
	case []byte:
		// drivers reuse the buffer between rows
		return Blob(append([]byte(nil), x...))
	case time.Time:
		return Text(x.Format(time.RFC3339Nano))
	}
	return Text(fmt.Sprintf("%v", v))
}

// ParseValue converts free text into an INTEGER or REAL when it parses as
// one, otherwise into TEXT. Surrounding whitespace is kept for text.
func ParseValue(s string) Value {
	t := strings.TrimSpace(s)
	if i, err := strconv.ParseInt(t, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil && !strings.ContainsAny(t, "xXnN") {
		return Float(f)
	}
	return Text(s)
}

// Kind returns the storage class of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is NULL.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int64 returns the integer payload. It is zero unless Kind is KindInteger.
func (v Value) Int64() int64 { return v.i }

// Float64 returns the real payload. It is zero unless Kind is KindReal.
func (v Value) Float64() float64 { return v.f }

// Str returns the text payload. It is empty unless Kind is KindText.
func (v Value) Str() string { return v.s }

// Bytes returns the blob payload. It is nil unless Kind is KindBlob.
func (v Value) Bytes() []byte { return v.b }

// Any returns the payload as the Go type the drivers accept as a bound
// argument.
func (v Value) Any() any {
	switch v.kind {
	case KindInteger:
		return v.i
	case KindReal:
		return v.f
	case KindText:
		return v.s
	case KindBlob:
		return v.b
	}
	return nil
}

// Equal reports whether v and o hold the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInteger:
		return v.i == o.i
	case KindReal:
		return v.f == o.f
	case KindText:
		return v.s == o.s
	case KindBlob:
		return string(v.b) == string(o.b)
	}
	return true
}

// String renders v the way it would appear in a result listing.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindReal:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindText:
		return strconv.Quote(v.s)
	case KindBlob:
		return fmt.Sprintf("x'%x'", v.b)
	}
	return "NULL"
}

// Row is one result row, cells in column order.
type Row []Value

// Equal reports whether r and o have the same cells.
func (r Row) Equal(o Row) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if !r[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

func (r Row) String() string {
	parts := make([]string, len(r))
	for i, v := range r {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Field is one column/value pair of a Mapping.
type Field struct {
	Column string
	Value  Value
}

// Mapping is an ordered column to value mapping. The order of the fields
// fixes the order of the placeholders in generated statements.
type Mapping []Field

// Set replaces the value of column, or appends it when absent.
func (m Mapping) Set(column string, v Value) Mapping {
	for i := range m {
		if m[i].Column == column {
			m[i].Value = v
			return m
		}
	}
	return append(m, Field{Column: column, Value: v})
}

// Get returns the value of column and whether it is present.
func (m Mapping) Get(column string) (Value, bool) {
	for _, f := range m {
		if f.Column == column {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Columns returns the column names in order.
func (m Mapping) Columns() []string {
	cols := make([]string, len(m))
	for i, f := range m {
		cols[i] = f.Column
	}
	return cols
}

// Args returns the values in order, ready to be bound.
func (m Mapping) Args() []any {
	args := make([]any, len(m))
	for i, f := range m {
		args[i] = f.Value.Any()
	}
	return args
}

// ColumnDef declares one column for CreateTable.
type ColumnDef struct {
	Name string
	Type string
}

// ColumnInfo describes a column as reported by the catalog.
type ColumnInfo struct {
	Name       string
	Type       string
	NotNull    bool
	Default    Value
	PrimaryKey bool
}
