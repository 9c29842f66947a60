package ingest

import (
	"strconv"
	"strings"
)

// ValueKind tags the scalar variant held by a cell.
type ValueKind int

const (
	KindString ValueKind = iota
	KindNumber
	KindBool
)

// Value is a tagged scalar cell value. Spreadsheet cells carry strings,
// numbers or booleans; downstream extractors coerce per-field.
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
	Bool bool
}

func stringValue(s string) Value  { return Value{Kind: KindString, Str: s} }
func numberValue(n float64) Value { return Value{Kind: KindNumber, Num: n} }
func boolValue(b bool) Value      { return Value{Kind: KindBool, Bool: b} }

// IsEmpty reports whether the cell is present but unset. Only string
// cells can be empty; a numeric zero or boolean false is a real value.
func (v Value) IsEmpty() bool {
	return v.Kind == KindString && v.Str == ""
}

// Text renders the value the way a loosely typed consumer would see it.
func (v Value) Text() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}

// Float parses the value as a number. Returns false when the cell does
// not hold one.
func (v Value) Float() (float64, bool) {
	switch v.Kind {
	case KindNumber:
		return v.Num, true
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Cell pairs a header name with its value.
type Cell struct {
	Column string
	Value  Value
}

// Row is an ordered header-keyed record decoded from one spreadsheet
// row. Order follows the sheet's column order, which matters when two
// headers normalize to the same alias.
type Row []Cell
