package models

import "strconv"

// ValueKind tells which field of a Value is populated
type ValueKind int

const (
	KindNumber ValueKind = iota
	KindText
)

// Value is a display scalar held by a widget field.
type Value struct {
	Kind   ValueKind
	Number float64
	Text   string
}

// Number wraps a float as a Value
func Number(f float64) Value {
	return Value{Kind: KindNumber, Number: f}
}

// Text wraps a string as a Value
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// String renders the value for display
func (v Value) String() string {
	if v.Kind == KindText {
		return v.Text
	}
	return strconv.FormatFloat(v.Number, 'f', -1, 64)
}
