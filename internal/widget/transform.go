package widget

import (
	"fmt"
	"strings"
)

// DefaultPrecision is the number of decimal places Trim keeps when no
// argument is given
const DefaultPrecision = 8

// Transform turns a raw decoded value into display text
type Transform func(raw string, args ...int) string

var transforms = map[string]Transform{
	"trim": Trim,
}

// LookupTransform returns the named transform
func LookupTransform(name string) (Transform, error) {
	t, ok := transforms[name]
	if !ok {
		return nil, fmt.Errorf("unknown transform %q", name)
	}
	return t, nil
}

// Trim truncates a decimal string to at most args[0] digits after the point.
// It does not round. A string without a decimal point is returned unchanged,
// and a precision of zero or less drops the fractional part.
func Trim(num string, args ...int) string {
	dp := DefaultPrecision
	if len(args) > 0 {
		dp = args[0]
	}

	point := strings.IndexByte(num, '.')
	if point < 0 {
		return num
	}
	if dp <= 0 {
		return num[:point]
	}

	end := point + 1 + dp
	if end >= len(num) {
		return num
	}
	return num[:end]
}
