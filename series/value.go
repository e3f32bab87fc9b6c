package series

import (
	"strconv"

	"github.com/arloliu/telelog/format"
)

// Value is a single series value: a float64 for numeric series or a string
// for text series.
type Value struct {
	typ  format.ValueType
	num  float64
	text string
}

// NumericValue creates a numeric value.
func NumericValue(v float64) Value {
	return Value{typ: format.TypeNumeric, num: v}
}

// TextValue creates a text value.
func TextValue(s string) Value {
	return Value{typ: format.TypeText, text: s}
}

// Type returns the variant held by the value.
func (v Value) Type() format.ValueType {
	return v.typ
}

// Float returns the numeric payload; ok is false for text values.
func (v Value) Float() (f float64, ok bool) {
	return v.num, v.typ == format.TypeNumeric
}

// Text returns the text payload; ok is false for numeric values.
func (v Value) Text() (s string, ok bool) {
	return v.text, v.typ == format.TypeText
}

// Any returns the payload as float64 or string.
func (v Value) Any() any {
	if v.typ == format.TypeNumeric {
		return v.num
	}

	return v.text
}

func (v Value) String() string {
	if v.typ == format.TypeNumeric {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}

	return v.text
}

// Point is a timestamped value.
type Point struct {
	Ts  uint64
	Val Value
}
