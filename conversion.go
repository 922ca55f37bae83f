package jsonvalue

import (
	"encoding/json"
	"math"
	"strconv"
)

// Typed getters come in two forms, mirroring the optional/defaulting split:
//
//   - the optional form (Bool, Int, Float64, String, Array, Map, Number)
//     reports via its second result whether the active kind matched;
//   - the defaulting form (BoolValue, IntValue, ...) silently absorbs a
//     mismatch into the type's zero default for call sites that prefer a
//     value over a presence check.
//
// Numeric kinds inter-coerce only when the conversion is exact: a float with
// a fractional part is rejected by Int, an integer is accepted by Float64.
// All other cross-kind coercions (string to int, bool to number, ...) are
// rejected; inspect Err to learn why an access chain produced a mismatch.

// Bool returns the boolean content and whether the value is a bool
func (v *Value) Bool() (bool, bool) {
	if v == nil || v.kind != KindBool {
		return false, false
	}
	return v.data.(bool), true
}

// BoolValue returns the boolean content, or false for any other kind
func (v *Value) BoolValue() bool {
	b, _ := v.Bool()
	return b
}

// Int returns the numeric content as int64 and whether the value is a number
// with an exactly integral value
func (v *Value) Int() (int64, bool) {
	if v == nil || v.kind != KindNumber {
		return 0, false
	}
	return numberToInt64(v.data)
}

// IntValue returns the integral numeric content, or 0 for any other kind
// and for numbers with a fractional part
func (v *Value) IntValue() int64 {
	i, _ := v.Int()
	return i
}

// Float64 returns the numeric content as float64 and whether the value is a
// number
func (v *Value) Float64() (float64, bool) {
	if v == nil || v.kind != KindNumber {
		return 0, false
	}
	return numberToFloat64(v.data)
}

// Float64Value returns the numeric content, or 0 for any other kind
func (v *Value) Float64Value() float64 {
	f, _ := v.Float64()
	return f
}

// Number returns the numeric content as a json.Number literal and whether
// the value is a number
func (v *Value) Number() (json.Number, bool) {
	if v == nil || v.kind != KindNumber {
		return "", false
	}
	switch n := v.data.(type) {
	case json.Number:
		return n, true
	case float32:
		return json.Number(strconv.FormatFloat(float64(n), 'g', -1, 32)), true
	case float64:
		return json.Number(strconv.FormatFloat(n, 'g', -1, 64)), true
	default:
		if i, ok := numberToInt64(v.data); ok {
			return json.Number(strconv.FormatInt(i, 10)), true
		}
		switch u := v.data.(type) {
		case uint:
			return json.Number(strconv.FormatUint(uint64(u), 10)), true
		case uint64:
			return json.Number(strconv.FormatUint(u, 10)), true
		}
		return "", false
	}
}

// String returns the string content and whether the value is a string.
// No stringification of other kinds is performed.
func (v *Value) String() (string, bool) {
	if v == nil || v.kind != KindString {
		return "", false
	}
	return v.data.(string), true
}

// StringValue returns the string content, or "" for any other kind
func (v *Value) StringValue() string {
	s, _ := v.String()
	return s
}

// Array returns independent copies of the elements and whether the value is
// an array
func (v *Value) Array() ([]*Value, bool) {
	if v == nil || v.kind != KindArray {
		return nil, false
	}
	arr := v.data.([]*Value)
	out := make([]*Value, len(arr))
	for i, item := range arr {
		out[i] = item.clone()
	}
	return out, true
}

// ArrayValue returns the elements, or an empty slice for any other kind
func (v *Value) ArrayValue() []*Value {
	arr, ok := v.Array()
	if !ok {
		return []*Value{}
	}
	return arr
}

// Map returns independent copies of the entries and whether the value is an
// object. Use Keys or Foreach when insertion order matters.
func (v *Value) Map() (map[string]*Value, bool) {
	if v == nil || v.kind != KindObject {
		return nil, false
	}
	obj := v.data.(*object)
	out := make(map[string]*Value, len(obj.keys))
	for _, k := range obj.keys {
		out[k] = obj.values[k].clone()
	}
	return out, true
}

// MapValue returns the entries, or an empty map for any other kind
func (v *Value) MapValue() map[string]*Value {
	m, ok := v.Map()
	if !ok {
		return map[string]*Value{}
	}
	return m
}

// numberToInt64 converts a stored numeric representation to int64, rejecting
// anything that would lose information: floats with fractional parts,
// unsigned values beyond the int64 range, and literals that fit neither
// integer nor exact-float parsing.
func numberToInt64(value any) (int64, bool) {
	switch n := value.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) <= math.MaxInt64 {
			return int64(n), true
		}
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n <= math.MaxInt64 {
			return int64(n), true
		}
	case float32:
		f := float64(n)
		if f >= math.MinInt64 && f < math.MaxInt64 && math.Trunc(f) == f {
			return int64(f), true
		}
	case float64:
		if n >= math.MinInt64 && n < math.MaxInt64 && math.Trunc(n) == n {
			return int64(n), true
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		// Integral literals in exponent form ("1e3") fail Int64 but are
		// still exact.
		if f, err := n.Float64(); err == nil && f == math.Trunc(f) &&
			f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f), true
		}
	}
	return 0, false
}

// numberToFloat64 converts a stored numeric representation to float64
func numberToFloat64(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f, true
		}
	}
	return 0, false
}
