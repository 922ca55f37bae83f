package jsonvalue

import (
	"encoding/json"
	"sort"
)

// Kind identifies the active variant of a Value. The set is closed: every
// Value holds exactly one of these kinds at any time.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	KindInvalid
)

// String returns the kind name for error messages and debugging
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the JSON kinds. The zero value is not meaningful;
// construct values with FromBytes, FromObject, or the New* constructors.
//
// An invalid Value wraps the value a failed operation was applied to together
// with the reason, so access chains stay total: navigating into an invalid
// value yields another invalid value describing the newly attempted operation.
type Value struct {
	kind Kind
	data any    // bool, numeric, or string for scalars; []*Value; *object
	orig *Value // value wrapped by an invalid result
	err  error  // reason the operation failed
}

// NewNull returns a null value
func NewNull() *Value {
	return &Value{kind: KindNull}
}

// NewBool returns a boolean value
func NewBool(b bool) *Value {
	return &Value{kind: KindBool, data: b}
}

// NewInt returns a numeric value holding an int
func NewInt(i int) *Value {
	return &Value{kind: KindNumber, data: i}
}

// NewInt64 returns a numeric value holding an int64
func NewInt64(i int64) *Value {
	return &Value{kind: KindNumber, data: i}
}

// NewFloat64 returns a numeric value holding a float64
func NewFloat64(f float64) *Value {
	return &Value{kind: KindNumber, data: f}
}

// NewNumber returns a numeric value holding a json.Number literal.
// The literal is not validated here; MarshalJSON reports malformed numbers.
func NewNumber(n json.Number) *Value {
	return &Value{kind: KindNumber, data: n}
}

// NewString returns a string value
func NewString(s string) *Value {
	return &Value{kind: KindString, data: s}
}

// NewArray returns an array value holding copies of the given items.
// A nil item becomes a null element.
func NewArray(items ...*Value) *Value {
	arr := make([]*Value, len(items))
	for i, item := range items {
		arr[i] = item.clone()
	}
	return &Value{kind: KindArray, data: arr}
}

// NewObject returns an object value holding copies of the given entries,
// with keys in sorted order (a Go map carries no insertion order to keep).
func NewObject(entries map[string]*Value) *Value {
	obj := newObject()
	for _, k := range sortedKeys(entries) {
		obj.set(k, entries[k].clone())
	}
	return &Value{kind: KindObject, data: obj}
}

// FromObject constructs a Value from an already-decoded object graph.
// Classification is recursive and total: it never fails outright, raw shapes
// with no representable kind degrade to invalid values instead.
func FromObject(raw any) *Value {
	return fromRaw(raw)
}

func fromRaw(raw any) *Value {
	if raw == nil {
		return NewNull()
	}
	switch v := raw.(type) {
	case *Value:
		return v.clone()
	case bool:
		return NewBool(v)
	case string:
		return NewString(v)
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		// Numeric values keep their original dynamic representation so that
		// integer inputs round-trip through Raw without precision loss.
		return &Value{kind: KindNumber, data: v}
	case []any:
		arr := make([]*Value, len(v))
		for i, item := range v {
			arr[i] = fromRaw(item)
		}
		return &Value{kind: KindArray, data: arr}
	case map[string]any:
		obj := newObject()
		for _, k := range sortedKeys(v) {
			obj.set(k, fromRaw(v[k]))
		}
		return &Value{kind: KindObject, data: obj}
	default:
		return newInvalid(NewNull(), newUnsupportedTypeError(raw))
	}
}

// newInvalid wraps the value a failed operation was applied to. The original
// is copied so the invalid result stays independent of later mutation.
func newInvalid(orig *Value, err error) *Value {
	return &Value{kind: KindInvalid, orig: orig.clone(), err: err}
}

// Kind returns the active variant of the value
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsValid reports whether the value is not the result of a failed operation
func (v *Value) IsValid() bool {
	return v.Kind() != KindInvalid
}

// Err returns the error carried by an invalid value, or nil for every other
// kind. This is the inspection point for why a getter returned absent or a
// default, without any exception-style control flow.
func (v *Value) Err() error {
	if v == nil || v.kind != KindInvalid {
		return nil
	}
	return v.err
}

// clone returns a deep, independent copy. Obtained sub-values never alias
// their parent's storage; this is what upholds the single-writer contract.
func (v *Value) clone() *Value {
	if v == nil {
		return NewNull()
	}
	c := &Value{kind: v.kind, data: v.data, err: v.err}
	switch v.kind {
	case KindArray:
		arr := v.data.([]*Value)
		dup := make([]*Value, len(arr))
		for i, item := range arr {
			dup[i] = item.clone()
		}
		c.data = dup
	case KindObject:
		c.data = v.data.(*object).clone()
	case KindInvalid:
		c.data = nil
		c.orig = v.orig.clone()
	}
	return c
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
