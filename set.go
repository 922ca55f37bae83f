package jsonvalue

import "encoding/json"

// Mutation operates in place on the receiver's own tree and never produces
// an invalid value; only navigation and coercion do. Inserted values are
// copied in, so the caller's tree and the receiver never alias.

// SetIndex replaces the element at position i of an array value.
//
// Out-of-range assignments (negative or beyond the last element) are
// deliberate no-ops: bounds violations never grow the array and never panic.
// SetIndex on a non-array value is also a no-op; arrays are not created by
// index assignment.
func (v *Value) SetIndex(i int, x *Value) {
	if v == nil || v.kind != KindArray {
		return
	}
	arr := v.data.([]*Value)
	if i < 0 || i >= len(arr) {
		return
	}
	arr[i] = x.clone()
}

// SetKey inserts or overwrites key k of an object value. An existing key is
// replaced in place with its position preserved; a new key is appended.
//
// SetKey on a value that is not yet an object (freshly constructed, null, or
// any other kind) transitions it into an object containing only that pair,
// so a tree can be built up purely through assignment.
func (v *Value) SetKey(k string, x *Value) {
	if v == nil {
		return
	}
	if v.kind != KindObject {
		obj := newObject()
		obj.set(k, x.clone())
		v.become(KindObject, obj)
		return
	}
	v.data.(*object).set(k, x.clone())
}

// Delete removes key k from an object value, preserving the order of the
// remaining pairs, and reports whether the key existed. Delete on any other
// kind is a no-op.
func (v *Value) Delete(k string) bool {
	if v == nil || v.kind != KindObject {
		return false
	}
	return v.data.(*object).delete(k)
}

// Whole-value setters replace the active variant entirely regardless of what
// it was before.

// SetNull replaces the value with null
func (v *Value) SetNull() {
	v.become(KindNull, nil)
}

// SetBool replaces the value with a boolean
func (v *Value) SetBool(b bool) {
	v.become(KindBool, b)
}

// SetInt replaces the value with an int number
func (v *Value) SetInt(i int) {
	v.become(KindNumber, i)
}

// SetInt64 replaces the value with an int64 number
func (v *Value) SetInt64(i int64) {
	v.become(KindNumber, i)
}

// SetFloat64 replaces the value with a float64 number
func (v *Value) SetFloat64(f float64) {
	v.become(KindNumber, f)
}

// SetNumber replaces the value with a json.Number literal
func (v *Value) SetNumber(n json.Number) {
	v.become(KindNumber, n)
}

// SetString replaces the value with a string
func (v *Value) SetString(s string) {
	v.become(KindString, s)
}

// SetArray replaces the value with an array holding copies of items
func (v *Value) SetArray(items []*Value) {
	arr := make([]*Value, len(items))
	for i, item := range items {
		arr[i] = item.clone()
	}
	v.become(KindArray, arr)
}

// SetObject replaces the value with an object holding copies of the entries,
// keys in sorted order (a Go map carries no insertion order to keep)
func (v *Value) SetObject(entries map[string]*Value) {
	obj := newObject()
	for _, k := range sortedKeys(entries) {
		obj.set(k, entries[k].clone())
	}
	v.become(KindObject, obj)
}

// become switches the active variant in place
func (v *Value) become(kind Kind, data any) {
	if v == nil {
		return
	}
	v.kind = kind
	v.data = data
	v.orig = nil
	v.err = nil
}
