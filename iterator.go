package jsonvalue

// Foreach iterates over an array or object and applies fn to each element.
// Array elements are visited in order with int keys; object entries are
// visited in insertion order with string keys. Scalar, null, and invalid
// values produce no calls. Items passed to fn are independent copies.
func (v *Value) Foreach(fn func(key any, item *Value)) {
	if v == nil {
		return
	}
	switch v.kind {
	case KindArray:
		for i, item := range v.data.([]*Value) {
			fn(i, item.clone())
		}
	case KindObject:
		obj := v.data.(*object)
		for _, k := range obj.keys {
			fn(k, obj.values[k].clone())
		}
	}
}

// IsNull reports whether the value is null
func (v *Value) IsNull() bool {
	return v == nil || v.kind == KindNull
}

// IsEmpty reports whether the value is null, invalid, an empty string, or a
// container with no elements
func (v *Value) IsEmpty() bool {
	if v == nil {
		return true
	}
	switch v.kind {
	case KindNull, KindInvalid:
		return true
	case KindString:
		return v.data.(string) == ""
	case KindArray:
		return len(v.data.([]*Value)) == 0
	case KindObject:
		return v.data.(*object).len() == 0
	default:
		return false
	}
}
