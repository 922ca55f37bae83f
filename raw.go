package jsonvalue

// Raw converts the value back to the untyped object graph form: nil, bool,
// a numeric value in its original representation, string, []any, or
// map[string]any. It is the inverse of FromObject for representable graphs.
//
// An invalid value converts to the raw form of the value it wraps; the error
// detail is not representable in the raw form and is dropped. Object key
// order is likewise not representable in a Go map and is dropped here only.
func (v *Value) Raw() any {
	if v == nil {
		return nil
	}
	switch v.kind {
	case KindNull:
		return nil
	case KindBool, KindNumber, KindString:
		return v.data
	case KindArray:
		arr := v.data.([]*Value)
		out := make([]any, len(arr))
		for i, item := range arr {
			out[i] = item.Raw()
		}
		return out
	case KindObject:
		obj := v.data.(*object)
		out := make(map[string]any, len(obj.keys))
		for _, k := range obj.keys {
			out[k] = obj.values[k].Raw()
		}
		return out
	case KindInvalid:
		return v.orig.Raw()
	default:
		return nil
	}
}

// FromRaw constructs a Value from an object graph, reporting failure only
// when the top-level shape itself is unrepresentable. Nested unsupported
// shapes degrade to nested invalid values instead of failing the whole
// conversion, exactly as FromObject does.
func FromRaw(raw any) (*Value, bool) {
	v := fromRaw(raw)
	if v.kind == KindInvalid {
		return nil, false
	}
	return v, true
}
