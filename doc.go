// Package jsonvalue provides a safe, chainable in-memory representation of
// parsed JSON for documents of unknown or partially-known shape.
//
// The central type is Value, a tagged union over the JSON kinds (null, bool,
// number, string, array, object) plus an "invalid" kind that carries a failed
// navigation or coercion as inspectable data. No operation in this package
// panics or returns a Go error for a shape mismatch; failures travel through
// access chains as invalid values instead.
//
// # Basic Usage
//
// Parse and navigate without intermediate checks:
//
//	v := jsonvalue.FromBytes(data)
//	name := v.Get("users[0].name").StringValue()
//
// Every accessor is total. Indexing a non-array, looking up a missing key,
// or navigating deeper into an already-failed access all yield an invalid
// Value, and chains keep composing:
//
//	city := v.Key("user").Key("address").Key("city")
//	if err := city.Err(); err != nil {
//		// errors.Is(err, jsonvalue.ErrKeyNotFound) etc.
//	}
//
// # Typed Access
//
// Each target type has an optional getter and a defaulting getter:
//
//	age, ok := v.Key("age").Int()   // ok reports whether the kind matched
//	n := v.Key("age").IntValue()    // 0 when the kind does not match
//
// Numeric kinds coerce between integer and floating-point representations
// only when the conversion is exact; all other cross-kind coercions are
// rejected rather than approximated.
//
// # Mutation
//
// Values are built up through the same paths used for reading:
//
//	v := jsonvalue.NewNull()
//	v.SetKey("name", jsonvalue.NewString("Jack"))
//	v.SetKey("tags", jsonvalue.NewArray(jsonvalue.NewString("a")))
//
// SetKey on a non-object replaces the value with a one-pair object, so a
// tree can be assembled purely by assignment. SetIndex never grows an array;
// out-of-range assignments are deliberate no-ops.
//
// # Ordering and Numbers
//
// Object key order is preserved: decoding keeps document order, SetKey keeps
// insertion order, and MarshalJSON emits keys in that order. Numbers decoded
// from bytes are kept as json.Number, so large integers survive a
// decode/access round trip without precision loss.
//
// # Concurrency
//
// A Value is not safe for concurrent mutation. Independent trees never share
// state (navigation returns independent copies), so concurrent readers of
// separate values are always safe; concurrent access to a single tree must
// be serialized by the caller.
package jsonvalue
