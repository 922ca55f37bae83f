package jsonvalue

import (
	"strconv"
	"strings"
)

// Index returns the element at position i of an array value.
//
// Out-of-range indices yield an invalid value carrying ErrIndexOutOfRange;
// indexing any non-array kind (including an already-invalid value) yields an
// invalid value carrying ErrNotArray. Index never panics and has no side
// effects.
func (v *Value) Index(i int) *Value {
	if v == nil {
		v = NewNull()
	}
	if v.kind != KindArray {
		return newInvalid(v, newNotArrayError(v.kind))
	}
	arr := v.data.([]*Value)
	if i < 0 || i >= len(arr) {
		return newInvalid(v, newIndexError(i, len(arr)))
	}
	return arr[i].clone()
}

// Key returns the value associated with key k of an object value.
//
// A missing key yields an invalid value carrying ErrKeyNotFound; key lookup
// on any non-object kind (including an already-invalid value) yields an
// invalid value carrying ErrNotObject. Key never panics and has no side
// effects.
func (v *Value) Key(k string) *Value {
	if v == nil {
		v = NewNull()
	}
	if v.kind != KindObject {
		return newInvalid(v, newNotObjectError(v.kind))
	}
	child, ok := v.data.(*object).get(k)
	if !ok {
		return newInvalid(v, newKeyError(k))
	}
	return child.clone()
}

// Get navigates a dot/bracket path such as "users[0].address.city", built
// purely on Index and Key. The empty path and "." return a copy of the value
// itself; a malformed path yields an invalid value carrying ErrInvalidPath.
func (v *Value) Get(path string) *Value {
	if path == "" || path == "." {
		return v.clone()
	}
	segments, err := splitPath(path)
	if err != nil {
		return newInvalid(v, err)
	}
	current := v
	for _, seg := range segments {
		if seg.isIndex {
			current = current.Index(seg.index)
		} else {
			current = current.Key(seg.key)
		}
	}
	return current
}

// Exists reports whether the path resolves to a value, null included
func (v *Value) Exists(path string) bool {
	return v.Get(path).IsValid()
}

// Len returns the element count of an array or the pair count of an object,
// and 0 for every other kind
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindArray:
		return len(v.data.([]*Value))
	case KindObject:
		return v.data.(*object).len()
	default:
		return 0
	}
}

// Keys returns an object's keys in insertion order, or nil for other kinds
func (v *Value) Keys() []string {
	if v == nil || v.kind != KindObject {
		return nil
	}
	obj := v.data.(*object)
	keys := make([]string, len(obj.keys))
	copy(keys, obj.keys)
	return keys
}

// pathSegment is one step of a navigation path: either an object key or an
// array index.
type pathSegment struct {
	key     string
	index   int
	isIndex bool
}

// splitPath splits "a.b[2].c" into key and index segments. Bracket segments
// must hold a non-negative decimal index; keys may not be empty.
func splitPath(path string) ([]pathSegment, error) {
	segments := make([]pathSegment, 0, strings.Count(path, ".")+strings.Count(path, "[")+1)
	rest := path
	expectKey := true
	for rest != "" {
		switch rest[0] {
		case '.':
			if expectKey {
				return nil, newPathError(path, "empty key segment")
			}
			rest = rest[1:]
			expectKey = true
		case '[':
			if expectKey && len(segments) > 0 {
				return nil, newPathError(path, "index segment directly after a separator")
			}
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, newPathError(path, "unterminated index segment")
			}
			idx, err := strconv.Atoi(rest[1:end])
			if err != nil || idx < 0 {
				return nil, newPathError(path, "index segment is not a non-negative integer")
			}
			segments = append(segments, pathSegment{index: idx, isIndex: true})
			rest = rest[end+1:]
			expectKey = false
		default:
			if !expectKey {
				return nil, newPathError(path, "missing separator between segments")
			}
			end := strings.IndexAny(rest, ".[")
			if end < 0 {
				end = len(rest)
			}
			segments = append(segments, pathSegment{key: rest[:end]})
			rest = rest[end:]
			expectKey = false
		}
	}
	if expectKey {
		return nil, newPathError(path, "trailing separator")
	}
	return segments, nil
}
