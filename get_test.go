package jsonvalue

import (
	"errors"
	"testing"
)

// TestIndexAccess tests the array navigation contract
func TestIndexAccess(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("InRange", func(t *testing.T) {
		v := FromObject([]any{1, 2, 3})
		helper.AssertEqual(int64(2), v.Index(1).IntValue())
	})

	t.Run("OutOfRange", func(t *testing.T) {
		v := FromObject([]any{1, 2, 3})
		result := v.Index(999)
		helper.AssertInvalid(result, ErrIndexOutOfRange)

		var ve *ValueError
		helper.AssertTrue(errors.As(result.Err(), &ve))
		helper.AssertEqual(999, ve.Index)
		helper.AssertEqual(3, ve.Length)

		helper.AssertInvalid(v.Index(-1), ErrIndexOutOfRange)
	})

	t.Run("NotAnArray", func(t *testing.T) {
		helper.AssertInvalid(FromObject(12345).Index(0), ErrNotArray)
		helper.AssertInvalid(NewNull().Index(0), ErrNotArray)
		helper.AssertInvalid(FromObject(map[string]any{}).Index(0), ErrNotArray)
	})
}

// TestKeyAccess tests the object navigation contract
func TestKeyAccess(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("PresentKey", func(t *testing.T) {
		v := FromObject(map[string]any{"name": "Jack", "age": 25})
		helper.AssertEqual("Jack", v.Key("name").StringValue())
	})

	t.Run("AbsentKey", func(t *testing.T) {
		v := FromObject(map[string]any{"name": "Jack", "age": 25})
		result := v.Key("address")
		helper.AssertInvalid(result, ErrKeyNotFound)

		var ve *ValueError
		helper.AssertTrue(errors.As(result.Err(), &ve))
		helper.AssertEqual("address", ve.Key)

		// The optional getter is absent and the defaulting getter absorbs the
		// failure into the zero default.
		_, ok := result.String()
		helper.AssertFalse(ok)
		helper.AssertEqual("", result.StringValue())
	})

	t.Run("NotAnObject", func(t *testing.T) {
		helper.AssertInvalid(FromObject(12345).Key("name"), ErrNotObject)
		helper.AssertInvalid(FromObject([]any{1}).Key("name"), ErrNotObject)
	})
}

// TestErrorPropagation tests that chains stay total through invalid values
func TestErrorPropagation(t *testing.T) {
	helper := NewTestHelper(t)

	v := FromObject(map[string]any{"user": map[string]any{"name": "Jack"}})

	t.Run("ChainsNeverPanic", func(t *testing.T) {
		deep := v.Key("missing").Index(3).Key("x").Index(-7).Key("y")
		helper.AssertKind(KindInvalid, deep)
	})

	t.Run("ErrorReflectsNewOperation", func(t *testing.T) {
		invalid := v.Key("missing")
		helper.AssertErrorIs(invalid.Err(), ErrKeyNotFound)

		// Navigating further reports the operation attempted on the invalid
		// value, not the stale key error.
		helper.AssertErrorIs(invalid.Index(0).Err(), ErrNotArray)
		helper.AssertErrorIs(invalid.Key("x").Err(), ErrNotObject)
	})
}

// TestPathAccess tests dot/bracket path navigation
func TestPathAccess(t *testing.T) {
	helper := NewTestHelper(t)

	v := FromString(`{
		"users": [
			{"name": "Alice", "tags": ["admin", "ops"]},
			{"name": "Bob", "tags": []}
		],
		"count": 2
	}`)

	t.Run("Basic", func(t *testing.T) {
		helper.AssertEqual("Alice", v.Get("users[0].name").StringValue())
		helper.AssertEqual("ops", v.Get("users[0].tags[1]").StringValue())
		helper.AssertEqual(int64(2), v.Get("count").IntValue())
	})

	t.Run("SelfPath", func(t *testing.T) {
		helper.AssertKind(KindObject, v.Get(""))
		helper.AssertKind(KindObject, v.Get("."))
	})

	t.Run("RootArray", func(t *testing.T) {
		arr := FromString(`[[1,2],[3,4]]`)
		helper.AssertEqual(int64(4), arr.Get("[1][1]").IntValue())
	})

	t.Run("MissingPath", func(t *testing.T) {
		helper.AssertInvalid(v.Get("users[5].name"), ErrIndexOutOfRange)
		helper.AssertInvalid(v.Get("users[0].email"), ErrKeyNotFound)
		helper.AssertInvalid(v.Get("count.value"), ErrNotObject)
	})

	t.Run("MalformedPath", func(t *testing.T) {
		helper.AssertInvalid(v.Get("users[x]"), ErrInvalidPath)
		helper.AssertInvalid(v.Get("users[0"), ErrInvalidPath)
		helper.AssertInvalid(v.Get("users..name"), ErrInvalidPath)
		helper.AssertInvalid(v.Get("users."), ErrInvalidPath)
		helper.AssertInvalid(v.Get(".users"), ErrInvalidPath)
	})

	t.Run("Exists", func(t *testing.T) {
		helper.AssertTrue(v.Exists("users[1].name"))
		helper.AssertFalse(v.Exists("users[9]"))
		helper.AssertFalse(v.Exists("nope"))
	})
}

// TestLenAndKeys tests the read-path companions
func TestLenAndKeys(t *testing.T) {
	helper := NewTestHelper(t)

	v := FromString(`{"z":1,"a":2,"m":3}`)
	helper.AssertEqual(3, v.Len())
	helper.AssertEqual([]string{"z", "a", "m"}, v.Keys())

	helper.AssertEqual(2, FromString(`[1,2]`).Len())
	helper.AssertEqual(0, NewString("x").Len())
	helper.AssertTrue(NewInt(1).Keys() == nil)
}
