package jsonvalue

import (
	"reflect"
	"testing"
)

// TestRawRoundTrip tests that representable graphs survive construct/unwrap
func TestRawRoundTrip(t *testing.T) {
	helper := NewTestHelper(t)

	graphs := []any{
		nil,
		true,
		42,
		int64(1 << 60),
		3.14,
		"text",
		[]any{1, "two", nil, []any{true}},
		map[string]any{
			"name": "Jack",
			"age":  25,
			"tags": []any{"a", "b"},
			"meta": map[string]any{"active": true, "score": 9.5},
		},
	}

	for _, g := range graphs {
		got := FromObject(g).Raw()
		if !reflect.DeepEqual(g, got) {
			t.Errorf("round trip mismatch\ninput: %#v\noutput: %#v", g, got)
		}
	}

	helper.AssertEqual(nil, NewNull().Raw())
}

// TestRawDropsErrorDetail tests the documented lossy path for invalid values
func TestRawDropsErrorDetail(t *testing.T) {
	helper := NewTestHelper(t)

	v := FromObject(map[string]any{"name": "Jack"})
	invalid := v.Key("address")

	// The invalid value unwraps to the raw form of the value the failed
	// operation was applied to.
	raw, ok := invalid.Raw().(map[string]any)
	helper.AssertTrue(ok)
	helper.AssertEqual("Jack", raw["name"])
}

// TestFromRaw tests top-level validation with nested degradation
func TestFromRaw(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("RepresentableTopLevel", func(t *testing.T) {
		v, ok := FromRaw(map[string]any{"a": 1})
		helper.AssertTrue(ok)
		helper.AssertEqual(int64(1), v.Key("a").IntValue())
	})

	t.Run("UnrepresentableTopLevel", func(t *testing.T) {
		_, ok := FromRaw(make(chan int))
		helper.AssertFalse(ok)
		_, ok = FromRaw(struct{ X int }{1})
		helper.AssertFalse(ok)
	})

	t.Run("NestedUnsupportedDegrades", func(t *testing.T) {
		v, ok := FromRaw([]any{1, make(chan int), 3})
		helper.AssertTrue(ok, "nested unsupported shapes must not fail the conversion")
		helper.AssertInvalid(v.Index(1), ErrUnsupportedType)
		helper.AssertEqual(int64(3), v.Index(2).IntValue())
	})
}
