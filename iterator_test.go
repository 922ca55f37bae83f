package jsonvalue

import (
	"testing"
)

// TestForeach tests ordered iteration over arrays and objects
func TestForeach(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("ArrayOrder", func(t *testing.T) {
		var keys []any
		var items []int64
		FromString(`[10,20,30]`).Foreach(func(key any, item *Value) {
			keys = append(keys, key)
			items = append(items, item.IntValue())
		})
		helper.AssertEqual([]any{0, 1, 2}, keys)
		helper.AssertEqual([]int64{10, 20, 30}, items)
	})

	t.Run("ObjectInsertionOrder", func(t *testing.T) {
		var keys []any
		FromString(`{"z":1,"a":2,"m":3}`).Foreach(func(key any, item *Value) {
			keys = append(keys, key)
		})
		helper.AssertEqual([]any{"z", "a", "m"}, keys)
	})

	t.Run("ScalarsProduceNoCalls", func(t *testing.T) {
		calls := 0
		count := func(key any, item *Value) { calls++ }
		NewInt(1).Foreach(count)
		NewString("x").Foreach(count)
		NewNull().Foreach(count)
		NewNull().Key("missing").Foreach(count)
		helper.AssertEqual(0, calls)
	})

	t.Run("ItemsAreIndependentCopies", func(t *testing.T) {
		v := FromString(`[{"a":1}]`)
		v.Foreach(func(key any, item *Value) {
			item.SetKey("a", NewInt(99))
		})
		helper.AssertEqual(int64(1), v.Get("[0].a").IntValue())
	})
}

// TestNullAndEmptyChecks tests the IsNull and IsEmpty companions
func TestNullAndEmptyChecks(t *testing.T) {
	helper := NewTestHelper(t)

	helper.AssertTrue(NewNull().IsNull())
	helper.AssertFalse(NewBool(false).IsNull())
	helper.AssertFalse(FromString(`{}`).IsNull())

	helper.AssertTrue(NewNull().IsEmpty())
	helper.AssertTrue(NewString("").IsEmpty())
	helper.AssertTrue(FromString(`[]`).IsEmpty())
	helper.AssertTrue(FromString(`{}`).IsEmpty())
	helper.AssertTrue(NewNull().Key("missing").IsEmpty())

	helper.AssertFalse(NewString("x").IsEmpty())
	helper.AssertFalse(NewInt(0).IsEmpty())
	helper.AssertFalse(NewBool(false).IsEmpty())
	helper.AssertFalse(FromString(`[0]`).IsEmpty())
}
