package jsonvalue

import (
	"errors"
	"strings"
	"testing"
)

// TestValueError tests the structured error carried by invalid values
func TestValueError(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("MessageFormat", func(t *testing.T) {
		err := FromString(`{"a":1}`).Key("missing").Err()
		helper.AssertTrue(strings.Contains(err.Error(), `"missing"`))
		helper.AssertTrue(strings.Contains(err.Error(), "key"))

		err = FromString(`[1]`).Index(5).Err()
		helper.AssertTrue(strings.Contains(err.Error(), "index"))
	})

	t.Run("UnwrapAndIs", func(t *testing.T) {
		err := FromString(`[1]`).Index(5).Err()
		helper.AssertErrorIs(err, ErrIndexOutOfRange)

		var ve *ValueError
		helper.AssertTrue(errors.As(err, &ve))
		helper.AssertEqual(ErrIndexOutOfRange, errors.Unwrap(err))
	})

	t.Run("SentinelPerOperation", func(t *testing.T) {
		cases := []struct {
			name     string
			value    *Value
			sentinel error
		}{
			{"IndexOutOfRange", FromString(`[1,2,3]`).Index(999), ErrIndexOutOfRange},
			{"KeyNotFound", FromString(`{"a":1}`).Key("b"), ErrKeyNotFound},
			{"NotAnArray", FromString(`12345`).Index(0), ErrNotArray},
			{"NotAnObject", FromString(`12345`).Key("name"), ErrNotObject},
			{"UnsupportedType", FromObject(make(chan int)), ErrUnsupportedType},
			{"ParseFailure", FromString(`{`), ErrInvalidJSON},
			{"InvalidPath", FromString(`{}`).Get("a[b]"), ErrInvalidPath},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				helper.AssertInvalid(tc.value, tc.sentinel)
			})
		}
	})
}
