package jsonvalue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
)

// FromBytes decodes raw bytes into a Value. Decoding runs in token mode with
// number preservation, so object key order survives into the value model and
// integer literals keep full precision as json.Number.
//
// Like every constructor, FromBytes is total: a byte-level decode failure
// produces a top-level invalid value carrying ErrInvalidJSON rather than an
// error return.
func FromBytes(data []byte) *Value {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return newInvalid(NewNull(), newParseError("decode", err))
	}
	if _, err := dec.Token(); err != io.EOF {
		return newInvalid(NewNull(), newParseError("decode", fmt.Errorf("unexpected data after top-level value")))
	}
	return v
}

// FromString decodes a JSON string into a Value
func FromString(s string) *Value {
	return FromBytes([]byte(s))
}

func decodeValue(dec *gojson.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *gojson.Decoder, tok gojson.Token) (*Value, error) {
	switch t := tok.(type) {
	case gojson.Delim:
		switch t {
		case '{':
			obj := newObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string: %v", keyTok)
				}
				child, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj.set(key, child)
			}
			// closing '}'
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return &Value{kind: KindObject, data: obj}, nil
		case '[':
			var arr []*Value
			for dec.More() {
				child, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, child)
			}
			// closing ']'
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			if arr == nil {
				arr = []*Value{}
			}
			return &Value{kind: KindArray, data: arr}, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case bool:
		return NewBool(t), nil
	case string:
		return NewString(t), nil
	case gojson.Number:
		return &Value{kind: KindNumber, data: json.Number(t)}, nil
	case float64:
		// Decoders without number preservation hand numbers over as float64.
		return NewFloat64(t), nil
	case nil:
		return NewNull(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v (%T)", tok, tok)
	}
}

// MarshalJSON encodes the value as JSON, emitting object keys in insertion
// order. Invalid values encode as their wrapped original; the carried error
// is not representable and is dropped, matching Raw.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encodeInto(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes into the receiver, replacing its active variant.
// This lets a *Value sit inside ordinary structs passed to json.Unmarshal.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed := FromBytes(data)
	if err := parsed.Err(); err != nil {
		return err
	}
	*v = *parsed
	return nil
}

// Encode returns the JSON encoding of the value
func (v *Value) Encode() ([]byte, error) {
	return v.MarshalJSON()
}

// JSONString returns the JSON encoding as a string, or "" when encoding
// fails (a malformed NewNumber literal is the only failing input)
func (v *Value) JSONString() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(b)
}

func (v *Value) encodeInto(buf *bytes.Buffer) error {
	if v == nil {
		buf.WriteString("null")
		return nil
	}
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool, KindNumber, KindString:
		b, err := gojson.Marshal(v.data)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.data.([]*Value) {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encodeInto(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		obj := v.data.(*object)
		buf.WriteByte('{')
		for i, k := range obj.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := gojson.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			if err := obj.values[k].encodeInto(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case KindInvalid:
		return v.orig.encodeInto(buf)
	}
	return nil
}
