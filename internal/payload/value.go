package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type jsonKind int

const (
	jsonNull jsonKind = iota
	jsonString
	jsonNumber
	jsonBool
	jsonObject
	jsonArray
)

// jsonValue represents an arbitrary JSON value without empty interfaces.
// User-edited payload blocks carry no type guarantees, so the decoder walks
// this representation and coerces field by field.
type jsonValue struct {
	Kind   jsonKind
	Str    string
	Number float64
	Bool   bool
	Object map[string]jsonValue
	Array  []jsonValue
}

// UnmarshalJSON decodes a JSON value into the typed representation.
func (v *jsonValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty json value")
	}
	switch trimmed[0] {
	case '{':
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		v.Kind = jsonObject
		v.Object = make(map[string]jsonValue, len(raw))
		for key, value := range raw {
			var child jsonValue
			if err := json.Unmarshal(value, &child); err != nil {
				return err
			}
			v.Object[key] = child
		}
		return nil
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		v.Kind = jsonArray
		v.Array = make([]jsonValue, 0, len(raw))
		for _, value := range raw {
			var child jsonValue
			if err := json.Unmarshal(value, &child); err != nil {
				return err
			}
			v.Array = append(v.Array, child)
		}
		return nil
	case '"':
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		v.Kind = jsonString
		v.Str = value
		return nil
	case 't', 'f':
		var value bool
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		v.Kind = jsonBool
		v.Bool = value
		return nil
	case 'n':
		if string(trimmed) != "null" {
			return fmt.Errorf("invalid json literal")
		}
		v.Kind = jsonNull
		return nil
	default:
		var value float64
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		v.Kind = jsonNumber
		v.Number = value
		return nil
	}
}

func (v jsonValue) objectValue() (map[string]jsonValue, bool) {
	if v.Kind != jsonObject {
		return nil, false
	}
	return v.Object, true
}

func (v jsonValue) arrayValue() ([]jsonValue, bool) {
	if v.Kind != jsonArray {
		return nil, false
	}
	return v.Array, true
}

func (v jsonValue) stringValue() (string, bool) {
	if v.Kind != jsonString {
		return "", false
	}
	return v.Str, true
}

func (v jsonValue) field(key string) jsonValue {
	if v.Kind != jsonObject {
		return jsonValue{}
	}
	return v.Object[key]
}
