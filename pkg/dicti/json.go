package dicti

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON emits an object with original-case keys in the kind's
// iteration order.
func (d *Dict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	var err error
	d.store.each(func(_ string, e entry) bool {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		var kb, vb []byte
		if kb, err = json.Marshal(e.key); err != nil {
			return false
		}
		buf.Write(kb)
		buf.WriteByte(':')
		if vb, err = json.Marshal(e.value); err != nil {
			err = fmt.Errorf("marshal %s value %q: %w", d.typ.name, e.key, err)
			return false
		}
		buf.Write(vb)
		return true
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the dict's contents with the decoded object.
// Nested objects become dicts of the receiver's own type, so decoding
// into an ordered dict keeps document order at every level. A zero-value
// receiver decodes as the canonical unordered type.
func (d *Dict) UnmarshalJSON(data []byte) error {
	if d.typ == nil {
		d.typ = Dicti
	}
	if d.store == nil {
		d.store = d.typ.newStore()
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("unmarshal %s: %w", d.typ.name, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("unmarshal %s: expected object, got %v", d.typ.name, tok)
	}
	d.Clear()
	return d.decodeJSONObject(dec)
}

func (d *Dict) decodeJSONObject(dec *json.Decoder) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unmarshal %s: expected key, got %v", d.typ.name, tok)
		}
		v, err := d.decodeJSONValue(dec)
		if err != nil {
			return err
		}
		d.Set(key, v)
	}
	// Consume the closing brace.
	_, err := dec.Token()
	return err
}

func (d *Dict) decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		// string, float64, bool or nil
		return tok, nil
	}
	switch delim {
	case '{':
		child := d.typ.New()
		if err := child.decodeJSONObject(dec); err != nil {
			return nil, err
		}
		return child, nil
	case '[':
		arr := []any{}
		for dec.More() {
			v, err := d.decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unmarshal %s: unexpected %v", d.typ.name, delim)
	}
}
