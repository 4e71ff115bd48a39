package dicti

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

func init() {
	// Concrete types that may travel inside any-valued entries.
	gob.Register(&Dict{})
	gob.Register([]any{})
	gob.Register(map[string]any{})
}

// gobPayload is the wire form of a dict: the type's registry name plus
// the items in iteration order.
type gobPayload struct {
	Type  string
	Items []Pair
}

// GobEncode serializes the dict together with its type name.
func (d *Dict) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	payload := gobPayload{Type: d.typ.name, Items: d.Items()}
	if err := gob.NewEncoder(&buf).Encode(payload); err != nil {
		return nil, fmt.Errorf("encode %s: %w", d.typ.name, err)
	}
	return buf.Bytes(), nil
}

// GobDecode reconstructs the dict, resolving its concrete type through the
// Build registry: decoding yields the identical *Type that produced the
// encoded instance, provided the same types (and any custom normalizers)
// have been built in this process.
func (d *Dict) GobDecode(data []byte) error {
	var payload gobPayload
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&payload); err != nil {
		return fmt.Errorf("decode dict: %w", err)
	}
	t, ok := LookupType(payload.Type)
	if !ok {
		return fmt.Errorf("decode dict: %w: %q", ErrUnknownType, payload.Type)
	}
	d.typ = t
	d.store = t.newStore()
	for _, p := range payload.Items {
		d.Set(p.Key, p.Value)
	}
	return nil
}
