package dicti

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML emits a mapping node with original-case keys in the kind's
// iteration order.
func (d *Dict) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	var err error
	d.store.each(func(_ string, e entry) bool {
		kn := &yaml.Node{}
		kn.SetString(e.key)
		vn := &yaml.Node{}
		if err = vn.Encode(e.value); err != nil {
			err = fmt.Errorf("marshal %s value %q: %w", d.typ.name, e.key, err)
			return false
		}
		node.Content = append(node.Content, kn, vn)
		return true
	})
	if err != nil {
		return nil, err
	}
	return node, nil
}

// UnmarshalYAML replaces the dict's contents with the decoded mapping.
// Nested mappings become dicts of the receiver's own type, preserving
// document key order for ordered kinds. A zero-value receiver decodes as
// the canonical unordered type.
func (d *Dict) UnmarshalYAML(value *yaml.Node) error {
	if d.typ == nil {
		d.typ = Dicti
	}
	if d.store == nil {
		d.store = d.typ.newStore()
	}
	if value.Kind == yaml.AliasNode {
		value = value.Alias
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("unmarshal %s: expected mapping, got %q", d.typ.name, value.Tag)
	}
	d.Clear()
	for i := 0; i+1 < len(value.Content); i += 2 {
		var key string
		if err := value.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("unmarshal %s key: %w", d.typ.name, err)
		}
		v, err := d.decodeYAMLValue(value.Content[i+1])
		if err != nil {
			return err
		}
		d.Set(key, v)
	}
	return nil
}

func (d *Dict) decodeYAMLValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return d.decodeYAMLValue(n.Alias)
	case yaml.MappingNode:
		child := d.typ.New()
		if err := child.UnmarshalYAML(n); err != nil {
			return nil, err
		}
		return child, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := d.decodeYAMLValue(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("unmarshal %s value: %w", d.typ.name, err)
		}
		return v, nil
	}
}
