package dicti

import (
	"fmt"
	"iter"
	"strings"
)

// Pair is one key-value item.
type Pair struct {
	Key   string
	Value any
}

// Dict is one case-insensitive mapping instance. Lookups, membership tests
// and deletions normalize the supplied key first; iteration and
// serialization yield keys in the casing of their first insertion.
//
// Dict is not safe for concurrent use without external synchronization.
// Create instances via New, NewOrdered, Type.New, or Wrap.
type Dict struct {
	typ   *Type
	store store
}

// Type returns the concrete mapping type descriptor of this instance.
func (d *Dict) Type() *Type { return d.typ }

// Get returns the value stored under key, looked up case insensitively.
func (d *Dict) Get(key string) (any, bool) {
	e, ok := d.store.get(d.typ.normalize(key))
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Value returns the value for key, or nil when absent.
func (d *Dict) Value(key string) any {
	v, _ := d.Get(key)
	return v
}

// Set stores value under key. The first insertion fixes the stored casing
// and, for ordered kinds, the position; assigning to an existing key under
// any casing updates the value only. Delete and re-insert to change either.
func (d *Dict) Set(key string, value any) {
	nk := d.typ.normalize(key)
	if old, ok := d.store.get(nk); ok {
		key = old.key
	}
	d.store.set(nk, entry{key: key, value: value})
}

// Has reports whether key is present under the type's normalization.
func (d *Dict) Has(key string) bool {
	_, ok := d.store.get(d.typ.normalize(key))
	return ok
}

// Delete removes the entry for key. Returns ErrKeyNotFound when absent.
func (d *Dict) Delete(key string) error {
	if !d.store.remove(d.typ.normalize(key)) {
		return fmt.Errorf("delete %q: %w", key, ErrKeyNotFound)
	}
	return nil
}

// Pop removes key and returns its value, or ErrKeyNotFound when absent.
func (d *Dict) Pop(key string) (any, error) {
	nk := d.typ.normalize(key)
	e, ok := d.store.get(nk)
	if !ok {
		return nil, fmt.Errorf("pop %q: %w", key, ErrKeyNotFound)
	}
	d.store.remove(nk)
	return e.value, nil
}

// PopDefault is Pop, returning def instead of an error when key is absent.
func (d *Dict) PopDefault(key string, def any) any {
	v, err := d.Pop(key)
	if err != nil {
		return def
	}
	return v
}

// SetDefault returns the value for key, inserting def first when absent.
func (d *Dict) SetDefault(key string, def any) any {
	if v, ok := d.Get(key); ok {
		return v
	}
	d.Set(key, def)
	return def
}

// Len returns the number of entries.
func (d *Dict) Len() int { return d.store.length() }

// Clear removes all entries.
func (d *Dict) Clear() { d.store.reset() }

// All iterates over (original-case key, value) pairs in the kind's order.
func (d *Dict) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		d.store.each(func(_ string, e entry) bool {
			return yield(e.key, e.value)
		})
	}
}

// Keys returns the original-case keys in the kind's iteration order.
func (d *Dict) Keys() []string {
	ks := make([]string, 0, d.Len())
	d.store.each(func(_ string, e entry) bool {
		ks = append(ks, e.key)
		return true
	})
	return ks
}

// Values returns the values in the kind's iteration order.
func (d *Dict) Values() []any {
	vs := make([]any, 0, d.Len())
	d.store.each(func(_ string, e entry) bool {
		vs = append(vs, e.value)
		return true
	})
	return vs
}

// Items returns (original-case key, value) pairs in the kind's order.
func (d *Dict) Items() []Pair {
	ps := make([]Pair, 0, d.Len())
	d.store.each(func(_ string, e entry) bool {
		ps = append(ps, Pair{Key: e.key, Value: e.value})
		return true
	})
	return ps
}

// NormalizedItems returns pairs with keys in their normalized form.
func (d *Dict) NormalizedItems() []Pair {
	ps := make([]Pair, 0, d.Len())
	d.store.each(func(nk string, e entry) bool {
		ps = append(ps, Pair{Key: nk, Value: e.value})
		return true
	})
	return ps
}

// NormalizedMap returns a plain map keyed by normalized keys.
func (d *Dict) NormalizedMap() map[string]any {
	m := make(map[string]any, d.Len())
	d.store.each(func(nk string, e entry) bool {
		m[nk] = e.value
		return true
	})
	return m
}

// Update applies every entry of src as a sequential Set call, in the
// source's iteration order: later duplicates differing only by case
// overwrite the value while the earliest casing and position win. Accepted
// sources are *Dict, map[string]any and []Pair. There is no rollback; a
// partial update leaves the already applied entries in place.
func (d *Dict) Update(src any) error {
	switch m := src.(type) {
	case *Dict:
		m.store.each(func(_ string, e entry) bool {
			d.Set(e.key, e.value)
			return true
		})
	case map[string]any:
		for k, v := range m {
			d.Set(k, v)
		}
	case []Pair:
		for _, p := range m {
			d.Set(p.Key, p.Value)
		}
	default:
		return fmt.Errorf("update from %T: %w", src, ErrNotAMapping)
	}
	return nil
}

// Copy returns a shallow copy with the same concrete type. Container
// values are shared with the original.
func (d *Dict) Copy() *Dict {
	return &Dict{typ: d.typ, store: d.store.clone()}
}

// DeepCopy copies the dict and recursively copies contained *Dict,
// map[string]any and []any values. Other values are copied by assignment.
func (d *Dict) DeepCopy() *Dict {
	c := d.typ.New()
	d.store.each(func(_ string, e entry) bool {
		c.Set(e.key, deepCopyValue(e.value))
		return true
	})
	return c
}

func deepCopyValue(v any) any {
	switch x := v.(type) {
	case *Dict:
		return x.DeepCopy()
	case map[string]any:
		m := make(map[string]any, len(x))
		for k, val := range x {
			m[k] = deepCopyValue(val)
		}
		return m
	case []any:
		s := make([]any, len(x))
		for i, val := range x {
			s[i] = deepCopyValue(val)
		}
		return s
	default:
		return v
	}
}

// String renders like the underlying kind, prefixed with the type name:
// dicti{"Key": value}. Unordered kinds render in unspecified order.
func (d *Dict) String() string {
	var b strings.Builder
	b.WriteString(d.typ.name)
	b.WriteByte('{')
	first := true
	d.store.each(func(_ string, e entry) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%q: %v", e.key, e.value)
		return true
	})
	b.WriteByte('}')
	return b.String()
}
