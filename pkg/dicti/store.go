package dicti

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// entry couples the original-case key with its value. Stores are keyed by
// the normalized key; the normalized form never leaves the package.
type entry struct {
	key   string
	value any
}

// store is the minimal capability set a base mapping kind must provide.
type store interface {
	get(nk string) (entry, bool)
	set(nk string, e entry)
	remove(nk string) bool
	length() int
	// each visits entries in the kind's iteration order. Returning false
	// from fn stops the walk.
	each(fn func(nk string, e entry) bool)
	reset()
	clone() store
}

// hashStore is the unordered base kind. Iteration order is unspecified.
type hashStore map[string]entry

func newHashStore() store { return hashStore{} }

func (s hashStore) get(nk string) (entry, bool) {
	e, ok := s[nk]
	return e, ok
}

func (s hashStore) set(nk string, e entry) { s[nk] = e }

func (s hashStore) remove(nk string) bool {
	_, ok := s[nk]
	delete(s, nk)
	return ok
}

func (s hashStore) length() int { return len(s) }

func (s hashStore) each(fn func(nk string, e entry) bool) {
	for nk, e := range s {
		if !fn(nk, e) {
			return
		}
	}
}

func (s hashStore) reset() { clear(s) }

func (s hashStore) clone() store {
	c := make(hashStore, len(s))
	for nk, e := range s {
		c[nk] = e
	}
	return c
}

// orderedStore preserves insertion order. Re-assigning an existing key
// keeps its position; the entry moves to the end only after an explicit
// delete and re-insert.
type orderedStore struct {
	om *orderedmap.OrderedMap[string, entry]
}

func newOrderedStore() store {
	return &orderedStore{om: orderedmap.New[string, entry]()}
}

func (s *orderedStore) get(nk string) (entry, bool) {
	return s.om.Get(nk)
}

func (s *orderedStore) set(nk string, e entry) {
	s.om.Set(nk, e)
}

func (s *orderedStore) remove(nk string) bool {
	_, ok := s.om.Delete(nk)
	return ok
}

func (s *orderedStore) length() int { return s.om.Len() }

func (s *orderedStore) each(fn func(nk string, e entry) bool) {
	for p := s.om.Oldest(); p != nil; p = p.Next() {
		if !fn(p.Key, p.Value) {
			return
		}
	}
}

func (s *orderedStore) reset() {
	s.om = orderedmap.New[string, entry]()
}

func (s *orderedStore) clone() store {
	c := orderedmap.New[string, entry]()
	for p := s.om.Oldest(); p != nil; p = p.Next() {
		c.Set(p.Key, p.Value)
	}
	return &orderedStore{om: c}
}
