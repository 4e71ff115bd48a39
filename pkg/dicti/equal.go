package dicti

import "reflect"

// Equal reports whether d and other hold equal values under equal
// normalized keys. Original casing never participates in equality.
//
// When both operands are Ordered the comparison is order-sensitive,
// inherited from the ordered base kind's own equality; every other pairing
// compares as a set. Equality across kinds is therefore not transitive:
// an ordered dict, its unordered copy and a reversed ordered copy can
// yield A==B and B==C but A!=C. This mirrors the base kinds' contracts
// and is deliberate.
//
// Operands with different normalizers are compared structurally: each
// side's keys are normalized by its own function, so such dicts are equal
// only when the two normalized views coincide.
func (d *Dict) Equal(other *Dict) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	if d.Len() != other.Len() {
		return false
	}
	if d.typ.kind == Ordered && other.typ.kind == Ordered {
		a, b := d.NormalizedItems(), other.NormalizedItems()
		for i := range a {
			if a[i].Key != b[i].Key || !equalValues(a[i].Value, b[i].Value) {
				return false
			}
		}
		return true
	}
	return equalMaps(d.NormalizedMap(), other.NormalizedMap())
}

// EqualMap compares against a plain map whose keys are normalized with d's
// own normalizer. Maps holding several keys with equal normalized form are
// undefined input, as for Update.
func (d *Dict) EqualMap(m map[string]any) bool {
	if d == nil || d.Len() != len(m) {
		return false
	}
	norm := make(map[string]any, len(m))
	for k, v := range m {
		norm[d.typ.normalize(k)] = v
	}
	return equalMaps(d.NormalizedMap(), norm)
}

func equalMaps(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok || !equalValues(va, vb) {
			return false
		}
	}
	return true
}

// equalValues compares entry values, dispatching to dict equality when
// either side is a *Dict so that nested dicts compare case insensitively.
func equalValues(a, b any) bool {
	da, aok := a.(*Dict)
	db, bok := b.(*Dict)
	switch {
	case aok && bok:
		return da.Equal(db)
	case aok:
		if mb, ok := b.(map[string]any); ok {
			return da.EqualMap(mb)
		}
		return false
	case bok:
		if ma, ok := a.(map[string]any); ok {
			return db.EqualMap(ma)
		}
		return false
	default:
		return reflect.DeepEqual(a, b)
	}
}
