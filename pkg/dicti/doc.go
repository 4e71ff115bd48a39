// Package dicti provides case-insensitive string-keyed mappings: lookups,
// membership tests and deletions compare keys after a pluggable
// normalization transform (Unicode case folding by default), while
// iteration and serialization keep the original casing of each key as it
// was first inserted.
//
// Two canonical types are provided: Dicti (hash-backed, unordered) and
// Odicti (insertion-order-preserving). Build derives further types from a
// base kind and a registered normalizer; identical arguments always return
// the identical *Type, so pointer comparison is type identity and
// serialized dicts can be reconstructed with their exact type.
//
//	d := dicti.New()
//	d.Set("Hello", 1)
//	d.Get("HELLO") // 1, true
//	d.Keys()       // ["Hello"]
//
// Equality caveat: two Ordered dicts compare order-sensitively, every
// other pairing compares as a set. Across three dicts of differing kinds
// equality is therefore not transitive (A==B and B==C with A!=C is
// possible). This is inherited from the base kinds' own contracts and is
// not a bug; see (*Dict).Equal.
//
// Instances are not safe for concurrent use without external locking.
package dicti
