package dicti

import (
	"fmt"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind selects the backing storage policy of a mapping type.
type Kind int

const (
	// Unordered is hash-backed; iteration order is unspecified.
	Unordered Kind = iota
	// Ordered preserves insertion order, also across re-assignment.
	Ordered
)

func (k Kind) String() string {
	switch k {
	case Unordered:
		return "unordered"
	case Ordered:
		return "ordered"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Type is the memoized descriptor of a concrete case-insensitive mapping
// type: a base kind paired with a normalization strategy. Obtain one via
// Build; identical arguments always yield the identical *Type, so pointer
// comparison is type identity.
type Type struct {
	kind      Kind
	name      string
	normName  string
	normalize Normalizer
}

// Kind returns the backing storage policy.
func (t *Type) Kind() Kind { return t.kind }

// Name returns the registry name used for display and serialization.
func (t *Type) Name() string { return t.name }

// NormalizerName returns the name of the type's normalization strategy.
func (t *Type) NormalizerName() string { return t.normName }

// Normalize applies the type's normalization strategy to a key.
func (t *Type) Normalize(key string) string { return t.normalize(key) }

// New creates an empty instance of this type, optionally seeded with pairs.
// Seeding behaves like sequential Set calls in argument order.
func (t *Type) New(pairs ...Pair) *Dict {
	d := &Dict{typ: t, store: t.newStore()}
	for _, p := range pairs {
		d.Set(p.Key, p.Value)
	}
	return d
}

func (t *Type) newStore() store {
	if t.kind == Ordered {
		return newOrderedStore()
	}
	return newHashStore()
}

type typeKey struct {
	kind Kind
	norm string
}

var (
	typeMu      sync.Mutex
	builtTypes  = map[typeKey]*Type{}
	typesByName = map[string]*Type{}
)

// Option configures Build.
type Option func(*typeConfig)

type typeConfig struct {
	name string
	norm string
}

// WithName overrides the generated type's display and registry name.
// Ignored when the (kind, normalizer) pair has already been built.
func WithName(name string) Option {
	return func(c *typeConfig) { c.name = name }
}

// WithNormalizer selects a registered normalizer by name.
func WithNormalizer(name string) Option {
	return func(c *typeConfig) { c.norm = name }
}

// Build returns the case-insensitive mapping type for the given base kind
// and normalizer. The result is memoized process-wide: repeated calls with
// the same kind and normalizer return the same *Type.
func Build(kind Kind, opts ...Option) (*Type, error) {
	if kind != Unordered && kind != Ordered {
		return nil, fmt.Errorf("build %v: %w", kind, ErrUnknownKind)
	}

	cfg := typeConfig{norm: DefaultNormalizer}
	for _, opt := range opts {
		opt(&cfg)
	}
	fn, ok := lookupNormalizer(cfg.norm)
	if !ok {
		return nil, fmt.Errorf("build %v: %w: %q", kind, ErrUnknownNormalizer, cfg.norm)
	}

	typeMu.Lock()
	defer typeMu.Unlock()

	key := typeKey{kind: kind, norm: cfg.norm}
	if t, ok := builtTypes[key]; ok {
		return t, nil
	}

	name := cfg.name
	if name == "" {
		name = defaultTypeName(kind, cfg.norm)
	}
	if _, taken := typesByName[name]; taken {
		return nil, fmt.Errorf("build %v: %w: %q", kind, ErrTypeNameTaken, name)
	}

	t := &Type{kind: kind, name: name, normName: cfg.norm, normalize: fn}
	builtTypes[key] = t
	typesByName[name] = t
	return t, nil
}

func defaultTypeName(kind Kind, norm string) string {
	base := "dicti"
	if kind == Ordered {
		base = "odicti"
	}
	if norm != DefaultNormalizer {
		return base + "_" + norm
	}
	return base
}

// MustBuild is Build, panicking on configuration errors.
func MustBuild(kind Kind, opts ...Option) *Type {
	t, err := Build(kind, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// LookupType resolves a previously built type by its registry name. Gob
// decoding uses this to reconstruct the identical type.
func LookupType(name string) (*Type, bool) {
	typeMu.Lock()
	defer typeMu.Unlock()
	t, ok := typesByName[name]
	return t, ok
}

// Canonical types, both using the default case-fold normalizer.
var (
	// Dicti is the unordered case-insensitive mapping type.
	Dicti = MustBuild(Unordered)
	// Odicti is the insertion-order-preserving case-insensitive mapping type.
	Odicti = MustBuild(Ordered)
)

// New creates an unordered case-insensitive dict, optionally seeded.
func New(pairs ...Pair) *Dict { return Dicti.New(pairs...) }

// NewOrdered creates an order-preserving case-insensitive dict.
func NewOrdered(pairs ...Pair) *Dict { return Odicti.New(pairs...) }

// Wrap converts a mapping-like value into its case-insensitive counterpart,
// choosing the base kind that matches the input's own semantics: inputs
// that carry an order become Ordered, plain maps become Unordered. Entries
// are copied in the input's iteration order.
func Wrap(v any) (*Dict, error) {
	switch m := v.(type) {
	case *Dict:
		return m.Copy(), nil
	case *orderedmap.OrderedMap[string, any]:
		d := Odicti.New()
		for p := m.Oldest(); p != nil; p = p.Next() {
			d.Set(p.Key, p.Value)
		}
		return d, nil
	case []Pair:
		return Odicti.New(m...), nil
	case map[string]any:
		d := Dicti.New()
		for k, val := range m {
			d.Set(k, val)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("wrap %T: %w", v, ErrNotAMapping)
	}
}
