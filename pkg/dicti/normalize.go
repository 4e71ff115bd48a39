package dicti

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer transforms a key into the form used for comparison and lookup.
// It must be deterministic and total; idempotence is recommended.
type Normalizer func(string) string

// DefaultNormalizer is the name of the normalizer used when none is given.
const DefaultNormalizer = "casefold"

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeCaseFold performs locale-independent Unicode case folding.
// Stronger than lowercasing: it also unifies keys whose folding expands
// to several characters (e.g. Groß -> gross).
func NormalizeCaseFold(s string) string {
	return cases.Fold().String(s)
}

// NormalizeLower lowercases but performs no further folding.
func NormalizeLower(s string) string {
	return strings.ToLower(s)
}

// NormalizeLowerASCII lowercases and strips accents (e.g. Élodie -> elodie).
func NormalizeLowerASCII(s string) string {
	result, _, _ := transform.String(stripAccents, strings.ToLower(s))
	return result
}

// NormalizeNone returns the key unchanged, making lookups case sensitive.
func NormalizeNone(s string) string {
	return s
}

var (
	normMu      sync.RWMutex
	normalizers = map[string]Normalizer{
		"casefold":    NormalizeCaseFold,
		"lower":       NormalizeLower,
		"lower_ascii": NormalizeLowerASCII,
		"none":        NormalizeNone,
	}
)

// RegisterNormalizer makes fn available to Build under the given name.
// The name is the normalizer's identity for type memoization and for
// resolving serialized dicts, so it must be unique and stable.
func RegisterNormalizer(name string, fn Normalizer) error {
	if name == "" || fn == nil {
		return fmt.Errorf("register normalizer: name and function are required")
	}
	normMu.Lock()
	defer normMu.Unlock()
	if _, exists := normalizers[name]; exists {
		return fmt.Errorf("register normalizer %q: already registered", name)
	}
	normalizers[name] = fn
	return nil
}

func lookupNormalizer(name string) (Normalizer, bool) {
	normMu.RLock()
	defer normMu.RUnlock()
	fn, ok := normalizers[name]
	return fn, ok
}
