package dicti

import "errors"

var (
	ErrKeyNotFound       = errors.New("key not found")
	ErrUnknownNormalizer = errors.New("unknown normalizer")
	ErrUnknownKind       = errors.New("unknown base kind")
	ErrUnknownType       = errors.New("unknown dict type")
	ErrTypeNameTaken     = errors.New("type name already registered")
	ErrNotAMapping       = errors.New("not a mapping value")
)
