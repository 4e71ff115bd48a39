package dicti

import "github.com/spf13/cast"

// Typed accessors over the dict's any-valued entries. A missing key or a
// failed conversion yields the zero value.

func (d *Dict) GetString(key string) string {
	return cast.ToString(d.Value(key))
}

func (d *Dict) GetInt(key string) int {
	return cast.ToInt(d.Value(key))
}

func (d *Dict) GetInt64(key string) int64 {
	return cast.ToInt64(d.Value(key))
}

func (d *Dict) GetFloat64(key string) float64 {
	return cast.ToFloat64(d.Value(key))
}

func (d *Dict) GetBool(key string) bool {
	return cast.ToBool(d.Value(key))
}

func (d *Dict) GetStringSlice(key string) []string {
	return cast.ToStringSlice(d.Value(key))
}

// GetDict returns the nested dict stored under key, or nil when the key is
// absent or holds a value of another type.
func (d *Dict) GetDict(key string) *Dict {
	if nd, ok := d.Value(key).(*Dict); ok {
		return nd
	}
	return nil
}
