package dicti

import (
	"reflect"
	"testing"
)

func TestTypedAccessors(t *testing.T) {
	d := New(
		Pair{"Name", "martin"},
		Pair{"Count", 42},
		Pair{"Big", int64(1 << 40)},
		Pair{"Ratio", 0.5},
		Pair{"Active", true},
		Pair{"Tags", []string{"a", "b"}},
		Pair{"Stringly", "7"},
	)

	if got := d.GetString("NAME"); got != "martin" {
		t.Errorf("GetString(NAME) = %q, want martin", got)
	}
	if got := d.GetInt("count"); got != 42 {
		t.Errorf("GetInt(count) = %d, want 42", got)
	}
	if got := d.GetInt64("BIG"); got != 1<<40 {
		t.Errorf("GetInt64(BIG) = %d, want %d", got, int64(1<<40))
	}
	if got := d.GetFloat64("ratio"); got != 0.5 {
		t.Errorf("GetFloat64(ratio) = %v, want 0.5", got)
	}
	if !d.GetBool("ACTIVE") {
		t.Error("GetBool(ACTIVE) = false, want true")
	}
	if got := d.GetStringSlice("tags"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("GetStringSlice(tags) = %v", got)
	}
	// Conversions apply, as for string-typed numbers.
	if got := d.GetInt("stringly"); got != 7 {
		t.Errorf("GetInt(stringly) = %d, want 7", got)
	}
}

func TestTypedAccessors_MissingKey(t *testing.T) {
	d := New()
	if got := d.GetString("x"); got != "" {
		t.Errorf("GetString(x) = %q, want empty", got)
	}
	if got := d.GetInt("x"); got != 0 {
		t.Errorf("GetInt(x) = %d, want 0", got)
	}
	if d.GetBool("x") {
		t.Error("GetBool(x) = true, want false")
	}
	if got := d.GetStringSlice("x"); len(got) != 0 {
		t.Errorf("GetStringSlice(x) = %v, want empty", got)
	}
	if d.GetDict("x") != nil {
		t.Error("GetDict(x) != nil, want nil")
	}
}

func TestGetDict(t *testing.T) {
	nested := New(Pair{"Inner", 1})
	d := New(Pair{"Outer", nested}, Pair{"Plain", "s"})

	if got := d.GetDict("OUTER"); got != nested {
		t.Errorf("GetDict(OUTER) = %v, want the nested dict", got)
	}
	if d.GetDict("plain") != nil {
		t.Error("GetDict(plain) != nil for a non-dict value")
	}
}
