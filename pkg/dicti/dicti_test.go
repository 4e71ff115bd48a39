package dicti

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestGetSetCaseInsensitive(t *testing.T) {
	d := New()
	d.Set("Hello", "foo")
	d.Set("world", "bar")

	tests := []struct {
		key  string
		want any
	}{
		{"heLLO", "foo"},
		{"HELLO", "foo"},
		{"hello", "foo"},
		{"WOrld", "bar"},
	}
	for _, tt := range tests {
		got, ok := d.Get(tt.key)
		if !ok {
			t.Fatalf("Get(%q): missing", tt.key)
		}
		if got != tt.want {
			t.Errorf("Get(%q) = %v, want %v", tt.key, got, tt.want)
		}
		if !d.Has(tt.key) {
			t.Errorf("Has(%q) = false, want true", tt.key)
		}
	}

	if d.Has("missing") {
		t.Error("Has(missing) = true, want false")
	}
	if v := d.Value("missing"); v != nil {
		t.Errorf("Value(missing) = %v, want nil", v)
	}
}

func TestSetFoldedKeys(t *testing.T) {
	// Keys that only case folding unifies.
	d := New()
	d.Set("Groß", 1)
	if v, ok := d.Get("GROSS"); !ok || v != 1 {
		t.Errorf("Get(GROSS) = %v, %v, want 1, true", v, ok)
	}
}

func TestOriginalCasePreserved(t *testing.T) {
	d := New()
	d.Set("Hello", 1)
	d.Set("hello", 2)

	keys := d.Keys()
	if len(keys) != 1 || keys[0] != "Hello" {
		t.Errorf("Keys() = %v, want [Hello]", keys)
	}
	if v := d.Value("HELLO"); v != 2 {
		t.Errorf("Value(HELLO) = %v, want 2", v)
	}
}

func TestOrderedReassignmentKeepsPosition(t *testing.T) {
	m := NewOrdered()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("A", 3)

	want := []Pair{{"a", 3}, {"b", 2}}
	if got := m.Items(); !reflect.DeepEqual(got, want) {
		t.Errorf("Items() = %v, want %v", got, want)
	}
}

func TestOrderedDeleteThenReinsert(t *testing.T) {
	m := NewOrdered()
	m.Set("a", 1)
	m.Set("b", 2)
	if err := m.Delete("A"); err != nil {
		t.Fatalf("Delete(A): %v", err)
	}
	m.Set("A", 3)

	// After delete+reinsert the new casing wins and the entry moves to
	// the end.
	want := []Pair{{"b", 2}, {"A", 3}}
	if got := m.Items(); !reflect.DeepEqual(got, want) {
		t.Errorf("Items() = %v, want %v", got, want)
	}
}

func TestDelete(t *testing.T) {
	d := New()
	d.Set("X", 1)
	if err := d.Delete("x"); err != nil {
		t.Fatalf("Delete(x): %v", err)
	}
	if d.Has("X") {
		t.Error("X still present after delete")
	}
	err := d.Delete("x")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Delete(x) again = %v, want ErrKeyNotFound", err)
	}
}

func TestPop(t *testing.T) {
	d := New(Pair{"A", 0})
	v, err := d.Pop("a")
	if err != nil || v != 0 {
		t.Fatalf("Pop(a) = %v, %v, want 0, nil", v, err)
	}
	if _, err := d.Pop("a"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Pop(a) again = %v, want ErrKeyNotFound", err)
	}
	if got := d.PopDefault("a", 5); got != 5 {
		t.Errorf("PopDefault(a, 5) = %v, want 5", got)
	}
}

func TestSetDefault(t *testing.T) {
	d := New(Pair{"A", 1})
	if got := d.SetDefault("a", 2); got != 1 {
		t.Errorf("SetDefault(a, 2) = %v, want existing 1", got)
	}
	if got := d.SetDefault("b", 2); got != 2 {
		t.Errorf("SetDefault(b, 2) = %v, want 2", got)
	}
	if v := d.Value("B"); v != 2 {
		t.Errorf("Value(B) = %v, want 2", v)
	}
}

func TestLenAndClear(t *testing.T) {
	d := NewOrdered(Pair{"a", 1}, Pair{"b", 2})
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
	d.Clear()
	if d.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", d.Len())
	}
	d.Clear()
	if d.Len() != 0 {
		t.Errorf("Len() after second Clear = %d, want 0", d.Len())
	}
}

func TestIteration(t *testing.T) {
	m := NewOrdered(Pair{"A", 1}, Pair{"b", 2}, Pair{"C", 3})

	if got := m.Keys(); !reflect.DeepEqual(got, []string{"A", "b", "C"}) {
		t.Errorf("Keys() = %v", got)
	}
	if got := m.Values(); !reflect.DeepEqual(got, []any{1, 2, 3}) {
		t.Errorf("Values() = %v", got)
	}

	var seen []string
	for k, v := range m.All() {
		seen = append(seen, k)
		if m.Value(k) != v {
			t.Errorf("All(): value mismatch for %q", k)
		}
	}
	if !reflect.DeepEqual(seen, []string{"A", "b", "C"}) {
		t.Errorf("All() keys = %v", seen)
	}
}

func TestNormalizedViews(t *testing.T) {
	m := NewOrdered(Pair{"Hello", 1}, Pair{"World", 2})

	wantItems := []Pair{{"hello", 1}, {"world", 2}}
	if got := m.NormalizedItems(); !reflect.DeepEqual(got, wantItems) {
		t.Errorf("NormalizedItems() = %v, want %v", got, wantItems)
	}
	wantMap := map[string]any{"hello": 1, "world": 2}
	if got := m.NormalizedMap(); !reflect.DeepEqual(got, wantMap) {
		t.Errorf("NormalizedMap() = %v, want %v", got, wantMap)
	}
}

func TestUpdate(t *testing.T) {
	m := NewOrdered(Pair{"a", 1}, Pair{"b", 2})
	if err := m.Update([]Pair{{"A", 10}, {"c", 3}}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// Later duplicate overwrote the value, earliest casing and position won.
	want := []Pair{{"a", 10}, {"b", 2}, {"c", 3}}
	if got := m.Items(); !reflect.DeepEqual(got, want) {
		t.Errorf("Items() = %v, want %v", got, want)
	}

	other := New(Pair{"D", 4})
	if err := m.Update(other); err != nil {
		t.Fatalf("Update from dict: %v", err)
	}
	if v := m.Value("d"); v != 4 {
		t.Errorf("Value(d) = %v, want 4", v)
	}

	if err := m.Update(map[string]any{"e": 5}); err != nil {
		t.Fatalf("Update from map: %v", err)
	}
	if v := m.Value("E"); v != 5 {
		t.Errorf("Value(E) = %v, want 5", v)
	}

	if err := m.Update(42); !errors.Is(err, ErrNotAMapping) {
		t.Errorf("Update(42) = %v, want ErrNotAMapping", err)
	}
}

func TestCopySharesValues(t *testing.T) {
	inner := map[string]any{"x": 3}
	d := New(Pair{"h", inner})

	c := d.Copy()
	if c.Type() != d.Type() {
		t.Error("Copy() changed the concrete type")
	}
	c.Set("a", 5)
	d.Set("b", 6)
	if c.Has("b") {
		t.Error("copy gained a key set on the original")
	}
	if d.Has("a") {
		t.Error("original gained a key set on the copy")
	}

	// Shallow copy shares container values.
	inner["x"] = 9
	got := c.Value("H").(map[string]any)
	if got["x"] != 9 {
		t.Errorf("copy value = %v, want shared mutation 9", got["x"])
	}
}

func TestDeepCopyIsolatesValues(t *testing.T) {
	d := NewOrdered(Pair{"h", map[string]any{"x": 3}}, Pair{"n", NewOrdered(Pair{"Y", 1})})

	c := d.DeepCopy()
	if c.Type() != d.Type() {
		t.Error("DeepCopy() changed the concrete type")
	}
	if !c.Equal(d) {
		t.Error("DeepCopy() not equal to original")
	}

	d.Value("h").(map[string]any)["x"] = 99
	if got := c.Value("H").(map[string]any)["x"]; got != 3 {
		t.Errorf("deep copy value = %v, want isolated 3", got)
	}

	d.GetDict("n").Set("y", 2)
	if got := c.GetDict("N").Value("y"); got != 1 {
		t.Errorf("deep copy nested dict value = %v, want isolated 1", got)
	}
}

func TestString(t *testing.T) {
	m := NewOrdered(Pair{"Hello", 1}, Pair{"world", 2})
	if got := m.String(); got != `odicti{"Hello": 1, "world": 2}` {
		t.Errorf("String() = %s", got)
	}

	d := New(Pair{"Key", "v"})
	got := d.String()
	if !strings.HasPrefix(got, "dicti{") || !strings.Contains(got, `"Key": v`) {
		t.Errorf("String() = %s", got)
	}
}
