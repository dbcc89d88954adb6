package acad

import "testing"

func TestRecordStr(t *testing.T) {
	r := Record{
		"name":   "  Priya Sharma ",
		"number": float64(21114001),
		"flag":   true,
		"null":   nil,
	}

	tests := []struct {
		key  string
		want string
	}{
		{"name", "Priya Sharma"},
		{"number", "21114001"},
		{"flag", "true"},
		{"null", ""},
		{"missing", ""},
	}

	for _, tt := range tests {
		if got := r.Str(tt.key); got != tt.want {
			t.Errorf("Str(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestRecordHas(t *testing.T) {
	r := Record{"a": "x", "b": "", "c": nil}

	if !r.Has("a") {
		t.Error("Has(a) = false")
	}
	if r.Has("b") || r.Has("c") || r.Has("d") {
		t.Error("empty, null and missing keys should not count as present")
	}
}

func TestRecordStrOr(t *testing.T) {
	r := Record{"a": "x"}

	if got := r.StrOr("a", "fallback"); got != "x" {
		t.Errorf("StrOr(a) = %q, want x", got)
	}
	if got := r.StrOr("missing", "fallback"); got != "fallback" {
		t.Errorf("StrOr(missing) = %q, want fallback", got)
	}
}

func TestRecordFirstOf(t *testing.T) {
	r := Record{"b": "second"}

	if got := r.FirstOf("a", "b"); got != "second" {
		t.Errorf("FirstOf = %q, want second", got)
	}
	if got := r.FirstOf("a", "c"); got != "" {
		t.Errorf("FirstOf with no matches = %q, want empty", got)
	}
}

func TestRecordInt(t *testing.T) {
	r := Record{"n": "100234", "f": float64(42), "bad": "abc"}

	if got, err := r.Int("n"); err != nil || got != 100234 {
		t.Errorf("Int(n) = (%d, %v), want 100234", got, err)
	}
	if got, err := r.Int("f"); err != nil || got != 42 {
		t.Errorf("Int(f) = (%d, %v), want 42", got, err)
	}
	if _, err := r.Int("bad"); err == nil {
		t.Error("Int(bad) did not fail")
	}
	if _, err := r.Int("missing"); err == nil {
		t.Error("Int(missing) did not fail")
	}
}
