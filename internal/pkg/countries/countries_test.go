package countries

import "testing"

func TestCodeForName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"India", "IN"},
		{"INDIA", "IN"},
		{"nepal", "NP"},
		{"United States of America", "US"},
		{"", "IN"},
		{"Atlantis", "IN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeForName(tt.name); got != tt.want {
				t.Errorf("CodeForName(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	if got := Name("in"); got != "India" {
		t.Errorf("Name(\"in\") = %q, want India", got)
	}
	if got := Name("XX"); got != "" {
		t.Errorf("Name(\"XX\") = %q, want empty", got)
	}
}
