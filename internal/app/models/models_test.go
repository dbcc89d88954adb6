package models

import "testing"

func TestNormalizeBloodGroup(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"B+", "B+"},
		{"b +", "B+"},
		{" ab- ", "AB-"},
		{"", "O+"},
		{"unknown", "O+"},
	}

	for _, tt := range tests {
		if got := NormalizeBloodGroup(tt.raw); got != tt.want {
			t.Errorf("NormalizeBloodGroup(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestCategoryCode(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"General", "gen"},
		{"OBC", "obc"},
		{"scheduled castes", "sc"},
		{"", "oth"},
		{"something else", "oth"},
	}

	for _, tt := range tests {
		if got := CategoryCode(tt.raw); got != tt.want {
			t.Errorf("CategoryCode(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestDesignationCode(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Professor", "prof"},
		{"associate professor", "assocprof"},
		{" Assistant Professor ", "asstprof"},
		{"Head Clerk", ""},
	}

	for _, tt := range tests {
		if got := DesignationCode(tt.title); got != tt.want {
			t.Errorf("DesignationCode(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestDepartmentCodeForAlphaCode(t *testing.T) {
	code, ok := DepartmentCodeForAlphaCode("CSN")
	if !ok || code != "cse" {
		t.Errorf("DepartmentCodeForAlphaCode(\"CSN\") = (%q, %v), want (cse, true)", code, ok)
	}

	if _, ok := DepartmentCodeForAlphaCode("zzz"); ok {
		t.Error("unknown alpha code resolved")
	}
}

func TestResidenceCodeForName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Kasturba Bhawan", "kst"},
		{"kasturba bhawan", "kst"},
		{"GANGA BHAWAN", "gng"},
		{"", NonResidentCode},
		{"Somewhere Else", NonResidentCode},
	}

	for _, tt := range tests {
		if got := ResidenceCodeForName(tt.name); got != tt.want {
			t.Errorf("ResidenceCodeForName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDepartmentName(t *testing.T) {
	d := &Department{Code: "ece"}
	if got := d.Name(); got != "Electronics and Communication Engineering" {
		t.Errorf("Name() = %q", got)
	}
}

func TestResidenceName(t *testing.T) {
	r := &Residence{Code: NonResidentCode}
	if got := r.Name(); got != "Not a resident" {
		t.Errorf("Name() = %q, want Not a resident", got)
	}
}
