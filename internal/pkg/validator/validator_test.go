package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"2024-06", "1999-01", "2031-12"}
	invalid := []string{"2024-13", "2024-00", "2024", "2024-6", "06-2024", "", "abcd-ef"}
	for _, m := range valid {
		if !IsValidMonth(m) {
			t.Errorf("IsValidMonth(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		if IsValidMonth(m) {
			t.Errorf("IsValidMonth(%q) = true, want false", m)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-06-03"); !ok {
		t.Errorf("IsValidDate(%q) = false, want true", "2024-06-03")
	}
	for _, d := range []string{"2024-06-32", "2024-6-3", "03-06-2024", ""} {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidEmployeeID(t *testing.T) {
	valid := []string{"EMP001", "EMP1234"}
	invalid := []string{"emp001", "EMP", "EMP01", "001", ""}
	for _, id := range valid {
		if !IsValidEmployeeID(id) {
			t.Errorf("IsValidEmployeeID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidEmployeeID(id) {
			t.Errorf("IsValidEmployeeID(%q) = true, want false", id)
		}
	}
}
