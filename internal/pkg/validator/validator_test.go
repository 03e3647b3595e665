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

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "06:00", "14:30", "23:59"}
	invalid := []string{"24:00", "6:00", "14:60", "14:3", "noon", "", "14:30:00"}
	for _, s := range valid {
		if !IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-03-10"); !ok {
		t.Errorf("IsValidDate(2025-03-10) = false, want true")
	}
	for _, s := range []string{"2025-13-01", "03-10-2025", "yesterday", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"YES", "NO"}
	if !IsInSlice("YES", slice) {
		t.Errorf("IsInSlice(YES) = false, want true")
	}
	if IsInSlice("MAYBE", slice) {
		t.Errorf("IsInSlice(MAYBE) = true, want false")
	}
}
