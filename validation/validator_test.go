package validation

import (
	"strings"
	"testing"
)

func TestValidateInput(t *testing.T) {
	v := NewValidator()

	valid := []string{
		"What is paracetamol used for?",
		"Compare Tylenol and Calpol",
		"paracetamol 500 mg dosage",
	}
	for _, input := range valid {
		if err := v.ValidateInput(input); err != nil {
			t.Errorf("ValidateInput(%q) unexpectedly failed: %v", input, err)
		}
	}

	invalid := []string{
		"",
		"   ",
		"<script>alert(1)</script>",
		"x'; drop table meds; --union select",
		"../../etc/passwd",
		strings.Repeat("a", 2001),
	}
	for _, input := range invalid {
		if err := v.ValidateInput(input); err == nil {
			t.Errorf("ValidateInput(%q) should have failed", input)
		}
	}
}

func TestValidateRegion(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		region   string
		fallback string
		expected string
		wantErr  bool
	}{
		{"IN", "IN", "IN", false},
		{"us", "IN", "US", false},
		{"global", "IN", "GLOBAL", false},
		{"", "IN", "IN", false},
		{"  ", "us", "US", false},
		{"U$", "IN", "", true},
		{"averyverylongregion", "IN", "", true},
		{"1N", "IN", "", true},
	}

	for _, c := range cases {
		got, err := v.ValidateRegion(c.region, c.fallback)
		if c.wantErr {
			if err == nil {
				t.Errorf("ValidateRegion(%q) should have failed", c.region)
			}
			continue
		}
		if err != nil {
			t.Errorf("ValidateRegion(%q) unexpectedly failed: %v", c.region, err)
			continue
		}
		if got != c.expected {
			t.Errorf("ValidateRegion(%q) = %q, expected %q", c.region, got, c.expected)
		}
	}
}

func TestValidateRecord(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateRecord("p1", "Paracetamol", "Acetaminophen"); err != nil {
		t.Errorf("Valid record rejected: %v", err)
	}

	bad := []struct{ id, name, generic string }{
		{"", "Paracetamol", "Acetaminophen"},
		{"p1", "", "Acetaminophen"},
		{"p1", "Paracetamol", ""},
		{"p1", strings.Repeat("x", 201), "Acetaminophen"},
	}
	for _, c := range bad {
		if err := v.ValidateRecord(c.id, c.name, c.generic); err == nil {
			t.Errorf("ValidateRecord(%q, %q, %q) should have failed", c.id, c.name, c.generic)
		}
	}
}
