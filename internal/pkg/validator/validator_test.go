package validator

import (
	"testing"

	"github.com/shopspring/decimal"
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

func TestIsNumeric(t *testing.T) {
	valid := []string{"0", "42", "0012"}
	invalid := []string{"", "-1", "1.5", "abc", "12a"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "09:05", "23:59", "19:30"}
	invalid := []string{"24:00", "9:05", "12:60", "12.30", "", "12:30:00", "ab:cd"}
	for _, c := range valid {
		if !IsValidClock(c) {
			t.Errorf("IsValidClock(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if IsValidClock(c) {
			t.Errorf("IsValidClock(%q) = true, want false", c)
		}
	}
}

func TestIsPositive(t *testing.T) {
	if !IsPositive(decimal.NewFromInt(5000)) {
		t.Errorf("IsPositive(5000) = false, want true")
	}
	if IsPositive(decimal.Zero) {
		t.Errorf("IsPositive(0) = true, want false")
	}
	if IsPositive(decimal.NewFromFloat(-0.01)) {
		t.Errorf("IsPositive(-0.01) = true, want false")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "employeeId", Message: "must be numeric"},
		{Field: "amount", Message: "must be greater than zero"},
	}
	m := errs.ToMap()
	if len(m) != 2 || m["amount"] != "must be greater than zero" {
		t.Errorf("ToMap() = %v", m)
	}
	if errs.Error() != "employeeId: must be numeric; amount: must be greater than zero" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
