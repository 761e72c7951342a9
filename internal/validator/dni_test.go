// internal/validator/dni_test.go

package validator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidDNI(t *testing.T) {
	cases := map[string]bool{
		"12345678A":  true,
		"87654321B":  true,
		"12345678a":  false,
		"1234567A":   false,
		"123456789A": false,
		"12345678AB": false,
		"A12345678":  false,
		"":           false,
		"12345678Ñ":  false,
	}
	for in, want := range cases {
		if got := ValidDNI(in); got != want {
			t.Errorf("ValidDNI(%q)=%v want=%v", in, got, want)
		}
	}
	if err := CheckDNI("1234"); !errors.Is(err, ErrDNIFormat) {
		t.Fatalf("want ErrDNIFormat, got %v", err)
	}
	if err := CheckDNI("12345678Z"); err != nil {
		t.Fatalf("unexpected err=%v", err)
	}
}

func TestPositiveAmount(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"100", true},
		{"0.01", true},
		{"0", false},
		{"-50", false},
	}
	for _, c := range cases {
		if got := PositiveAmount(decimal.RequireFromString(c.in)); got != c.want {
			t.Errorf("PositiveAmount(%s)=%v want=%v", c.in, got, c.want)
		}
	}
}
