package validate_test

import (
	"testing"

	"tacgear/internal/validate"
)

func TestEmail(t *testing.T) {
	good := []string{"a@b.co", "buyer+tag@example.com", " padded@example.com "}
	for _, in := range good {
		if _, ok := validate.Email(in); !ok {
			t.Errorf("Email(%q) rejected", in)
		}
	}
	bad := []string{"", "plainaddress", "a@b", "a b@c.com"}
	for _, in := range bad {
		if _, ok := validate.Email(in); ok {
			t.Errorf("Email(%q) accepted", in)
		}
	}
}

func TestQtyClamps(t *testing.T) {
	cases := map[string]int{
		"":     1,
		"0":    1,
		"-3":   1,
		"junk": 1,
		"2":    2,
		"500":  500,
		"9999": 500,
	}
	for in, want := range cases {
		if got := validate.Qty(in); got != want {
			t.Errorf("Qty(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestID(t *testing.T) {
	if _, ok := validate.ID("pc-100"); !ok {
		t.Error("product id rejected")
	}
	for _, in := range []string{"", "has space", "semi;colon", "x' OR 1=1"} {
		if _, ok := validate.ID(in); ok {
			t.Errorf("ID(%q) accepted", in)
		}
	}
}

func TestDate(t *testing.T) {
	if _, ok := validate.Date("2026-10-01"); !ok {
		t.Error("ISO date rejected")
	}
	for _, in := range []string{"10/01/2026", "2026-1-1", "soon"} {
		if _, ok := validate.Date(in); ok {
			t.Errorf("Date(%q) accepted", in)
		}
	}
}

func TestPassword(t *testing.T) {
	good := []string{"Passw0rd1", "Xy3aaaaa"}
	for _, in := range good {
		if !validate.Password(in) {
			t.Errorf("Password(%q) rejected", in)
		}
	}
	bad := []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"}
	for _, in := range bad {
		if validate.Password(in) {
			t.Errorf("Password(%q) accepted", in)
		}
	}
}
