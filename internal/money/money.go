// Package money provides an exact fixed-point currency type.
//
// Claim fees are carried as integer hundredths of a dollar end to end, so
// the derived net fee never accumulates binary floating point drift.
package money

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Cents is a signed currency amount in hundredths of a dollar.
type Cents int64

// Parse converts a currency string into Cents. A single leading "$" and all
// whitespace are stripped before parsing; the remainder must be a base-10
// decimal literal with at most two fractional digits. Negative amounts are
// accepted.
func Parse(s string) (Cents, error) {
	orig := s
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = strings.TrimPrefix(s, "$")

	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("invalid currency amount %q", orig)
	}
	if hasFrac && len(frac) > 2 {
		return 0, fmt.Errorf("currency amount %q has more than 2 fractional digits", orig)
	}
	if !allDigits(whole) || !allDigits(frac) {
		return 0, fmt.Errorf("invalid currency amount %q", orig)
	}

	var dollars int64
	if whole != "" {
		v, err := strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid currency amount %q", orig)
		}
		dollars = v
	}

	var cents int64
	if frac != "" {
		// Width already checked; a one-digit fraction means tenths.
		v, _ := strconv.ParseInt(frac, 10, 64)
		if len(frac) == 1 {
			v *= 10
		}
		cents = v
	}

	total := dollars*100 + cents
	if neg {
		total = -total
	}
	return Cents(total), nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String renders the amount with exactly two decimal places, e.g. "-12.34".
func (c Cents) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON emits the amount as a JSON number with two decimal places.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted currency string.
func (c *Cents) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
