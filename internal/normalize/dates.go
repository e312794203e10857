package normalize

import (
	"fmt"
	"strings"
	"time"
)

// serviceDateLayout matches the M/D/YY dates found in claim uploads, with or
// without zero padding.
const serviceDateLayout = "1/2/06"

// ParseServiceDate parses a claim service date. Anything after the first
// space (an embedded time-of-day like "3/28/18 0:00") is discarded. Two-digit
// years follow the strptime pivot used by time.Parse: 00-68 map to the 2000s,
// 69-99 to the 1900s.
func ParseServiceDate(s string) (time.Time, error) {
	datePart, _, _ := strings.Cut(strings.TrimSpace(s), " ")
	t, err := time.Parse(serviceDateLayout, datePart)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid service date %q", s)
	}
	return t, nil
}
