package claims

import (
	"strings"

	"github.com/gyeh/claimstats/internal/model"
)

// Validate enforces the structural invariants on a parsed claim, in order,
// first failure wins: the submitted procedure must be non-empty and begin
// with "D", and the provider NPI must be exactly 10 decimal digits.
func Validate(c *model.Claim) error {
	if !strings.HasPrefix(c.SubmittedProcedure, "D") {
		return &ValidationError{Msg: "submitted procedure must begin with D"}
	}
	if !isNPI(c.ProviderNPI) {
		return &ValidationError{Msg: "provider NPI must be 10 digits"}
	}
	return nil
}

func isNPI(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
