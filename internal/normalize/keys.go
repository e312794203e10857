// Package normalize maps loosely-structured claim input onto the canonical
// claim vocabulary and parses its value formats.
package normalize

import "strings"

// Canonical field names for a claim record. CSV headers use these directly
// (case-insensitively); JSON payloads are translated onto them by FromJSON.
const (
	KeyServiceDate        = "service date"
	KeySubmittedProcedure = "submitted procedure"
	KeyQuadrant           = "quadrant"
	KeyPlanGroup          = "plan/group #"
	KeySubscriber         = "subscriber#"
	KeyProviderNPI        = "provider npi"
	KeyProviderFees       = "provider fees"
	KeyAllowedFees        = "allowed fees"
	KeyMemberCoinsurance  = "member coinsurance"
	KeyMemberCopay        = "member copay"
)

// jsonKeys maps the snake_case field names used by the JSON ingestion call
// onto the canonical vocabulary.
var jsonKeys = map[string]string{
	"service_date":        KeyServiceDate,
	"submitted_procedure": KeySubmittedProcedure,
	"quadrant":            KeyQuadrant,
	"plan_group":          KeyPlanGroup,
	"subscriber":          KeySubscriber,
	"provider_npi":        KeyProviderNPI,
	"provider_fees":       KeyProviderFees,
	"allowed_fees":        KeyAllowedFees,
	"member_coinsurance":  KeyMemberCoinsurance,
	"member_copay":        KeyMemberCopay,
}

// Key lowercases and trims an incoming field name.
func Key(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

// Record rewrites every key of a raw record through Key. Later duplicates win.
func Record(raw map[string]string) map[string]string {
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		out[Key(k)] = v
	}
	return out
}

// FromJSON translates a snake_case JSON field map onto the canonical
// vocabulary. Unknown keys are carried through Key unchanged so they still
// normalize consistently downstream.
func FromJSON(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		nk := Key(k)
		if canonical, ok := jsonKeys[nk]; ok {
			nk = canonical
		}
		out[nk] = v
	}
	return out
}

// Get resolves a canonical key against a normalized record, falling back to
// def only when the field is absent. Absence is not an error at this stage;
// a present-but-blank value is returned as-is so downstream parsing and
// validation can reject it.
func Get(rec map[string]string, key, def string) string {
	if v, ok := rec[key]; ok {
		return v
	}
	return def
}
