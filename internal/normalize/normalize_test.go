package normalize

import (
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	if got := Key("  Provider NPI "); got != "provider npi" {
		t.Errorf("Key = %q", got)
	}
}

func TestRecord(t *testing.T) {
	rec := Record(map[string]string{
		"Service Date":       "3/28/18 0:00",
		" Provider NPI":      "1497775530",
		"member coinsurance": "$0.00",
	})
	if rec[KeyServiceDate] != "3/28/18 0:00" {
		t.Errorf("service date not normalized: %v", rec)
	}
	if rec[KeyProviderNPI] != "1497775530" {
		t.Errorf("provider npi not normalized: %v", rec)
	}
	if rec[KeyMemberCoinsurance] != "$0.00" {
		t.Errorf("member coinsurance not normalized: %v", rec)
	}
}

func TestFromJSON(t *testing.T) {
	rec := FromJSON(map[string]string{
		"service_date":        "3/28/18",
		"submitted_procedure": "D0180",
		"plan_group":          "GRP-1000",
		"subscriber":          "3730189502",
		"provider_npi":        "1497775530",
		"provider_fees":       "$100.00",
		"allowed_fees":        "$100.00",
		"member_coinsurance":  "$0.00",
		"member_copay":        "$0.00",
		"quadrant":            "",
	})

	want := map[string]string{
		KeyServiceDate:        "3/28/18",
		KeySubmittedProcedure: "D0180",
		KeyPlanGroup:          "GRP-1000",
		KeySubscriber:         "3730189502",
		KeyProviderNPI:        "1497775530",
		KeyProviderFees:       "$100.00",
		KeyAllowedFees:        "$100.00",
		KeyMemberCoinsurance:  "$0.00",
		KeyMemberCopay:        "$0.00",
		KeyQuadrant:           "",
	}
	for k, v := range want {
		if rec[k] != v {
			t.Errorf("FromJSON[%q] = %q, want %q", k, rec[k], v)
		}
	}
}

func TestGet(t *testing.T) {
	rec := map[string]string{KeyPlanGroup: "GRP-2000", KeyProviderFees: ""}
	if got := Get(rec, KeyPlanGroup, "GRP-1000"); got != "GRP-2000" {
		t.Errorf("Get present = %q", got)
	}
	if got := Get(rec, KeySubscriber, "0000000000"); got != "0000000000" {
		t.Errorf("Get absent = %q", got)
	}
	// A present-but-blank value is returned as-is, not default-substituted;
	// rejecting it is the parsers' job.
	if got := Get(rec, KeyProviderFees, "0.00"); got != "" {
		t.Errorf("Get blank = %q", got)
	}
}

func TestParseServiceDate(t *testing.T) {
	got, err := ParseServiceDate("3/28/18 0:00")
	if err != nil {
		t.Fatalf("ParseServiceDate: %v", err)
	}
	want := time.Date(2018, time.March, 28, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseServiceDate = %v, want %v", got, want)
	}
}

func TestParseServiceDate_CenturyPivot(t *testing.T) {
	got, err := ParseServiceDate("12/31/99")
	if err != nil {
		t.Fatalf("ParseServiceDate: %v", err)
	}
	if got.Year() != 1999 {
		t.Errorf("year = %d, want 1999", got.Year())
	}

	got, err = ParseServiceDate("1/1/00")
	if err != nil {
		t.Fatalf("ParseServiceDate: %v", err)
	}
	if got.Year() != 2000 {
		t.Errorf("year = %d, want 2000", got.Year())
	}
}

func TestParseServiceDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "not-a-date", "2018-03-28", "13/45/18"} {
		if _, err := ParseServiceDate(in); err == nil {
			t.Errorf("ParseServiceDate(%q): expected error", in)
		}
	}
}
