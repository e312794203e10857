// Package model defines the claim records exchanged between the ingestion
// pipeline, the store, and the HTTP layer.
package model

import (
	"strings"
	"time"

	"github.com/gyeh/claimstats/internal/money"
)

// Defaults applied when an optional field is absent from the input.
const (
	DefaultProcedure   = "D0000"
	DefaultPlanGroup   = "GRP-1000"
	DefaultSubscriber  = "0000000000"
	DefaultProviderNPI = "1234567890"
)

// RawClaim is one claim record as received from either transport: an
// unordered map from field name to unparsed string value. Field names carry
// no casing or whitespace guarantees.
type RawClaim map[string]string

// Date is a calendar date with no time component, serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	t, err := time.Parse("2006-01-02", strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Claim is the canonical, validated claim record. NetFee is always derived
// (provider fees + member coinsurance + member copay - allowed fees) and
// never supplied by a caller. ID is the surrogate identity assigned by the
// store; it is zero before persistence.
type Claim struct {
	ID                 int64       `json:"id"`
	ClaimID            string      `json:"claim_id"`
	ServiceDate        Date        `json:"service_date"`
	SubmittedProcedure string      `json:"submitted_procedure"`
	Quadrant           *string     `json:"quadrant"`
	PlanGroup          string      `json:"plan_group"`
	Subscriber         string      `json:"subscriber"`
	ProviderNPI        string      `json:"provider_npi"`
	ProviderFees       money.Cents `json:"provider_fees"`
	AllowedFees        money.Cents `json:"allowed_fees"`
	MemberCoinsurance  money.Cents `json:"member_coinsurance"`
	MemberCopay        money.Cents `json:"member_copay"`
	NetFee             money.Cents `json:"net_fee"`
}

// InsertValues returns the claim's values in the column order used by the
// insert statement (everything except the surrogate id).
func (c *Claim) InsertValues() []any {
	return []any{
		c.ClaimID,
		c.ServiceDate.Time,
		c.SubmittedProcedure,
		c.Quadrant,
		c.PlanGroup,
		c.Subscriber,
		c.ProviderNPI,
		int64(c.ProviderFees),
		int64(c.AllowedFees),
		int64(c.MemberCoinsurance),
		int64(c.MemberCopay),
		int64(c.NetFee),
	}
}

// ProviderTotal is one row of the top-providers aggregate: a provider NPI and
// the sum of net fees across all of that provider's persisted claims. It is
// computed on demand and never stored.
type ProviderTotal struct {
	ProviderNPI string      `json:"provider_npi"`
	TotalNetFee money.Cents `json:"total_net_fee"`
}
