// Package claims implements the claim ingestion pipeline: normalize raw
// field maps, parse currency and date values, compute the derived net fee,
// validate, stamp a claim identifier, and hand the record to the store.
package claims

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gyeh/claimstats/internal/csvscan"
	"github.com/gyeh/claimstats/internal/model"
	"github.com/gyeh/claimstats/internal/money"
	"github.com/gyeh/claimstats/internal/normalize"
)

// Store is the persistence collaborator the pipeline hands finished claims
// to. InsertClaim assigns the surrogate identity and returns the stored
// record.
type Store interface {
	InsertClaim(ctx context.Context, c *model.Claim) (*model.Claim, error)
	TopProviders(ctx context.Context, limit int) ([]model.ProviderTotal, error)
}

// RowError is a per-row CSV ingestion failure: the 1-based source line and
// the reason the row was skipped.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

// CSVReport is the outcome of a best-effort CSV ingestion: the claims that
// were persisted and the rows that were skipped, with reasons.
type CSVReport struct {
	Accepted []model.Claim
	Skipped  []RowError
}

// Processor is the stateless ingestion service. It is constructed once at
// process start and shared across requests; it holds no mutable state beyond
// the store's own concurrency control.
type Processor struct {
	store Store
	log   zerolog.Logger
}

func NewProcessor(store Store, log zerolog.Logger) *Processor {
	return &Processor{store: store, log: log}
}

// Build converts one raw record into a validated, identifier-stamped claim.
// It does not persist.
func (p *Processor) Build(raw model.RawClaim) (*model.Claim, error) {
	rec := normalize.Record(raw)

	providerFees, err := parseFee(rec, normalize.KeyProviderFees)
	if err != nil {
		return nil, err
	}
	allowedFees, err := parseFee(rec, normalize.KeyAllowedFees)
	if err != nil {
		return nil, err
	}
	coinsurance, err := parseFee(rec, normalize.KeyMemberCoinsurance)
	if err != nil {
		return nil, err
	}
	copay, err := parseFee(rec, normalize.KeyMemberCopay)
	if err != nil {
		return nil, err
	}

	rawDate := normalize.Get(rec, normalize.KeyServiceDate, "1/1/00 0:00")
	serviceDate, err := normalize.ParseServiceDate(rawDate)
	if err != nil {
		return nil, &ParseError{Field: normalize.KeyServiceDate, Value: rawDate, Err: err}
	}

	c := &model.Claim{
		ServiceDate:        model.Date{Time: serviceDate},
		SubmittedProcedure: normalize.Get(rec, normalize.KeySubmittedProcedure, model.DefaultProcedure),
		PlanGroup:          normalize.Get(rec, normalize.KeyPlanGroup, model.DefaultPlanGroup),
		Subscriber:         normalize.Get(rec, normalize.KeySubscriber, model.DefaultSubscriber),
		ProviderNPI:        normalize.Get(rec, normalize.KeyProviderNPI, model.DefaultProviderNPI),
		ProviderFees:       providerFees,
		AllowedFees:        allowedFees,
		MemberCoinsurance:  coinsurance,
		MemberCopay:        copay,
		NetFee:             NetFee(providerFees, coinsurance, copay, allowedFees),
	}
	// Quadrant is the one truly optional field: blank means not supplied.
	if q := strings.TrimSpace(normalize.Get(rec, normalize.KeyQuadrant, "")); q != "" {
		c.Quadrant = &q
	}

	if err := Validate(c); err != nil {
		return nil, err
	}
	c.ClaimID = NewClaimID()
	return c, nil
}

// NetFee computes the derived net fee. The result may be negative; no
// clamping is applied.
func NetFee(providerFees, memberCoinsurance, memberCopay, allowedFees money.Cents) money.Cents {
	return providerFees + memberCoinsurance + memberCopay - allowedFees
}

// IngestBatch processes a JSON-path batch as one atomic intent: every record
// is built and validated before the first write, so a parse or validation
// failure anywhere aborts the call with nothing persisted. A store failure
// mid-batch aborts the call but leaves earlier records committed, since each
// insert is its own commit unit.
func (p *Processor) IngestBatch(ctx context.Context, raws []model.RawClaim) ([]model.Claim, error) {
	built := make([]*model.Claim, 0, len(raws))
	for i, raw := range raws {
		c, err := p.Build(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		built = append(built, c)
	}

	stored := make([]model.Claim, 0, len(built))
	for i, c := range built {
		s, err := p.store.InsertClaim(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("record %d: store claim: %w", i+1, err)
		}
		stored = append(stored, *s)
	}
	return stored, nil
}

// IngestCSV processes a CSV document best-effort: each data row runs the full
// pipeline independently, and a failing row (parse, validation, or store) is
// recorded in the report's diagnostics and skipped while processing
// continues.
func (p *Processor) IngestCSV(ctx context.Context, text string) *CSVReport {
	report := &CSVReport{}

	for _, row := range csvscan.Document(text) {
		c, err := p.Build(row.Fields)
		if err == nil {
			var s *model.Claim
			s, err = p.store.InsertClaim(ctx, c)
			if err == nil {
				report.Accepted = append(report.Accepted, *s)
				continue
			}
			err = fmt.Errorf("store claim: %w", err)
		}
		report.Skipped = append(report.Skipped, RowError{Line: row.Line, Err: err})
		p.log.Warn().Int("line", row.Line).Err(err).Msg("claim row skipped")
	}

	return report
}

// TopProviders returns up to limit providers ordered by total net fee
// descending. A non-positive limit is rejected with ErrInvalidLimit.
func (p *Processor) TopProviders(ctx context.Context, limit int) ([]model.ProviderTotal, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	return p.store.TopProviders(ctx, limit)
}

func parseFee(rec map[string]string, key string) (money.Cents, error) {
	raw := normalize.Get(rec, key, "0.00")
	v, err := money.Parse(raw)
	if err != nil {
		return 0, &ParseError{Field: key, Value: raw, Err: err}
	}
	return v, nil
}
