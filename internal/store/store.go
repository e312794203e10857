package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gyeh/claimstats/internal/model"
	"github.com/gyeh/claimstats/internal/money"
	embedsql "github.com/gyeh/claimstats/internal/sql"
)

// ClaimStore persists claims and answers the top-providers aggregate over
// them. Each insert is its own commit unit; concurrent ingestions interleave
// at the row level with no cross-request isolation.
type ClaimStore struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *ClaimStore {
	return &ClaimStore{pool: pool}
}

// InsertClaim stores one claim and returns a copy carrying the surrogate id
// assigned by the database.
func (s *ClaimStore) InsertClaim(ctx context.Context, c *model.Claim) (*model.Claim, error) {
	stored := *c
	err := s.pool.QueryRow(ctx, embedsql.InsertClaim, c.InsertValues()...).Scan(&stored.ID)
	if err != nil {
		return nil, fmt.Errorf("insert claim %s: %w", c.ClaimID, err)
	}
	return &stored, nil
}

// TopProviders returns up to limit providers ordered by summed net fee
// descending. Ties keep the database's natural order.
func (s *ClaimStore) TopProviders(ctx context.Context, limit int) ([]model.ProviderTotal, error) {
	rows, err := s.pool.Query(ctx, embedsql.TopProviders, limit)
	if err != nil {
		return nil, fmt.Errorf("query top providers: %w", err)
	}
	defer rows.Close()

	var out []model.ProviderTotal
	for rows.Next() {
		var npi string
		var totalCents int64
		if err := rows.Scan(&npi, &totalCents); err != nil {
			return nil, fmt.Errorf("scan top providers: %w", err)
		}
		out = append(out, model.ProviderTotal{
			ProviderNPI: npi,
			TotalNetFee: money.Cents(totalCents),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate top providers: %w", err)
	}
	return out, nil
}
