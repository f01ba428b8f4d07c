package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gestora/anticipos/internal/domain"
)

// SummaryCache implements usecase.SummaryCache using Redis. Summaries are
// stored as JSON keyed by partner scope; a miss is reported as (nil, nil).
type SummaryCache struct {
	client *redis.Client
	prefix string
}

// NewSummaryCache creates a new SummaryCache.
func NewSummaryCache(client *redis.Client) *SummaryCache {
	return &SummaryCache{
		client: client,
		prefix: "ledger:",
	}
}

func (c *SummaryCache) key(kind domain.PartnerKind, partnerID string) string {
	return fmt.Sprintf("%s%s:%s", c.prefix, kind, partnerID)
}

// Get retrieves a cached summary for the partner.
func (c *SummaryCache) Get(ctx context.Context, kind domain.PartnerKind, partnerID string) (*domain.LedgerSummary, error) {
	data, err := c.client.Get(ctx, c.key(kind, partnerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, err
	}

	var summary domain.LedgerSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

// Set stores a summary with TTL.
func (c *SummaryCache) Set(ctx context.Context, kind domain.PartnerKind, partnerID string, summary *domain.LedgerSummary, ttl time.Duration) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, c.key(kind, partnerID), data, ttl).Err()
}

// Invalidate removes the partner's cached summary.
func (c *SummaryCache) Invalidate(ctx context.Context, kind domain.PartnerKind, partnerID string) error {
	return c.client.Del(ctx, c.key(kind, partnerID)).Err()
}
