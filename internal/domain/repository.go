package domain

import (
	"context"
	"time"
)

// CacheRepository stores serialized values with a TTL.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// ProductSource looks a product up by barcode.
type ProductSource interface {
	GetProduct(ctx context.Context, barcode string) (*Product, error)
}

// InsightAnalyzer turns free-text health issues and goals into findings.
type InsightAnalyzer interface {
	AnalyzeCustom(ctx context.Context, product *Product, customIssues, customGoals []string) (*CustomInsights, error)
}
