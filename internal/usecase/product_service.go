package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/foodlens/backend/internal/domain"
)

// Where a product record came from.
const (
	SourceCache         = "cache"
	SourceOpenFoodFacts = "openfoodfacts"
	SourceCatalog       = "catalog"
	SourceRequest       = "request"
)

const defaultProductCacheTTL = 24 * time.Hour

var barcodeRegex = regexp.MustCompile(`^\d{8,14}$`)

// ProductServiceConfig holds configuration for the product service
type ProductServiceConfig struct {
	CacheTTL time.Duration
}

// ProductService looks products up by barcode.
// Flow: check cache -> remote database -> local catalog
type ProductService struct {
	cache    domain.CacheRepository
	remote   domain.ProductSource
	fallback domain.ProductSource
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewProductService creates a product service. fallback may be nil.
func NewProductService(
	cache domain.CacheRepository,
	remote domain.ProductSource,
	fallback domain.ProductSource,
	config ProductServiceConfig,
	logger *zap.Logger,
) *ProductService {
	cacheTTL := config.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = defaultProductCacheTTL
	}

	return &ProductService{
		cache:    cache,
		remote:   remote,
		fallback: fallback,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// NormalizeBarcode strips whitespace and checks the barcode is 8-14 digits.
func NormalizeBarcode(barcode string) (string, error) {
	barcode = strings.Join(strings.Fields(barcode), "")
	if !barcodeRegex.MatchString(barcode) {
		return "", domain.ErrInvalidBarcode
	}
	return barcode, nil
}

// GetProduct returns the product for barcode.
func (s *ProductService) GetProduct(ctx context.Context, barcode string) (*domain.Product, error) {
	product, _, err := s.Lookup(ctx, barcode)
	return product, err
}

// Lookup returns the product for barcode together with the name of the
// source that answered.
func (s *ProductService) Lookup(ctx context.Context, barcode string) (*domain.Product, string, error) {
	barcode, err := NormalizeBarcode(barcode)
	if err != nil {
		return nil, "", err
	}
	cacheKey := productCacheKey(barcode)

	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		return cached, SourceCache, nil
	}

	product, remoteErr := s.remote.GetProduct(ctx, barcode)
	if remoteErr == nil {
		if err := s.setInCache(ctx, cacheKey, product); err != nil {
			s.logger.Warn("failed to cache product", zap.String("barcode", barcode), zap.Error(err))
		}
		return product, SourceOpenFoodFacts, nil
	}

	if !errors.Is(remoteErr, domain.ErrProductNotFound) && !errors.Is(remoteErr, domain.ErrUpstreamFailure) {
		return nil, "", remoteErr
	}
	if errors.Is(remoteErr, domain.ErrUpstreamFailure) {
		s.logger.Warn("product database unavailable, trying local catalog",
			zap.String("barcode", barcode),
			zap.Error(remoteErr),
		)
	}

	if s.fallback != nil {
		product, err := s.fallback.GetProduct(ctx, barcode)
		if err == nil {
			return product, SourceCatalog, nil
		}
		if !errors.Is(err, domain.ErrProductNotFound) {
			s.logger.Error("local catalog lookup failed", zap.String("barcode", barcode), zap.Error(err))
		}
	}

	return nil, "", remoteErr
}

func productCacheKey(barcode string) string {
	return fmt.Sprintf("product:%s", barcode)
}

func (s *ProductService) getFromCache(ctx context.Context, key string) (*domain.Product, error) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := json.Unmarshal(data, &product); err != nil {
		s.logger.Warn("discarding corrupt cache entry", zap.String("key", key), zap.Error(err))
		_ = s.cache.Delete(ctx, key)
		return nil, domain.ErrCacheMiss
	}
	return &product, nil
}

func (s *ProductService) setInCache(ctx context.Context, key string, product *domain.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, key, data, s.cacheTTL)
}
