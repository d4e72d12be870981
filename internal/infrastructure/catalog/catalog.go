package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/foodlens/backend/internal/domain"
)

//go:embed products.json
var defaultProducts []byte

// Catalog is a read-only set of products used when the remote database
// cannot answer. It is safe for concurrent use.
type Catalog struct {
	products map[string]domain.Product
}

// New builds a catalog from products. Later entries win on duplicate codes.
func New(products []domain.Product) *Catalog {
	c := &Catalog{products: make(map[string]domain.Product, len(products))}
	for _, p := range products {
		code := strings.TrimSpace(p.Code)
		if code == "" {
			continue
		}
		p.Code = code
		c.products[code] = p
	}
	return c
}

// Load reads a JSON array of products from path. An empty path loads the
// built-in dataset.
func Load(path string, logger *zap.Logger) (*Catalog, error) {
	data := defaultProducts
	source := "builtin"
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		data = b
		source = path
	}

	var products []domain.Product
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", source, err)
	}

	c := New(products)
	logger.Info("fallback catalog loaded",
		zap.String("source", source),
		zap.Int("products", c.Len()),
	)
	return c, nil
}

// GetProduct returns a copy of the product with the given barcode.
func (c *Catalog) GetProduct(_ context.Context, barcode string) (*domain.Product, error) {
	p, ok := c.products[barcode]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}
