package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"interior_budget/internal/domain/budget"
	"interior_budget/internal/domain/entities"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type document struct {
	Materials []entities.MaterialCatalogEntry  `yaml:"materials"`
	Furniture []entities.FurnitureCatalogEntry `yaml:"furniture"`
}

// Load returns the catalog at path, or the embedded studio catalog when
// path is empty.
func Load(path string) (*budget.Catalog, error) {
	if path == "" {
		zap.S().Infow("[catalog][loader] using embedded catalog")
		return Parse(defaultCatalog)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	zap.S().Infow("[catalog][loader] catalog loaded", "path", path, "fingerprint", c.Fingerprint())
	return c, nil
}

// Parse decodes a YAML catalog document. Unknown keys are rejected so typos
// in a price list do not silently drop fields.
func Parse(raw []byte) (*budget.Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return budget.NewCatalog(doc.Materials, doc.Furniture)
}
