package budget

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"interior_budget/internal/domain/entities"

	"github.com/cespare/xxhash/v2"
)

// Catalog holds the material and furniture reference tables keyed by ID.
//
// A Catalog is immutable once built and safe for concurrent readers.
type Catalog struct {
	materials    map[string]entities.MaterialCatalogEntry
	furniture    map[string]entities.FurnitureCatalogEntry
	materialIDs  []string
	furnitureIDs []string
	fingerprint  string
}

// NewCatalog validates the entries and indexes them by ID.
func NewCatalog(materials []entities.MaterialCatalogEntry, furniture []entities.FurnitureCatalogEntry) (*Catalog, error) {
	c := &Catalog{
		materials: make(map[string]entities.MaterialCatalogEntry, len(materials)),
		furniture: make(map[string]entities.FurnitureCatalogEntry, len(furniture)),
	}

	for i, m := range materials {
		id := strings.TrimSpace(m.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: materials[%d] has an empty id", ErrInvalidCatalog, i)
		}
		if _, dup := c.materials[id]; dup {
			return nil, fmt.Errorf("%w: duplicate material id %q", ErrInvalidCatalog, id)
		}
		if !m.Category.Valid() {
			return nil, fmt.Errorf("%w: material %q has unknown category %q", ErrInvalidCatalog, id, m.Category)
		}
		if !validPrice(m.UnitPrice) {
			return nil, fmt.Errorf("%w: material %q has invalid unit price %v", ErrInvalidCatalog, id, m.UnitPrice)
		}
		m.ID = id
		c.materials[id] = m
		c.materialIDs = append(c.materialIDs, id)
	}

	for i, f := range furniture {
		id := strings.TrimSpace(f.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: furniture[%d] has an empty id", ErrInvalidCatalog, i)
		}
		if _, dup := c.furniture[id]; dup {
			return nil, fmt.Errorf("%w: duplicate furniture id %q", ErrInvalidCatalog, id)
		}
		if len(f.RoomTypes) == 0 {
			return nil, fmt.Errorf("%w: furniture %q is not valid for any room type", ErrInvalidCatalog, id)
		}
		for _, rt := range f.RoomTypes {
			if !rt.Valid() {
				return nil, fmt.Errorf("%w: furniture %q has unknown room type %q", ErrInvalidCatalog, id, rt)
			}
		}
		if !validPrice(f.UnitPrice) {
			return nil, fmt.Errorf("%w: furniture %q has invalid unit price %v", ErrInvalidCatalog, id, f.UnitPrice)
		}
		f.ID = id
		f.RoomTypes = append([]entities.RoomType(nil), f.RoomTypes...)
		c.furniture[id] = f
		c.furnitureIDs = append(c.furnitureIDs, id)
	}

	sort.Strings(c.materialIDs)
	sort.Strings(c.furnitureIDs)
	c.fingerprint = c.computeFingerprint()
	return c, nil
}

func validPrice(p float64) bool {
	return p >= 0 && !math.IsInf(p, 0)
}

func (c *Catalog) Material(id string) (entities.MaterialCatalogEntry, bool) {
	m, ok := c.materials[id]
	return m, ok
}

func (c *Catalog) Furniture(id string) (entities.FurnitureCatalogEntry, bool) {
	f, ok := c.furniture[id]
	if ok {
		f.RoomTypes = append([]entities.RoomType(nil), f.RoomTypes...)
	}
	return f, ok
}

// Materials returns every material ordered by ID.
func (c *Catalog) Materials() []entities.MaterialCatalogEntry {
	out := make([]entities.MaterialCatalogEntry, 0, len(c.materialIDs))
	for _, id := range c.materialIDs {
		out = append(out, c.materials[id])
	}
	return out
}

// MaterialsIn returns the materials of one category ordered by ID.
func (c *Catalog) MaterialsIn(category entities.MaterialCategory) []entities.MaterialCatalogEntry {
	out := []entities.MaterialCatalogEntry{}
	for _, id := range c.materialIDs {
		if m := c.materials[id]; m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// FurnitureFor returns the furniture selectable for a room type ordered by ID.
func (c *Catalog) FurnitureFor(rt entities.RoomType) []entities.FurnitureCatalogEntry {
	out := []entities.FurnitureCatalogEntry{}
	for _, id := range c.furnitureIDs {
		if f, _ := c.Furniture(id); f.ValidFor(rt) {
			out = append(out, f)
		}
	}
	return out
}

// AllFurniture returns every furniture entry ordered by ID.
func (c *Catalog) AllFurniture() []entities.FurnitureCatalogEntry {
	out := make([]entities.FurnitureCatalogEntry, 0, len(c.furnitureIDs))
	for _, id := range c.furnitureIDs {
		f, _ := c.Furniture(id)
		out = append(out, f)
	}
	return out
}

// Fingerprint identifies the catalog content. Two catalogs with the same
// entries and prices share a fingerprint regardless of load order.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

func (c *Catalog) computeFingerprint() string {
	h := xxhash.New()
	for _, id := range c.materialIDs {
		m := c.materials[id]
		_, _ = h.WriteString("m|" + id + "|" + string(m.Category) + "|" + formatPrice(m.UnitPrice) + "\n")
	}
	for _, id := range c.furnitureIDs {
		f := c.furniture[id]
		rooms := make([]string, 0, len(f.RoomTypes))
		for _, rt := range f.RoomTypes {
			rooms = append(rooms, string(rt))
		}
		sort.Strings(rooms)
		_, _ = h.WriteString("f|" + id + "|" + strings.Join(rooms, ",") + "|" + formatPrice(f.UnitPrice) + "\n")
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
