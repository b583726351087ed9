package budget

import "interior_budget/internal/domain/entities"

// ApplyMaterialSelection returns selections with next applied.
//
// When next belongs to an exclusive category (WALL, FLOOR, CEILING) any
// earlier selection in that category is dropped and next is appended.
// Fixtures and unknown materials are always appended. The input slice is
// left untouched.
func (c *Catalog) ApplyMaterialSelection(selections []entities.MaterialSelection, next entities.MaterialSelection) []entities.MaterialSelection {
	out := make([]entities.MaterialSelection, 0, len(selections)+1)
	nextEntry, known := c.materials[next.MaterialID]
	for _, s := range selections {
		if known && nextEntry.Category.Exclusive() {
			if cur, ok := c.materials[s.MaterialID]; ok && cur.Category == nextEntry.Category {
				continue
			}
		}
		out = append(out, s)
	}
	return append(out, next)
}

// NormalizeMaterials folds selections through ApplyMaterialSelection in
// order, so the last selection of an exclusive category wins.
func (c *Catalog) NormalizeMaterials(selections []entities.MaterialSelection) []entities.MaterialSelection {
	out := make([]entities.MaterialSelection, 0, len(selections))
	for _, s := range selections {
		out = c.ApplyMaterialSelection(out, s)
	}
	return out
}

// ApplyFurnitureSelection sets the quantity of next.FurnitureID. An existing
// entry keeps its position; a quantity below one removes the piece.
func ApplyFurnitureSelection(selections []entities.FurnitureSelection, next entities.FurnitureSelection) []entities.FurnitureSelection {
	out := make([]entities.FurnitureSelection, 0, len(selections)+1)
	found := false
	for _, s := range selections {
		if s.FurnitureID != next.FurnitureID {
			out = append(out, s)
			continue
		}
		found = true
		if next.Quantity >= 1 {
			out = append(out, next)
		}
	}
	if !found && next.Quantity >= 1 {
		out = append(out, next)
	}
	return out
}

// PruneFurniture drops the pieces that are unknown or not valid for rt.
// Callers use it when the room type changes; Estimate never prunes.
func (c *Catalog) PruneFurniture(rt entities.RoomType, selections []entities.FurnitureSelection) []entities.FurnitureSelection {
	out := make([]entities.FurnitureSelection, 0, len(selections))
	for _, s := range selections {
		if f, ok := c.furniture[s.FurnitureID]; ok && f.ValidFor(rt) {
			out = append(out, s)
		}
	}
	return out
}
