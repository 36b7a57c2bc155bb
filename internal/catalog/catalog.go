package catalog

import (
	"fmt"
	"strings"
)

// Version identifies the seed data revision carried in the binary.
const Version = "2024.2"

// Catalog bundles the product list and ingredient knowledge base. Loaded once
// at process start and never mutated; concurrent readers need no
// coordination.
type Catalog struct {
	Products     []ProductRecord
	ingredients  map[string]IngredientRecord
	Interactions []InteractionRule
}

// Load builds the catalog from compiled-in seed data and validates every
// record. A seed inconsistency is a startup failure, not a request failure.
func Load() (*Catalog, error) {
	c := New(seedProducts(), seedIngredients(), seedInteractions())
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// New assembles a catalog from explicit records; tests use it to build
// fixtures with controlled coverage.
func New(products []ProductRecord, ingredients []IngredientRecord, interactions []InteractionRule) *Catalog {
	idx := make(map[string]IngredientRecord, len(ingredients))
	for _, ing := range ingredients {
		idx[normalizeIngredientName(ing.Name)] = ing
		for _, alias := range ing.Subsumes {
			idx[normalizeIngredientName(alias)] = ing
		}
	}
	return &Catalog{
		Products:     products,
		ingredients:  idx,
		Interactions: interactions,
	}
}

func (c *Catalog) Validate() error {
	seen := map[string]bool{}
	for _, p := range c.Products {
		if err := p.validate(); err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
		if seen[p.ID] {
			return fmt.Errorf("catalog: duplicate product id %q", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// Ingredient resolves a name against the knowledge base, following subsumed
// aliases ("Sodium Lauryl Sulfate" resolves to the sulfates entry). The
// boolean reports whether the ingredient is known.
func (c *Catalog) Ingredient(name string) (IngredientRecord, bool) {
	rec, ok := c.ingredients[normalizeIngredientName(name)]
	return rec, ok
}

// ByCategory returns the products in one category, in seed order.
func (c *Catalog) ByCategory(cat Category) []ProductRecord {
	var out []ProductRecord
	for _, p := range c.Products {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

func normalizeIngredientName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
