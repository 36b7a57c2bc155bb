package catalog

import "fmt"

type Category string

const (
	CategoryShampoo     Category = "shampoo"
	CategoryConditioner Category = "conditioner"
	CategoryTreatment   Category = "treatment"
	CategoryStyling     Category = "styling"
)

var validCategories = map[Category]bool{
	CategoryShampoo:     true,
	CategoryConditioner: true,
	CategoryTreatment:   true,
	CategoryStyling:     true,
}

// Wildcard marks a suitability set that accepts any profile value.
const Wildcard = "all"

// AvoidCondition excludes a product when every set field matches the profile.
type AvoidCondition struct {
	Porosity  string `json:"porosity,omitempty"`
	Thickness string `json:"thickness,omitempty"`
	Texture   string `json:"texture,omitempty"`
	MinDamage string `json:"min_damage,omitempty"` // level at or above which to avoid
	ScalpType string `json:"scalp_type,omitempty"`
	Reason    string `json:"reason"`
}

// ProductRecord is one static catalog entry. Seeded at process start and
// read-only for the life of the process.
type ProductRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Category    Category `json:"category"`
	Subcategory string   `json:"subcategory,omitempty"`

	SuitableCurlPatterns []string `json:"suitable_curl_patterns"`
	SuitablePorosity     []string `json:"suitable_porosity"`
	SuitableScalpTypes   []string `json:"suitable_scalp_types"`
	SuitableDamageLevels []string `json:"suitable_damage_levels"`

	AvoidIf        []AvoidCondition `json:"avoid_if,omitempty"`
	KeyIngredients []string         `json:"key_ingredients"`
	SafetyWarnings []string         `json:"safety_warnings,omitempty"`

	PriceTier      string  `json:"price_tier"`
	PriceMin       float64 `json:"price_min"`
	PriceMax       float64 `json:"price_max"`
	UsageFrequency string  `json:"usage_frequency,omitempty"`

	SulfateFree bool `json:"sulfate_free"`
	ParabenFree bool `json:"paraben_free"`
	CrueltyFree bool `json:"cruelty_free"`

	Rating            float64 `json:"rating"`
	ReviewsCount      int     `json:"reviews_count"`
	AvailabilityScore int     `json:"availability_score"`
}

func (p ProductRecord) validate() error {
	if p.ID == "" || p.Name == "" {
		return fmt.Errorf("product %q: id and name required", p.ID)
	}
	if !validCategories[p.Category] {
		return fmt.Errorf("product %q: unknown category %q", p.ID, p.Category)
	}
	if p.PriceMin > p.PriceMax {
		return fmt.Errorf("product %q: price_min %.2f exceeds price_max %.2f", p.ID, p.PriceMin, p.PriceMax)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("product %q: rating %.1f out of range [0,5]", p.ID, p.Rating)
	}
	return nil
}

// IngredientAxis classifies an ingredient on the protein/moisture balance;
// overload detection counts products per axis.
type IngredientAxis string

const (
	AxisNone     IngredientAxis = ""
	AxisProtein  IngredientAxis = "protein"
	AxisMoisture IngredientAxis = "moisture"
)

type IngredientRecord struct {
	Name          string         `json:"name"`
	Function      string         `json:"function"`
	Evidence      string         `json:"evidence"`
	SafetyProfile string         `json:"safety_profile,omitempty"`
	Axis          IngredientAxis `json:"axis,omitempty"`
	Subsumes      []string       `json:"subsumes,omitempty"`
	Warnings      []string       `json:"warnings,omitempty"`
}

// InteractionRule flags a risk when the matched product set concentrates on
// one axis, e.g. two or more protein-heavy picks in a single bundle.
type InteractionRule struct {
	Key         string         `json:"key"`
	Axis        IngredientAxis `json:"axis"`
	MinProducts int            `json:"min_products"`
	Warning     string         `json:"warning"`
	Signs       []string       `json:"signs"`
	Solution    string         `json:"solution"`
}
