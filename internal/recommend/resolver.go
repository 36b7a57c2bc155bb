package recommend

import (
	"sort"

	"github.com/kuzanag1/strandly-backend/internal/analysis"
	"github.com/kuzanag1/strandly-backend/internal/catalog"
)

// DefaultMaxPerCategory caps the ranked list kept per product category.
const DefaultMaxPerCategory = 3

type Options struct {
	MaxPerCategory int
}

func (o Options) withDefaults() Options {
	if o.MaxPerCategory <= 0 {
		o.MaxPerCategory = DefaultMaxPerCategory
	}
	return o
}

// CategoryResult is the ranked survivor list for one category. An empty list
// with the coverage flag set is the in-band error a caller must detect; a
// category is never silently omitted.
type CategoryResult struct {
	Products                    []catalog.ProductRecord `json:"products"`
	InsufficientCatalogCoverage bool                    `json:"insufficient_catalog_coverage"`
}

type InteractionFlag struct {
	Key          string   `json:"key"`
	Warning      string   `json:"warning"`
	Signs        []string `json:"signs"`
	Solution     string   `json:"solution"`
	ProductCount int      `json:"product_count"`
}

// Bundle is the resolver's complete output for one profile: always exactly
// the four fixed categories, plus aggregated warnings, interaction flags,
// and a routine cadence.
type Bundle struct {
	Cleansing        CategoryResult    `json:"cleansing"`
	Conditioning     CategoryResult    `json:"conditioning"`
	Styling          CategoryResult    `json:"styling"`
	Treatments       CategoryResult    `json:"treatments"`
	SafetyWarnings   []string          `json:"safety_warnings"`
	InteractionFlags []InteractionFlag `json:"interaction_flags"`
	Routine          Routine           `json:"routine"`
}

// Resolve matches the profile against the catalog and knowledge base. Pure
// over its inputs: re-invoking with the same profile and catalog snapshot
// yields a byte-identical bundle.
func Resolve(p analysis.Profile, d analysis.DamageAssessment, cat *catalog.Catalog, opts Options) Bundle {
	opts = opts.withDefaults()

	b := Bundle{
		Cleansing:    resolveCategory(p, d, cat, catalog.CategoryShampoo, opts),
		Conditioning: resolveCategory(p, d, cat, catalog.CategoryConditioner, opts),
		Styling:      resolveCategory(p, d, cat, catalog.CategoryStyling, opts),
		Treatments:   resolveCategory(p, d, cat, catalog.CategoryTreatment, opts),
	}

	selected := make([]catalog.ProductRecord, 0,
		len(b.Cleansing.Products)+len(b.Conditioning.Products)+len(b.Styling.Products)+len(b.Treatments.Products))
	selected = append(selected, b.Cleansing.Products...)
	selected = append(selected, b.Conditioning.Products...)
	selected = append(selected, b.Styling.Products...)
	selected = append(selected, b.Treatments.Products...)

	b.SafetyWarnings = aggregateWarnings(selected, cat)
	b.InteractionFlags = interactionFlags(selected, cat)
	b.Routine = buildRoutine(p, d)
	return b
}

func resolveCategory(p analysis.Profile, d analysis.DamageAssessment, cat *catalog.Catalog, category catalog.Category, opts Options) CategoryResult {
	survivors := []catalog.ProductRecord{}
	for _, prod := range cat.ByCategory(category) {
		if !suitable(p, d, prod) {
			continue
		}
		if avoided(p, d, prod.AvoidIf) {
			continue
		}
		survivors = append(survivors, prod)
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		a, b := survivors[i], survivors[j]
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.ReviewsCount != b.ReviewsCount {
			return a.ReviewsCount > b.ReviewsCount
		}
		return a.PriceMin < b.PriceMin
	})

	if len(survivors) > opts.MaxPerCategory {
		survivors = survivors[:opts.MaxPerCategory]
	}
	return CategoryResult{
		Products:                    survivors,
		InsufficientCatalogCoverage: len(survivors) == 0,
	}
}

func suitable(p analysis.Profile, d analysis.DamageAssessment, prod catalog.ProductRecord) bool {
	if !inSet(p.CurlPattern, prod.SuitableCurlPatterns) {
		return false
	}
	if !inSet(string(p.Porosity), prod.SuitablePorosity) {
		return false
	}
	if !scalpCompatible(p.ScalpTypes, prod.SuitableScalpTypes) {
		return false
	}
	if !inSet(string(d.Level), prod.SuitableDamageLevels) {
		return false
	}
	return true
}

// inSet reports membership, with an empty or wildcard set accepting anything.
func inSet(val string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == catalog.Wildcard || a == val {
			return true
		}
	}
	return false
}

func scalpCompatible(scalp []analysis.ScalpType, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == catalog.Wildcard {
			return true
		}
		for _, s := range scalp {
			if a == string(s) {
				return true
			}
		}
	}
	return false
}

var damageOrder = map[string]int{
	string(analysis.DamageLevelHealthy):  0,
	string(analysis.DamageLevelMinimal):  1,
	string(analysis.DamageLevelModerate): 2,
	string(analysis.DamageLevelSevere):   3,
}

func avoided(p analysis.Profile, d analysis.DamageAssessment, conds []catalog.AvoidCondition) bool {
	for _, c := range conds {
		if avoidMatches(p, d, c) {
			return true
		}
	}
	return false
}

// avoidMatches requires every set field of the condition to hold against the
// profile; an empty condition never matches.
func avoidMatches(p analysis.Profile, d analysis.DamageAssessment, c catalog.AvoidCondition) bool {
	matched := false
	if c.Porosity != "" {
		if c.Porosity != string(p.Porosity) {
			return false
		}
		matched = true
	}
	if c.Thickness != "" {
		if c.Thickness != string(p.Thickness) {
			return false
		}
		matched = true
	}
	if c.Texture != "" {
		if c.Texture != string(p.Texture) {
			return false
		}
		matched = true
	}
	if c.ScalpType != "" {
		if !p.HasScalpType(analysis.ScalpType(c.ScalpType)) {
			return false
		}
		matched = true
	}
	if c.MinDamage != "" {
		if damageOrder[string(d.Level)] < damageOrder[c.MinDamage] {
			return false
		}
		matched = true
	}
	return matched
}

// aggregateWarnings collects safety warnings from every matched product and
// every known key ingredient, deduplicated and sorted so the set is stable
// across runs.
func aggregateWarnings(selected []catalog.ProductRecord, cat *catalog.Catalog) []string {
	seen := map[string]bool{}
	out := []string{}
	add := func(w string) {
		if w != "" && !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	for _, prod := range selected {
		for _, w := range prod.SafetyWarnings {
			add(w)
		}
		for _, name := range prod.KeyIngredients {
			if ing, ok := cat.Ingredient(name); ok {
				for _, w := range ing.Warnings {
					add(w)
				}
			}
		}
	}
	sort.Strings(out)
	return out
}

// interactionFlags counts, per axis, how many selected products carry an
// ingredient on that axis (a product counts once per axis) and raises every
// rule whose threshold the count meets.
func interactionFlags(selected []catalog.ProductRecord, cat *catalog.Catalog) []InteractionFlag {
	counts := map[catalog.IngredientAxis]int{}
	for _, prod := range selected {
		axes := map[catalog.IngredientAxis]bool{}
		for _, name := range prod.KeyIngredients {
			if ing, ok := cat.Ingredient(name); ok && ing.Axis != catalog.AxisNone {
				axes[ing.Axis] = true
			}
		}
		for axis := range axes {
			counts[axis]++
		}
	}

	flags := []InteractionFlag{}
	for _, rule := range cat.Interactions {
		if n := counts[rule.Axis]; n >= rule.MinProducts {
			flags = append(flags, InteractionFlag{
				Key:          rule.Key,
				Warning:      rule.Warning,
				Signs:        rule.Signs,
				Solution:     rule.Solution,
				ProductCount: n,
			})
		}
	}
	return flags
}
