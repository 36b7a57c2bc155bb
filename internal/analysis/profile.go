package analysis

import (
	"strings"
)

type Texture string

const (
	TextureStraight Texture = "straight"
	TextureWavy     Texture = "wavy"
	TextureCurly    Texture = "curly"
	TextureCoily    Texture = "coily"
)

type Thickness string

const (
	ThicknessFine   Thickness = "fine"
	ThicknessMedium Thickness = "medium"
	ThicknessCoarse Thickness = "coarse"
)

type Porosity string

const (
	PorosityLow    Porosity = "low"
	PorosityNormal Porosity = "normal"
	PorosityHigh   Porosity = "high"
)

type ScalpType string

const (
	ScalpNormal    ScalpType = "normal"
	ScalpOily      ScalpType = "oily"
	ScalpDry       ScalpType = "dry"
	ScalpSensitive ScalpType = "sensitive"
	ScalpFlaky     ScalpType = "flaky"
)

type DamageIndicator string

const (
	DamageBleaching         DamageIndicator = "bleaching"
	DamageHeatDaily         DamageIndicator = "heat_styling_daily"
	DamageHeatFrequent      DamageIndicator = "heat_styling_frequent"
	DamageColoring          DamageIndicator = "coloring"
	DamageChemicalRelaxing  DamageIndicator = "chemical_relaxing"
	DamageBreakageExcessive DamageIndicator = "breakage_excessive"
	DamageBreakageModerate  DamageIndicator = "breakage_moderate"
	DamageSunExposureHigh   DamageIndicator = "sun_exposure_high"
	DamageChlorineFrequent  DamageIndicator = "chlorine_frequent"
)

// Core profile fields whose presence feeds confidence scoring.
const (
	FieldTexture          = "texture"
	FieldThickness        = "thickness"
	FieldPorosity         = "porosity"
	FieldDamageIndicators = "damage_indicators"
)

var CoreFields = []string{FieldTexture, FieldThickness, FieldPorosity, FieldDamageIndicators}

// Profile is the normalized snapshot of one quiz submission. Every field holds
// a value after Normalize; nothing downstream ever sees raw quiz input.
type Profile struct {
	Texture            Texture           `json:"texture"`
	Thickness          Thickness         `json:"thickness"`
	CurlPattern        string            `json:"curl_pattern"`
	Porosity           Porosity          `json:"porosity"`
	ScalpTypes         []ScalpType       `json:"scalp_types"`
	DamageIndicators   []DamageIndicator `json:"damage_indicators"`
	LifestyleFactors   []string          `json:"lifestyle_factors"`
	SuppliedFields     map[string]bool   `json:"supplied_fields"`
	ConflictingAnswers bool              `json:"conflicting_answers"`
}

func (p Profile) HasScalpType(s ScalpType) bool {
	for _, st := range p.ScalpTypes {
		if st == s {
			return true
		}
	}
	return false
}

func (p Profile) HasIndicator(d DamageIndicator) bool {
	for _, di := range p.DamageIndicators {
		if di == d {
			return true
		}
	}
	return false
}

// ScalpIssueCount counts non-normal scalp conditions.
func (p Profile) ScalpIssueCount() int {
	n := 0
	for _, st := range p.ScalpTypes {
		if st != ScalpNormal {
			n++
		}
	}
	return n
}

// ChemicalHistoryCount counts chemical-process indicators (bleaching,
// coloring, relaxing); heat and mechanical stress do not count.
func (p Profile) ChemicalHistoryCount() int {
	n := 0
	for _, di := range p.DamageIndicators {
		switch di {
		case DamageBleaching, DamageColoring, DamageChemicalRelaxing:
			n++
		}
	}
	return n
}

// Normalize converts a raw quiz payload into a Profile. It never fails:
// missing or unrecognized fields fall back to documented defaults (texture
// straight, thickness medium, porosity normal, scalp {normal}, empty damage
// and lifestyle sets) and are recorded as defaulted in SuppliedFields.
func Normalize(raw map[string]any) Profile {
	p := Profile{
		Texture:          TextureStraight,
		Thickness:        ThicknessMedium,
		Porosity:         PorosityNormal,
		ScalpTypes:       []ScalpType{ScalpNormal},
		DamageIndicators: []DamageIndicator{},
		LifestyleFactors: []string{},
		SuppliedFields: map[string]bool{
			FieldTexture:          false,
			FieldThickness:        false,
			FieldPorosity:         false,
			FieldDamageIndicators: false,
		},
	}

	if v, ok := enumField(raw, []string{"hair_texture", "texture", "hair_type", "hairType"},
		"straight", "wavy", "curly", "coily"); ok {
		p.Texture = Texture(v)
		p.SuppliedFields[FieldTexture] = true
	}

	if v, ok := enumField(raw, []string{"hair_thickness", "thickness"},
		"fine", "medium", "coarse"); ok {
		p.Thickness = Thickness(v)
		p.SuppliedFields[FieldThickness] = true
	}

	if v, ok := enumField(raw, []string{"porosity", "hair_porosity"},
		"low", "normal", "medium", "high"); ok {
		if v == "medium" {
			v = "normal"
		}
		p.Porosity = Porosity(v)
		p.SuppliedFields[FieldPorosity] = true
	}

	if v := stringField(raw, "curl_pattern", "curlPattern"); v != "" {
		p.CurlPattern = strings.ToLower(v)
	} else {
		p.CurlPattern = defaultCurlPattern(p.Texture)
	}

	if scalp := normalizeScalp(raw); len(scalp) > 0 {
		p.ScalpTypes = scalp
	}

	if indicators, supplied := normalizeDamage(raw); supplied {
		p.DamageIndicators = indicators
		p.SuppliedFields[FieldDamageIndicators] = true
	}

	for _, f := range listField(raw, "lifestyle_factors", "lifestyleFactors") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" {
			p.LifestyleFactors = append(p.LifestyleFactors, f)
		}
	}

	if boolField(raw, "conflicting_answers", "assessment_conflicts") {
		p.ConflictingAnswers = true
	}
	if conflictsDetected(p) {
		p.ConflictingAnswers = true
	}

	return p
}

func defaultCurlPattern(t Texture) string {
	switch t {
	case TextureWavy:
		return "2b"
	case TextureCurly:
		return "3b"
	case TextureCoily:
		return "4b"
	default:
		return "1a"
	}
}

func normalizeScalp(raw map[string]any) []ScalpType {
	seen := map[ScalpType]bool{}
	var out []ScalpType
	add := func(s ScalpType) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	for _, v := range listField(raw, "scalp_type", "scalp_types", "scalpType") {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "oily":
			add(ScalpOily)
		case "dry":
			add(ScalpDry)
		case "sensitive":
			add(ScalpSensitive)
		case "flaky":
			add(ScalpFlaky)
		case "normal":
			add(ScalpNormal)
		}
	}

	// Some quiz revisions ship scalp traits as individual yes/no questions.
	if boolField(raw, "scalp_oily") {
		add(ScalpOily)
	}
	if boolField(raw, "scalp_dry") {
		add(ScalpDry)
	}
	if boolField(raw, "scalp_sensitive") {
		add(ScalpSensitive)
	}
	if boolField(raw, "scalp_flaky") {
		add(ScalpFlaky)
	}
	return out
}

func normalizeDamage(raw map[string]any) ([]DamageIndicator, bool) {
	seen := map[DamageIndicator]bool{}
	out := []DamageIndicator{}
	supplied := false
	add := func(d DamageIndicator) {
		supplied = true
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}

	for _, v := range listField(raw, "chemical_treatments", "damage_indicators", "chemicalTreatments") {
		switch canonicalToken(v) {
		case "bleaching":
			add(DamageBleaching)
		case "coloring", "color", "highlights":
			add(DamageColoring)
		case "chemical_relaxing", "relaxing", "perming":
			add(DamageChemicalRelaxing)
		case "heat_styling", "heat":
			// A bare heat-styling answer carries no frequency; treat it as
			// daily, the conservative reading.
			add(DamageHeatDaily)
		case "none":
			supplied = true
		}
	}

	switch canonicalToken(stringField(raw, "heat_styling", "heatStyling")) {
	case "daily":
		add(DamageHeatDaily)
	case "frequent":
		add(DamageHeatFrequent)
	case "never", "rare", "rarely":
		supplied = true
	}

	switch canonicalToken(stringField(raw, "hair_breakage", "hairBreakage")) {
	case "excessive":
		add(DamageBreakageExcessive)
	case "moderate":
		add(DamageBreakageModerate)
	case "none", "minimal":
		supplied = true
	}

	if canonicalToken(stringField(raw, "sun_exposure", "sunExposure")) == "high" {
		add(DamageSunExposureHigh)
	}
	if canonicalToken(stringField(raw, "chlorine_exposure", "chlorineExposure")) == "frequent" {
		add(DamageChlorineFrequent)
	}

	return out, supplied
}

// conflictsDetected catches self-reports that cannot both be true, e.g. a
// straight texture paired with a type-4 curl pattern.
func conflictsDetected(p Profile) bool {
	if p.CurlPattern == "" {
		return false
	}
	family := p.CurlPattern[0]
	switch p.Texture {
	case TextureStraight:
		return family == '3' || family == '4'
	case TextureCoily:
		return family == '1'
	}
	return false
}

// --- raw payload coercion helpers ---

func stringField(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

func enumField(raw map[string]any, keys []string, allowed ...string) (string, bool) {
	v := strings.ToLower(stringField(raw, keys...))
	for _, a := range allowed {
		if v == a {
			return v, true
		}
	}
	return "", false
}

func listField(raw map[string]any, keys ...string) []string {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case []string:
			return t
		case []any:
			out := make([]string, 0, len(t))
			for _, e := range t {
				if s, ok := e.(string); ok {
					out = append(out, s)
				}
			}
			return out
		case string:
			if strings.TrimSpace(t) == "" {
				return nil
			}
			parts := strings.Split(t, ",")
			out := make([]string, 0, len(parts))
			for _, p := range parts {
				out = append(out, strings.TrimSpace(p))
			}
			return out
		}
	}
	return nil
}

func boolField(raw map[string]any, keys ...string) bool {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case bool:
			if v {
				return true
			}
		case string:
			switch strings.ToLower(strings.TrimSpace(v)) {
			case "yes", "true", "1", "on":
				return true
			}
		}
	}
	return false
}

func canonicalToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
