package catalog

// seedProducts is the static product catalog, grouped by category. Suitability
// sets use the profile vocabulary (curl patterns 1a-4c, porosity low/normal/
// high, damage levels healthy/minimal/moderate/severe) with "all" as wildcard.
func seedProducts() []ProductRecord {
	return []ProductRecord{
		// --- shampoo ---
		{
			ID:                   "gentle_sulfate_free_cleanser",
			Name:                 "Gentle Sulfate-Free Cleanser",
			Brand:                "OGX",
			Category:             CategoryShampoo,
			Subcategory:          "moisturizing",
			SuitableCurlPatterns: []string{"2a", "2b", "2c", "3a", "3b", "3c", "4a", "4b", "4c"},
			SuitablePorosity:     []string{"normal", "high"},
			SuitableScalpTypes:   []string{"normal", "dry", "sensitive"},
			SuitableDamageLevels: []string{"healthy", "minimal", "moderate", "severe"},
			AvoidIf: []AvoidCondition{
				{Porosity: "low", Reason: "Low porosity hair (may cause buildup)"},
			},
			KeyIngredients: []string{"Cocamidopropyl Betaine", "Glycerin"},
			SafetyWarnings: []string{"May require longer lathering time than sulfate shampoos"},
			PriceTier:      "budget",
			PriceMin:       8, PriceMax: 15,
			UsageFrequency: "2-3 times per week for most hair types",
			SulfateFree:    true, ParabenFree: true, CrueltyFree: true,
			Rating: 4.3, ReviewsCount: 1890, AvailabilityScore: 95,
		},
		{
			ID:                   "clarifying_treatment_cleanser",
			Name:                 "Clarifying Treatment Cleanser",
			Brand:                "Suave",
			Category:             CategoryShampoo,
			Subcategory:          "clarifying",
			SuitableCurlPatterns: []string{Wildcard},
			SuitablePorosity:     []string{Wildcard},
			SuitableScalpTypes:   []string{"oily", "normal"},
			SuitableDamageLevels: []string{"healthy", "minimal", "moderate"},
			AvoidIf: []AvoidCondition{
				{MinDamage: "severe", Reason: "Severely damaged hair cannot tolerate strong surfactants"},
			},
			KeyIngredients: []string{"Sodium C14-16 Olefin Sulfonate", "Citric Acid"},
			SafetyWarnings: []string{
				"Do not use more than once per week",
				"Always follow with deep conditioning treatment",
			},
			PriceTier: "budget",
			PriceMin:  6, PriceMax: 12,
			UsageFrequency: "Once every 2-4 weeks or as needed",
			Rating:         3.9, ReviewsCount: 1120, AvailabilityScore: 99,
		},
		{
			ID:                   "daily_moisture_shampoo",
			Name:                 "Daily Moisture Shampoo",
			Brand:                "Pantene",
			Category:             CategoryShampoo,
			Subcategory:          "moisturizing",
			SuitableCurlPatterns: []string{"1a", "1b", "1c", "2a", "2b"},
			SuitablePorosity:     []string{"low", "normal"},
			SuitableScalpTypes:   []string{"normal", "dry"},
			SuitableDamageLevels: []string{"healthy", "minimal"},
			KeyIngredients:       []string{"Panthenol", "Glycerin"},
			PriceTier:            "budget",
			PriceMin:             5.99, PriceMax: 7.99,
			UsageFrequency: "Daily or every other day",
			Rating:         4.2, ReviewsCount: 2340, AvailabilityScore: 98,
		},
		{
			ID:                   "volumizing_shampoo",
			Name:                 "Volumizing Shampoo",
			Brand:                "L'Oreal Paris",
			Category:             CategoryShampoo,
			Subcategory:          "volumizing",
			SuitableCurlPatterns: []string{"1a", "1b", "1c", "2a"},
			SuitablePorosity:     []string{"low", "normal"},
			SuitableScalpTypes:   []string{"normal", "oily"},
			SuitableDamageLevels: []string{"healthy", "minimal"},
			AvoidIf: []AvoidCondition{
				{Thickness: "coarse", Reason: "Too lightweight to manage coarse strands"},
			},
			KeyIngredients: []string{"Salicylic Acid", "Citric Acid"},
			PriceTier:      "budget",
			PriceMin:       4.99, PriceMax: 6.49,
			Rating: 4.1, ReviewsCount: 1450, AvailabilityScore: 97,
		},
		{
			ID:                   "scalp_balance_shampoo",
			Name:                 "Scalp Balance Anti-Dandruff Shampoo",
			Brand:                "Head & Shoulders",
			Category:             CategoryShampoo,
			Subcategory:          "scalp_care",
			SuitableCurlPatterns: []string{Wildcard},
			SuitablePorosity:     []string{Wildcard},
			SuitableScalpTypes:   []string{"flaky", "oily", "sensitive"},
			SuitableDamageLevels: []string{Wildcard},
			KeyIngredients:       []string{"Zinc Pyrithione", "Niacinamide"},
			PriceTier:            "budget",
			PriceMin:             7, PriceMax: 11,
			UsageFrequency: "2-3 times per week until flaking resolves",
			SulfateFree:    false,
			Rating:         4.4, ReviewsCount: 3210, AvailabilityScore: 99,
		},

		// --- conditioner ---
		{
			ID:                   "smooth_silky_conditioner",
			Name:                 "Smooth & Silky Conditioner",
			Brand:                "TRESemme",
			Category:             CategoryConditioner,
			Subcategory:          "smoothing",
			SuitableCurlPatterns: []string{"2a", "2b", "2c", "3a"},
			SuitablePorosity:     []string{"normal", "high"},
			SuitableScalpTypes:   []string{"normal", "dry"},
			SuitableDamageLevels: []string{"healthy", "minimal", "moderate"},
			AvoidIf: []AvoidCondition{
				{Porosity: "low", Reason: "Silicone film builds up on low porosity hair"},
			},
			KeyIngredients: []string{"Keratin Amino Acids", "Argan Oil", "Heavy Silicones"},
			PriceTier:      "budget",
			PriceMin:       5, PriceMax: 8,
			Rating: 4.2, ReviewsCount: 1980, AvailabilityScore: 98,
		},
		{
			ID:                   "lightweight_daily_conditioner",
			Name:                 "Lightweight Daily Conditioner",
			Brand:                "Garnier",
			Category:             CategoryConditioner,
			Subcategory:          "daily",
			SuitableCurlPatterns: []string{Wildcard},
			SuitablePorosity:     []string{"low", "normal"},
			SuitableScalpTypes:   []string{Wildcard},
			SuitableDamageLevels: []string{"healthy", "minimal"},
			KeyIngredients:       []string{"Panthenol", "Silk Proteins"},
			PriceTier:            "budget",
			PriceMin:             4.5, PriceMax: 7,
			UsageFrequency: "Every wash",
			Rating:         4.0, ReviewsCount: 860, AvailabilityScore: 96,
		},
		{
			ID:                   "rich_repair_conditioner",
			Name:                 "Rich Repair Conditioner",
			Brand:                "Shea Moisture",
			Category:             CategoryConditioner,
			Subcategory:          "repair",
			SuitableCurlPatterns: []string{"3a", "3b", "3c", "4a", "4b", "4c"},
			SuitablePorosity:     []string{"normal", "high"},
			SuitableScalpTypes:   []string{"normal", "dry"},
			SuitableDamageLevels: []string{"minimal", "moderate", "severe"},
			AvoidIf: []AvoidCondition{
				{Thickness: "fine", Porosity: "low", Reason: "Weighs down fine low-porosity hair"},
			},
			KeyIngredients: []string{"Shea Butter", "Argan Oil"},
			PriceTier:      "mid_range",
			PriceMin:       10, PriceMax: 16,
			UsageFrequency: "Every wash, mid-length to ends",
			SulfateFree:    true, ParabenFree: true, CrueltyFree: true,
			Rating: 4.5, ReviewsCount: 2750, AvailabilityScore: 93,
		},
		{
			ID:                   "color_protect_conditioner",
			Name:                 "Color Protect Conditioner",
			Brand:                "Redken",
			Category:             CategoryConditioner,
			Subcategory:          "color_care",
			SuitableCurlPatterns: []string{Wildcard},
			SuitablePorosity:     []string{"normal", "high"},
			SuitableScalpTypes:   []string{Wildcard},
			SuitableDamageLevels: []string{"minimal", "moderate", "severe"},
			KeyIngredients:       []string{"Ceramides", "Hydrolyzed Wheat Protein"},
			PriceTier:            "mid_range",
			PriceMin:             18, PriceMax: 26,
			SulfateFree: true, ParabenFree: true,
			Rating: 4.5, ReviewsCount: 1430, AvailabilityScore: 88,
		},

		// --- treatment ---
		{
			ID:                   "protein_reconstructor",
			Name:                 "Protein Reconstructing Treatment",
			Brand:                "ApHogee",
			Category:             CategoryTreatment,
			Subcategory:          "protein",
			SuitableCurlPatterns: []string{Wildcard},
			SuitablePorosity:     []string{"high"},
			SuitableScalpTypes:   []string{Wildcard},
			SuitableDamageLevels: []string{"moderate", "severe"},
			AvoidIf: []AvoidCondition{
				{Porosity: "low", Reason: "Low porosity hair without damage gains nothing from protein fill"},
			},
			KeyIngredients: []string{"Hydrolyzed Wheat Protein", "Keratin Amino Acids"},
			SafetyWarnings: []string{
				"Discontinue if hair becomes stiff or breaks more",
			},
			PriceTier: "mid_range",
			PriceMin:  15, PriceMax: 25,
			UsageFrequency: "Every 2-4 weeks depending on damage level",
			Rating:         4.6, ReviewsCount: 3105, AvailabilityScore: 85,
		},
		{
			ID:                   "intensive_moisture_mask",
			Name:                 "Intensive Moisture Treatment",
			Brand:                "Moroccan Oil",
			Category:             CategoryTreatment,
			Subcategory:          "moisture",
			SuitableCurlPatterns: []string{"2c", "3a", "3b", "3c", "4a", "4b", "4c"},
			SuitablePorosity:     []string{"normal", "high"},
			SuitableScalpTypes:   []string{"normal", "dry"},
			SuitableDamageLevels: []string{"minimal", "moderate", "severe"},
			AvoidIf: []AvoidCondition{
				{Porosity: "low", Reason: "Occlusive butters sit on low porosity hair"},
				{Thickness: "fine", Reason: "Too heavy for fine hair prone to weighing down"},
			},
			KeyIngredients: []string{"Shea Butter", "Hyaluronic Acid", "Ceramides"},
			SafetyWarnings: []string{"Rinse thoroughly to avoid buildup"},
			PriceTier:      "mid_range",
			PriceMin:       18, PriceMax: 28,
			UsageFrequency: "Weekly for dry hair, bi-weekly for normal hair",
			CrueltyFree:    true,
			Rating:         4.4, ReviewsCount: 2210, AvailabilityScore: 87,
		},
		{
			ID:                   "bond_repair_treatment",
			Name:                 "Bond Repair Treatment",
			Brand:                "Olaplex",
			Category:             CategoryTreatment,
			Subcategory:          "bond_repair",
			SuitableCurlPatterns: []string{Wildcard},
			SuitablePorosity:     []string{Wildcard},
			SuitableScalpTypes:   []string{Wildcard},
			SuitableDamageLevels: []string{"moderate", "severe"},
			KeyIngredients:       []string{"Keratin Amino Acids", "Ceramides"},
			PriceTier:            "premium",
			PriceMin:             28, PriceMax: 30,
			UsageFrequency: "Weekly until breakage subsides",
			SulfateFree:    true, ParabenFree: true, CrueltyFree: true,
			Rating: 4.6, ReviewsCount: 8840, AvailabilityScore: 90,
		},
		{
			ID:                   "scalp_soothing_serum",
			Name:                 "Scalp Soothing Serum",
			Brand:                "The Inkey List",
			Category:             CategoryTreatment,
			Subcategory:          "scalp_care",
			SuitableCurlPatterns: []string{Wildcard},
			SuitablePorosity:     []string{Wildcard},
			SuitableScalpTypes:   []string{"sensitive", "flaky", "dry"},
			SuitableDamageLevels: []string{Wildcard},
			KeyIngredients:       []string{"Niacinamide", "Hyaluronic Acid"},
			PriceTier:            "budget",
			PriceMin:             11, PriceMax: 14,
			UsageFrequency: "2-3 times per week on dry scalp",
			CrueltyFree:    true,
			Rating:         4.1, ReviewsCount: 640, AvailabilityScore: 80,
		},

		// --- styling ---
		{
			ID:                   "lightweight_curl_cream",
			Name:                 "Lightweight Curl Enhancing Cream",
			Brand:                "DevaCurl",
			Category:             CategoryStyling,
			Subcategory:          "curl_definition",
			SuitableCurlPatterns: []string{"2a", "2b", "2c", "3a"},
			SuitablePorosity:     []string{"normal", "high"},
			SuitableScalpTypes:   []string{Wildcard},
			SuitableDamageLevels: []string{"healthy", "minimal", "moderate"},
			AvoidIf: []AvoidCondition{
				{Texture: "straight", Reason: "Weighs down straight hair"},
				{Porosity: "low", Reason: "Film formers build up on low porosity hair"},
			},
			KeyIngredients: []string{"Flax Seed Extract", "Argan Oil"},
			SafetyWarnings: []string{"Start with small amount to avoid weighing down curls"},
			PriceTier:      "mid_range",
			PriceMin:       16, PriceMax: 24,
			CrueltyFree:    true,
			Rating:         4.3, ReviewsCount: 1540, AvailabilityScore: 82,
		},
		{
			ID:                   "defining_gel_strong_hold",
			Name:                 "Strong Hold Defining Gel",
			Brand:                "Eco Style",
			Category:             CategoryStyling,
			Subcategory:          "hold",
			SuitableCurlPatterns: []string{"3a", "3b", "3c", "4a", "4b", "4c"},
			SuitablePorosity:     []string{Wildcard},
			SuitableScalpTypes:   []string{Wildcard},
			SuitableDamageLevels: []string{"healthy", "minimal", "moderate"},
			KeyIngredients:       []string{"Glycerin"},
			PriceTier:            "budget",
			PriceMin:             3.5, PriceMax: 6,
			Rating: 4.5, ReviewsCount: 5320, AvailabilityScore: 97,
		},
		{
			ID:                   "heat_protectant_spray",
			Name:                 "Thermal Shield Heat Protectant",
			Brand:                "TRESemme",
			Category:             CategoryStyling,
			Subcategory:          "heat_protection",
			SuitableCurlPatterns: []string{Wildcard},
			SuitablePorosity:     []string{Wildcard},
			SuitableScalpTypes:   []string{Wildcard},
			SuitableDamageLevels: []string{Wildcard},
			AvoidIf: []AvoidCondition{
				{MinDamage: "severe", Reason: "Severely damaged hair should pause heat styling entirely"},
			},
			KeyIngredients: []string{"Panthenol", "Drying Alcohols"},
			PriceTier:      "budget",
			PriceMin:       5, PriceMax: 9,
			UsageFrequency: "Before every heat-styling session",
			Rating:         4.2, ReviewsCount: 2680, AvailabilityScore: 98,
		},
		{
			ID:                   "smoothing_serum",
			Name:                 "Anti-Frizz Smoothing Serum",
			Brand:                "John Frieda",
			Category:             CategoryStyling,
			Subcategory:          "smoothing",
			SuitableCurlPatterns: []string{"1a", "1b", "1c", "2a", "2b", "2c"},
			SuitablePorosity:     []string{"normal", "high"},
			SuitableScalpTypes:   []string{Wildcard},
			SuitableDamageLevels: []string{"healthy", "minimal", "moderate"},
			AvoidIf: []AvoidCondition{
				{Porosity: "low", Reason: "Silicone serum coats low porosity hair"},
			},
			KeyIngredients: []string{"Heavy Silicones", "Argan Oil"},
			PriceTier:      "budget",
			PriceMin:       7, PriceMax: 11,
			Rating: 4.0, ReviewsCount: 1975, AvailabilityScore: 94,
		},
	}
}
