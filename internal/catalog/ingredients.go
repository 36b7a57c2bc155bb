package catalog

// seedIngredients is the ingredient knowledge base: evidence statements,
// safety notes, and the protein/moisture axis used for overload detection.
func seedIngredients() []IngredientRecord {
	return []IngredientRecord{
		{
			Name:          "Cocamidopropyl Betaine",
			Function:      "Mild surfactant",
			Evidence:      "Proven gentle alternative to sulfates, less stripping",
			SafetyProfile: "Well tolerated; rare sensitivity in coconut-allergic users",
			Warnings:      []string{"Patch test if sensitive to coconut-derived ingredients"},
		},
		{
			Name:          "Glycerin",
			Function:      "Humectant",
			Evidence:      "Draws moisture from environment to hair shaft",
			SafetyProfile: "Excellent safety record",
			Axis:          AxisMoisture,
		},
		{
			Name:          "Hydrolyzed Wheat Protein",
			Function:      "Temporary cuticle repair",
			Evidence:      "Small molecules can penetrate hair shaft to fill gaps",
			SafetyProfile: "Avoid with wheat allergy",
			Axis:          AxisProtein,
			Warnings:      []string{"Overuse can cause hair brittleness"},
		},
		{
			Name:          "Keratin Amino Acids",
			Function:      "Structural repair",
			Evidence:      "Matches natural hair protein structure",
			SafetyProfile: "Generally safe",
			Axis:          AxisProtein,
			Warnings:      []string{"Always balance with moisture treatments"},
		},
		{
			Name:          "Shea Butter",
			Function:      "Occlusive moisturizer",
			Evidence:      "Forms protective barrier, reduces trans-epidermal water loss",
			SafetyProfile: "Generally safe",
			Axis:          AxisMoisture,
			Warnings:      []string{"May be too heavy for fine, low-porosity hair"},
		},
		{
			Name:          "Hyaluronic Acid",
			Function:      "Humectant",
			Evidence:      "Holds up to 1000x its weight in water",
			SafetyProfile: "Excellent safety record, suitable for sensitive scalps",
			Axis:          AxisMoisture,
		},
		{
			Name:          "Ceramides",
			Function:      "Lipid replenishment",
			Evidence:      "Restores intercellular cement in hair cuticle",
			SafetyProfile: "Generally safe, rare allergic reactions",
			Axis:          AxisMoisture,
		},
		{
			Name:          "Niacinamide",
			Function:      "Scalp health, circulation",
			Evidence:      "Clinical studies show improved scalp circulation and hair diameter",
			SafetyProfile: "Well-tolerated, rare sensitivity at high concentrations",
		},
		{
			Name:          "Argan Oil",
			Function:      "Moisture and shine",
			Evidence:      "High in vitamin E and fatty acids, reduces frizz",
			SafetyProfile: "Generally safe",
			Axis:          AxisMoisture,
		},
		{
			Name:          "Flax Seed Extract",
			Function:      "Natural hold and definition",
			Evidence:      "Mucilage provides flexible hold without stiffness",
			SafetyProfile: "Generally safe",
		},
		{
			Name:          "Citric Acid",
			Function:      "pH adjuster and chelating agent",
			Evidence:      "Helps remove mineral deposits from hard water",
			SafetyProfile: "Safe at cosmetic concentrations",
		},
		{
			Name:          "Salicylic Acid",
			Function:      "Keratolytic scalp exfoliant",
			Evidence:      "Loosens flakes and clears follicle buildup",
			SafetyProfile: "Avoid on broken skin",
			Warnings:      []string{"Do not combine with other exfoliating scalp treatments"},
		},
		{
			Name:          "Zinc Pyrithione",
			Function:      "Antifungal",
			Evidence:      "First-line active against dandruff-associated Malassezia",
			SafetyProfile: "Well tolerated at rinse-off concentrations",
		},
		{
			Name:          "Sulfates",
			Function:      "Strong cleansing agent",
			Evidence:      "Studies show 60% more color fading vs sulfate-free alternatives",
			SafetyProfile: "Can strip natural oils; irritating on sensitive scalps",
			Subsumes:      []string{"Sodium Lauryl Sulfate", "Sodium Laureth Sulfate", "Sodium C14-16 Olefin Sulfonate"},
			Warnings:      []string{"May cause dryness if overused", "Accelerates color fading on dyed hair"},
		},
		{
			Name:          "Drying Alcohols",
			Function:      "Solvent",
			Evidence:      "Disrupts lipid barrier, increases trans-epidermal water loss",
			SafetyProfile: "Dehydrating on porous or damaged hair",
			Subsumes:      []string{"Alcohol Denat", "Ethanol", "Isopropyl Alcohol"},
			Warnings:      []string{"Avoid leave-in products with drying alcohols on damaged hair"},
		},
		{
			Name:          "Heavy Silicones",
			Function:      "Occlusive film former",
			Evidence:      "Can create barrier preventing product absorption",
			SafetyProfile: "Buildup-prone on low porosity hair",
			Subsumes:      []string{"Dimethicone", "Cyclopentasiloxane"},
			Warnings:      []string{"Requires periodic clarifying to prevent buildup"},
		},
		{
			Name:          "Panthenol",
			Function:      "Humectant and film former",
			Evidence:      "Improves flexibility and reduces breakage in fine hair",
			SafetyProfile: "Excellent safety record",
			Axis:          AxisMoisture,
		},
		{
			Name:          "Silk Proteins",
			Function:      "Lightweight strengthening",
			Evidence:      "Low molecular weight proteins add body without stiffness",
			SafetyProfile: "Generally safe",
			Axis:          AxisProtein,
		},
	}
}

func seedInteractions() []InteractionRule {
	return []InteractionRule{
		{
			Key:         "protein_overload",
			Axis:        AxisProtein,
			MinProducts: 2,
			Warning:     "Multiple protein sources can cause brittleness",
			Signs:       []string{"Stiff, breaking hair", "Loss of elasticity", "Increased tangles"},
			Solution:    "Reduce protein frequency, increase moisture treatments",
		},
		{
			Key:         "moisture_overload",
			Axis:        AxisMoisture,
			MinProducts: 3,
			Warning:     "Excess moisture without protein can cause limpness",
			Signs:       []string{"Mushy, stretchy hair", "Loss of curl pattern", "Excessive softness"},
			Solution:    "Add light protein treatment, reduce moisturizing frequency",
		},
	}
}
