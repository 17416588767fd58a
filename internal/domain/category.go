package domain

// CategoryAllProducts is the sentinel category meaning "no category filter".
const CategoryAllProducts = "All Products"

// Category name constants for the fixed catalog taxonomy.
const (
	CategoryEarrings        = "Earrings"
	CategoryMetalBrass      = "Metal & Brass"
	CategoryQuirkyBeaded    = "Quirky (Beaded)"
	CategoryIndianBeaded    = "Indian (Beaded)"
	CategoryMiniKids        = "Mini Kids"
	CategoryTempleAntique   = "Temple & Antique"
	CategoryRings           = "Rings"
	CategoryCuffsBracelets  = "Cuffs & Bracelets"
	CategoryNeckpiece       = "Neckpiece"
	CategoryHeritage        = "Heritage"
	CategoryCombosHampers   = "Combos & Hampers"
	CategoryHairAccessories = "Hair Accessories"
	CategoryGifting         = "Gifting"
	CategoryBroochBagCharms = "Brooch & Bag Charms"
	CategoryBelt            = "Belt"
)

// Categories returns the fixed set of product categories in display order.
func Categories() []string {
	return []string{
		CategoryEarrings,
		CategoryMetalBrass,
		CategoryQuirkyBeaded,
		CategoryIndianBeaded,
		CategoryMiniKids,
		CategoryTempleAntique,
		CategoryRings,
		CategoryCuffsBracelets,
		CategoryNeckpiece,
		CategoryHeritage,
		CategoryCombosHampers,
		CategoryHairAccessories,
		CategoryGifting,
		CategoryBroochBagCharms,
		CategoryBelt,
	}
}

// IsValidCategory checks whether the given name is a known product category.
func IsValidCategory(name string) bool {
	for _, c := range Categories() {
		if c == name {
			return true
		}
	}
	return false
}

// CategorySummary aggregates the products of one category for the
// storefront category grid.
type CategorySummary struct {
	Category string  `json:"category"`
	Image    *string `json:"image,omitempty"`
	Count    int     `json:"count"`
}

// GroupByCategory builds one summary per distinct category present in the
// given products, preserving first-seen order. Each summary carries the
// image of the first product encountered for that category and the total
// product count. Products whose category is absent from the catalog
// taxonomy still form their own group.
func GroupByCategory(products []Product) []CategorySummary {
	var summaries []CategorySummary
	index := make(map[string]int)

	for _, p := range products {
		i, seen := index[p.Category]
		if !seen {
			i = len(summaries)
			index[p.Category] = i
			summaries = append(summaries, CategorySummary{
				Category: p.Category,
				Image:    p.ImageURL,
			})
		}
		summaries[i].Count++
	}

	return summaries
}
