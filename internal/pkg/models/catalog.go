package models

// CategoryInfo pairs a category with its display label
type CategoryInfo struct {
	ID    Category `json:"id"`
	Label string   `json:"label"`
}

// Catalog is the fixed reference data a listing form offers
type Catalog struct {
	Categories []CategoryInfo `json:"categories"`
	Games      []string       `json:"games"`
	Flairs     []string       `json:"flairs"`
}

var (
	Categories = []CategoryInfo{
		{ID: CategoryCodes, Label: "Event Codes"},
		{ID: CategoryPokemon, Label: "Pokemon Trading"},
		{ID: CategoryItems, Label: "Items & Resources"},
		{ID: CategoryFriends, Label: "Friend Codes"},
		{ID: CategoryMobile, Label: "Mobile Games"},
	}

	KnownGames = []string{
		"Pokemon Home",
		"Sword/Shield",
		"Pokemon Go",
		"Scarlet/Violet",
		"Legends Arceus",
		"Brilliant Diamond/Shining Pearl",
		"Various",
	}

	Flairs = []string{
		"Master Ball",
		"Ultra Ball",
		"Great Ball",
		"Cherish Ball",
	}
)

// DefaultCatalog returns copies of the reference lists
func DefaultCatalog() Catalog {
	return Catalog{
		Categories: append([]CategoryInfo(nil), Categories...),
		Games:      append([]string(nil), KnownGames...),
		Flairs:     append([]string(nil), Flairs...),
	}
}
