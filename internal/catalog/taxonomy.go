package catalog

// Category is one main category of the fixed taxonomy with its
// sub-categories in display order.
type Category struct {
	Name          string
	Subcategories []string
}

// Taxonomy is the hard-coded two-level classification every catalog is
// completed against. Order is display order.
var Taxonomy = []Category{
	{
		Name: "Fiction",
		Subcategories: []string{
			"Fantasy",
			"Science Fiction",
			"Mystery/Thriller",
			"Romance",
			"Historical Fiction",
			"Horror",
			"Literary Fiction",
		},
	},
	{
		Name: "Non-Fiction",
		Subcategories: []string{
			"Biography/Autobiography",
			"Memoir",
			"Self-Help",
			"History",
			"Science/Technology",
			"Travel",
			"Philosophy",
		},
	},
	{
		Name: "Hybrid & Other",
		Subcategories: []string{
			"Poetry",
			"Drama/Play",
			"Children’s Books",
			"Young Adult",
			"Graphic Novels/Comics",
			"Anthologies",
		},
	},
}

// MainCategories returns the main category names in display order.
func MainCategories() []string {
	names := make([]string, 0, len(Taxonomy))
	for _, c := range Taxonomy {
		names = append(names, c.Name)
	}
	return names
}

// Subcategories returns the sub-categories of main, or nil if main is not
// part of the taxonomy.
func Subcategories(main string) []string {
	for _, c := range Taxonomy {
		if c.Name == main {
			return append([]string(nil), c.Subcategories...)
		}
	}
	return nil
}

// InTaxonomy reports whether (main, sub) is an enumerated pair.
func InTaxonomy(main, sub string) bool {
	for _, s := range Subcategories(main) {
		if s == sub {
			return true
		}
	}
	return false
}
