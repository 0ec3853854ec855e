package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogHasEveryPair(t *testing.T) {
	c := New()

	require.Len(t, c, len(Taxonomy))
	for _, main := range Taxonomy {
		for _, sub := range main.Subcategories {
			books, ok := c[main.Name][sub]
			require.True(t, ok, "missing %s → %s", main.Name, sub)
			assert.NotNil(t, books)
			assert.Empty(t, books)
		}
	}
	assert.Equal(t, 0, c.Count())
}

func TestTaxonomyShape(t *testing.T) {
	assert.Equal(t, []string{"Fiction", "Non-Fiction", "Hybrid & Other"}, MainCategories())
	assert.Len(t, Subcategories("Fiction"), 7)
	assert.Len(t, Subcategories("Non-Fiction"), 7)
	assert.Len(t, Subcategories("Hybrid & Other"), 6)
	assert.Nil(t, Subcategories("Cookbooks"))

	assert.True(t, InTaxonomy("Fiction", "Science Fiction"))
	assert.False(t, InTaxonomy("Fiction", "Poetry"))
}

func TestSubcategoriesReturnsCopy(t *testing.T) {
	subs := Subcategories("Fiction")
	subs[0] = "Changed"
	assert.Equal(t, "Fantasy", Subcategories("Fiction")[0])
}

func TestEnsureTaxonomyKeepsExistingData(t *testing.T) {
	dune := Book{Title: "Dune", Author: "Frank Herbert"}
	c := Catalog{
		"Fiction": {
			"Science Fiction": {dune},
		},
		"Legacy": {
			"Old Shelf": {{Title: "Kept"}},
		},
	}

	c.EnsureTaxonomy()

	assert.Equal(t, []Book{dune}, c["Fiction"]["Science Fiction"])
	assert.Empty(t, c["Fiction"]["Fantasy"])
	assert.Equal(t, []Book{{Title: "Kept"}}, c["Legacy"]["Old Shelf"])
	assert.Contains(t, c, "Non-Fiction")
	assert.Equal(t, 2, c.Count())
}

func TestAddBook(t *testing.T) {
	t.Run("appends in order", func(t *testing.T) {
		c := New()
		first := Book{Title: "Dune"}
		second := Book{Title: "Hyperion"}

		require.NoError(t, c.AddBook("Fiction", "Science Fiction", first))
		require.NoError(t, c.AddBook("Fiction", "Science Fiction", second))

		assert.Equal(t, []Book{first, second}, c.Books("Fiction", "Science Fiction"))
	})

	t.Run("unknown main category", func(t *testing.T) {
		c := New()
		err := c.AddBook("Cookbooks", "Baking", Book{Title: "Bread"})
		assert.ErrorIs(t, err, ErrUnknownCategory)
		assert.Equal(t, 0, c.Count())
	})

	t.Run("unknown sub-category", func(t *testing.T) {
		c := New()
		err := c.AddBook("Fiction", "Baking", Book{Title: "Bread"})
		assert.ErrorIs(t, err, ErrUnknownCategory)
		assert.NotContains(t, c["Fiction"], "Baking")
	})
}

func TestNewBook(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		b, err := NewBook(Submission{
			Title:   "  Dune ",
			Author:  "Frank Herbert",
			Inspire: " spice ",
			Gain:    "patience",
			Link:    "https://example.org/dune",
		})
		require.NoError(t, err)
		assert.Equal(t, Book{
			Title:   "Dune",
			Author:  "Frank Herbert",
			Inspire: " spice ",
			Gain:    "patience",
			Link:    "https://example.org/dune",
		}, b)
	})

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := NewBook(Submission{Title: title, Author: "Anon"})
		assert.ErrorIs(t, err, ErrTitleRequired, "title %q", title)
	}
}
