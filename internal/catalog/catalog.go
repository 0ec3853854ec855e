package catalog

import (
	"errors"
	"fmt"
)

var ErrUnknownCategory = errors.New("unknown category")

// Catalog maps main category -> sub-category -> books in insertion order.
type Catalog map[string]map[string][]Book

// New returns an empty catalog completed against the taxonomy.
func New() Catalog {
	c := make(Catalog)
	c.EnsureTaxonomy()
	return c
}

// EnsureTaxonomy inserts an empty sequence for every enumerated pair that is
// missing. Keys outside the taxonomy are left untouched.
func (c Catalog) EnsureTaxonomy() {
	for _, main := range Taxonomy {
		subs, ok := c[main.Name]
		if !ok || subs == nil {
			subs = make(map[string][]Book)
			c[main.Name] = subs
		}
		for _, sub := range main.Subcategories {
			if subs[sub] == nil {
				subs[sub] = []Book{}
			}
		}
	}
}

// AddBook appends book to the (main, sub) sequence. The caller persists.
func (c Catalog) AddBook(main, sub string, book Book) error {
	subs, ok := c[main]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, main)
	}
	books, ok := subs[sub]
	if !ok {
		return fmt.Errorf("%w: %q → %q", ErrUnknownCategory, main, sub)
	}
	subs[sub] = append(books, book)
	return nil
}

// removeLast undoes the most recent AddBook on (main, sub).
func (c Catalog) removeLast(main, sub string) {
	books := c[main][sub]
	if len(books) == 0 {
		return
	}
	c[main][sub] = books[:len(books)-1]
}

// Books returns the books stored under (main, sub).
func (c Catalog) Books(main, sub string) []Book {
	return c[main][sub]
}

// Count returns the total number of books across all categories, including
// keys that are no longer part of the taxonomy.
func (c Catalog) Count() int {
	n := 0
	for _, subs := range c {
		for _, books := range subs {
			n += len(books)
		}
	}
	return n
}
