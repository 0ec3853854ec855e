package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"booksy-collection/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() catalog.Catalog {
	c := catalog.New()
	_ = c.AddBook("Fiction", "Science Fiction", catalog.Book{Title: "Dune", Author: "Frank Herbert"})
	_ = c.AddBook("Fiction", "Science Fiction", catalog.Book{Title: "Solaris"})
	return c
}

func TestPrintCatalogSubcategory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printCatalog(&buf, sampleCatalog(), []string{"Fiction", "Science Fiction"}))

	assert.Equal(t, "Fiction\n  Science Fiction (2)\n    1. Dune by Frank Herbert\n    2. Solaris\n", buf.String())
}

func TestPrintCatalogAll(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printCatalog(&buf, sampleCatalog(), nil))

	out := buf.String()
	assert.Contains(t, out, "Hybrid & Other\n")
	assert.Contains(t, out, "  Anthologies (0)\n")
	assert.Contains(t, out, "  Science Fiction (2)\n")
}

func TestPrintCatalogUnknown(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, printCatalog(&buf, sampleCatalog(), []string{"Cookbooks"}), catalog.ErrUnknownCategory)
	assert.ErrorIs(t, printCatalog(&buf, sampleCatalog(), []string{"Fiction", "Poetry"}), catalog.ErrUnknownCategory)
}

func TestListCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.yaml")
	store := catalog.NewStore(path, nil)
	c := catalog.New()
	require.NoError(t, store.Submit(c, "Non-Fiction", "Travel", catalog.Book{Title: "In Patagonia", Author: "Bruce Chatwin"}))

	cmd := parser()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"list", "--data", path, "Non-Fiction", "Travel"})
	t.Cleanup(func() { dataFile = "" })

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Non-Fiction\n  Travel (1)\n    1. In Patagonia by Bruce Chatwin\n", out.String())
}
