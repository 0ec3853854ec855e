package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"booksy-collection/internal/logger"
)

// Store reads and rewrites the catalog file. It keeps no state besides the
// path; the catalog itself is owned by the caller.
type Store struct {
	path   string
	codec  Codec
	logger logger.Logger
}

func NewStore(path string, log logger.Logger) *Store {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Store{
		path:   path,
		codec:  CodecFor(path),
		logger: log,
	}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the catalog file and completes it against the taxonomy. A
// missing file yields an empty catalog.
func (s *Store) Load() (Catalog, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("Store", "no catalog file, starting empty", map[string]interface{}{
			"path": s.path,
		})
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", s.path, err)
	}

	c, err := s.codec.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", s.path, err)
	}
	if c == nil {
		c = make(Catalog)
	}
	c.EnsureTaxonomy()

	s.logger.Info("Store", "catalog loaded", map[string]interface{}{
		"path":   s.path,
		"format": s.codec.Name(),
		"books":  c.Count(),
	})
	return c, nil
}

// Save overwrites the catalog file with the full catalog.
func (s *Store) Save(c Catalog) error {
	data, err := s.codec.Marshal(c)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing catalog %s: %w", s.path, err)
	}

	s.logger.Debug("Store", "catalog saved", map[string]interface{}{
		"path":  s.path,
		"bytes": len(data),
	})
	return nil
}

// Submit appends book to (main, sub) and persists the catalog. If the write
// fails the append is undone so memory and disk stay in step.
func (s *Store) Submit(c Catalog, main, sub string, book Book) error {
	if err := c.AddBook(main, sub, book); err != nil {
		return err
	}
	if err := s.Save(c); err != nil {
		c.removeLast(main, sub)
		return err
	}
	return nil
}
