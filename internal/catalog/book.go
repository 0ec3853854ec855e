package catalog

import (
	"errors"
	"strings"
)

var ErrTitleRequired = errors.New("Title is required")

// Book is one recommended book. Records have no identifier and are
// addressed by their position inside a sub-category.
type Book struct {
	Title   string `json:"title" yaml:"title"`
	Author  string `json:"author" yaml:"author"`
	Inspire string `json:"inspire" yaml:"inspire"`
	Gain    string `json:"gain" yaml:"gain"`
	Link    string `json:"link" yaml:"link"`
}

// Submission holds the raw values of the add-book form.
type Submission struct {
	Title   string
	Author  string
	Inspire string
	Gain    string
	Link    string
}

// NewBook validates a form submission. The title is trimmed and must not be
// empty; the remaining fields are kept as entered.
func NewBook(s Submission) (Book, error) {
	title := strings.TrimSpace(s.Title)
	if title == "" {
		return Book{}, ErrTitleRequired
	}
	return Book{
		Title:   title,
		Author:  s.Author,
		Inspire: s.Inspire,
		Gain:    s.Gain,
		Link:    s.Link,
	}, nil
}
