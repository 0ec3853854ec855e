package components

import (
	"booksy-collection/internal/catalog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// BookForm collects the fields of a new recommendation
type BookForm struct {
	container *fyne.Container

	Title   *widget.Entry
	Author  *widget.Entry
	Inspire *widget.Entry
	Gain    *widget.Entry
	Link    *widget.Entry
}

func NewBookForm() *BookForm {
	f := &BookForm{
		Title:   widget.NewEntry(),
		Author:  widget.NewEntry(),
		Inspire: widget.NewEntry(),
		Gain:    widget.NewEntry(),
		Link:    widget.NewEntry(),
	}

	f.container = container.NewVBox(
		widget.NewLabel("Title"), f.Title,
		widget.NewLabel("Author"), f.Author,
		widget.NewLabel("Why inspiring"), f.Inspire,
		widget.NewLabel("What you gained"), f.Gain,
		widget.NewLabel("Link/PDF"), f.Link,
	)
	return f
}

// Submission returns the raw entry values; validation is the catalog's job.
func (f *BookForm) Submission() catalog.Submission {
	return catalog.Submission{
		Title:   f.Title.Text,
		Author:  f.Author.Text,
		Inspire: f.Inspire.Text,
		Gain:    f.Gain.Text,
		Link:    f.Link.Text,
	}
}

func (f *BookForm) GetContainer() *fyne.Container {
	return f.container
}
