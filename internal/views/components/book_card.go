package components

import (
	"fmt"

	"booksy-collection/internal/catalog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const cardSeparator = "-----------------------------"

// FormatBook renders a book the way the list shows it.
func FormatBook(b catalog.Book) string {
	return fmt.Sprintf("Title: %s\nAuthor: %s\nInspiration: %s\nGain: %s\nLink: %s\n%s",
		b.Title, b.Author, b.Inspire, b.Gain, b.Link, cardSeparator)
}

// NewBookList returns a scrollable column of book cards, or a placeholder
// when there are none.
func NewBookList(books []catalog.Book) *container.Scroll {
	column := container.NewVBox()
	if len(books) == 0 {
		column.Add(widget.NewLabel("No books yet"))
	}
	for _, b := range books {
		card := widget.NewLabel(FormatBook(b))
		card.Wrapping = fyne.TextWrapWord
		column.Add(card)
	}
	return container.NewVScroll(column)
}
