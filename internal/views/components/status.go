package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the session language and the catalog size
type StatusBar struct {
	container     *fyne.Container
	languageLabel *widget.Label
	countLabel    *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.languageLabel = widget.NewLabel("Language: --")
	sb.countLabel = widget.NewLabel("Books: 0")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewBorder(
		nil, nil,
		sb.languageLabel,
		sb.countLabel,
	)
}

// SetLanguage updates the language shown on the left
func (sb *StatusBar) SetLanguage(name string) {
	sb.languageLabel.SetText("Language: " + name)
}

// SetBookCount updates the number of recommended books
func (sb *StatusBar) SetBookCount(count int) {
	if count == 1 {
		sb.countLabel.SetText("1 book")
		return
	}
	sb.countLabel.SetText(fmt.Sprintf("%d books", count))
}

func (sb *StatusBar) LanguageText() string {
	return sb.languageLabel.Text
}

func (sb *StatusBar) CountText() string {
	return sb.countLabel.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
