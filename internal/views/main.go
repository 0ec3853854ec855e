package views

import (
	"image"

	"booksy-collection/internal/catalog"
	"booksy-collection/internal/locale"
	"booksy-collection/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const (
	AppTitle  = "📚 Booksy Collection"
	BackLabel = "⬅ Back"
)

// MainView renders one full-window screen at a time. Every Render call
// replaces the window content; nothing is stacked.
type MainView struct {
	window    fyne.Window
	statusBar *components.StatusBar
	form      *components.BookForm

	// Event handlers - connected to controller
	languageHandler     func(locale.Language)
	mainCategoryHandler func(string)
	subcategoryHandler  func(string)
	addBookHandler      func()
	submitHandler       func(catalog.Submission)
	backHandler         func()
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window) *MainView {
	return &MainView{
		window:    window,
		statusBar: components.NewStatusBar(),
	}
}

// Event handler setters - called by controller

func (mv *MainView) SetLanguageHandler(handler func(locale.Language)) {
	mv.languageHandler = handler
}

func (mv *MainView) SetMainCategoryHandler(handler func(string)) {
	mv.mainCategoryHandler = handler
}

func (mv *MainView) SetSubcategoryHandler(handler func(string)) {
	mv.subcategoryHandler = handler
}

func (mv *MainView) SetAddBookHandler(handler func()) {
	mv.addBookHandler = handler
}

func (mv *MainView) SetSubmitHandler(handler func(catalog.Submission)) {
	mv.submitHandler = handler
}

func (mv *MainView) SetBackHandler(handler func()) {
	mv.backHandler = handler
}

// Screens

func (mv *MainView) RenderSplash(bg image.Image) {
	mv.form = nil
	mv.window.SetContent(components.NewSplash(bg))
}

func (mv *MainView) RenderLanguageSelect(languages []locale.Language) {
	items := []fyne.CanvasObject{heading("Select Language")}
	for _, lang := range languages {
		items = append(items, widget.NewButton(lang.Label(), func() {
			if mv.languageHandler != nil {
				mv.languageHandler(lang)
			}
		}))
	}
	items = append(items, mv.backButton())
	mv.show(container.NewVBox(items...))
}

func (mv *MainView) RenderDashboard(lang locale.Language, mains []string) {
	items := []fyne.CanvasObject{heading(AppTitle + " - " + lang.Name)}
	for _, main := range mains {
		items = append(items, widget.NewButton(main, func() {
			if mv.mainCategoryHandler != nil {
				mv.mainCategoryHandler(main)
			}
		}))
	}
	items = append(items, mv.backButton())
	mv.show(container.NewVBox(items...))
}

func (mv *MainView) RenderCategoryList(main string, subs []string) {
	items := []fyne.CanvasObject{heading(main)}
	for _, sub := range subs {
		items = append(items, widget.NewButton(sub, func() {
			if mv.subcategoryHandler != nil {
				mv.subcategoryHandler(sub)
			}
		}))
	}
	items = append(items, mv.backButton())
	mv.show(container.NewVBox(items...))
}

func (mv *MainView) RenderBookList(main, sub string, books []catalog.Book) {
	add := widget.NewButton("➕ Suggest Book", func() {
		if mv.addBookHandler != nil {
			mv.addBookHandler()
		}
	})

	mv.show(container.NewBorder(
		heading(main+" → "+sub),
		container.NewVBox(add, mv.backButton()),
		nil, nil,
		components.NewBookList(books),
	))
}

func (mv *MainView) RenderAddBookForm(main, sub string) {
	form := components.NewBookForm()
	save := widget.NewButton("Save Book", func() {
		if mv.submitHandler != nil {
			mv.submitHandler(form.Submission())
		}
	})
	save.Importance = widget.HighImportance

	mv.show(container.NewVBox(
		heading("Upload Book → "+sub),
		form.GetContainer(),
		save,
		mv.backButton(),
	))
	mv.form = form
	mv.window.Canvas().Focus(form.Title)
}

// Notices

func (mv *MainView) ShowError(err error) {
	dialog.ShowError(err, mv.window)
}

func (mv *MainView) ShowInformation(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// UpdateStatus refreshes the language and book count in the status bar
func (mv *MainView) UpdateStatus(lang locale.Language, books int) {
	mv.statusBar.SetLanguage(lang.Name)
	mv.statusBar.SetBookCount(books)
}

func (mv *MainView) StatusBar() *components.StatusBar {
	return mv.statusBar
}

func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

func (mv *MainView) show(body fyne.CanvasObject) {
	mv.form = nil
	mv.window.SetContent(container.NewBorder(
		nil,
		mv.statusBar.GetContainer(),
		nil, nil,
		container.NewPadded(body),
	))
}

func (mv *MainView) backButton() *widget.Button {
	return widget.NewButton(BackLabel, func() {
		if mv.backHandler != nil {
			mv.backHandler()
		}
	})
}

func heading(text string) *widget.Label {
	label := widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	label.Wrapping = fyne.TextWrapWord
	return label
}
