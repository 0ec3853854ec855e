package controllers

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"time"

	"booksy-collection/internal/catalog"
	"booksy-collection/internal/locale"
	"booksy-collection/internal/logger"
	"booksy-collection/internal/navigation"

	"fyne.io/fyne/v2"
)

// View is the part of the main view the controller drives.
type View interface {
	SetLanguageHandler(handler func(locale.Language))
	SetMainCategoryHandler(handler func(string))
	SetSubcategoryHandler(handler func(string))
	SetAddBookHandler(handler func())
	SetSubmitHandler(handler func(catalog.Submission))
	SetBackHandler(handler func())

	RenderSplash(bg image.Image)
	RenderLanguageSelect(languages []locale.Language)
	RenderDashboard(lang locale.Language, mains []string)
	RenderCategoryList(main string, subs []string)
	RenderBookList(main, sub string, books []catalog.Book)
	RenderAddBookForm(main, sub string)

	ShowError(err error)
	ShowInformation(title, message string)
	UpdateStatus(lang locale.Language, books int)
}

// Scheduler runs fn once after d on the UI goroutine.
type Scheduler func(d time.Duration, fn func())

// BackgroundLoader returns the splash picture, or an error when there is
// none to show.
type BackgroundLoader func() (image.Image, error)

// UIScheduler fires fn through fyne.Do so it runs on the event loop.
func UIScheduler(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		fyne.Do(fn)
	})
}

type Options struct {
	SplashDelay time.Duration
	Background  BackgroundLoader
	Schedule    Scheduler
}

// MainController turns view events into navigator transitions and catalog
// mutations, and renders every new navigator state.
type MainController struct {
	view    View
	nav     *navigation.Navigator
	store   *catalog.Store
	catalog catalog.Catalog
	logger  logger.Logger

	splashDelay time.Duration
	background  BackgroundLoader
	schedule    Scheduler
}

func NewMainController(view View, store *catalog.Store, books catalog.Catalog, log logger.Logger, opts Options) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if opts.Schedule == nil {
		opts.Schedule = UIScheduler
	}
	if books == nil {
		books = catalog.New()
	}

	mc := &MainController{
		view:        view,
		nav:         navigation.NewNavigator(),
		store:       store,
		catalog:     books,
		logger:      log,
		splashDelay: opts.SplashDelay,
		background:  opts.Background,
		schedule:    opts.Schedule,
	}

	mc.nav.SetChangeHandler(mc.render)
	mc.setupViewEventHandlers()
	return mc
}

func (mc *MainController) setupViewEventHandlers() {
	mc.view.SetLanguageHandler(mc.SelectLanguage)
	mc.view.SetMainCategoryHandler(mc.OpenMainCategory)
	mc.view.SetSubcategoryHandler(mc.OpenSubcategory)
	mc.view.SetAddBookHandler(mc.OpenAddBook)
	mc.view.SetSubmitHandler(mc.SubmitBook)
	mc.view.SetBackHandler(mc.Back)
}

// Start shows the splash screen.
func (mc *MainController) Start() error {
	mc.logger.Info("Controller", "starting navigation", map[string]interface{}{
		"books":        mc.catalog.Count(),
		"splash_delay": mc.splashDelay.String(),
	})
	return mc.nav.Start()
}

func (mc *MainController) State() navigation.State {
	return mc.nav.State()
}

func (mc *MainController) Catalog() catalog.Catalog {
	return mc.catalog
}

func (mc *MainController) SelectLanguage(lang locale.Language) {
	mc.handleTransition("choose language", mc.nav.ChooseLanguage(lang))
}

func (mc *MainController) OpenMainCategory(main string) {
	mc.handleTransition("open main category", mc.nav.ChooseMainCategory(main))
}

func (mc *MainController) OpenSubcategory(sub string) {
	mc.handleTransition("open sub-category", mc.nav.ChooseSubcategory(sub))
}

func (mc *MainController) OpenAddBook() {
	mc.handleTransition("open add book form", mc.nav.OpenAddBook())
}

func (mc *MainController) Back() {
	mc.handleTransition("back", mc.nav.Back())
}

// SubmitBook validates the form, appends the book and rewrites the catalog
// file. Rejected or failed submissions leave the catalog untouched.
func (mc *MainController) SubmitBook(form catalog.Submission) {
	state := mc.nav.State()
	if state.Screen != navigation.AddBookForm {
		mc.logger.Warning("Controller", "submission outside the add book form", map[string]interface{}{
			"screen": state.Screen.String(),
		})
		return
	}

	book, err := catalog.NewBook(form)
	if err != nil {
		mc.logger.Warning("Controller", "submission rejected", map[string]interface{}{
			"main":   state.Main,
			"sub":    state.Sub,
			"reason": err.Error(),
		})
		mc.view.ShowError(err)
		return
	}

	if err := mc.store.Submit(mc.catalog, state.Main, state.Sub, book); err != nil {
		mc.logger.Error("Controller", err, map[string]interface{}{
			"main":  state.Main,
			"sub":   state.Sub,
			"title": book.Title,
		})
		mc.view.ShowError(fmt.Errorf("saving book: %w", err))
		return
	}

	mc.logger.Info("Controller", "book added", map[string]interface{}{
		"main":  state.Main,
		"sub":   state.Sub,
		"title": book.Title,
		"total": len(mc.catalog.Books(state.Main, state.Sub)),
	})
	mc.view.ShowInformation("Saved", "Book added successfully!")
	mc.handleTransition("book saved", mc.nav.BookSaved())
}

func (mc *MainController) handleTransition(action string, err error) {
	if err == nil {
		return
	}
	mc.logger.Error("Controller", err, map[string]interface{}{
		"action": action,
		"screen": mc.nav.Current().String(),
	})
}

func (mc *MainController) render(state navigation.State) {
	mc.logger.Debug("Controller", "screen change", map[string]interface{}{
		"screen":   state.Screen.String(),
		"language": state.Language.Name,
		"main":     state.Main,
		"sub":      state.Sub,
	})

	switch state.Screen {
	case navigation.Splash:
		mc.view.RenderSplash(mc.loadBackground())
		seq := state.SplashSeq
		mc.schedule(mc.splashDelay, func() {
			mc.nav.SplashElapsed(seq)
		})
	case navigation.LanguageSelect:
		mc.view.RenderLanguageSelect(locale.Languages())
	case navigation.Dashboard:
		mc.view.RenderDashboard(state.Language, catalog.MainCategories())
	case navigation.CategoryList:
		mc.view.RenderCategoryList(state.Main, catalog.Subcategories(state.Main))
	case navigation.BookList:
		mc.view.RenderBookList(state.Main, state.Sub, mc.catalog.Books(state.Main, state.Sub))
	case navigation.AddBookForm:
		mc.view.RenderAddBookForm(state.Main, state.Sub)
	}

	mc.view.UpdateStatus(state.Language, mc.catalog.Count())
}

func (mc *MainController) loadBackground() image.Image {
	if mc.background == nil {
		return nil
	}

	img, err := mc.background()
	switch {
	case err == nil:
		return img
	case errors.Is(err, fs.ErrNotExist):
		mc.logger.Debug("Controller", "no splash background, using plain splash", nil)
	default:
		mc.logger.Warning("Controller", "splash background unusable, using plain splash", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return nil
}
