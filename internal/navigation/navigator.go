package navigation

import (
	"errors"
	"fmt"

	"booksy-collection/internal/catalog"
	"booksy-collection/internal/locale"
)

var (
	ErrInvalidTransition = errors.New("invalid screen transition")
	ErrUnknownCategory   = catalog.ErrUnknownCategory
)

// Screen identifies one of the full-window views.
type Screen int

const (
	Splash Screen = iota
	LanguageSelect
	Dashboard
	CategoryList
	BookList
	AddBookForm
)

func (s Screen) String() string {
	switch s {
	case Splash:
		return "Splash"
	case LanguageSelect:
		return "LanguageSelect"
	case Dashboard:
		return "Dashboard"
	case CategoryList:
		return "CategoryList"
	case BookList:
		return "BookList"
	case AddBookForm:
		return "AddBookForm"
	default:
		return fmt.Sprintf("Screen(%d)", int(s))
	}
}

// State is what the active screen needs to render.
type State struct {
	Screen   Screen
	Language locale.Language
	Main     string
	Sub      string
	// SplashSeq identifies the current splash visit.
	SplashSeq uint64
}

// Navigator is the screen state machine. Every screen has exactly one Back
// target; there is no history stack.
type Navigator struct {
	state    State
	started  bool
	onChange func(State)
}

func NewNavigator() *Navigator {
	return &Navigator{
		state: State{Screen: Splash, Language: locale.Default()},
	}
}

// SetChangeHandler registers the listener called after every transition.
func (n *Navigator) SetChangeHandler(handler func(State)) {
	n.onChange = handler
}

func (n *Navigator) State() State {
	return n.state
}

func (n *Navigator) Current() Screen {
	return n.state.Screen
}

// Start enters the splash screen. It may only be called once.
func (n *Navigator) Start() error {
	if n.started {
		return fmt.Errorf("%w: already started", ErrInvalidTransition)
	}
	n.started = true
	n.enterSplash()
	return nil
}

// SplashElapsed advances from the splash to the language selection. Timers
// from an earlier splash visit are ignored.
func (n *Navigator) SplashElapsed(seq uint64) bool {
	if n.state.Screen != Splash || seq != n.state.SplashSeq || !n.started {
		return false
	}
	n.transition(func(s *State) { s.Screen = LanguageSelect })
	return true
}

func (n *Navigator) ChooseLanguage(lang locale.Language) error {
	if err := n.expect(LanguageSelect, "choose language"); err != nil {
		return err
	}
	n.transition(func(s *State) {
		s.Screen = Dashboard
		s.Language = lang
	})
	return nil
}

func (n *Navigator) ChooseMainCategory(main string) error {
	if err := n.expect(Dashboard, "choose main category"); err != nil {
		return err
	}
	if catalog.Subcategories(main) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, main)
	}
	n.transition(func(s *State) {
		s.Screen = CategoryList
		s.Main = main
		s.Sub = ""
	})
	return nil
}

func (n *Navigator) ChooseSubcategory(sub string) error {
	if err := n.expect(CategoryList, "choose sub-category"); err != nil {
		return err
	}
	if !catalog.InTaxonomy(n.state.Main, sub) {
		return fmt.Errorf("%w: %q → %q", ErrUnknownCategory, n.state.Main, sub)
	}
	n.transition(func(s *State) {
		s.Screen = BookList
		s.Sub = sub
	})
	return nil
}

func (n *Navigator) OpenAddBook() error {
	if err := n.expect(BookList, "open add book form"); err != nil {
		return err
	}
	n.transition(func(s *State) { s.Screen = AddBookForm })
	return nil
}

// BookSaved returns from the form to the book list after a successful save.
func (n *Navigator) BookSaved() error {
	if err := n.expect(AddBookForm, "book saved"); err != nil {
		return err
	}
	n.transition(func(s *State) { s.Screen = BookList })
	return nil
}

// Back follows the single Back edge of the current screen.
func (n *Navigator) Back() error {
	switch n.state.Screen {
	case LanguageSelect:
		n.enterSplash()
	case Dashboard:
		n.transition(func(s *State) { s.Screen = LanguageSelect })
	case CategoryList:
		n.transition(func(s *State) {
			s.Screen = Dashboard
			s.Main = ""
		})
	case BookList:
		n.transition(func(s *State) {
			s.Screen = CategoryList
			s.Sub = ""
		})
	case AddBookForm:
		n.transition(func(s *State) { s.Screen = BookList })
	default:
		return fmt.Errorf("%w: back from %s", ErrInvalidTransition, n.state.Screen)
	}
	return nil
}

func (n *Navigator) enterSplash() {
	n.transition(func(s *State) {
		s.Screen = Splash
		s.SplashSeq++
	})
}

func (n *Navigator) expect(screen Screen, action string) error {
	if !n.started || n.state.Screen != screen {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, n.state.Screen)
	}
	return nil
}

func (n *Navigator) transition(apply func(*State)) {
	apply(&n.state)
	if n.onChange != nil {
		n.onChange(n.state)
	}
}
