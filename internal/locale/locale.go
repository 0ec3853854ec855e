package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language is a display language the user can pick for the session. It only
// labels the interface; books are never tagged or filtered by it.
type Language struct {
	Name string
	Tag  language.Tag
}

var (
	English = Language{Name: "English", Tag: language.English}
	Tamil   = Language{Name: "Tamil", Tag: language.Tamil}
	Sinhala = Language{Name: "Sinhala", Tag: language.Sinhala}
)

// Languages lists the selectable languages in display order.
func Languages() []Language {
	return []Language{English, Tamil, Sinhala}
}

func Default() Language {
	return English
}

// NativeName is the language's name written in that language.
func (l Language) NativeName() string {
	return display.Self.Name(l.Tag)
}

// Label is the button text: the English name, followed by the native name
// when it differs.
func (l Language) Label() string {
	native := l.NativeName()
	if native == "" || native == l.Name {
		return l.Name
	}
	return l.Name + " (" + native + ")"
}

// Find returns the language with the given English name or BCP 47 tag.
func Find(nameOrTag string) (Language, bool) {
	for _, l := range Languages() {
		if l.Name == nameOrTag || l.Tag.String() == nameOrTag {
			return l, true
		}
	}
	return Language{}, false
}
