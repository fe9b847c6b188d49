package keys

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

type Kind uint8

const (
	Other Kind = iota
	Rune
	Enter
	Backspace
	WordBackspace
	ClearAll
	Esc
)

// Key is one decoded key press. Rune is set for Rune keys; Name optionally
// identifies Other keys ("Up", "PgDn", "Ctrl+C", ...) for host bindings.
type Key struct {
	Kind Kind
	Rune rune
	Name string
}

// Raw key sequences produced by line-oriented input sources.
const (
	RawEsc           = "\x1b"
	RawBackspace     = "\x08"
	RawDelete        = "\x7f"
	RawEnter         = "\n"
	RawReturn        = "\r"
	RawWordBackspace = "\x17"
	RawClearAll      = "\x15"
)

func Char(r rune) Key {
	return Key{Kind: Rune, Rune: r}
}

func Named(name string) Key {
	return Key{Kind: Other, Name: name}
}

func Special(kind Kind) Key {
	return Key{Kind: kind}
}

// FromRaw decodes a single raw key. Anything that is neither a control
// sequence above nor exactly one rune decodes as Other.
func FromRaw(raw string) Key {
	switch raw {
	case RawEsc:
		return Special(Esc)
	case RawBackspace, RawDelete:
		return Special(Backspace)
	case RawEnter, RawReturn:
		return Special(Enter)
	case RawWordBackspace:
		return Special(WordBackspace)
	case RawClearAll:
		return Special(ClearAll)
	}
	r, size := utf8.DecodeRuneInString(raw)
	if size == 0 || size != len(raw) || r == utf8.RuneError {
		return Named(raw)
	}
	if !unicode.IsPrint(r) {
		return Named(raw)
	}
	return Char(r)
}

// Sequence decodes every rune of text as its own key.
func Sequence(text string) []Key {
	result := make([]Key, 0, len(text))
	for _, r := range text {
		result = append(result, FromRaw(string(r)))
	}
	return result
}

func (k Key) Printable() bool {
	return k.Kind == Rune && unicode.IsPrint(k.Rune)
}

func (k Kind) String() string {
	switch k {
	case Other:
		return "Other"
	case Rune:
		return "Rune"
	case Enter:
		return "Enter"
	case Backspace:
		return "Backspace"
	case WordBackspace:
		return "WordBackspace"
	case ClearAll:
		return "ClearAll"
	case Esc:
		return "Esc"
	}
	return "UNKNOWN KEY KIND"
}

func (k Key) String() string {
	switch k.Kind {
	case Rune:
		return fmt.Sprintf("Rune[%c]", k.Rune)
	case Other:
		if k.Name != "" {
			return k.Name
		}
	}
	return k.Kind.String()
}
