package event

// KeyCode identifies the kind of key that was pressed
type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyRune
	KeyBackspace
	KeyEnter
	KeyEscape
)

// Key is a decoded key press. Rune is only meaningful for KeyRune.
type Key struct {
	Code KeyCode
	Rune rune
	Ctrl bool
}

// RuneKey returns a plain character key
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// CtrlKey returns a character key with the Ctrl modifier held
func CtrlKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r, Ctrl: true}
}

// Is reports whether k is the plain character r
func (k Key) Is(r rune) bool {
	return k.Code == KeyRune && !k.Ctrl && k.Rune == r
}

func (k Key) String() string {
	switch k.Code {
	case KeyRune:
		if k.Ctrl {
			return "ctrl+" + string(k.Rune)
		}
		return string(k.Rune)
	case KeyBackspace:
		return "backspace"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "esc"
	default:
		return "other"
	}
}
