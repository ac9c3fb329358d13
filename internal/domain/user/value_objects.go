package user

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultPhoneNumber is assigned to every account created by the demo login.
const DefaultPhoneNumber = "081234567890"

// Email is not validated: the demo login accepts any input.
type Email struct {
	value string
}

func NewEmail(s string) Email {
	return Email{value: strings.TrimSpace(s)}
}

func (e Email) Value() string {
	return e.value
}

// LocalPart returns everything before the first '@', or the whole address.
func (e Email) LocalPart() string {
	if i := strings.IndexByte(e.value, '@'); i >= 0 {
		return e.value[:i]
	}
	return e.value
}

// DisplayName upper-cases the first rune of the local part.
func (e Email) DisplayName() string {
	local := e.LocalPart()
	r, size := utf8.DecodeRuneInString(local)
	if r == utf8.RuneError {
		return local
	}
	return string(unicode.ToUpper(r)) + local[size:]
}
