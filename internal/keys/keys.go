// Package keys normalizes raw key codes and modifier flags into canonical
// key tokens. Resolution is a pure table lookup.
package keys

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnresolved is returned for raw codes with no token.
var ErrUnresolved = errors.New("keys: unresolved key code")

// Modifiers are the raw modifier flags of one key event.
type Modifiers struct {
	Ctrl  bool
	Shift bool
	Alt   bool
}

// Tag concatenates the set modifiers in the fixed order Ctrl, Shift, Alt
// with the first letter lower-cased ("ctrl", "ctrlShift", "shiftAlt").
// With no modifiers the tag is "plain".
func (m Modifiers) Tag() string {
	tag := ""
	if m.Ctrl {
		tag += "Ctrl"
	}
	if m.Shift {
		tag += "Shift"
	}
	if m.Alt {
		tag += "Alt"
	}
	if tag == "" {
		return Plain
	}
	return strings.ToLower(tag[:1]) + tag[1:]
}

// Plain is the modifier tag for an unmodified key.
const Plain = "plain"

// Key is a resolved key event.
type Key struct {
	Token    string
	Modifier string
}

// String renders the key as "modifier+token", or just the token when plain.
func (k Key) String() string {
	if k.Modifier == Plain || k.Modifier == "" {
		return k.Token
	}
	return k.Modifier + "+" + k.Token
}

// Raw codes for the named keys (browser keyCode values).
const (
	CodeBackspace  = 8
	CodeTab        = 9
	CodeEnter      = 13
	CodeEsc        = 27
	CodeLeft       = 37
	CodeUp         = 38
	CodeRight      = 39
	CodeDown       = 40
	CodeDel        = 46
	CodeNumMul     = 106
	CodeNumAdd     = 107
	CodeNumSub     = 109
	CodeNumDecimal = 110
	CodeNumDiv     = 111
	CodeEquals     = 187
	CodeMinus      = 189
	CodePeriod     = 190
	CodeSlash      = 191
	CodeBackslash  = 220
	CodeBacktick   = 223
	CodeSterling   = 0xA3
	CodeEuro       = 8364
)

var named = map[int]string{
	CodeTab:        "Tab",
	CodeBackspace:  "Backspace",
	CodeEnter:      "Enter",
	CodeEsc:        "Esc",
	CodeLeft:       "Left",
	CodeUp:         "Up",
	CodeRight:      "Right",
	CodeDown:       "Down",
	CodeDel:        "Del",
	CodeNumMul:     "*",
	CodeNumAdd:     "+",
	CodeNumSub:     "-",
	CodeNumDecimal: ".",
	CodeNumDiv:     "/",
	CodeEquals:     "=",
	CodeMinus:      "-",
	CodePeriod:     ".",
	CodeSlash:      "/",
	CodeBackslash:  `\`,
	CodeBacktick:   "`",
	CodeSterling:   "sterling",
	CodeEuro:       "euro",
}

// Resolve maps a raw code and modifiers to a Key. Codes 48–90 ('0'–'Z')
// map to their character; named codes come from a fixed table. Anything
// else is ErrUnresolved.
func Resolve(code int, mods Modifiers) (Key, error) {
	var token string
	switch {
	case code >= '0' && code <= 'Z':
		token = string(rune(code))
	default:
		token = named[code]
	}
	if token == "" {
		return Key{}, fmt.Errorf("%w: %d", ErrUnresolved, code)
	}
	return Key{Token: token, Modifier: mods.Tag()}, nil
}
