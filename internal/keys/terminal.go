package keys

import tea "github.com/charmbracelet/bubbletea"

// shiftedUS maps characters a terminal delivers already shifted back to the
// raw code of the unshifted key on a US layout.
var shiftedUS = map[rune]int{
	')': '0', '!': '1', '@': '2', '#': '3', '$': '4',
	'%': '5', '^': '6', '&': '7', '*': '8', '(': '9',
	'+': CodeEquals,
	'_': CodeMinus,
	'>': CodePeriod,
	'?': CodeSlash,
	'|': CodeBackslash,
	'~': CodeBacktick,
	'<': 188,
	':': 186,
	'"': 222,
	'{': 219,
	'}': 221,
}

// plainUS maps unshifted punctuation to raw codes.
var plainUS = map[rune]int{
	'=':  CodeEquals,
	'-':  CodeMinus,
	'.':  CodePeriod,
	'/':  CodeSlash,
	'\\': CodeBackslash,
	'`':  CodeBacktick,
	'£':  CodeSterling,
	'€':  CodeEuro,
	',':  188,
	';':  186,
	'\'': 222,
	'[':  219,
	']':  221,
}

// FromKeyMsg converts a bubbletea key message into the raw code and
// modifier flags a browser-style keyboard would have reported. It returns
// false for messages that do not describe a single key (pastes).
func FromKeyMsg(msg tea.KeyMsg) (int, Modifiers, bool) {
	mods := Modifiers{Alt: msg.Alt}

	switch msg.Type {
	case tea.KeyEnter:
		return CodeEnter, mods, true
	case tea.KeyTab:
		return CodeTab, mods, true
	case tea.KeyShiftTab:
		mods.Shift = true
		return CodeTab, mods, true
	case tea.KeyBackspace, tea.KeyCtrlH:
		return CodeBackspace, mods, true
	case tea.KeyEsc:
		return CodeEsc, mods, true
	case tea.KeyDelete:
		return CodeDel, mods, true
	case tea.KeyUp:
		return CodeUp, mods, true
	case tea.KeyDown:
		return CodeDown, mods, true
	case tea.KeyLeft:
		return CodeLeft, mods, true
	case tea.KeyRight:
		return CodeRight, mods, true
	case tea.KeyShiftUp:
		mods.Shift = true
		return CodeUp, mods, true
	case tea.KeyShiftDown:
		mods.Shift = true
		return CodeDown, mods, true
	case tea.KeyShiftLeft:
		mods.Shift = true
		return CodeLeft, mods, true
	case tea.KeyShiftRight:
		mods.Shift = true
		return CodeRight, mods, true
	case tea.KeySpace:
		return ' ', mods, true
	case tea.KeyRunes:
		if msg.Paste || len(msg.Runes) != 1 {
			return 0, mods, false
		}
		code, shift := fromRune(msg.Runes[0])
		mods.Shift = shift
		return code, mods, true
	}

	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		mods.Ctrl = true
		return 'A' + int(msg.Type-tea.KeyCtrlA), mods, true
	}
	return 0, mods, false
}

func fromRune(r rune) (code int, shift bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a' + 'A'), false
	case r >= 'A' && r <= 'Z':
		return int(r), true
	case r >= '0' && r <= '9':
		return int(r), false
	}
	if c, ok := shiftedUS[r]; ok {
		return c, true
	}
	if c, ok := plainUS[r]; ok {
		return c, false
	}
	return int(r), false
}
