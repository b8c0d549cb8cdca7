// Package nav is the page navigation state machine. It decides which page
// of controls is visible, applying the store/recall and hyperbolic overlays
// and the "press twice to stay" stickiness rule. State is an explicit value:
// every transition takes a State and returns the next one.
package nav

import (
	"fmt"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/grid"
)

// StoreMode is the storage overlay.
type StoreMode int

const (
	StoreNone StoreMode = iota
	StoreStore
	StoreRecall
)

// String returns "none", "store" or "recall".
func (m StoreMode) String() string {
	switch m {
	case StoreNone:
		return "none"
	case StoreStore:
		return "store"
	case StoreRecall:
		return "recall"
	default:
		return "unknown"
	}
}

// State is the complete navigation state. It is never persisted.
type State struct {
	Current        grid.Page // committed page; also the stickiness reference
	Last           grid.Page // page committed before Current
	StoreMode      StoreMode
	Hyp            bool
	LastStorePage  grid.Page
	ReturnToNumpad bool // return to the numeric pad after the next handled action
}

// Initial returns the start-up state: numeric pad, no overlays.
func Initial() State {
	return State{
		Current:        grid.Numpad,
		Last:           grid.Numpad,
		LastStorePage:  grid.RomanUpperPad,
		ReturnToNumpad: true,
	}
}

// Screen is what a transition asks the renderer to show. Exactly one of
// Keypad and OptionPage is set.
type Screen struct {
	Page         grid.Page
	Keypad       *grid.Grid
	OptionPage   int  // 1 or 2 when an option page is shown
	StorageIcons bool // tab bar shows storage-location labels
}

// Source supplies per-page slot grids and shortcut hints.
type Source interface {
	Grid(page grid.Page) ([][]grid.Slot, bool)
	ShortcutKeys(command string) []string
}

// Navigator applies transitions against a Source.
type Navigator struct {
	src Source
}

// New returns a Navigator reading grids from src.
func New(src Source) Navigator {
	return Navigator{src: src}
}

// Select requests a page. Rules, in order:
//  1. re-selecting the current non-numeric page keeps the user there after
//     the next handled action; anything else returns to the numeric pad
//  2. letter pads, and any non-numeric page while a store mode is active,
//     switch the tab bar to storage labels and remap logical pages to their
//     letter pad; otherwise the store mode is cleared
//  3. option pages short-circuit: no keypad is fetched
//  4. with hyp mode on, the function pad becomes the hyperbolic pad
//  5. the page's grid is fetched, populated and committed
//
// A page with no grid data is a programming error and panics.
func (n Navigator) Select(s State, requested grid.Page) (State, Screen) {
	page := requested

	s.ReturnToNumpad = !(page == s.Current && page != grid.Numpad)

	storage := false
	if page.IsLetterPad() || (s.StoreMode != StoreNone && page != grid.Numpad) {
		storage = true
		s.ReturnToNumpad = true
		page = grid.StoragePage(page)
	} else {
		s.StoreMode = StoreNone
	}

	switch page {
	case grid.OptPad, grid.OptPad1:
		return s.commit(grid.OptPad1), Screen{Page: grid.OptPad1, OptionPage: 1, StorageIcons: storage}
	case grid.OptPad2:
		return s.commit(grid.OptPad2), Screen{Page: grid.OptPad2, OptionPage: 2, StorageIcons: storage}
	}

	if s.Hyp && page == grid.FuncPad {
		page = grid.HypFuncPad
	}

	s = s.commit(page)
	if page.IsLetterPad() {
		s.LastStorePage = page
	}
	return s, Screen{Page: page, Keypad: n.populate(page), StorageIcons: storage}
}

// Render rebuilds the screen for the committed page without running a
// transition. Used for the first frame and after engine-side changes.
func (n Navigator) Render(s State) Screen {
	storage := s.Current.IsLetterPad() || (s.StoreMode != StoreNone && s.Current != grid.Numpad)
	switch s.Current {
	case grid.OptPad, grid.OptPad1:
		return Screen{Page: grid.OptPad1, OptionPage: 1, StorageIcons: storage}
	case grid.OptPad2:
		return Screen{Page: grid.OptPad2, OptionPage: 2, StorageIcons: storage}
	}
	return Screen{Page: s.Current, Keypad: n.populate(s.Current), StorageIcons: storage}
}

func (n Navigator) populate(page grid.Page) *grid.Grid {
	rows, ok := n.src.Grid(page)
	if !ok {
		panic(fmt.Sprintf("nav: no grid for page %s", page))
	}
	return grid.Populate(page, rows, n.src.ShortcutKeys)
}

func (s State) commit(p grid.Page) State {
	if p != s.Current {
		s.Last = s.Current
	}
	s.Current = p
	return s
}

// ToggleHyp flips hyperbolic mode and re-selects the function pad so the
// overlay applies immediately.
func (n Navigator) ToggleHyp(s State) (State, Screen) {
	s.Hyp = !s.Hyp
	return n.Select(s, grid.FuncPad)
}

// EnterStoreMode arms store or recall and shows the last-used letter pad.
func (n Navigator) EnterStoreMode(s State, mode StoreMode) (State, Screen) {
	s.StoreMode = mode
	return n.Select(s, s.LastStorePage)
}

// Cancel clears the store mode and returns to the numeric pad.
func (n Navigator) Cancel(s State) (State, Screen) {
	s.StoreMode = StoreNone
	return n.Select(s, grid.Numpad)
}

// ConsumeSlot finishes a letter-pad selection: the caller has already
// issued the store or recall for s.StoreMode. The mode is cleared and the
// numeric pad shown regardless of stickiness.
func (n Navigator) ConsumeSlot(s State) (State, Screen) {
	s.StoreMode = StoreNone
	return n.Select(s, grid.Numpad)
}

// AfterHandled applies the stickiness rule after a handled command.
func (n Navigator) AfterHandled(s State) (State, Screen) {
	if s.ReturnToNumpad {
		return n.Select(s, grid.Numpad)
	}
	return n.Select(s, s.Current)
}

// NextTab advances through the fixed page cycle. Pages at the end of the
// cycle cancel back to the numeric pad.
func (n Navigator) NextTab(s State) (State, Screen) {
	next, ok := s.Current.Next()
	if !ok {
		return n.Cancel(s)
	}
	return n.Select(s, next)
}

// ToggleOptionPage flips between the two option pages.
func (n Navigator) ToggleOptionPage(s State) (State, Screen) {
	if s.Current == grid.OptPad2 {
		return n.Select(s, grid.OptPad1)
	}
	return n.Select(s, grid.OptPad2)
}
