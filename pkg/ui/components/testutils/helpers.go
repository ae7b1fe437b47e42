// Package testutils builds key events for component and model tests.
package testutils

import (
	tea "charm.land/bubbletea/v2"
)

// NewKeyPressMsg creates a KeyPressMsg from a key code (for special keys)
func NewKeyPressMsg(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

// NewTextKeyPressMsg creates a KeyPressMsg for a single typed character
func NewTextKeyPressMsg(text string) tea.KeyPressMsg {
	if len(text) == 0 {
		return tea.KeyPressMsg(tea.Key{})
	}
	r := []rune(text)[0]
	return tea.KeyPressMsg(tea.Key{
		Code: r,
		Text: text,
	})
}

// NewModKeyPressMsg creates a KeyPressMsg with modifiers held
func NewModKeyPressMsg(code rune, mod tea.KeyMod) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: code, Mod: mod})
}

// TypeText splits text into one key press per rune
func TypeText(text string) []tea.KeyPressMsg {
	msgs := make([]tea.KeyPressMsg, 0, len(text))
	for _, r := range text {
		msgs = append(msgs, NewTextKeyPressMsg(string(r)))
	}
	return msgs
}

var (
	TestKeyUp       = NewKeyPressMsg(tea.KeyUp)
	TestKeyDown     = NewKeyPressMsg(tea.KeyDown)
	TestKeyLeft     = NewKeyPressMsg(tea.KeyLeft)
	TestKeyRight    = NewKeyPressMsg(tea.KeyRight)
	TestKeyEnter    = NewKeyPressMsg(tea.KeyEnter)
	TestKeyTab      = NewKeyPressMsg(tea.KeyTab)
	TestKeyShiftTab = NewModKeyPressMsg(tea.KeyTab, tea.ModShift)
	TestKeyEsc      = NewKeyPressMsg(tea.KeyEscape)
	TestKeySpace    = NewKeyPressMsg(tea.KeySpace)
	TestKeyPgUp     = NewKeyPressMsg(tea.KeyPgUp)
	TestKeyPgDown   = NewKeyPressMsg(tea.KeyPgDown)

	TestKeyCtrlC = NewModKeyPressMsg('c', tea.ModCtrl)
	TestKeyCtrlY = NewModKeyPressMsg('y', tea.ModCtrl)
)
