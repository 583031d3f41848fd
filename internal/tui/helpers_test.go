package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/vetprofile/internal/contact"
	"github.com/smileynet/vetprofile/internal/kv"
	"github.com/smileynet/vetprofile/internal/profile"
)

var testSeed = contact.Record{Name: "Jane Doe", Email: "jane@vet.com", Phone: "", PhotoURL: "p.png"}

// readOnlyStorage rejects every write.
type readOnlyStorage struct {
	*kv.MemoryStorage
}

func (readOnlyStorage) Set(string, string) error {
	return errors.New("quota exceeded")
}

func newTestStore() *profile.Store {
	return profile.NewStore(kv.NewMemoryStorage(), testSeed)
}

func newReadOnlyStore() *profile.Store {
	return profile.NewStore(readOnlyStorage{kv.NewMemoryStorage()}, testSeed)
}

// press converts a key name into the KeyMsg Bubble Tea would deliver.
func press(name string) tea.KeyMsg {
	switch name {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// send applies each key in order and returns the resulting Model.
func send(m tea.Model, keys ...string) Model {
	for _, k := range keys {
		m, _ = m.Update(press(k))
	}
	return m.(Model)
}

// typeText delivers s one rune at a time, as a keyboard would.
func typeText(m tea.Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m.(Model)
}
