package tui

import "github.com/charmbracelet/bubbles/key"

// navKeys holds key bindings for pages without text inputs.
type navKeys struct {
	Home    key.Binding
	Pets    key.Binding
	Profile key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns the navigation bindings for the help bar.
func (k navKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Home, k.Pets, k.Profile, k.Back, k.Quit}
}

// FullHelp returns the navigation bindings grouped for expanded help.
func (k navKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Pets, k.Profile},
		{k.Back, k.Quit},
	}
}

// profileKeys holds key bindings for the profile form. Printable keys
// belong to the focused input, so every binding here is a control key.
type profileKeys struct {
	Next key.Binding
	Prev key.Binding
	Save key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns the profile bindings for the help bar.
func (k profileKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Save, k.Back, k.Quit}
}

// FullHelp returns the profile bindings grouped for expanded help.
func (k profileKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Save, k.Back, k.Quit},
	}
}

// NavKeyMap returns the key bindings for navigation pages.
func NavKeyMap() navKeys {
	return navKeys{
		Home: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "home"),
		),
		Pets: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "my pets"),
		),
		Profile: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "profile"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ProfileKeyMap returns the key bindings for the profile form.
func ProfileKeyMap() profileKeys {
	return profileKeys{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save changes"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
