// Package tui implements the terminal client: header navigation, the home
// and not-found pages, and the profile form page.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/vetprofile/internal/profile"
)

// Model is the root Bubble Tea model. It routes keys to the active page and
// owns the profile view while the profile page is active.
type Model struct {
	store   *profile.Store
	path    string
	page    Page
	history []string
	profile profileView
	width   int
	help    help.Model
	keys    navKeys
}

// NewModel creates a Model showing the page for path.
func NewModel(store *profile.Store, path string) Model {
	m := Model{
		store: store,
		help:  help.New(),
		keys:  NavKeyMap(),
	}
	m, _ = m.open(path)
	return m
}

// Init starts the cursor blink when the profile page is first.
func (m Model) Init() tea.Cmd {
	if m.page == PageProfile {
		return textinput.Blink
	}
	return nil
}

// Page returns the active page.
func (m Model) Page() Page {
	return m.page
}

// Form returns the profile form, or nil when the profile page is inactive.
func (m Model) Form() *profile.Form {
	return m.profile.form
}

// Update handles incoming messages with page-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.page == PageProfile {
			return m.handleProfileKey(msg)
		}
		return m.handleNavKey(msg)
	}

	if m.page == PageProfile {
		var cmd tea.Cmd
		m.profile, cmd = m.profile.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleNavKey processes keys on pages without inputs.
func (m Model) handleNavKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		return m.back()
	case key.Matches(msg, m.keys.Home):
		return m.navigate("/home")
	case key.Matches(msg, m.keys.Pets):
		return m.navigate("/pets")
	case key.Matches(msg, m.keys.Profile):
		return m.navigate("/profile")
	}
	return m, nil
}

// handleProfileKey processes keys while the profile form is active.
func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.profile.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.profile.keys.Back):
		return m.back()
	}
	var cmd tea.Cmd
	m.profile, cmd = m.profile.Update(msg)
	return m, cmd
}

// navigate records the current path in history and opens path.
func (m Model) navigate(path string) (tea.Model, tea.Cmd) {
	m.history = append(m.history[:len(m.history):len(m.history)], m.path)
	return m.open(path)
}

// back reopens the previous path, or home when there is none.
func (m Model) back() (tea.Model, tea.Cmd) {
	if len(m.history) == 0 {
		return m.open("/home")
	}
	prev := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	return m.open(prev)
}

// open activates the page for path. Leaving the profile page discards its
// form; entering it builds a fresh one from the store.
func (m Model) open(path string) (Model, tea.Cmd) {
	m.path = path
	m.page = Route(path)
	m.profile = profileView{}
	if m.page == PageProfile {
		m.profile = newProfileView(m.store)
		return m, textinput.Blink
	}
	return m, nil
}

// View renders header, page body, footer, and help bar.
func (m Model) View() string {
	var body string
	var keys help.KeyMap = m.keys
	switch m.page {
	case PageProfile:
		body = m.profile.View()
		keys = m.profile.keys
	case PageNotFound:
		body = m.viewNotFound()
	default:
		body = m.viewHome()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		"",
		body,
		"",
		mutedStyle.Render("VetCare · Caring for the pets you love"),
		m.help.View(keys),
	)
}

func (m Model) viewHeader() string {
	items := make([]string, 0, len(navLinks))
	for _, link := range navLinks {
		label := fmt.Sprintf("%s [%s]", link.Name, link.Key)
		if Route(link.Path) == m.page && m.page != PageNotFound {
			items = append(items, activeNav.Render(label))
		} else {
			items = append(items, inactiveNav.Render(label))
		}
	}
	return brandStyle.Render("VetCare") + "   " + strings.Join(items, "  ")
}

func (m Model) viewHome() string {
	return titleStyle.Render("Welcome to VetCare") + "\n" +
		mutedStyle.Render("Manage your contact information from the Profile page.")
}

func (m Model) viewNotFound() string {
	return titleStyle.Render("Page not found") + "\n" +
		mutedStyle.Render(fmt.Sprintf("The page %q does not exist or has been moved.", m.path)) + "\n\n" +
		"[h] Back to Home   [b] Go Back"
}
