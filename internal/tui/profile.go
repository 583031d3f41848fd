package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/vetprofile/internal/profile"
)

// Notification texts shown after a save attempt.
const (
	savedNotice      = "Profile saved successfully!"
	saveFailedNotice = "Could not save profile"
)

// formField describes one editable input and the form cell behind it.
type formField struct {
	label       string
	placeholder string
	cell        func(*profile.Form) *profile.Field
}

var formFields = []formField{
	{label: "Name", placeholder: "Your name", cell: (*profile.Form).Name},
	{label: "Email", placeholder: "email@example.com", cell: (*profile.Form).Email},
	{label: "Cellphone number", placeholder: "+506 ....-....", cell: (*profile.Form).Phone},
}

// notice is the result of the last save, shown under the form.
type notice struct {
	text string
	err  bool
}

// profileView renders a profile.Form as text inputs. It exists only while
// the profile page is active; leaving the page discards it.
type profileView struct {
	form   *profile.Form
	inputs []textinput.Model
	focus  int
	notice notice
	keys   profileKeys
}

// newProfileView activates the profile page: the form reads the store once
// and the inputs are seeded from its fields.
func newProfileView(store *profile.Store) profileView {
	form := profile.NewForm(store)

	inputs := make([]textinput.Model, len(formFields))
	for i, f := range formFields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.placeholder
		ti.CharLimit = 0
		ti.Width = 40
		ti.SetValue(f.cell(form).Value())
		inputs[i] = ti
	}
	inputs[0].Focus()

	return profileView{form: form, inputs: inputs, keys: ProfileKeyMap()}
}

// Update handles focus movement and saving, and forwards everything else to
// the focused input. A keystroke that changes the input is pushed into its
// form cell; the cell is never rewritten from what the input displays.
func (v profileView) Update(msg tea.Msg) (profileView, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch {
		case key.Matches(keyMsg, v.keys.Next):
			return v, v.focusField((v.focus + 1) % len(v.inputs))
		case key.Matches(keyMsg, v.keys.Prev):
			return v, v.focusField((v.focus + len(v.inputs) - 1) % len(v.inputs))
		case key.Matches(keyMsg, v.keys.Save):
			v.save()
			return v, nil
		}
	}

	before := v.inputs[v.focus].Value()
	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)

	if after := v.inputs[v.focus].Value(); isKey && after != before {
		formFields[v.focus].cell(v.form).Set(after)
		v.notice = notice{}
	}
	return v, cmd
}

func (v *profileView) focusField(i int) tea.Cmd {
	v.inputs[v.focus].Blur()
	v.focus = i
	return v.inputs[i].Focus()
}

func (v *profileView) save() {
	if err := v.form.Save(); err != nil {
		v.notice = notice{text: fmt.Sprintf("%s: %v", saveFailedNotice, err), err: true}
		return
	}
	v.notice = notice{text: savedNotice}
}

// View renders the profile card, the inputs, and the save status.
func (v profileView) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Client Profile"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("View and edit your contact information registered in the system."))
	b.WriteString("\n\n")

	card := lipgloss.JoinVertical(lipgloss.Left,
		mutedStyle.Render("Profile"),
		labelStyle.Render(v.form.DisplayName()),
		mutedStyle.Render(v.form.DisplayEmail()),
		mutedStyle.Render("Photo: "+v.form.PhotoURL()),
	)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, card, "  ", badgeStyle.Render("Client")))
	b.WriteString("\n\n")

	for i, f := range formFields {
		b.WriteString(labelStyle.Render(f.label))
		b.WriteString("\n")
		b.WriteString(inputBorder(i == v.focus).Render(v.inputs[i].View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("[ctrl+s] Save Changes"))
	if v.form.Dirty() {
		b.WriteString(mutedStyle.Render("  • unsaved changes"))
	}

	if v.notice.text != "" {
		b.WriteString("\n\n")
		if v.notice.err {
			b.WriteString(errorStyle.Render(v.notice.text))
		} else {
			b.WriteString(successStyle.Render(v.notice.text))
		}
	}
	return b.String()
}
