package tui

import (
	"strings"

	"github.com/MKhiriev/student-portal/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const profileEmail = "USER_EMAIL"

const (
	fieldFirstName = iota
	fieldLastName
	fieldRole
	fieldEmail
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldFirstName: "First name",
	fieldLastName:  "Last name",
	fieldRole:      "Role",
	fieldEmail:     "Email",
}

// formModel edits a user record. Profile fields without an input are kept
// from the original record.
type formModel struct {
	inputs   []textinput.Model
	focus    int
	editing  bool
	original models.User
	err      string
}

func newFormModel(u *models.User) formModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].Prompt = ""
	}
	inputs[fieldRole].Placeholder = "STUDENT"
	inputs[fieldFirstName].Focus()

	m := formModel{inputs: inputs}
	if u == nil {
		return m
	}

	m.editing = true
	m.original = u.Clone()
	m.inputs[fieldFirstName].SetValue(u.FirstName)
	m.inputs[fieldLastName].SetValue(u.LastName)
	m.inputs[fieldRole].SetValue(u.Role.String())
	m.inputs[fieldEmail].SetValue(u.ProfileString(profileEmail))
	return m
}

func (m formModel) value(field int) string {
	return strings.TrimSpace(m.inputs[field].Value())
}

func (m formModel) toUser() models.User {
	u := m.original.Clone()
	u.FirstName = m.value(fieldFirstName)
	u.LastName = m.value(fieldLastName)
	u.Role = models.NormalizeRole(models.Role(m.value(fieldRole)))

	if email := m.value(fieldEmail); email != "" {
		u.SetProfileString(profileEmail, email)
	} else if u.Profile != nil {
		delete(u.Profile, profileEmail)
		if len(u.Profile) == 0 {
			u.Profile = nil
		}
	}
	return u
}

func (m formModel) validate() error {
	if m.value(fieldFirstName) == "" {
		return errFirstNameRequired
	}
	if !models.Role(m.value(fieldRole)).Valid() {
		return errRoleInvalid
	}
	return nil
}

func (m formModel) move(delta int) formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) title() string {
	if m.editing {
		return "EDIT " + displayName(m.original)
	}
	return "NEW USER"
}

func (m formModel) View() string {
	var b strings.Builder
	for i, in := range m.inputs {
		b.WriteString(cursor(i == m.focus))
		b.WriteString(padLabel(fieldLabels[i]))
		b.WriteString("[")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}
	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err))
	}
	return strings.TrimRight(b.String(), "\n")
}

func padLabel(label string) string {
	const width = 12
	label += ":"
	if len(label) < width {
		label += strings.Repeat(" ", width-len(label))
	}
	return label
}
