package tui

import (
	"fmt"
	"strings"
)

const (
	usersHotKeys    = "↑/↓ move  enter open  n new  e edit  d delete  t teachers  r refresh  c copy id  x export  v info  q quit"
	teachersHotKeys = "↑/↓ move  enter open  t users  r refresh  c copy id  x export  v info  q quit"
	detailHotKeys   = "e edit  d delete  c copy id  v info  esc back"
	formHotKeys     = "tab next field  shift+tab previous  enter save  esc cancel"
)

func (m model) View() string {
	if m.showBuildInfo && len(m.notifications) == 0 {
		return renderBuildInfoWindow(m.deps.BuildInfo)
	}

	page := m.page()
	if len(m.notifications) > 0 {
		return page + "\n\n" + renderNotification(m.notifications[0].notification)
	}
	if m.screen == screenConfirm {
		return page + "\n\n" + renderConfirmDelete(m.confirm)
	}
	return page
}

func (m model) page() string {
	switch m.screen {
	case screenTeachers:
		return renderPage(m.title("TEACHERS"), m.withFooter(renderTeachers(m.snapshot.Teachers, m.teacherIdx)), teachersHotKeys)
	case screenDetail:
		return renderPage(m.title("USER "+m.detail.UserID.String()), m.withFooter(renderDetail(m.detail)), detailHotKeys)
	case screenForm:
		return renderPage(m.title(m.form.title()), m.withFooter(m.form.View()), formHotKeys)
	case screenConfirm:
		return m.underlying().page()
	}
	return renderPage(m.title("USERS"), m.withFooter(renderUsers(m.snapshot.Users, m.userIdx)), usersHotKeys)
}

// underlying is the screen the confirmation prompt was opened from.
func (m model) underlying() model {
	return m.back()
}

func (m model) title(section string) string {
	title := "STUDENT PORTAL · " + section
	if m.deps.AdminID != "" {
		title += fmt.Sprintf("  [admin %s]", m.deps.AdminID)
	}
	if m.loading {
		title += "  " + m.spinner.View()
	}
	return title
}

func (m model) withFooter(data string) string {
	var lines []string
	if m.busy {
		lines = append(lines, "Saving...")
	}
	if m.status != "" {
		lines = append(lines, m.status)
	}
	if m.errMsg != "" {
		lines = append(lines, errorStyle.Render("Error: "+m.errMsg))
	}
	if len(lines) == 0 {
		return data
	}
	return data + "\n\n" + strings.Join(lines, "\n")
}
