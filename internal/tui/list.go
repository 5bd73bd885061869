package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/student-portal/models"
)

const (
	idColumnWidth   = 14
	nameColumnWidth = 32
)

func cursor(selected bool) string {
	if selected {
		return cursorStyle.Render("> ")
	}
	return "  "
}

func renderUsers(users []models.User, idx int) string {
	if len(users) == 0 {
		return "No users"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %-*s %-*s %s\n", idColumnWidth, "USER_ID", nameColumnWidth, "NAME", "ROLE")
	for i, u := range users {
		fmt.Fprintf(&b, "%s%-*s %-*s %s\n",
			cursor(i == idx),
			idColumnWidth, fitText(u.UserID.String(), idColumnWidth),
			nameColumnWidth, fitText(valueOrDash(u.FullName()), nameColumnWidth),
			valueOrDash(u.Role.String()),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderTeachers(teachers []models.Teacher, idx int) string {
	if len(teachers) == 0 {
		return "No teachers"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %-*s %-*s %s\n", idColumnWidth, "TEACHER_ID", nameColumnWidth, "NAME", "USER_ID")
	for i, t := range teachers {
		fmt.Fprintf(&b, "%s%-*s %-*s %s\n",
			cursor(i == idx),
			idColumnWidth, fitText(valueOrDash(t.TeacherID.String()), idColumnWidth),
			nameColumnWidth, fitText(valueOrDash(t.FullName()), nameColumnWidth),
			t.UserID.String(),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}
