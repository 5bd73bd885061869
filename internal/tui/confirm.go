package tui

import "github.com/MKhiriev/student-portal/models"

func renderConfirmDelete(u models.User) string {
	content := "Delete \"" + displayName(u) + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}

func displayName(u models.User) string {
	if name := u.FullName(); name != "" {
		return name
	}
	return "user " + u.UserID.String()
}
