package tui

import "github.com/MKhiriev/student-portal/models"

func renderNotification(n models.Notification) string {
	header := successStyle.Render("Done")
	if n.Kind == models.NotificationFailure {
		header = errorStyle.Render("Error")
	}

	action := n.Action
	if action == "" {
		action = "OK"
	}

	content := header + "\n\n" + n.Message + "\n\n" + "enter / esc: " + action
	return overlayBoxStyle.Render(content)
}
