package tui

import "github.com/MKhiriev/student-portal/models"

type loadingMsg struct {
	on bool
}

// notifyMsg opens the notification overlay; closing done dismisses it.
type notifyMsg struct {
	notification models.Notification
	done         chan struct{}
}

type navigateMsg struct {
	route []string
}

type backMsg struct{}

type snapshotMsg struct {
	snapshot models.DirectorySnapshot
}

type refreshDoneMsg struct {
	err error
}

type detailLoadedMsg struct {
	user models.User
	err  error
}

// mutationDoneMsg arrives after the service has finished the whole
// completion sequence of a create, edit or delete.
type mutationDoneMsg struct {
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

type clearStatusMsg struct{}
