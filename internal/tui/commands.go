package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/student-portal/internal/export"
	"github.com/MKhiriev/student-portal/models"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

// Service calls block, so every one of them runs inside a tea.Cmd. The
// loading, notification and navigation side effects reach the model through
// the Bridge while the command is still running.

func (m model) cmdRefresh() tea.Cmd {
	ctx, svc, adminID := m.ctx, m.deps.Directory, m.deps.AdminID

	return func() tea.Msg {
		_, usersErr := svc.ListUsers(ctx, adminID)
		_, teachersErr := svc.ListTeachers(ctx, adminID)
		return refreshDoneMsg{err: errors.Join(usersErr, teachersErr)}
	}
}

func (m model) cmdListTeachers() tea.Cmd {
	ctx, svc, adminID := m.ctx, m.deps.Directory, m.deps.AdminID

	return func() tea.Msg {
		_, err := svc.ListTeachers(ctx, adminID)
		return refreshDoneMsg{err: err}
	}
}

func (m model) cmdGetUser(id models.ID) tea.Cmd {
	ctx, svc := m.ctx, m.deps.Directory

	return func() tea.Msg {
		u, err := svc.GetUser(ctx, id)
		return detailLoadedMsg{user: u, err: err}
	}
}

func (m model) cmdCreate(u models.User) tea.Cmd {
	ctx, svc, adminID := m.ctx, m.deps.Directory, m.deps.AdminID

	return func() tea.Msg {
		return mutationDoneMsg{err: svc.CreateUser(ctx, u, adminID)}
	}
}

func (m model) cmdEdit(u models.User) tea.Cmd {
	ctx, svc, adminID := m.ctx, m.deps.Directory, m.deps.AdminID

	return func() tea.Msg {
		return mutationDoneMsg{err: svc.EditUser(ctx, u, adminID)}
	}
}

func (m model) cmdDelete(u models.User) tea.Cmd {
	ctx, svc, adminID := m.ctx, m.deps.Directory, m.deps.AdminID

	return func() tea.Msg {
		return mutationDoneMsg{err: svc.DeleteUser(ctx, u, adminID)}
	}
}

func (m model) cmdExport() tea.Cmd {
	dir := strings.TrimSpace(m.deps.ExportDir)
	snap := m.snapshot.Clone()
	write, now := m.deps.Export, m.deps.Now

	return func() tea.Msg {
		if dir == "" {
			return exportDoneMsg{err: errNoExportDir}
		}
		path := export.FileName(dir, now())
		return exportDoneMsg{path: path, err: write(snap, path)}
	}
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
