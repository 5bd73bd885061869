// Package tui is the terminal front end of the student-portal client.
//
// A [Bridge] implements the loading, notification and navigation contracts
// of the service layer by sending messages into the running bubbletea
// program. The program renders the latest directory snapshot it receives
// from the directory store.
package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/student-portal/internal/export"
	"github.com/MKhiriev/student-portal/internal/logger"
	"github.com/MKhiriev/student-portal/internal/service"
	"github.com/MKhiriev/student-portal/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Deps are the collaborators of the terminal UI.
type Deps struct {
	Directory service.UserDirectoryService
	Store     service.DirectoryStore

	AdminID   string
	ExportDir string
	BuildInfo models.AppBuildInfo

	// WriteClipboard defaults to clipboard.WriteAll.
	WriteClipboard func(string) error
	// Export defaults to export.WriteDirectory.
	Export func(models.DirectorySnapshot, string) error
	// Now defaults to time.Now.
	Now func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.WriteClipboard == nil {
		d.WriteClipboard = clipboard.WriteAll
	}
	if d.Export == nil {
		d.Export = export.WriteDirectory
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// TUI runs the bubbletea program.
type TUI struct {
	bridge *Bridge
	deps   Deps
	logger *logger.Logger
}

// New constructs a TUI. bridge must be the same [Bridge] the services were
// built with.
func New(bridge *Bridge, deps Deps, logger *logger.Logger) *TUI {
	return &TUI{bridge: bridge, deps: deps.withDefaults(), logger: logger}
}

// Run blocks until the administrator quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	program := tea.NewProgram(
		newModel(ctx, t.deps),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	t.bridge.attach(program.Send)
	defer t.bridge.detach()

	feed := newSnapshotFeed(program.Send)
	unsubscribe := t.deps.Store.Subscribe(feed.offer)
	defer func() {
		unsubscribe()
		feed.close()
	}()

	t.logger.Info().Str("func", "TUI.Run").Msg("terminal ui started")
	if _, err := program.Run(); err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("terminal ui stopped with error")
		return err
	}
	t.logger.Info().Str("func", "TUI.Run").Msg("terminal ui stopped")
	return nil
}
