package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/student-portal/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenUsers screen = iota
	screenTeachers
	screenDetail
	screenForm
	screenConfirm
)

// routes maps navigation routes to list screens.
var routes = map[string]screen{
	"admin/users":    screenUsers,
	"admin/teachers": screenTeachers,
}

type model struct {
	ctx  context.Context
	deps Deps

	snapshot   models.DirectorySnapshot
	screen     screen
	history    []screen
	userIdx    int
	teacherIdx int

	detail  models.User
	form    formModel
	confirm models.User

	// notifications are shown one at a time, oldest first.
	notifications []notifyMsg
	showBuildInfo bool

	loading         bool
	spinner         spinner.Model
	busy            bool
	teachersFetched bool

	status string
	errMsg string
}

func newModel(ctx context.Context, deps Deps) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return model{ctx: ctx, deps: deps.withDefaults(), spinner: s}
}

func (m model) Init() tea.Cmd {
	return m.cmdRefresh()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadingMsg:
		wasLoading := m.loading
		m.loading = msg.on
		if msg.on && !wasLoading {
			return m, m.spinner.Tick
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case notifyMsg:
		m.notifications = append(m.notifications, msg)
		return m, nil

	case navigateMsg:
		if target, ok := routes[strings.Join(msg.route, "/")]; ok {
			m.history = nil
			m.screen = target
		}
		return m, nil

	case backMsg:
		return m.back(), nil

	case snapshotMsg:
		m.snapshot = msg.snapshot
		m.clampCursors()
		if m.screen == screenDetail {
			if u, ok := m.snapshot.FindUser(m.detail.UserID); ok {
				m.detail = u
			}
		}
		return m, nil

	case refreshDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, nil

	case detailLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if m.screen == screenDetail && m.detail.UserID == msg.user.UserID {
			m.detail = msg.user
		}
		return m, nil

	case mutationDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.errMsg = "Export failed: " + humanizeError(msg.err)
			return m, nil
		}
		return m.withStatus("Exported to " + msg.path)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.screen == screenForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}

	if len(m.notifications) > 0 {
		if key.Matches(msg, keys.enter, keys.esc) {
			close(m.notifications[0].done)
			m.notifications = m.notifications[1:]
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch m.screen {
	case screenUsers:
		return m.updateUsers(msg)
	case screenTeachers:
		return m.updateTeachers(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenConfirm:
		return m.updateConfirm(msg)
	}
	return m, nil
}

func (m model) updateUsers(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	users := m.snapshot.Users
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.userIdx > 0 {
			m.userIdx--
		}
	case key.Matches(msg, keys.down):
		if m.userIdx < len(users)-1 {
			m.userIdx++
		}
	case key.Matches(msg, keys.enter):
		u, ok := m.currentUser()
		if !ok {
			return m.withStatus("No users")
		}
		return m.openDetail(u)
	case key.Matches(msg, keys.newItem):
		return m.openForm(nil)
	case key.Matches(msg, keys.edit):
		u, ok := m.currentUser()
		if !ok {
			return m.withStatus("No users")
		}
		return m.openForm(&u)
	case key.Matches(msg, keys.delete):
		u, ok := m.currentUser()
		if !ok {
			return m.withStatus("No users")
		}
		return m.openConfirm(u)
	case key.Matches(msg, keys.teachers):
		m.screen = screenTeachers
		if !m.teachersFetched {
			m.teachersFetched = true
			return m, m.cmdListTeachers()
		}
	case key.Matches(msg, keys.copyID):
		u, ok := m.currentUser()
		if !ok {
			return m.withStatus("Nothing to copy")
		}
		return m.copyID(u.UserID)
	default:
		return m.updateCommon(msg)
	}
	return m, nil
}

func (m model) updateTeachers(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	teachers := m.snapshot.Teachers
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.teacherIdx > 0 {
			m.teacherIdx--
		}
	case key.Matches(msg, keys.down):
		if m.teacherIdx < len(teachers)-1 {
			m.teacherIdx++
		}
	case key.Matches(msg, keys.enter):
		t, ok := m.currentTeacher()
		if !ok {
			return m.withStatus("No teachers")
		}
		return m.openDetail(t.User)
	case key.Matches(msg, keys.teachers, keys.esc):
		m.screen = screenUsers
	case key.Matches(msg, keys.copyID):
		t, ok := m.currentTeacher()
		if !ok {
			return m.withStatus("Nothing to copy")
		}
		return m.copyID(t.UserID)
	default:
		return m.updateCommon(msg)
	}
	return m, nil
}

// updateCommon handles keys shared by both lists.
func (m model) updateCommon(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.refresh):
		m.teachersFetched = true
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.export):
		return m, m.cmdExport()
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	}
	return m, nil
}

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m.back(), nil
	case key.Matches(msg, keys.edit):
		u := m.detail
		return m.openForm(&u)
	case key.Matches(msg, keys.delete):
		return m.openConfirm(m.detail)
	case key.Matches(msg, keys.copyID):
		return m.copyID(m.detail.UserID)
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	}
	return m, nil
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m.back(), nil
	case key.Matches(msg, keys.tab):
		m.form = m.form.move(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form = m.form.move(-1)
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.busy {
			return m.withStatus("Please wait")
		}
		if err := m.form.validate(); err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		m.form.err = ""
		m.busy = true
		u := m.form.toUser()
		if m.form.editing {
			return m, m.cmdEdit(u)
		}
		return m, m.cmdCreate(u)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		if m.busy {
			return m.withStatus("Please wait")
		}
		m.busy = true
		u := m.confirm
		return m.back(), m.cmdDelete(u)
	case key.Matches(msg, keys.no):
		return m.back(), nil
	}
	return m, nil
}

func (m model) push(next screen) model {
	m.history = append(append([]screen(nil), m.history...), m.screen)
	m.screen = next
	return m
}

// back returns to the previous screen, or to the users list when there is
// none.
func (m model) back() model {
	if len(m.history) == 0 {
		m.screen = screenUsers
		return m
	}
	m.screen = m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	return m
}

func (m model) openDetail(u models.User) (tea.Model, tea.Cmd) {
	m = m.push(screenDetail)
	m.detail = u
	return m, m.cmdGetUser(u.UserID)
}

func (m model) openForm(u *models.User) (tea.Model, tea.Cmd) {
	m = m.push(screenForm)
	m.form = newFormModel(u)
	return m, nil
}

func (m model) openConfirm(u models.User) (tea.Model, tea.Cmd) {
	m = m.push(screenConfirm)
	m.confirm = u
	return m, nil
}

func (m model) copyID(id models.ID) (tea.Model, tea.Cmd) {
	if id == "" {
		return m.withStatus("Nothing to copy")
	}
	if err := m.deps.WriteClipboard(id.String()); err != nil {
		m.errMsg = "Copy failed: " + err.Error()
		return m, nil
	}
	return m.withStatus("Copied USER_ID " + id.String())
}

func (m model) withStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, clearStatusAfter()
}

func (m model) currentUser() (models.User, bool) {
	users := m.snapshot.Users
	if m.userIdx < 0 || m.userIdx >= len(users) {
		return models.User{}, false
	}
	return users[m.userIdx], true
}

func (m model) currentTeacher() (models.Teacher, bool) {
	teachers := m.snapshot.Teachers
	if m.teacherIdx < 0 || m.teacherIdx >= len(teachers) {
		return models.Teacher{}, false
	}
	return teachers[m.teacherIdx], true
}

func (m *model) clampCursors() {
	m.userIdx = clamp(m.userIdx, len(m.snapshot.Users))
	m.teacherIdx = clamp(m.teacherIdx, len(m.snapshot.Teachers))
}

func clamp(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
