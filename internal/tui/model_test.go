package tui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/student-portal/internal/mock"
	"github.com/MKhiriev/student-portal/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAdmin = "admin-1"

// ---- Helpers ----

type fixture struct {
	svc       *mock.MockUserDirectoryService
	clipboard []string
	exported  []string
	m         model
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{svc: mock.NewMockUserDirectoryService(ctrl)}

	deps := Deps{
		Directory: f.svc,
		AdminID:   testAdmin,
		ExportDir: "exports",
		BuildInfo: models.NewAppBuildInfo("1.2.3", "2026-03-01", "abc123"),
		WriteClipboard: func(s string) error {
			f.clipboard = append(f.clipboard, s)
			return nil
		},
		Export: func(_ models.DirectorySnapshot, path string) error {
			f.exported = append(f.exported, path)
			return nil
		},
		Now: func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) },
	}
	f.m = newModel(context.Background(), deps)
	f.send(snapshotMsg{snapshot: models.DirectorySnapshot{
		Version: 1,
		Users: []models.User{
			{UserID: "1", FirstName: "Ada", LastName: "Lovelace", Role: models.RoleTeacher},
			{UserID: "2", FirstName: "Alan", LastName: "Turing", Role: models.RoleStudent},
		},
		Teachers: []models.Teacher{
			{User: models.User{UserID: "1", FirstName: "Ada", LastName: "Lovelace", Role: models.RoleTeacher}, TeacherID: "T1"},
		},
	}})
	return f
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	next, cmd := f.m.Update(msg)
	f.m = next.(model)
	return cmd
}

func (f *fixture) press(k string) tea.Cmd {
	return f.send(keyMsg(k))
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// run executes cmd and feeds its message back into the model.
func (f *fixture) run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	f.send(msg)
	return msg
}

// ---- Lists ----

func TestModel_RendersUsers(t *testing.T) {
	f := newFixture(t)

	view := f.m.View()

	assert.Contains(t, view, "STUDENT PORTAL · USERS")
	assert.Contains(t, view, "Ada Lovelace")
	assert.Contains(t, view, "Alan Turing")
	assert.Contains(t, view, "[admin admin-1]")
}

func TestModel_CursorIsClampedOnShrink(t *testing.T) {
	f := newFixture(t)
	f.press("down")
	f.press("down")
	assert.Equal(t, 1, f.m.userIdx)

	f.send(snapshotMsg{snapshot: models.DirectorySnapshot{Version: 2, Users: []models.User{{UserID: "1"}}}})

	assert.Equal(t, 0, f.m.userIdx)
}

func TestModel_InitRefreshesBothCollections(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().ListUsers(gomock.Any(), testAdmin).Return(nil, nil)
	f.svc.EXPECT().ListTeachers(gomock.Any(), testAdmin).Return(nil, errors.New("dial tcp: connection refused"))

	msg := f.run(t, f.m.Init())

	require.IsType(t, refreshDoneMsg{}, msg)
	assert.Equal(t, "The portal is unreachable", f.m.errMsg)
}

func TestModel_TeachersToggleFetchesOnce(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().ListTeachers(gomock.Any(), testAdmin).Return(nil, nil).Times(1)

	f.run(t, f.press("t"))
	assert.Equal(t, screenTeachers, f.m.screen)
	assert.Contains(t, f.m.View(), "T1")

	f.press("t")
	assert.Equal(t, screenUsers, f.m.screen)
	assert.Nil(t, f.press("t"))
}

func TestModel_CopyUserID(t *testing.T) {
	f := newFixture(t)
	f.press("down")

	cmd := f.press("c")

	assert.NotNil(t, cmd)
	assert.Equal(t, []string{"2"}, f.clipboard)
	assert.Equal(t, "Copied USER_ID 2", f.m.status)

	f.send(clearStatusMsg{})
	assert.Empty(t, f.m.status)
}

func TestModel_Export(t *testing.T) {
	f := newFixture(t)

	msg := f.run(t, f.press("x"))

	want := filepath.Join("exports", "directory-20260301-090000.xlsx")
	assert.Equal(t, exportDoneMsg{path: want}, msg)
	assert.Equal(t, []string{want}, f.exported)
	assert.Equal(t, "Exported to "+want, f.m.status)
}

func TestModel_ExportWithoutDirectory(t *testing.T) {
	f := newFixture(t)
	f.m.deps.ExportDir = " "

	f.run(t, f.press("x"))

	assert.Empty(t, f.exported)
	assert.Contains(t, f.m.errMsg, errNoExportDir.Error())
}

func TestModel_BuildInfo(t *testing.T) {
	f := newFixture(t)

	f.press("v")
	view := f.m.View()
	assert.Contains(t, view, "BUILD INFO")
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "abc123")

	f.press("esc")
	assert.False(t, f.m.showBuildInfo)
}

func TestModel_Quit(t *testing.T) {
	f := newFixture(t)

	cmd := f.press("q")

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

// ---- Detail ----

func TestModel_DetailLoadsFreshRecord(t *testing.T) {
	f := newFixture(t)
	fresh := models.User{UserID: "1", FirstName: "Ada", LastName: "King", Role: models.RoleTeacher}
	fresh.SetProfileString("USER_EMAIL", "ada@school.edu")
	f.svc.EXPECT().GetUser(gomock.Any(), models.ID("1")).Return(fresh, nil)

	f.run(t, f.press("enter"))

	assert.Equal(t, screenDetail, f.m.screen)
	view := f.m.View()
	assert.Contains(t, view, "King")
	assert.Contains(t, view, "USER_EMAIL: ada@school.edu")

	f.press("esc")
	assert.Equal(t, screenUsers, f.m.screen)
}

// ---- Mutations ----

func TestModel_CreateValidatesBeforeCalling(t *testing.T) {
	f := newFixture(t)
	f.press("n")
	require.Equal(t, screenForm, f.m.screen)

	assert.Nil(t, f.press("enter"))
	assert.Equal(t, errFirstNameRequired.Error(), f.m.form.err)

	f.m.form.inputs[fieldFirstName].SetValue("Grace")
	f.m.form.inputs[fieldRole].SetValue("janitor")
	assert.Nil(t, f.press("enter"))
	assert.Equal(t, errRoleInvalid.Error(), f.m.form.err)
	assert.False(t, f.m.busy)
}

func TestModel_CreateSubmitsNormalizedUser(t *testing.T) {
	f := newFixture(t)
	f.press("n")
	f.m.form.inputs[fieldFirstName].SetValue(" Grace ")
	f.m.form.inputs[fieldLastName].SetValue("Hopper")
	f.m.form.inputs[fieldRole].SetValue("teacher")
	f.m.form.inputs[fieldEmail].SetValue("grace@school.edu")

	var got models.User
	f.svc.EXPECT().CreateUser(gomock.Any(), gomock.Any(), testAdmin).
		DoAndReturn(func(_ context.Context, u models.User, _ string) error {
			got = u
			return nil
		})

	cmd := f.press("enter")
	assert.True(t, f.m.busy)
	f.run(t, cmd)

	assert.False(t, f.m.busy)
	assert.Equal(t, "Grace", got.FirstName)
	assert.Equal(t, models.RoleTeacher, got.Role)
	assert.Equal(t, "grace@school.edu", got.ProfileString("USER_EMAIL"))
	assert.Empty(t, got.UserID)
}

func TestModel_EditKeepsProfileFields(t *testing.T) {
	f := newFixture(t)
	u := models.User{UserID: "2", FirstName: "Alan", LastName: "Turing", Role: models.RoleStudent}
	u.SetProfileString("GRADE", "7")
	f.send(snapshotMsg{snapshot: models.DirectorySnapshot{Version: 2, Users: []models.User{u}}})

	f.press("e")
	require.True(t, f.m.form.editing)
	f.m.form.inputs[fieldFirstName].SetValue("Alan M.")

	var got models.User
	f.svc.EXPECT().EditUser(gomock.Any(), gomock.Any(), testAdmin).
		DoAndReturn(func(_ context.Context, u models.User, _ string) error {
			got = u
			return nil
		})
	f.run(t, f.press("enter"))

	assert.Equal(t, models.ID("2"), got.UserID)
	assert.Equal(t, "Alan M.", got.FirstName)
	assert.Equal(t, "7", got.ProfileString("GRADE"))
}

func TestModel_DeleteConfirmation(t *testing.T) {
	f := newFixture(t)

	f.press("d")
	require.Equal(t, screenConfirm, f.m.screen)
	assert.Contains(t, f.m.View(), `Delete "Ada Lovelace"?`)

	f.press("n")
	assert.Equal(t, screenUsers, f.m.screen)

	f.svc.EXPECT().DeleteUser(gomock.Any(), gomock.Any(), testAdmin).
		DoAndReturn(func(_ context.Context, u models.User, _ string) error {
			assert.Equal(t, models.ID("1"), u.UserID)
			return errors.New("delete user: not found")
		})
	f.press("d")
	cmd := f.press("y")
	assert.Equal(t, screenUsers, f.m.screen)
	f.run(t, cmd)

	assert.False(t, f.m.busy)
	assert.Equal(t, "delete user: not found", f.m.errMsg)
}

// ---- Bridge messages ----

func TestModel_NotificationsQueue(t *testing.T) {
	f := newFixture(t)
	first := notifyMsg{notification: models.Notification{Message: "first", Action: "OK"}, done: make(chan struct{})}
	second := notifyMsg{notification: models.Notification{Message: "second", Kind: models.NotificationFailure}, done: make(chan struct{})}

	f.send(first)
	f.send(second)
	assert.Contains(t, f.m.View(), "first")

	f.press("d")
	assert.Equal(t, screenUsers, f.m.screen)

	f.press("enter")
	assert.True(t, isClosed(first.done))
	assert.False(t, isClosed(second.done))
	assert.Contains(t, f.m.View(), "second")

	f.press("esc")
	assert.True(t, isClosed(second.done))
	assert.Empty(t, f.m.notifications)
}

func TestModel_NavigationAndBack(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().GetUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: "1"}, nil)

	f.run(t, f.press("enter"))
	f.press("e")
	require.Equal(t, []screen{screenUsers, screenDetail}, f.m.history)

	f.send(backMsg{})
	assert.Equal(t, screenDetail, f.m.screen)

	f.press("e")
	f.send(navigateMsg{route: []string{"nowhere"}})
	assert.Equal(t, screenForm, f.m.screen)

	f.send(navigateMsg{route: []string{"admin", "users"}})
	assert.Equal(t, screenUsers, f.m.screen)
	assert.Empty(t, f.m.history)
}

func TestModel_LoadingShowsSpinner(t *testing.T) {
	f := newFixture(t)

	cmd := f.send(loadingMsg{on: true})
	assert.NotNil(t, cmd)
	assert.True(t, f.m.loading)
	assert.Nil(t, f.send(loadingMsg{on: true}))

	f.send(loadingMsg{on: false})
	assert.False(t, f.m.loading)
}

func isClosed(ch chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}
