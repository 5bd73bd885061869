package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/student-portal/internal/app"
	"github.com/MKhiriev/student-portal/internal/fakeapi"
	"github.com/MKhiriev/student-portal/internal/logger"
	"github.com/MKhiriev/student-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const admin = "admin-1"

// ---- Helpers ----

func newTestRouter(t *testing.T) (http.Handler, *fakeapi.Directory) {
	t.Helper()
	dir := fakeapi.NewDirectory()
	require.NoError(t, dir.Seed(admin, []models.User{
		{UserID: "1", FirstName: "Ada", LastName: "Lovelace", Role: models.RoleTeacher},
		{UserID: "2", FirstName: "Alan", LastName: "Turing", Role: models.RoleStudent},
	}))
	h := NewHandler(dir, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	return h.Init(), dir
}

func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) models.Envelope[T] {
	t.Helper()
	var env models.Envelope[T]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	return env
}

// ---- Users ----

func TestListUsers(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := do(t, router, http.MethodGet, "/api/v1/users?adminId="+admin, "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	env := decode[[]models.User](t, rr)
	assert.True(t, env.Success)
	require.Len(t, env.Data, 2)
	assert.Equal(t, "Ada Lovelace", env.Data[0].FullName())
}

func TestListUsers_TeachersAreNested(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := do(t, router, http.MethodGet, "/api/v1/users?adminId="+admin+"&type=TEACHER", "")

	require.Equal(t, http.StatusOK, rr.Code)
	env := decode[[]models.User](t, rr)
	require.Len(t, env.Data, 1)
	teacher, err := models.LiftTeacher(env.Data[0])
	require.NoError(t, err)
	assert.NotEmpty(t, teacher.TeacherID)
}

func TestListUsers_MissingAdminID(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := do(t, router, http.MethodGet, "/api/v1/users", "")

	require.Equal(t, http.StatusBadRequest, rr.Code)
	env := decode[any](t, rr)
	assert.False(t, env.Success)
	assert.Equal(t, app.MsgAdminIDRequired, env.Message)
}

func TestGetUser(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantMsg    string
	}{
		{name: "existing record", target: "/api/v1/users/2", wantStatus: http.StatusOK},
		{name: "unknown record", target: "/api/v1/users/99", wantStatus: http.StatusNotFound, wantMsg: app.MsgUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, router, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			env := decode[models.User](t, rr)
			assert.Equal(t, tt.wantMsg, env.Message)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, models.ID("2"), env.Data.UserID)
			}
		})
	}
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		wantStatus int
		wantMsg    string
		wantLen    int
	}{
		{
			name:       "created with generated id",
			target:     "/api/v1/users?adminId=" + admin,
			body:       `{"USER_FNAME":"Grace","USER_LNAME":"Hopper","role":"teacher","USER_EMAIL":"g@h.io"}`,
			wantStatus: http.StatusCreated,
			wantMsg:    "user created",
			wantLen:    3,
		},
		{
			name:       "duplicate id",
			target:     "/api/v1/users?adminId=" + admin,
			body:       `{"USER_ID":"1","USER_FNAME":"Ada","role":"STUDENT"}`,
			wantStatus: http.StatusConflict,
			wantMsg:    app.MsgUserAlreadyExists,
			wantLen:    2,
		},
		{
			name:       "invalid role",
			target:     "/api/v1/users?adminId=" + admin,
			body:       `{"role":"janitor"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidRole,
			wantLen:    2,
		},
		{
			name:       "missing first name",
			target:     "/api/v1/users?adminId=" + admin,
			body:       `{"USER_FNAME":" ","role":"STUDENT"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgFirstNameRequired,
			wantLen:    2,
		},
		{
			name:       "malformed body",
			target:     "/api/v1/users?adminId=" + admin,
			body:       `{"role":`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidDataProvided,
			wantLen:    2,
		},
		{
			name:       "missing admin id",
			target:     "/api/v1/users",
			body:       `{"USER_FNAME":"Ada","role":"STUDENT"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgAdminIDRequired,
			wantLen:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, dir := newTestRouter(t)

			rr := do(t, router, http.MethodPost, tt.target, tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			env := decode[models.User](t, rr)
			assert.Equal(t, tt.wantMsg, env.Message)
			assert.Equal(t, tt.wantLen, dir.Len())
			if tt.wantStatus == http.StatusCreated {
				assert.True(t, env.Success)
				assert.NotEmpty(t, env.Data.UserID)
				assert.Equal(t, models.RoleTeacher, env.Data.Role)
				assert.Equal(t, "g@h.io", env.Data.ProfileString("USER_EMAIL"))
			}
		})
	}
}

func TestUpdateUser(t *testing.T) {
	router, dir := newTestRouter(t)

	rr := do(t, router, http.MethodPut, "/api/v1/users/2?adminId="+admin, `{"USER_ID":"2","USER_FNAME":"Alan M.","USER_LNAME":"Turing","role":"STUDENT"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	got, err := dir.Get("2")
	require.NoError(t, err)
	assert.Equal(t, "Alan M.", got.FirstName)

	rr = do(t, router, http.MethodPut, "/api/v1/users/2?adminId="+admin, `{"USER_ID":"1","USER_FNAME":"Ada","role":"STUDENT"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgUserIDMismatch, decode[any](t, rr).Message)

	rr = do(t, router, http.MethodPut, "/api/v1/users/99?adminId="+admin, `{"USER_FNAME":"Nobody","role":"STUDENT"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteUser(t *testing.T) {
	router, dir := newTestRouter(t)

	rr := do(t, router, http.MethodDelete, "/api/v1/users/1?adminId="+admin, "")
	require.Equal(t, http.StatusOK, rr.Code)
	env := decode[models.User](t, rr)
	assert.True(t, env.Success)
	assert.Equal(t, "Ada", env.Data.FirstName)
	assert.Equal(t, 1, dir.Len())

	rr = do(t, router, http.MethodDelete, "/api/v1/users/1?adminId="+admin, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ---- Routing ----

func TestGetVersion(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := do(t, router, http.MethodGet, "/api/v1/version", "")

	require.Equal(t, http.StatusOK, rr.Code)
	env := decode[models.AppBuildInfo](t, rr)
	assert.Equal(t, models.AppBuildInfo{Version: "1.0.0", Date: "N/A", Commit: "N/A"}, env.Data)
}

func TestUnknownRoutesAnswerWithEnvelope(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{"unknown path", http.MethodGet, "/api/v2/users", http.StatusNotFound},
		{"unsupported method", http.MethodPatch, "/api/v1/users/1", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, router, tt.method, tt.target, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			env := decode[any](t, rr)
			assert.False(t, env.Success)
			assert.Equal(t, http.StatusText(tt.wantStatus), env.Message)
		})
	}
}

func TestResponseFromError_Unknown(t *testing.T) {
	status, msg := responseFromError(assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal Server Error", msg)
}
