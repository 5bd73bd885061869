package export

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/student-portal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testSnapshot() models.DirectorySnapshot {
	return models.DirectorySnapshot{
		Version: 3,
		Users: []models.User{
			{UserID: "1", FirstName: "Ada", LastName: "Lovelace", Role: models.RoleTeacher,
				Profile: map[string]json.RawMessage{
					"USER_EMAIL": json.RawMessage(`"ada@school.edu"`),
					"GRADE":      json.RawMessage(`7`),
				}},
			{UserID: "2", FirstName: "Alan", LastName: "Turing", Role: models.RoleStudent,
				Profile: map[string]json.RawMessage{
					"USER_PHONE": json.RawMessage(`"0123"`),
				}},
		},
		Teachers: []models.Teacher{
			{User: models.User{UserID: "1", FirstName: "Ada", LastName: "Lovelace", Role: models.RoleTeacher}, TeacherID: "T1"},
		},
	}
}

func TestFileName(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 30, 5, 0, time.UTC)
	assert.Equal(t, filepath.Join("out", "directory-20260301-093005.xlsx"), FileName("out", at))
}

func TestWriteDirectory_Sheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir.xlsx")

	require.NoError(t, WriteDirectory(testSnapshot(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{UsersSheet, TeachersSheet}, f.GetSheetList())

	users, err := f.GetRows(UsersSheet)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, []string{"USER_ID", "USER_FNAME", "USER_LNAME", "role", "GRADE", "USER_EMAIL", "USER_PHONE"}, users[0])
	assert.Equal(t, []string{"1", "Ada", "Lovelace", "TEACHER", "7", "ada@school.edu"}, users[1])
	assert.Equal(t, []string{"2", "Alan", "Turing", "STUDENT", "", "", "0123"}, users[2])

	teachers, err := f.GetRows(TeachersSheet)
	require.NoError(t, err)
	require.Len(t, teachers, 2)
	assert.Equal(t, []string{"USER_ID", "TEACHER_ID", "USER_FNAME", "USER_LNAME", "role"}, teachers[0])
	assert.Equal(t, []string{"1", "T1", "Ada", "Lovelace", "TEACHER"}, teachers[1])
}

func TestWriteDirectory_EmptySnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	require.NoError(t, WriteDirectory(models.DirectorySnapshot{}, path))

	users, err := ReadUsers(path)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestReadUsers_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dir.xlsx")
	snap := testSnapshot()
	require.NoError(t, WriteDirectory(snap, path))

	got, err := ReadUsers(path)

	require.NoError(t, err)
	if diff := cmp.Diff(snap.Users, got); diff != "" {
		t.Errorf("users mismatch (-want +got):\n%s", diff)
	}
}

func TestReadUsers_MissingSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := ReadUsers(path)

	assert.ErrorIs(t, err, ErrSheetMissing)
}

func TestReadUsers_MissingFile(t *testing.T) {
	_, err := ReadUsers(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
}
