package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeUser(t *testing.T, payload string) User {
	t.Helper()
	var u User
	require.NoError(t, json.Unmarshal([]byte(payload), &u))
	return u
}

func TestLiftTeacher_FlattensNestedObject(t *testing.T) {
	u := decodeUser(t, `{"USER_ID":"2","teacher":{"TEACHER_ID":"T1","SUBJECT":"math"}}`)

	got, err := LiftTeacher(u)
	require.NoError(t, err)

	assert.Equal(t, ID("2"), got.UserID)
	assert.Equal(t, ID("T1"), got.TeacherID)
	assert.NotContains(t, got.Profile, "teacher")

	out, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"USER_ID":"2","TEACHER_ID":"T1"}`, string(out))
}

func TestLiftTeacher_DoesNotModifyInput(t *testing.T) {
	u := decodeUser(t, `{"USER_ID":"2","teacher":{"TEACHER_ID":"T1"}}`)

	_, err := LiftTeacher(u)
	require.NoError(t, err)

	assert.Contains(t, u.Profile, "teacher")
}

func TestLiftTeacher_NumericTeacherID(t *testing.T) {
	u := decodeUser(t, `{"USER_ID":3,"teacher":{"TEACHER_ID":17}}`)

	got, err := LiftTeacher(u)
	require.NoError(t, err)
	assert.Equal(t, ID("17"), got.TeacherID)
	assert.Equal(t, ID("3"), got.UserID)
}

func TestLiftTeacher_Missing(t *testing.T) {
	for _, payload := range []string{
		`{"USER_ID":"2"}`,
		`{"USER_ID":"2","teacher":null}`,
	} {
		_, err := LiftTeacher(decodeUser(t, payload))
		assert.ErrorIs(t, err, ErrTeacherPayloadMissing, payload)
	}
}

func TestLiftTeacher_Malformed(t *testing.T) {
	for _, payload := range []string{
		`{"USER_ID":"2","teacher":"T1"}`,
		`{"USER_ID":"2","teacher":{}}`,
		`{"USER_ID":"2","teacher":{"TEACHER_ID":null}}`,
		`{"USER_ID":"2","teacher":{"TEACHER_ID":""}}`,
	} {
		_, err := LiftTeacher(decodeUser(t, payload))
		assert.ErrorIs(t, err, ErrTeacherPayloadMalformed, payload)
	}
}

func TestLiftTeachers_FailsOnFirstBadRecord(t *testing.T) {
	users := []User{
		decodeUser(t, `{"USER_ID":"1","teacher":{"TEACHER_ID":"T1"}}`),
		decodeUser(t, `{"USER_ID":"2"}`),
	}

	got, err := LiftTeachers(users)
	require.Error(t, err)
	assert.Nil(t, got)
}

func TestTeacher_UnmarshalJSON_FlatShape(t *testing.T) {
	var got Teacher
	require.NoError(t, json.Unmarshal([]byte(`{"USER_ID":"2","USER_FNAME":"Alan","TEACHER_ID":"T9"}`), &got))

	assert.Equal(t, ID("T9"), got.TeacherID)
	assert.Equal(t, "Alan", got.FirstName)
	assert.Nil(t, got.Profile)
}

func TestDirectorySnapshot_CloneAndFind(t *testing.T) {
	snap := DirectorySnapshot{
		Version: 3,
		Users:   []User{{UserID: "1", FirstName: "Ada"}},
	}

	c := snap.Clone()
	c.Users[0].FirstName = "Grace"

	u, ok := snap.FindUser("1")
	require.True(t, ok)
	assert.Equal(t, "Ada", u.FirstName)

	_, ok = snap.FindUser("404")
	assert.False(t, ok)
}
