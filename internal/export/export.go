// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package export writes directory snapshots to .xlsx workbooks and reads
// users back from them.
//
// A workbook has a Users and a Teachers sheet. The first row holds the API
// field names; every following row is one record. Profile fields the client
// does not model get a column of their own, so nothing is lost on export.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/MKhiriev/student-portal/models"
	"github.com/xuri/excelize/v2"
)

const (
	UsersSheet    = "Users"
	TeachersSheet = "Teachers"
)

const (
	colUserID    = "USER_ID"
	colTeacherID = "TEACHER_ID"
	colFirstName = "USER_FNAME"
	colLastName  = "USER_LNAME"
	colRole      = "role"
)

var (
	ErrSheetMissing = errors.New("workbook has no Users sheet")
	ErrNoHeader     = errors.New("sheet has no header row")
)

// FileName returns the export path for a snapshot taken at at, inside dir.
func FileName(dir string, at time.Time) string {
	return filepath.Join(dir, "directory-"+at.Format("20060102-150405")+".xlsx")
}

// WriteDirectory writes snap to a new workbook at path, replacing any
// existing file.
func WriteDirectory(snap models.DirectorySnapshot, path string) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", closeErr)
		}
	}()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	if err = f.SetSheetName(f.GetSheetName(0), UsersSheet); err != nil {
		return fmt.Errorf("rename default sheet: %w", err)
	}
	if _, err = f.NewSheet(TeachersSheet); err != nil {
		return fmt.Errorf("create %s sheet: %w", TeachersSheet, err)
	}

	users := make([]models.User, len(snap.Users))
	copy(users, snap.Users)
	if err = writeSheet(f, UsersSheet, header, []string{colUserID, colFirstName, colLastName, colRole}, users, nil); err != nil {
		return err
	}

	teacherUsers := make([]models.User, len(snap.Teachers))
	teacherIDs := make([]string, len(snap.Teachers))
	for i, t := range snap.Teachers {
		teacherUsers[i] = t.User
		teacherIDs[i] = t.TeacherID.String()
	}
	if err = writeSheet(f, TeachersSheet, header, []string{colUserID, colTeacherID, colFirstName, colLastName, colRole}, teacherUsers, teacherIDs); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}
	if err = f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// writeSheet writes the header row and one row per user. teacherIDs is
// either nil or parallel to users.
func writeSheet(f *excelize.File, sheet string, headerStyle int, fixed []string, users []models.User, teacherIDs []string) error {
	extra := profileColumns(users)
	columns := append(append([]string{}, fixed...), extra...)

	row := make([]any, len(columns))
	for i, c := range columns {
		row[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &row); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}

	for i, u := range users {
		values := make([]any, 0, len(columns))
		for _, c := range fixed {
			switch c {
			case colUserID:
				values = append(values, u.UserID.String())
			case colTeacherID:
				values = append(values, teacherIDs[i])
			case colFirstName:
				values = append(values, u.FirstName)
			case colLastName:
				values = append(values, u.LastName)
			case colRole:
				values = append(values, u.Role.String())
			}
		}
		for _, key := range extra {
			values = append(values, u.ProfileString(key))
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

// profileColumns returns the sorted union of profile keys.
func profileColumns(users []models.User) []string {
	seen := make(map[string]struct{})
	for _, u := range users {
		for k := range u.Profile {
			seen[k] = struct{}{}
		}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ReadUsers reads the Users sheet of the workbook at path. Empty cells are
// skipped; a profile cell holding a JSON number, boolean, object or array is
// kept as that value, anything else becomes a string.
func ReadUsers(path string) (users []models.User, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", closeErr)
		}
	}()

	if idx, _ := f.GetSheetIndex(UsersSheet); idx < 0 {
		return nil, ErrSheetMissing
	}

	rows, err := f.GetRows(UsersSheet)
	if err != nil {
		return nil, fmt.Errorf("read %s rows: %w", UsersSheet, err)
	}
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}

	header := rows[0]
	users = make([]models.User, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var u models.User
		for i, value := range row {
			if i >= len(header) || value == "" {
				continue
			}
			switch header[i] {
			case colUserID:
				u.UserID = models.ID(value)
			case colFirstName:
				u.FirstName = value
			case colLastName:
				u.LastName = value
			case colRole:
				u.Role = models.Role(value)
			default:
				setProfileCell(&u, header[i], value)
			}
		}
		if u.UserID == "" && u.FullName() == "" && len(u.Profile) == 0 {
			continue
		}
		users = append(users, u)
	}
	return users, nil
}

func setProfileCell(u *models.User, key, value string) {
	trimmed := bytes.TrimSpace([]byte(value))
	if len(trimmed) > 0 && trimmed[0] != '"' && json.Valid(trimmed) {
		if u.Profile == nil {
			u.Profile = make(map[string]json.RawMessage)
		}
		u.Profile[key] = json.RawMessage(trimmed)
		return
	}
	u.SetProfileString(key, value)
}
