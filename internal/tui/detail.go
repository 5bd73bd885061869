package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/student-portal/models"
)

func renderDetail(u models.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %s\n", "USER_ID:", valueOrDash(u.UserID.String()))
	fmt.Fprintf(&b, "%-12s %s\n", "First name:", valueOrDash(u.FirstName))
	fmt.Fprintf(&b, "%-12s %s\n", "Last name:", valueOrDash(u.LastName))
	fmt.Fprintf(&b, "%-12s %s\n", "Role:", valueOrDash(u.Role.String()))

	keys := make([]string, 0, len(u.Profile))
	for k := range u.Profile {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(keys) > 0 {
		b.WriteString("\n")
	}
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\n", k, valueOrDash(u.ProfileString(k)))
	}
	return strings.TrimRight(b.String(), "\n")
}
