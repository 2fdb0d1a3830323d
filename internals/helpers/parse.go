// file: internals/helpers/parse.go
package helper

import (
	"strings"
	"time"

	"ainexus_backend/internals/constants"
)

/* ===============================
   String normalisation
=================================*/

// TrimToNil trims s and returns nil when nothing is left. Blank strings are
// "absent" everywhere in the API: they fall back to a default on create and
// keep the stored value on update.
func TrimToNil(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}

// TrimPtr applies TrimToNil through a pointer (for optional DTO fields).
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return TrimToNil(*s)
}

/* ===============================
   Field cleaners
=================================*/

// CleanPhone keeps digits, '+' and spaces and requires 7–15 digits.
// Anything else is silently dropped to NULL, never an error.
func CleanPhone(raw string) *string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var b strings.Builder
	digits := 0
	for _, ch := range raw {
		switch {
		case ch >= '0' && ch <= '9':
			digits++
			b.WriteRune(ch)
		case ch == '+' || ch == ' ':
			b.WriteRune(ch)
		}
	}
	if digits < 7 || digits > 15 {
		return nil
	}
	return TrimToNil(b.String())
}

// CleanRole lowercases the authority role and drops it to NULL when it is
// outside the allowed set. Same silent policy as CleanPhone.
func CleanRole(raw string) *string {
	role := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := constants.AllowedAuthorityRoles[role]; !ok {
		return nil
	}
	return &role
}

// CleanStatus returns active/inactive, or the fallback for anything else.
func CleanStatus(raw, fallback string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == constants.StatusActive || s == constants.StatusInactive {
		return s
	}
	return fallback
}

/* ===============================
   Datetime parsing
=================================*/

// ParseDateTime combines a local date "YYYY-MM-DD" with a time string in
// 24h "HH:MM" or 12h "HH:MM AM/PM" form (meridiem case-insensitive) into a
// naive local timestamp. Returns nil on any parse failure; the caller
// decides whether that is fatal.
func ParseDateTime(dateStr, timeStr string) *time.Time {
	dateStr = strings.TrimSpace(dateStr)
	timeStr = strings.ToUpper(strings.TrimSpace(timeStr))
	if dateStr == "" || timeStr == "" {
		return nil
	}
	s := dateStr + " " + timeStr
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02 3:04 PM"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t
		}
	}
	return nil
}

// ParseISO parses an ISO-8601 string (optional offset or trailing Z) and
// strips the zone, keeping the written wall-clock time as a naive local
// timestamp. Returns nil on failure.
func ParseISO(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			naive := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local)
			return &naive
		}
	}
	return nil
}

// ParseAny accepts either a split date+time pair or a single ISO string,
// mirroring the payloads of both the form and JSON surfaces.
func ParseAny(dateStr, timeStr, isoStr string) *time.Time {
	if t := ParseDateTime(dateStr, timeStr); t != nil {
		return t
	}
	return ParseISO(isoStr)
}

/* ===============================
   Boolean coercion
=================================*/

// ParseBool accepts the usual truthy strings; everything else is false.
func ParseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// FormatNaive renders a naive local timestamp for responses.
func FormatNaive(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02T15:04:05")
	return &s
}
