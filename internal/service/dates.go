package service

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date, use DD/MM/YYYY or YYYY-MM-DD")

// canonicalDay is the canonical date layout.
const canonicalDay = "2006-01-02"

// ParseDay turns a user- or upstream-supplied date string into midnight UTC
// of its calendar day. Accepted forms: "DD/MM/YYYY", "YYYY-MM-DD", and ISO
// timestamps ("2006-01-02T15:04:05Z").
//
// ISO timestamps are rounded to the nearest day: the upstream date source
// serialized local midnight as an instant late in the previous UTC day, so a
// timestamp such as 2024-03-04T23:00:00Z means the 5th, not the 4th. Plain
// date strings carry no such shift and are taken literally.
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return time.Time{}, ErrInvalidDate
	case strings.Contains(s, "/"):
		t, err := time.Parse("02/01/2006", s)
		if err != nil {
			return time.Time{}, ErrInvalidDate
		}
		return t, nil
	case strings.Contains(s, "T"):
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, ErrInvalidDate
		}
		t = t.UTC().Add(12 * time.Hour)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	default:
		t, err := time.Parse(canonicalDay, s)
		if err != nil {
			return time.Time{}, ErrInvalidDate
		}
		return t, nil
	}
}

// NormalizeDay returns the canonical "YYYY-MM-DD" form of any accepted input.
func NormalizeDay(s string) (string, error) {
	t, err := ParseDay(s)
	if err != nil {
		return "", err
	}
	return t.Format(canonicalDay), nil
}
