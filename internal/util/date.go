package util

import (
	"errors"
	"time"
)

// ParseDate accepts the two date shapes clients send: plain YYYY-MM-DD and
// full RFC3339 timestamps.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("invalid date; expected YYYY-MM-DD or RFC3339")
}
