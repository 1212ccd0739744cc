package api

import (
	"fmt"
	"time"

	internal_errors "github.com/itchan-dev/hackorsnooze/shared/errors"
)

// ParseTime accepts RFC3339 timestamps with or without fractional seconds.
// The empty string yields the zero time.
func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad timestamp %q", internal_errors.ErrValidation, s)
	}
	return t, nil
}

func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
