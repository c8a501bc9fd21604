package util

import (
	"strings"
	"time"

	"github.com/utkarshk014/catalyst/apperr"
)

const dateLayout = "2006-01-02"

// ParseDate parses a project due date. Accepts YYYY-MM-DD or a full ISO
// datetime, in which case only the date part is kept.
func ParseDate(value string) (time.Time, error) {
	if idx := strings.Index(value, "T"); idx >= 0 {
		value = value[:idx]
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperr.New(apperr.KindValidation, "Invalid date format")
	}
	return t, nil
}

// ParseDateTime parses a task due date. Accepts RFC3339, falling back to the
// date-only forms ParseDate accepts.
func ParseDateTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return ParseDate(value)
}
