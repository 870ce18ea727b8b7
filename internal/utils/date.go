// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import (
	"errors"
	"strings"
	"time"
)

// dateLayouts are the accepted wire formats for release dates, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ErrUnparsableDate is returned when a date string matches none of the
// accepted layouts.
var ErrUnparsableDate = errors.New("unparsable date")

// ParseDate parses a caller-supplied date string as RFC3339 or YYYY-MM-DD.
//
// Example:
//
//	d, err := utils.ParseDate("2025-03-01")
//	d, err = utils.ParseDate("2025-03-01T00:00:00Z")
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrUnparsableDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrUnparsableDate
}
