// File: utils/duration.go
package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration validation outcomes. Callers branch on these to pick the right
// reprompt rather than failing the whole turn.
var (
	ErrDurationUnparseable = errors.New("duration is not a valid ISO-8601 duration")
	ErrDurationTooShort    = errors.New("duration must be longer than zero")
	ErrDurationTooLong     = errors.New("duration exceeds the booking cap")
)

// ParseISODuration parses an ISO-8601 duration string such as "PT45M",
// "PT1H30M" or "P1DT2H". Only day/hour/minute/second designators are
// supported; year and month designators are rejected since they have no
// fixed length.
func ParseISODuration(s string) (time.Duration, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 3 || s[0] != 'P' {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	rest := s[1:]
	inTime := false
	var total time.Duration
	num := ""

	for _, r := range rest {
		switch {
		case r >= '0' && r <= '9':
			num += string(r)
		case r == 'T':
			if inTime || num != "" {
				return 0, fmt.Errorf("invalid duration %q", s)
			}
			inTime = true
		default:
			if num == "" {
				return 0, fmt.Errorf("invalid duration %q", s)
			}
			n, err := strconv.Atoi(num)
			if err != nil {
				return 0, fmt.Errorf("invalid duration %q: %w", s, err)
			}
			num = ""
			switch {
			case r == 'D' && !inTime:
				total += time.Duration(n) * 24 * time.Hour
			case r == 'H' && inTime:
				total += time.Duration(n) * time.Hour
			case r == 'M' && inTime:
				total += time.Duration(n) * time.Minute
			case r == 'S' && inTime:
				total += time.Duration(n) * time.Second
			default:
				return 0, fmt.Errorf("unsupported designator %q in duration %q", r, s)
			}
		}
	}
	if num != "" {
		return 0, fmt.Errorf("invalid duration %q: trailing number", s)
	}
	return total, nil
}

// ValidateMeetingDuration parses the raw duration string and checks it
// against the booking policy. It returns the duration in whole minutes.
func ValidateMeetingDuration(raw string, capMinutes int) (int, error) {
	d, err := ParseISODuration(raw)
	if err != nil {
		return 0, ErrDurationUnparseable
	}
	if d <= 0 {
		return 0, ErrDurationTooShort
	}
	// Round sub-minute spans up so a positive duration never collapses to a
	// zero-length booking window.
	minutes := int((d + time.Minute - 1) / time.Minute)
	if minutes > capMinutes {
		return 0, ErrDurationTooLong
	}
	return minutes, nil
}
