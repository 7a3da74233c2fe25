package rhythm

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrBadFormat signals input that does not match the log command grammar,
// so the caller can show the format hint.
var ErrBadFormat = errors.New("format: 6a^10a%Task%f5e4 or 6.5a^7.5a%Task%f5e4")

// commandRe matches log commands like "6a^10a%Deep Work%f5e4":
// start^end%activity%f<focus>e<energy>.
var commandRe = regexp.MustCompile(`(?i)^([\d.]+[ap])\^([\d.]+[ap])%(.+)%f(\d)e(\d)$`)

// LogEntry is one expanded hour-block produced from a log command.
type LogEntry struct {
	Hour     float64
	Activity string
	Focus    int
	Energy   int
}

// ParseCommand expands a log command into per-hour entries. A block of
// "6a^9a" yields hours 6, 7 and 8; a half-hour start like "6.5a^7.5a"
// yields 6.5. Overnight ranges ("11p^1a") wrap past midnight.
func ParseCommand(input string) ([]LogEntry, error) {
	m := commandRe.FindStringSubmatch(input)
	if m == nil {
		return nil, ErrBadFormat
	}

	start, err := ParseTimeToken(m[1])
	if err != nil {
		return nil, err
	}
	end, err := ParseTimeToken(m[2])
	if err != nil {
		return nil, err
	}
	activity := m[3]
	focus, _ := strconv.Atoi(m[4])
	energy, _ := strconv.Atoi(m[5])

	if focus < 1 || focus > 5 || energy < 1 || energy > 5 {
		return nil, fmt.Errorf("focus and energy scores must be 1-5")
	}
	if end <= start {
		end += 24
	}

	var entries []LogEntry
	for hour := start; hour < end; hour++ {
		entries = append(entries, LogEntry{
			Hour:     hour,
			Activity: activity,
			Focus:    focus,
			Energy:   energy,
		})
	}
	return entries, nil
}
