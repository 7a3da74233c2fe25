// Package rhythm implements the command-line hour logger and the
// circadian capacity predictor behind the rhythm view.
package rhythm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseTimeToken converts a compact time token into a decimal hour:
// "6a" -> 6, "6.5a" -> 6.5 (6:30am), "12p" -> 12, "12a" -> 0, "1p" -> 13.
func ParseTimeToken(token string) (float64, error) {
	if len(token) < 2 {
		return 0, fmt.Errorf("invalid time token %q", token)
	}
	modifier := strings.ToLower(token[len(token)-1:])
	value, err := strconv.ParseFloat(token[:len(token)-1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid time token %q", token)
	}

	switch modifier {
	case "a":
		// Midnight wraps: 12a is hour 0, 12.5a is 0:30.
		if value >= 12 && value < 13 {
			return value - 12, nil
		}
		return value, nil
	case "p":
		if value >= 12 {
			return value, nil
		}
		return value + 12, nil
	}
	return 0, fmt.Errorf("invalid time token %q: want trailing 'a' or 'p'", token)
}

// FormatDecimalTime renders a decimal hour as clock time, 14.5 -> "2:30 PM".
func FormatDecimalTime(decimal float64) string {
	hrs := int(math.Floor(decimal))
	mins := int(math.Round((decimal - float64(hrs)) * 60))
	suffix := "AM"
	if hrs >= 12 {
		suffix = "PM"
	}
	display := hrs % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, mins, suffix)
}
