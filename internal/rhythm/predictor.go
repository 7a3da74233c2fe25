package rhythm

import (
	"math"

	"github.com/sadopc/taskmaster/internal/store"
)

// Predict estimates cognitive capacity for an hour of the day as a
// probability in [0.10, 0.98]. It starts from the historical average for
// that hour, then applies circadian modifiers and the load carried over
// from the previous hour of the same day.
func Predict(targetHour float64, history []store.HourLog, prev *store.HourLog) float64 {
	probability := 0.5

	// Historical baseline: mean of focus+energy normalized to [0,1].
	if len(history) > 0 {
		sum := 0
		for _, h := range history {
			sum += h.Focus + h.Energy
		}
		probability = float64(sum) / float64(len(history)*10)
	}

	hour := math.Mod(targetHour, 24)
	// Cortisol awakening response: peak alertness mid-morning.
	if hour >= 8 && hour <= 11 {
		probability += 0.15
	}
	// Post-prandial dip.
	if hour >= 13 && hour <= 15 {
		probability -= 0.15
	}
	// Melatonin onset late at night.
	if hour >= 22 || hour <= 4 {
		probability -= 0.2
	}

	// Allostatic load from the immediately preceding hour.
	if prev != nil {
		intensity := prev.Focus + prev.Energy
		if intensity >= 8 {
			probability -= 0.15
		}
		if intensity <= 4 {
			probability += 0.05
		}
	}

	return math.Min(0.98, math.Max(0.1, probability))
}

// HistoryAt filters logs down to those recorded at (approximately) the
// given decimal hour, across all days.
func HistoryAt(logs []store.HourLog, hour float64) []store.HourLog {
	var out []store.HourLog
	for _, l := range logs {
		if math.Abs(l.Hour-hour) < 0.1 {
			out = append(out, l)
		}
	}
	return out
}

// PrevLog finds the day's entry for the whole hour before targetHour.
func PrevLog(dayLogs []store.HourLog, targetHour float64) *store.HourLog {
	prevHour := math.Floor(targetHour) - 1
	for i := range dayLogs {
		if dayLogs[i].Hour == prevHour {
			return &dayLogs[i]
		}
	}
	return nil
}
