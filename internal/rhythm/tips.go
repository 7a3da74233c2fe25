package rhythm

// Tip is one science-backed productivity lever shown in the tips view.
type Tip struct {
	Category string
	Title    string
	Desc     string
}

// Tips returns the static tip set.
func Tips() []Tip {
	return []Tip{
		{
			Category: "Circadian",
			Title:    "Morning Sunlight Protocol",
			Desc: "View sunlight for 5-10 mins within 1 hour of waking. This sets your " +
				"circadian pacemaker (suprachiasmatic nucleus) to release cortisol early " +
				"and melatonin 16 hours later.",
		},
		{
			Category: "Focus",
			Title:    "Ultradian Cycles (90 Mins)",
			Desc: "The brain can only maintain high-intensity focus for about 90 minutes. " +
				"After this, you hit a biological floor. Take a 20-min non-sleep deep rest " +
				"(NSDR) or walk.",
		},
		{
			Category: "Rest",
			Title:    "The 10-3-2-1 Rule",
			Desc: "10h before bed: no caffeine. 3h before: no food. 2h before: no work. " +
				"1h before: no screens. This optimizes sleep architecture and memory " +
				"consolidation.",
		},
		{
			Category: "Alertness",
			Title:    "Adenosine Delay",
			Desc: "Wait 90 minutes after waking before drinking caffeine. This allows your " +
				"body to naturally clear adenosine (sleep pressure) instead of just " +
				"masking it.",
		},
	}
}
