package quiz

import "fmt"

// Unanswered marks questions with no recorded response in the report.
const Unanswered = "Not Answered"

// ReportRow is the per-question breakdown of one scored attempt.
type ReportRow struct {
	Question      string
	CorrectAnswer string
	Response      string
	Correct       bool
	Options       []string
}

// Report is the immutable outcome of one submitted quiz session.
type Report struct {
	Total      int
	Score      int
	Percentage float64
	Rows       []ReportRow
}

// Percent formats the percentage with one decimal place, e.g. "66.7".
func (r *Report) Percent() string {
	return fmt.Sprintf("%.1f", r.Percentage)
}
