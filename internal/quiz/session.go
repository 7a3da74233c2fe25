package quiz

import (
	"math"
	"strings"
)

// State is the quiz session lifecycle stage.
type State int

const (
	StateSetup State = iota
	StateRunning
	StateResults
	StateReview
)

// DefaultDurationMinutes is used when no duration is configured.
const DefaultDurationMinutes = 5

// Engine drives one timed quiz attempt. It is single-threaded and holds
// no timers of its own: the host delivers one Tick per elapsed second and
// stops delivering them when the session leaves StateRunning, which is
// what makes the countdown cancellable.
type Engine struct {
	state           State
	questions       []Question
	durationMinutes int
	remaining       int
	answers         map[int]string
	report          *Report
}

// NewEngine returns an engine in StateSetup with the given default
// duration in minutes (falls back to DefaultDurationMinutes if not positive).
func NewEngine(durationMinutes int) *Engine {
	if durationMinutes <= 0 {
		durationMinutes = DefaultDurationMinutes
	}
	return &Engine{
		state:           StateSetup,
		durationMinutes: durationMinutes,
		answers:         make(map[int]string),
	}
}

func (e *Engine) State() State { return e.state }

// Load replaces the accumulated question set. Only meaningful in StateSetup.
func (e *Engine) Load(questions []Question) {
	if e.state != StateSetup {
		return
	}
	e.questions = questions
}

// SetDuration configures the countdown length in minutes.
func (e *Engine) SetDuration(minutes int) error {
	if minutes <= 0 {
		return &ParseError{Msg: "duration must be a positive number of minutes"}
	}
	e.durationMinutes = minutes
	return nil
}

func (e *Engine) Duration() int { return e.durationMinutes }

func (e *Engine) Questions() []Question { return e.questions }

// Remaining reports the countdown in seconds while running.
func (e *Engine) Remaining() int { return e.remaining }

// Start fixes the question list, resets answers, and begins the countdown.
func (e *Engine) Start() error {
	if len(e.questions) == 0 {
		return ErrEmptyQuestionSet
	}
	e.state = StateRunning
	e.remaining = e.durationMinutes * 60
	e.answers = make(map[int]string)
	e.report = nil
	return nil
}

// Tick consumes one elapsed second. Reaching zero auto-submits; the
// return value tells the host whether that happened.
func (e *Engine) Tick() bool {
	if e.state != StateRunning {
		return false
	}
	e.remaining--
	if e.remaining <= 0 {
		e.remaining = 0
		e.Submit()
		return true
	}
	return false
}

// RecordAnswer upserts the chosen option for a question; last write wins.
// The option is not checked against the question's option list — the
// front end constrains input, the engine does not.
func (e *Engine) RecordAnswer(index int, option string) {
	if e.state != StateRunning {
		return
	}
	if index < 0 || index >= len(e.questions) {
		return
	}
	e.answers[index] = option
}

// Answer returns the recorded answer for a question, if any.
func (e *Engine) Answer(index int) (string, bool) {
	a, ok := e.answers[index]
	return a, ok
}

// Submit scores the attempt and moves to StateResults. It is safe to call
// manually at any point while running; it also ends the countdown.
func (e *Engine) Submit() *Report {
	if e.state != StateRunning {
		return e.report
	}

	report := &Report{Total: len(e.questions)}
	for i, q := range e.questions {
		row := ReportRow{
			Question:      q.Text,
			CorrectAnswer: q.CorrectAnswer,
			Response:      Unanswered,
			Options:       q.Options,
		}
		if answer, ok := e.answers[i]; ok {
			row.Response = answer
			// Trimmed exact match, case-sensitive. The source behavior left
			// case-insensitivity unspecified; options come from the bank
			// verbatim, so exact compare is the safer contract.
			row.Correct = strings.TrimSpace(answer) == strings.TrimSpace(q.CorrectAnswer)
		}
		if row.Correct {
			report.Score++
		}
		report.Rows = append(report.Rows, row)
	}
	// Start guarantees at least one question, so no division by zero.
	report.Percentage = math.Round(float64(report.Score)/float64(report.Total)*1000) / 10

	e.report = report
	e.remaining = 0
	e.state = StateResults
	return report
}

// Report returns the scored report once the session has been submitted.
func (e *Engine) Report() *Report { return e.report }

// Review moves Results -> Review; a pure view transition.
func (e *Engine) Review() {
	if e.state == StateResults {
		e.state = StateReview
	}
}

// BackToResults moves Review -> Results.
func (e *Engine) BackToResults() {
	if e.state == StateReview {
		e.state = StateResults
	}
}

// Restart discards the report and question set and returns to setup.
func (e *Engine) Restart() {
	if e.state != StateResults {
		return
	}
	e.reset()
}

// Reset tears the session down from any state. Hosts call it when the
// user navigates away mid-session so the countdown cannot keep running.
func (e *Engine) Reset() {
	e.reset()
}

func (e *Engine) reset() {
	e.state = StateSetup
	e.questions = nil
	e.answers = make(map[int]string)
	e.report = nil
	e.remaining = 0
}
