// Package quiz implements the question-bank importer and the timed
// quiz session engine.
package quiz

import (
	"errors"
	"fmt"
)

// Question is one importable multiple-choice item.
type Question struct {
	Text          string
	CorrectAnswer string
	Options       []string
}

var (
	// ErrNoValidQuestions is returned when a well-formed payload yields no
	// usable questions, so callers can message it apart from a parse failure.
	ErrNoValidQuestions = errors.New("no valid questions in input")
	// ErrEmptyQuestionSet is returned when starting a session with no
	// questions loaded.
	ErrEmptyQuestionSet = errors.New("no questions loaded")
)

// ParseError reports structurally malformed import input.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse quiz input: line %d: %s", e.Line, e.Msg)
	}
	return "parse quiz input: " + e.Msg
}
