package quiz

import (
	"errors"
	"strings"
	"testing"
)

func TestParseStringRoundTrip(t *testing.T) {
	questions, err := ParseString("Question|CorrectAnswer|OptionA|OptionB\nQ1|A|A|B\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	q := questions[0]
	if q.Text != "Q1" || q.CorrectAnswer != "A" {
		t.Fatalf("unexpected question: %+v", q)
	}
	if len(q.Options) != 2 || q.Options[0] != "A" || q.Options[1] != "B" {
		t.Fatalf("unexpected options: %v", q.Options)
	}
}

func TestParseReader(t *testing.T) {
	// File and pasted text follow the same contract.
	r := strings.NewReader("Question|CorrectAnswer|OptionA|OptionB|OptionC|OptionD\nCapital of France?|Paris|Paris|Rome|Berlin|Madrid\n")
	questions, err := Parse(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) != 1 || len(questions[0].Options) != 4 {
		t.Fatalf("unexpected result: %+v", questions)
	}
}

func TestParseHeaderCaseInsensitive(t *testing.T) {
	questions, err := ParseString("QUESTION|correctanswer|OptionA|optionB\nQ1|yes|yes|no\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
}

func TestParseSkipsBlankLinesAndCRLF(t *testing.T) {
	input := "Question|CorrectAnswer|OptionA|OptionB\r\n\r\nQ1|A|A|B\r\n\r\nQ2|B|A|B\r\n"
	questions, err := ParseString(input)
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
}

func TestParseDropsInvalidRows(t *testing.T) {
	input := strings.Join([]string{
		"Question|CorrectAnswer|OptionA|OptionB|OptionC|OptionD",
		"Good|A|A|B||",      // valid
		"|A|A|B||",          // empty question
		"NoAnswer||A|B||",   // empty answer
		"OneOption|A|A|||",  // fewer than 2 options
		"BadAnswer|Z|A|B||", // answer not among options
		"Tail|B|A|B||",      // valid
	}, "\n")

	questions, err := ParseString(input)
	if err != nil {
		t.Fatalf("invalid rows must be dropped silently, got %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 surviving questions, got %d", len(questions))
	}
	if questions[0].Text != "Good" || questions[1].Text != "Tail" {
		t.Fatalf("wrong survivors: %+v", questions)
	}
}

func TestParseDedupesOptions(t *testing.T) {
	questions, err := ParseString("Question|CorrectAnswer|OptionA|OptionB|OptionC|OptionD\nQ|a|a|A|b|b\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(questions[0].Options) != 2 {
		t.Fatalf("options must be distinct (case-insensitive): %v", questions[0].Options)
	}
}

func TestParseNoValidQuestions(t *testing.T) {
	// Well-formed header, but every row is dropped — distinct from ParseError.
	_, err := ParseString("Question|CorrectAnswer|OptionA|OptionB\n|A|A|B\n")
	if !errors.Is(err, ErrNoValidQuestions) {
		t.Fatalf("expected ErrNoValidQuestions, got %v", err)
	}

	_, err = ParseString("Question|CorrectAnswer|OptionA|OptionB\n")
	if !errors.Is(err, ErrNoValidQuestions) {
		t.Fatalf("expected ErrNoValidQuestions for header-only input, got %v", err)
	}
}

func TestParseErrorOnMalformedInput(t *testing.T) {
	var perr *ParseError

	if _, err := ParseString(""); !errors.As(err, &perr) {
		t.Fatalf("expected ParseError for empty input, got %v", err)
	}
	if _, err := ParseString("just some prose without a header\nQ1|A|A|B\n"); !errors.As(err, &perr) {
		t.Fatalf("expected ParseError for missing header columns, got %v", err)
	}
	if perr.Error() == "" {
		t.Fatal("ParseError must carry a human-readable message")
	}
}

func TestParseTrimsWhitespace(t *testing.T) {
	questions, err := ParseString("Question | CorrectAnswer | OptionA | OptionB\n Q1 | A | A | B \n")
	if err != nil {
		t.Fatal(err)
	}
	if questions[0].Text != "Q1" || questions[0].CorrectAnswer != "A" {
		t.Fatalf("fields not trimmed: %+v", questions[0])
	}
}
