package quiz

import (
	"io"
	"strings"
)

// Recognized header tokens, compared case-insensitively.
const (
	colQuestion = "question"
	colCorrect  = "correctanswer"
)

var optionColumns = []string{"optiona", "optionb", "optionc", "optiond"}

// Parse reads pipe-delimited question data from r. The first non-blank
// line is the header; pasted text and uploaded files follow the same rules.
func Parse(r io.Reader) ([]Question, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Msg: err.Error()}
	}
	return ParseString(string(data))
}

// ParseString parses a raw pipe-delimited payload into the ordered list of
// valid questions. Rows that fail validation are dropped silently; a
// payload that parses but yields nothing returns ErrNoValidQuestions.
func ParseString(input string) ([]Question, error) {
	lines := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")

	// Locate the header row.
	headerIdx := -1
	var columns map[string]int
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		columns = parseHeader(line)
		headerIdx = i
		break
	}
	if headerIdx < 0 {
		return nil, &ParseError{Msg: "empty input"}
	}
	if _, ok := columns[colQuestion]; !ok {
		return nil, &ParseError{Line: headerIdx + 1, Msg: "header is missing a Question column"}
	}
	if _, ok := columns[colCorrect]; !ok {
		return nil, &ParseError{Line: headerIdx + 1, Msg: "header is missing a CorrectAnswer column"}
	}

	var questions []Question
	for _, line := range lines[headerIdx+1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitRow(line)

		q := Question{
			Text:          field(fields, columns, colQuestion),
			CorrectAnswer: field(fields, columns, colCorrect),
		}
		for _, col := range optionColumns {
			if opt := field(fields, columns, col); opt != "" {
				q.Options = appendOption(q.Options, opt)
			}
		}

		if valid(q) {
			questions = append(questions, q)
		}
	}

	if len(questions) == 0 {
		return nil, ErrNoValidQuestions
	}
	return questions, nil
}

func parseHeader(line string) map[string]int {
	columns := make(map[string]int)
	for i, cell := range splitRow(line) {
		name := strings.ToLower(strings.TrimSpace(cell))
		if _, taken := columns[name]; name != "" && !taken {
			columns[name] = i
		}
	}
	return columns
}

func splitRow(line string) []string {
	fields := strings.Split(line, "|")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

func field(fields []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(fields) {
		return ""
	}
	return fields[idx]
}

// appendOption keeps options distinct, comparing case-insensitively and
// preserving the first spelling seen.
func appendOption(options []string, opt string) []string {
	for _, existing := range options {
		if strings.EqualFold(existing, opt) {
			return options
		}
	}
	return append(options, opt)
}

// valid applies the row drop rules: non-empty question and answer, at
// least two options, and the answer must be one of the options.
func valid(q Question) bool {
	if q.Text == "" || q.CorrectAnswer == "" || len(q.Options) < 2 {
		return false
	}
	for _, opt := range q.Options {
		if strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(q.CorrectAnswer)) {
			return true
		}
	}
	return false
}
