package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sadopc/taskmaster/internal/quiz"
)

// Options are joined with a separator distinct from the '|' quiz-input
// delimiter so exported reports stay unambiguous.
const optionSeparator = "; "

// WriteReport streams a scored quiz report as a delimited table, one row
// per question.
func WriteReport(w io.Writer, r *quiz.Report) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"Q#", "Question", "Correct Answer", "Your Response", "Result", "All Options"}); err != nil {
		return err
	}

	for i, row := range r.Rows {
		result := "Incorrect"
		if row.Correct {
			result = "Correct"
		}
		record := []string{
			fmt.Sprintf("%d", i+1),
			row.Question,
			row.CorrectAnswer,
			row.Response,
			result,
			strings.Join(row.Options, optionSeparator),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReportToCSV writes the quiz report table to path.
func ReportToCSV(r *quiz.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := WriteReport(f, r); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
