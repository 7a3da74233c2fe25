package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sadopc/taskmaster/internal/quiz"
)

func newQuizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Question bank utilities",
	}
	cmd.AddCommand(newQuizCheckCmd())
	return cmd
}

// quiz check validates a pipe-delimited question bank without starting a
// session, so banks can be linted before use.
func newQuizCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a pipe-delimited question bank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			questions, err := quiz.Parse(f)
			if errors.Is(err, quiz.ErrNoValidQuestions) {
				return fmt.Errorf("%s parses but contains no valid questions", args[0])
			}
			if err != nil {
				return err
			}

			fmt.Printf("%s: %d valid questions\n", args[0], len(questions))
			for i, q := range questions {
				fmt.Printf("  %2d. %s (%d options)\n", i+1, q.Text, len(q.Options))
			}
			return nil
		},
	}
}
