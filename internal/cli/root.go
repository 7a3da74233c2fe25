// Package cli wires the cobra command tree for taskmaster.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sadopc/taskmaster/internal/config"
	"github.com/sadopc/taskmaster/internal/quiz"
	"github.com/sadopc/taskmaster/internal/store"
	"github.com/sadopc/taskmaster/internal/tui"
)

var (
	configPath string
	dbPath     string
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "taskmaster",
		Short:         "Login-gated task, quiz and rhythm tracker for the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTUI,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(), "path to TOML config")
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the SQLite database (overrides config)")

	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newQuizCmd())
	return cmd
}

// openStore resolves the database path from flags and config and opens it.
func openStore() (*store.Store, config.FileConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, cfg, err
	}

	path := dbPath
	if path == "" && cfg.Storage.Path != nil {
		path = *cfg.Storage.Path
	}
	if path == "" {
		path, err = store.DefaultDBPath()
		if err != nil {
			return nil, cfg, err
		}
	}

	s, err := store.New(path)
	if err != nil {
		return nil, cfg, err
	}
	return s, cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	opts := tui.Options{QuizMinutes: quiz.DefaultDurationMinutes}
	if cfg.Quiz.DurationMinutes != nil && *cfg.Quiz.DurationMinutes > 0 {
		opts.QuizMinutes = *cfg.Quiz.DurationMinutes
	}
	if cfg.Tasks.DefaultCategory != nil {
		opts.DefaultCategory = *cfg.Tasks.DefaultCategory
	}

	app := tui.NewApp(s, opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
