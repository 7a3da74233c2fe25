package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/taskmaster/internal/export"
	"github.com/sadopc/taskmaster/internal/store"
)

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the signed-in account's tasks to a JSON backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			account, err := requireActiveAccount(s)
			if err != nil {
				return err
			}

			tasks, err := s.ListTasks(account.Identifier)
			if err != nil {
				return err
			}

			if out == "" {
				out = fmt.Sprintf("taskmaster_backup_%s_%s.json",
					account.Identifier, time.Now().Format("2006-01-02"))
			}
			if err := export.TasksToJSON(tasks, out); err != nil {
				return err
			}
			fmt.Printf("exported %d tasks to %s\n", len(tasks), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default taskmaster_backup_<account>_<date>.json)")
	return cmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the signed-in account's tasks from a JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			account, err := requireActiveAccount(s)
			if err != nil {
				return err
			}

			tasks, err := export.ReadTasksJSON(args[0])
			if err != nil {
				return err
			}
			if err := s.ReplaceTasks(account.Identifier, tasks); err != nil {
				return err
			}
			fmt.Printf("imported %d tasks for %s\n", len(tasks), account.Identifier)
			return nil
		},
	}
}

func requireActiveAccount(s *store.Store) (*store.Account, error) {
	account, err := s.ActiveAccount()
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("no account is signed in; run taskmaster and sign in first")
	}
	return account, nil
}
