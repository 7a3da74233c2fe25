package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sadopc/taskmaster/internal/store"
)

// TasksJSON renders the full ordered task list as a pretty-printed JSON
// document. The output re-imports verbatim.
func TasksJSON(tasks []store.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []store.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return data, nil
}

// TasksToJSON writes the task backup to path.
func TasksToJSON(tasks []store.Task, path string) error {
	data, err := TasksJSON(tasks)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}

// TasksFromJSON parses a task backup document. Structural parse is the
// only validation; imported records replace the stored list wholesale.
func TasksFromJSON(data []byte) ([]store.Task, error) {
	var tasks []store.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse task backup: %w", err)
	}
	return tasks, nil
}

// ReadTasksJSON loads a task backup from path.
func ReadTasksJSON(path string) ([]store.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task backup: %w", err)
	}
	return TasksFromJSON(data)
}
