package store

import "time"

// Account is a registered user identity. Secrets are stored in clear text;
// this is a single-user local tool, not an authentication system.
type Account struct {
	Identifier  string `json:"identifier"`
	DisplayName string `json:"display_name"`
	Secret      string `json:"secret"`
	CreatedAt   time.Time
}

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusToDo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// Statuses lists all task statuses in display order.
var Statuses = []TaskStatus{StatusToDo, StatusInProgress, StatusCompleted}

// Categories lists the accepted task categories.
var Categories = []string{"work", "study", "personal", "health", "other"}

type Task struct {
	ID              int64      `json:"id"`
	Account         string     `json:"-"`
	Name            string     `json:"name"`
	DurationMinutes int        `json:"duration_minutes"`
	Category        string     `json:"category"`
	Status          TaskStatus `json:"status"`
	Points          int        `json:"points"`
	CreatedAt       time.Time  `json:"created_at"`
}

// TaskDraft carries user input for a new task before validation.
type TaskDraft struct {
	Name            string
	DurationMinutes int
	Category        string
	Points          int
}

// HourLog is one logged block of focused time, keyed by decimal hour
// (6.5 means 6:30). Focus and energy are self-reported 1-5 scores.
type HourLog struct {
	ID        int64
	Account   string
	Day       string // YYYY-MM-DD
	Hour      float64
	Activity  string
	Focus     int
	Energy    int
	CreatedAt time.Time
}
