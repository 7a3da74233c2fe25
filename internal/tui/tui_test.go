package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/taskmaster/internal/quiz"
	"github.com/sadopc/taskmaster/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// ============================================================
// Helpers
// ============================================================

func TestFormatCountdown(t *testing.T) {
	cases := []struct {
		secs int
		want string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{300, "05:00"},
		{-5, "00:00"},
	}
	for _, c := range cases {
		if got := formatCountdown(c.secs); got != c.want {
			t.Errorf("formatCountdown(%d) = %q, want %q", c.secs, got, c.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate short string = %q", got)
	}
	if got := truncate("a long task name", 7); got != "a long…" {
		t.Errorf("truncate long string = %q", got)
	}
}

func TestFormatMinutes(t *testing.T) {
	if got := formatMinutes(45); got != "45m" {
		t.Errorf("formatMinutes(45) = %q", got)
	}
	if got := formatMinutes(125); got != "2h 05m" {
		t.Errorf("formatMinutes(125) = %q", got)
	}
}

// ============================================================
// Quiz model
// ============================================================

func loadedQuizModel(t *testing.T) quizModel {
	t.Helper()
	m := newQuizModel(1)
	m.engine.Load([]quiz.Question{
		{Text: "Q1", CorrectAnswer: "A", Options: []string{"A", "B"}},
	})
	return m
}

func TestQuizTickAdvancesCountdown(t *testing.T) {
	m := loadedQuizModel(t)
	if err := m.engine.Start(); err != nil {
		t.Fatal(err)
	}
	before := m.remaining()

	m, _ = m.update(tickMsg(time.Now()))
	if m.remaining() != before-1 {
		t.Fatalf("tick did not advance countdown: %d -> %d", before, m.remaining())
	}
}

func TestQuizTickAutoSubmitsAtZero(t *testing.T) {
	m := loadedQuizModel(t)
	if err := m.engine.Start(); err != nil {
		t.Fatal(err)
	}

	var cmd tea.Cmd
	for i := 0; i < 60; i++ {
		m, cmd = m.update(tickMsg(time.Now()))
	}
	if m.running() {
		t.Fatal("quiz still running after the countdown elapsed")
	}
	if m.engine.State() != quiz.StateResults {
		t.Fatalf("expected results, got %v", m.engine.State())
	}
	if cmd == nil {
		t.Fatal("auto-submit should surface a status message")
	}
}

func TestQuizTickIgnoredOutsideRunning(t *testing.T) {
	m := loadedQuizModel(t)
	m, _ = m.update(tickMsg(time.Now()))
	if m.engine.State() != quiz.StateSetup {
		t.Fatal("tick must not move a quiz out of setup")
	}
}

func TestQuizCancelResetsRunningSession(t *testing.T) {
	m := loadedQuizModel(t)
	if err := m.engine.Start(); err != nil {
		t.Fatal(err)
	}

	m.cancel()
	if m.running() {
		t.Fatal("cancel left the session running")
	}
	if m.engine.State() != quiz.StateSetup {
		t.Fatalf("expected setup after cancel, got %v", m.engine.State())
	}
	if m.remaining() != 0 {
		t.Fatal("cancel left a countdown behind")
	}
}

func TestQuizCancelKeepsFinishedResults(t *testing.T) {
	m := loadedQuizModel(t)
	if err := m.engine.Start(); err != nil {
		t.Fatal(err)
	}
	m.engine.Submit()

	m.cancel()
	if m.engine.State() != quiz.StateResults {
		t.Fatal("cancel must not discard a scored report")
	}
	if m.engine.Report() == nil {
		t.Fatal("report lost after cancel")
	}
}

// ============================================================
// App session restore
// ============================================================

func TestAppRestoresPersistedSession(t *testing.T) {
	s := newTestStore(t)
	account, err := s.CreateAccount("alice", "Alice", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetActiveAccount(account); err != nil {
		t.Fatal(err)
	}

	app := NewApp(s, Options{QuizMinutes: 5})
	if app.account == nil {
		t.Fatal("persisted session was not restored")
	}
	if app.account.Identifier != "alice" {
		t.Fatalf("restored wrong account %q", app.account.Identifier)
	}
	if app.tasks.account != "alice" {
		t.Fatal("task view not bound to the restored account")
	}
}

func TestAppStartsSignedOut(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s, Options{QuizMinutes: 5})
	if app.account != nil {
		t.Fatal("fresh store must start signed out")
	}
}
