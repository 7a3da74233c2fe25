package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/sadopc/taskmaster/internal/quiz"
	"github.com/sadopc/taskmaster/internal/store"
)

func sampleTasks() []store.Task {
	return []store.Task{
		{ID: 3, Name: "Write report", DurationMinutes: 45, Category: "work", Status: store.StatusCompleted, Points: 10, CreatedAt: time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)},
		{ID: 7, Name: "Stretch", DurationMinutes: 15, Category: "health", Status: store.StatusToDo, Points: 5, CreatedAt: time.Date(2026, 8, 30, 8, 30, 0, 0, time.UTC)},
	}
}

// ============================================================
// Task backup JSON
// ============================================================

func TestTasksJSONRoundTrip(t *testing.T) {
	tasks := sampleTasks()

	data, err := TasksJSON(tasks)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := TasksFromJSON(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(got, tasks) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, tasks)
	}
}

func TestTasksJSONEmptyListIsArray(t *testing.T) {
	data, err := TasksJSON(nil)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Fatalf("empty backup must be a JSON array, got %q", data)
	}
}

func TestTasksJSONOmitsAccount(t *testing.T) {
	tasks := sampleTasks()
	tasks[0].Account = "alice"

	data, err := TasksJSON(tasks)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "alice") {
		t.Fatal("account identifier leaked into the backup document")
	}
}

func TestTasksFromJSONRejectsGarbage(t *testing.T) {
	if _, err := TasksFromJSON([]byte("{not json")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestTaskBackupFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	tasks := sampleTasks()

	if err := TasksToJSON(tasks, path); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadTasksJSON(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !reflect.DeepEqual(got, tasks) {
		t.Fatalf("file round trip mismatch:\n got %+v\nwant %+v", got, tasks)
	}
}

func TestBackupRestoreThroughStore(t *testing.T) {
	src, err := store.NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()
	if _, err := src.CreateAccount("alice", "Alice", "pw"); err != nil {
		t.Fatal(err)
	}
	if _, err := src.AddTask("alice", store.TaskDraft{Name: "Read", DurationMinutes: 30, Category: "study", Points: 4}); err != nil {
		t.Fatal(err)
	}
	if _, err := src.AddTask("alice", store.TaskDraft{Name: "Run", DurationMinutes: 20, Category: "health", Points: 6}); err != nil {
		t.Fatal(err)
	}
	original, err := src.ListTasks("alice")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "backup.json")
	if err := TasksToJSON(original, path); err != nil {
		t.Fatal(err)
	}

	dst, err := store.NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer dst.Close()
	if _, err := dst.CreateAccount("alice", "Alice", "pw"); err != nil {
		t.Fatal(err)
	}
	restored, err := ReadTasksJSON(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := dst.ReplaceTasks("alice", restored); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := dst.ListTasks("alice")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, original) {
		t.Fatalf("restored list mismatch:\n got %+v\nwant %+v", got, original)
	}
}

// ============================================================
// Quiz report CSV
// ============================================================

func sampleReport() *quiz.Report {
	return &quiz.Report{
		Total:      2,
		Score:      1,
		Percentage: 50.0,
		Rows: []quiz.ReportRow{
			{Question: "Capital of France?", CorrectAnswer: "Paris", Response: "Paris", Correct: true, Options: []string{"Paris", "Lyon"}},
			{Question: "2+2?", CorrectAnswer: "4", Response: quiz.Unanswered, Correct: false, Options: []string{"3", "4"}},
		},
	}
}

func TestWriteReport(t *testing.T) {
	var buf strings.Builder
	if err := WriteReport(&buf, sampleReport()); err != nil {
		t.Fatalf("write: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}

	header := []string{"Q#", "Question", "Correct Answer", "Your Response", "Result", "All Options"}
	if !reflect.DeepEqual(records[0], header) {
		t.Fatalf("header mismatch: %v", records[0])
	}

	want1 := []string{"1", "Capital of France?", "Paris", "Paris", "Correct", "Paris; Lyon"}
	if !reflect.DeepEqual(records[1], want1) {
		t.Fatalf("row 1 mismatch: %v", records[1])
	}

	want2 := []string{"2", "2+2?", "4", quiz.Unanswered, "Incorrect", "3; 4"}
	if !reflect.DeepEqual(records[2], want2) {
		t.Fatalf("row 2 mismatch: %v", records[2])
	}
}

func TestReportToCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	if err := ReportToCSV(sampleReport(), path); err != nil {
		t.Fatalf("write file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "Q#,") {
		t.Fatalf("file does not start with report header: %q", data)
	}
}
