package analytics

import (
	"testing"

	"github.com/sadopc/taskmaster/internal/store"
)

func task(name string, status store.TaskStatus, category string, minutes, points int) store.Task {
	return store.Task{
		Name:            name,
		Status:          status,
		Category:        category,
		DurationMinutes: minutes,
		Points:          points,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	if sum.TotalTasks != 0 || sum.TotalCompleted != 0 || sum.TotalPoints != 0 || sum.TotalMinutes != 0 {
		t.Fatalf("empty summary not zero: %+v", sum)
	}
	if len(sum.StatusBreakdown) != 3 {
		t.Fatalf("status breakdown must always have 3 entries, got %d", len(sum.StatusBreakdown))
	}
	for _, sc := range sum.StatusBreakdown {
		if sc.Count != 0 {
			t.Fatalf("expected zero count for %s, got %d", sc.Status, sc.Count)
		}
	}
	if len(sum.CategoryBreakdown) != 0 {
		t.Fatalf("no categories should be reported for an empty list: %+v", sum.CategoryBreakdown)
	}
}

func TestSummarizeAllToDo(t *testing.T) {
	tasks := []store.Task{
		task("a", store.StatusToDo, "work", 30, 10),
		task("b", store.StatusToDo, "study", 60, 20),
	}
	sum := Summarize(tasks)
	if sum.TotalTasks != 2 {
		t.Fatalf("expected 2 tasks, got %d", sum.TotalTasks)
	}
	// Incomplete tasks contribute nothing.
	if sum.TotalPoints != 0 || sum.TotalMinutes != 0 {
		t.Fatalf("all-todo list must sum to zero: points=%d minutes=%d", sum.TotalPoints, sum.TotalMinutes)
	}
}

func TestSummarizeCompletedSums(t *testing.T) {
	tasks := []store.Task{
		task("done", store.StatusCompleted, "work", 15, 10),
		task("pending", store.StatusToDo, "work", 99, 99),
	}
	sum := Summarize(tasks)
	if sum.TotalCompleted != 1 {
		t.Fatalf("expected 1 completed, got %d", sum.TotalCompleted)
	}
	if sum.TotalPoints != 10 {
		t.Fatalf("expected 10 points, got %d", sum.TotalPoints)
	}
	if sum.TotalMinutes != 15 {
		t.Fatalf("expected 15 minutes, got %d", sum.TotalMinutes)
	}
}

func TestStatusBreakdownFixedOrder(t *testing.T) {
	tasks := []store.Task{
		task("a", store.StatusCompleted, "work", 10, 1),
		task("b", store.StatusCompleted, "work", 10, 1),
		task("c", store.StatusInProgress, "work", 10, 1),
	}
	sum := Summarize(tasks)

	want := []StatusCount{
		{Status: store.StatusToDo, Count: 0},
		{Status: store.StatusInProgress, Count: 1},
		{Status: store.StatusCompleted, Count: 2},
	}
	if len(sum.StatusBreakdown) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(sum.StatusBreakdown))
	}
	for i, w := range want {
		if sum.StatusBreakdown[i] != w {
			t.Fatalf("position %d: expected %+v, got %+v", i, w, sum.StatusBreakdown[i])
		}
	}
}

func TestCategoryBreakdownFirstSeenOrder(t *testing.T) {
	tasks := []store.Task{
		task("a", store.StatusToDo, "study", 10, 1),
		task("b", store.StatusToDo, "work", 10, 1),
		task("c", store.StatusToDo, "study", 10, 1),
	}
	sum := Summarize(tasks)

	if len(sum.CategoryBreakdown) != 2 {
		t.Fatalf("expected 2 categories, got %+v", sum.CategoryBreakdown)
	}
	if sum.CategoryBreakdown[0] != (CategoryCount{Category: "study", Count: 2}) {
		t.Fatalf("unexpected first category: %+v", sum.CategoryBreakdown[0])
	}
	if sum.CategoryBreakdown[1] != (CategoryCount{Category: "work", Count: 1}) {
		t.Fatalf("unexpected second category: %+v", sum.CategoryBreakdown[1])
	}
}
