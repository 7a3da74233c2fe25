// Package analytics derives display summaries from a task list snapshot.
package analytics

import "github.com/sadopc/taskmaster/internal/store"

// StatusCount pairs a status with its task count.
type StatusCount struct {
	Status store.TaskStatus
	Count  int
}

// CategoryCount pairs a category with its task count.
type CategoryCount struct {
	Category string
	Count    int
}

// Summary aggregates one snapshot of an account's tasks. Points and
// minutes count completed tasks only.
type Summary struct {
	TotalTasks        int
	TotalCompleted    int
	TotalPoints       int
	TotalMinutes      int
	StatusBreakdown   []StatusCount
	CategoryBreakdown []CategoryCount
}

// Summarize recomputes the full summary from scratch. The expected data
// volumes are tiny, so there is no caching.
func Summarize(tasks []store.Task) Summary {
	sum := Summary{TotalTasks: len(tasks)}

	byStatus := make(map[store.TaskStatus]int)
	byCategory := make(map[string]int)
	var categoryOrder []string

	for _, t := range tasks {
		byStatus[t.Status]++
		if _, seen := byCategory[t.Category]; !seen {
			categoryOrder = append(categoryOrder, t.Category)
		}
		byCategory[t.Category]++

		if t.Status == store.StatusCompleted {
			sum.TotalCompleted++
			sum.TotalPoints += t.Points
			sum.TotalMinutes += t.DurationMinutes
		}
	}

	// Fixed status order, zero counts included.
	for _, st := range store.Statuses {
		sum.StatusBreakdown = append(sum.StatusBreakdown, StatusCount{Status: st, Count: byStatus[st]})
	}
	// Only categories that occur, in first-seen order.
	for _, c := range categoryOrder {
		sum.CategoryBreakdown = append(sum.CategoryBreakdown, CategoryCount{Category: c, Count: byCategory[c]})
	}
	return sum
}
