// Package stats derives the dashboard numbers from a fetched todo
// list. Everything here is a pure partition of the input; nothing is
// cached, and the counts are recomputed whenever the list changes.
package stats

import (
	"sort"
	"time"

	"github.com/julianstephens/tugas/internal/constants"
	"github.com/julianstephens/tugas/internal/models"
)

type PriorityCounts struct {
	High   int
	Medium int
	Low    int
}

type Stats struct {
	Total     int
	Completed int
	Pending   int
	DueSoon   int
	Priority  PriorityCounts
}

// Aggregate partitions todos into the dashboard counts. DueSoon counts
// incomplete todos whose due date lies strictly after now and no later
// than now plus the due-soon window; todos without a due date never
// qualify.
func Aggregate(todos []models.Todo, now time.Time) Stats {
	s := Stats{Total: len(todos)}
	horizon := now.Add(constants.DueSoonWindow)

	for _, t := range todos {
		if t.IsComplete {
			s.Completed++
		} else {
			s.Pending++
		}

		if !t.IsComplete && t.DueDate != nil {
			due := *t.DueDate
			if due.After(now) && !due.After(horizon) {
				s.DueSoon++
			}
		}

		switch t.Priority {
		case models.PriorityHigh:
			s.Priority.High++
		case models.PriorityMedium:
			s.Priority.Medium++
		case models.PriorityLow:
			s.Priority.Low++
		}
	}

	return s
}

// Recent returns the n most recently created todos, newest first.
// Equal creation timestamps keep the server's ordering, so the sort
// must be stable. The input slice is not modified.
func Recent(todos []models.Todo, n int) []models.Todo {
	sorted := make([]models.Todo, len(todos))
	copy(sorted, todos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
