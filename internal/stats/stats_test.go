package stats

import (
	"testing"
	"time"

	"github.com/julianstephens/tugas/internal/models"
)

func todoAt(due time.Time, complete bool) models.Todo {
	return models.Todo{Priority: models.PriorityMedium, DueDate: &due, IsComplete: complete}
}

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate(nil, time.Now())
	want := Stats{}
	if got != want {
		t.Errorf("Aggregate(nil) = %+v, want all zeros", got)
	}
}

func TestAggregate_PartitionIdentities(t *testing.T) {
	now := time.Now()
	todos := []models.Todo{
		{Priority: models.PriorityHigh, IsComplete: true},
		{Priority: models.PriorityHigh},
		{Priority: models.PriorityMedium},
		todoAt(now.Add(2*time.Hour), false),
		todoAt(now.Add(-time.Hour), true),
		{Priority: models.PriorityLow},
	}

	got := Aggregate(todos, now)

	if got.Total != len(todos) {
		t.Errorf("Total = %d, want %d", got.Total, len(todos))
	}
	if got.Completed+got.Pending != len(todos) {
		t.Errorf("Completed(%d) + Pending(%d) != Total(%d)", got.Completed, got.Pending, len(todos))
	}
	if sum := got.Priority.High + got.Priority.Medium + got.Priority.Low; sum != len(todos) {
		t.Errorf("priority counts sum to %d, want %d", sum, len(todos))
	}
}

func TestAggregate_DueSoonBoundaries(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		todo models.Todo
		want int
	}{
		{"due exactly now is excluded", todoAt(now, false), 0},
		{"due in the past is excluded", todoAt(now.Add(-time.Minute), false), 0},
		{"due in 23h59m is included", todoAt(now.Add(23*time.Hour+59*time.Minute), false), 1},
		{"due at exactly 24h is included", todoAt(now.Add(24*time.Hour), false), 1},
		{"due just past 24h is excluded", todoAt(now.Add(24*time.Hour+time.Second), false), 0},
		{"completed within window is excluded", todoAt(now.Add(time.Hour), true), 0},
		{"no due date is excluded", models.Todo{Priority: models.PriorityLow}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate([]models.Todo{tt.todo}, now)
			if got.DueSoon != tt.want {
				t.Errorf("DueSoon = %d, want %d", got.DueSoon, tt.want)
			}
		})
	}
}

func TestRecent_NewestFirstTopN(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	var todos []models.Todo
	for i := 0; i < 7; i++ {
		todos = append(todos, models.Todo{
			ID:        string(rune('a' + i)),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	got := Recent(todos, 5)

	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Errorf("result not in descending order at index %d", i)
		}
	}
	if got[0].ID != "g" {
		t.Errorf("newest = %q, want %q", got[0].ID, "g")
	}
}

func TestRecent_TiesKeepServerOrder(t *testing.T) {
	ts := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	todos := []models.Todo{
		{ID: "first", CreatedAt: ts},
		{ID: "second", CreatedAt: ts},
		{ID: "third", CreatedAt: ts},
	}

	got := Recent(todos, 5)

	wantOrder := []string{"first", "second", "third"}
	for i, want := range wantOrder {
		if got[i].ID != want {
			t.Errorf("tie order broken: got[%d] = %q, want %q", i, got[i].ID, want)
		}
	}
}

func TestRecent_DoesNotMutateInput(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	todos := []models.Todo{
		{ID: "old", CreatedAt: base},
		{ID: "new", CreatedAt: base.Add(time.Hour)},
	}

	Recent(todos, 1)

	if todos[0].ID != "old" || todos[1].ID != "new" {
		t.Error("Recent reordered its input slice")
	}
}
