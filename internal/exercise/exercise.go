// Package exercise manages the ordered list of exercises in a workout session
package exercise

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Exercise is a single entry in a workout.
type Exercise struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DurationOrReps string `json:"duration"`
	Completed      bool   `json:"completed"`
}

// List is an ordered collection of exercises. Entries are addressed by their
// ID; the order is only used for display and is never re-sorted.
type List struct {
	newID   func() string
	editing map[string]bool
	items   []Exercise
}

// NewList returns an empty list.
func NewList() *List {
	return &List{
		newID:   uuid.NewString,
		editing: make(map[string]bool),
	}
}

func (l *List) index(id string) int {
	return slices.IndexFunc(l.items, func(e Exercise) bool {
		return e.ID == id
	})
}

// Add appends an exercise and returns its ID. Empty names or durations are
// ignored and reported with ok set to false.
func (l *List) Add(name, durationOrReps string) (id string, ok bool) {
	name = strings.TrimSpace(name)
	durationOrReps = strings.TrimSpace(durationOrReps)

	if name == "" || durationOrReps == "" {
		return "", false
	}

	id = l.newID()

	l.items = append(l.items, Exercise{
		ID:             id,
		Name:           name,
		DurationOrReps: durationOrReps,
	})

	return id, true
}

// Edit puts the exercise into editing mode.
func (l *List) Edit(id string) bool {
	if l.index(id) < 0 {
		return false
	}

	l.editing[id] = true

	return true
}

// Editing reports whether the exercise is in editing mode.
func (l *List) Editing(id string) bool {
	return l.editing[id]
}

// CancelEdit leaves editing mode without changing the exercise.
func (l *List) CancelEdit(id string) {
	delete(l.editing, id)
}

// Update replaces the name and duration of an exercise that is being edited
// and leaves editing mode. Unknown IDs, entries not in editing mode and empty
// values are no-ops.
func (l *List) Update(id, name, durationOrReps string) bool {
	i := l.index(id)
	if i < 0 || !l.editing[id] {
		return false
	}

	name = strings.TrimSpace(name)
	durationOrReps = strings.TrimSpace(durationOrReps)

	if name == "" || durationOrReps == "" {
		return false
	}

	l.items[i].Name = name
	l.items[i].DurationOrReps = durationOrReps

	delete(l.editing, id)

	return true
}

// Remove deletes an exercise. Later entries shift down by one.
func (l *List) Remove(id string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}

	l.items = slices.Delete(l.items, i, i+1)
	delete(l.editing, id)

	return true
}

// ToggleCompleted flips the completion flag of an exercise.
func (l *List) ToggleCompleted(id string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}

	l.items[i].Completed = !l.items[i].Completed

	return true
}

// Get returns the exercise with the given ID.
func (l *List) Get(id string) (Exercise, bool) {
	i := l.index(id)
	if i < 0 {
		return Exercise{}, false
	}

	return l.items[i], true
}

// Items returns a copy of the exercises in display order.
func (l *List) Items() []Exercise {
	return slices.Clone(l.items)
}

// Len returns the number of exercises.
func (l *List) Len() int {
	return len(l.items)
}

// CompletedCount returns how many exercises are marked completed.
func (l *List) CompletedCount() int {
	var n int

	for _, e := range l.items {
		if e.Completed {
			n++
		}
	}

	return n
}
