package exercise

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestList() *List {
	l := NewList()

	var n int

	l.newID = func() string {
		n++
		return fmt.Sprintf("ex-%d", n)
	}

	return l
}

func names(l *List) []string {
	var out []string
	for _, e := range l.Items() {
		out = append(out, e.Name)
	}

	return out
}

func TestAdd(t *testing.T) {
	l := newTestList()

	id, ok := l.Add("Squats", "3x12")
	require.True(t, ok)
	assert.Equal(t, "ex-1", id)

	_, ok = l.Add("", "3x12")
	assert.False(t, ok)

	_, ok = l.Add("Plank", "   ")
	assert.False(t, ok)

	assert.Equal(t, 1, l.Len())

	e, ok := l.Get(id)
	require.True(t, ok)
	assert.Equal(t, Exercise{ID: "ex-1", Name: "Squats", DurationOrReps: "3x12"}, e)
}

func TestUpdateRequiresEditing(t *testing.T) {
	l := newTestList()

	id, _ := l.Add("Squats", "3x12")

	assert.False(t, l.Update(id, "Lunges", "3x10"), "update outside editing mode")
	assert.Equal(t, []string{"Squats"}, names(l))

	require.True(t, l.Edit(id))
	assert.True(t, l.Editing(id))
	assert.True(t, l.Update(id, "Lunges", "3x10"))
	assert.False(t, l.Editing(id))

	e, _ := l.Get(id)
	assert.Equal(t, "3x10", e.DurationOrReps)
	assert.Equal(t, "Lunges", e.Name)

	assert.False(t, l.Update("missing", "x", "y"))
	assert.False(t, l.Edit("missing"))
}

func TestCancelEdit(t *testing.T) {
	l := newTestList()

	id, _ := l.Add("Squats", "3x12")
	l.Edit(id)
	l.CancelEdit(id)

	assert.False(t, l.Update(id, "Lunges", "3x10"))
}

func TestRemoveShiftsOrder(t *testing.T) {
	l := newTestList()

	a, _ := l.Add("A", "1")
	b, _ := l.Add("B", "2")
	c, _ := l.Add("C", "3")

	assert.True(t, l.Remove(b))
	assert.Equal(t, []string{"A", "C"}, names(l))

	// identity survives the shift
	assert.True(t, l.ToggleCompleted(c))

	e, _ := l.Get(c)
	assert.True(t, e.Completed)

	assert.False(t, l.Remove(b))
	assert.True(t, l.Remove(a))
	assert.Equal(t, []string{"C"}, names(l))
}

func TestToggleCompleted(t *testing.T) {
	l := newTestList()

	id, _ := l.Add("Burpees", "20 reps")

	assert.True(t, l.ToggleCompleted(id))
	assert.Equal(t, 1, l.CompletedCount())

	assert.True(t, l.ToggleCompleted(id))
	assert.Equal(t, 0, l.CompletedCount())

	assert.False(t, l.ToggleCompleted("missing"))
}

func TestItemsIsACopy(t *testing.T) {
	l := newTestList()

	l.Add("A", "1")

	items := l.Items()
	items[0].Name = "changed"

	assert.Equal(t, []string{"A"}, names(l))
}
