package metrics

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/fitdeck/fitdeck/internal/models"
)

var numberRegex = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

func firstNumber(s string) (float64, bool) {
	m := numberRegex.FindString(s)
	if m == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

// GoalProgress computes progress in [0,100] from the numeric parts of target
// and current. Targets mentioning "min" are times where lower is better.
func GoalProgress(target, current string) int {
	t, ok := firstNumber(target)
	if !ok || t == 0 {
		return 0
	}

	c, ok := firstNumber(current)
	if !ok {
		return 0
	}

	var p float64

	if strings.Contains(strings.ToLower(target), "min") {
		p = 100 - (c-t)/t*100
	} else {
		p = c / t * 100
	}

	return clamp(int(math.Round(p)))
}

func (s *Store) goalIndexLocked(id string) int {
	return slices.IndexFunc(s.data.Goals, func(g models.Goal) bool {
		return g.ID == id
	})
}

// AddGoal appends a goal, assigning its id and computing its progress.
func (s *Store) AddGoal(g models.Goal) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g.ID = s.newID()
	g.Progress = GoalProgress(g.Target, g.Current)

	s.data.Goals = append(s.data.Goals, g)

	return g, s.persistLocked()
}

// UpdateGoalProgress overwrites a goal's progress and current value. The
// progress is taken as given (clamped to [0,100]).
func (s *Store) UpdateGoalProgress(id string, progress int, current string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.goalIndexLocked(id)
	if i < 0 {
		return errUnknownRecord.Fmt("goal", id)
	}

	s.data.Goals[i].Progress = clamp(progress)
	s.data.Goals[i].Current = current

	return s.persistLocked()
}

// SubmitGoalUpdate records a new current value and recomputes progress.
func (s *Store) SubmitGoalUpdate(id, current string) (models.Goal, error) {
	s.mu.RLock()
	i := s.goalIndexLocked(id)

	var g models.Goal
	if i >= 0 {
		g = s.data.Goals[i]
	}

	s.mu.RUnlock()

	if i < 0 {
		return g, errUnknownRecord.Fmt("goal", id)
	}

	g.Current = current
	g.Progress = GoalProgress(g.Target, current)

	return g, s.UpdateGoalProgress(id, g.Progress, current)
}

// DeleteGoal removes the goal with the given id.
func (s *Store) DeleteGoal(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.goalIndexLocked(id)
	if i < 0 {
		return errUnknownRecord.Fmt("goal", id)
	}

	s.data.Goals = slices.Delete(s.data.Goals, i, i+1)

	return s.persistLocked()
}
