package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fitdeck/fitdeck/internal/models"
	"github.com/fitdeck/fitdeck/internal/timeutil"
	"github.com/fitdeck/fitdeck/metrics"
)

// notDurableHeader is set when a change was applied but not saved.
const notDurableHeader = "X-Fitdeck-Not-Durable"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// writeResult writes v for a mutation whose error may only report that the
// change was not persisted.
func (s *Server) writeResult(w http.ResponseWriter, status int, v any, err error) {
	switch {
	case err == nil:
	case errors.Is(err, metrics.ErrNotDurable):
		w.Header().Set(notDurableHeader, "true")
	case errors.Is(err, metrics.ErrUnknownRecord):
		writeError(w, http.StatusNotFound, err)
		return
	default:
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if v == nil {
		w.WriteHeader(status)
		return
	}

	writeJSON(w, status, v)
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Summary())
}

func (s *Server) handleSession(w http.ResponseWriter, _ *http.Request) {
	if s.sessions == nil {
		writeError(w, http.StatusNotFound, errNoSession)
		return
	}

	sess, ok := s.sessions.Current()
	if !ok {
		writeError(w, http.StatusNotFound, errNoSession)
		return
	}

	writeJSON(w, http.StatusOK, sess.View())
}

// handleHistory lists workouts, optionally only those on or after the
// ?since=YYYY-MM-DD day.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	history := s.store.History()

	since := r.URL.Query().Get("since")
	if since == "" {
		writeJSON(w, http.StatusOK, history)
		return
	}

	day, err := timeutil.ParseDay(since)
	if err != nil {
		writeError(w, http.StatusBadRequest, errInvalidSince)
		return
	}

	writeJSON(w, http.StatusOK, metrics.Since(history, day))
}

func (s *Server) handleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	err := s.store.DeleteHistory(chi.URLParam(r, "id"))
	s.writeResult(w, http.StatusNoContent, nil, err)
}

func (s *Server) handleRecovery(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Recovery())
}

func (s *Server) handleResetRecovery(w http.ResponseWriter, _ *http.Request) {
	err := s.store.ResetRecovery()
	s.writeResult(w, http.StatusOK, s.store.Recovery(), err)
}

// handleAdjustRecovery nudges one recovery field by ?delta=N.
func (s *Server) handleAdjustRecovery(w http.ResponseWriter, r *http.Request) {
	field, err := metrics.ParseField(chi.URLParam(r, "field"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	delta, err := strconv.Atoi(r.URL.Query().Get("delta"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errInvalidDelta)
		return
	}

	err = s.store.AdjustRecovery(field, delta)
	s.writeResult(w, http.StatusOK, s.store.Recovery(), err)
}

func (s *Server) handleGoals(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Goals())
}

func (s *Server) handleAddGoal(w http.ResponseWriter, r *http.Request) {
	var g models.Goal

	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	if g.Name == "" || g.Target == "" {
		writeError(w, http.StatusBadRequest, errIncompleteGoal)
		return
	}

	g, err := s.store.AddGoal(g)
	s.writeResult(w, http.StatusCreated, g, err)
}

type goalUpdate struct {
	Current string `json:"current"`
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	var u goalUpdate

	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	g, err := s.store.SubmitGoalUpdate(chi.URLParam(r, "id"), u.Current)
	s.writeResult(w, http.StatusOK, g, err)
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	err := s.store.DeleteGoal(chi.URLParam(r, "id"))
	s.writeResult(w, http.StatusNoContent, nil, err)
}

func (s *Server) handleDayStatus(w http.ResponseWriter, _ *http.Request) {
	ds, err := s.store.DayStatus()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, ds)
}

type dayStatusUpdate struct {
	Value int `json:"value"`
}

func (s *Server) handleSetDayStatus(w http.ResponseWriter, r *http.Request) {
	var u dayStatusUpdate

	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	ds, err := s.store.SetDayStatus(u.Value)
	s.writeResult(w, http.StatusOK, ds, err)
}

