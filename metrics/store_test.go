package metrics_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitdeck/fitdeck/internal/models"
	"github.com/fitdeck/fitdeck/internal/testutil"
	"github.com/fitdeck/fitdeck/metrics"
	"github.com/fitdeck/fitdeck/store"
)

var today = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func openStore(t *testing.T, kv store.KV) *metrics.Store {
	t.Helper()

	s, err := metrics.Open(kv, metrics.WithClock(testutil.FixedClock{T: today}))
	require.NoError(t, err)

	return s
}

func TestOpenUsesDefaultWhenAbsent(t *testing.T) {
	s := openStore(t, store.NewMemory(0))

	if diff := cmp.Diff(metrics.DefaultDashboard(), s.Snapshot()); diff != "" {
		t.Errorf("unexpected dashboard (-want +got):\n%s", diff)
	}
}

func TestOpenUsesDefaultWhenMalformed(t *testing.T) {
	kv := store.NewMemory(0)
	require.NoError(t, kv.Save(store.DashboardKey, []byte(`{"history": 5`)))

	s := openStore(t, kv)

	assert.Equal(t, metrics.DefaultDashboard(), s.Snapshot())
}

func TestOpenFailsOnReadError(t *testing.T) {
	kv := &testutil.FailingKV{LoadErr: errors.New("disk on fire")}

	_, err := metrics.Open(kv)
	assert.Error(t, err)
}

func TestPrependHistory(t *testing.T) {
	s := openStore(t, store.NewMemory(0))

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, s.PrependHistory(models.HistoricalWorkout{
			Name:      name,
			Duration:  "30 min",
			Intensity: models.Medium,
			Target:    "General",
		}))

		h := s.History()
		assert.Equal(t, name, h[0].Name)
		assert.NotEmpty(t, h[0].ID)
		assert.Equal(t, "2026-03-14", h[0].Date)
	}

	assert.Len(t, s.History(), 3)
}

func TestDeleteHistory(t *testing.T) {
	s := openStore(t, store.NewMemory(0))

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.PrependHistory(models.HistoricalWorkout{ID: id, Name: id}))
	}

	require.NoError(t, s.DeleteHistory("b"))

	var ids []string
	for _, h := range s.History() {
		ids = append(ids, h.ID)
	}

	assert.Equal(t, []string{"c", "a"}, ids)

	err := s.DeleteHistory("b")
	assert.ErrorIs(t, err, metrics.ErrUnknownRecord)
	assert.Len(t, s.History(), 2)
}

func TestRoundTrip(t *testing.T) {
	kv := store.NewMemory(0)
	s := openStore(t, kv)

	require.NoError(t, s.PrependHistory(models.HistoricalWorkout{
		ID: "w1", Name: "Leg day", Duration: "45 min", Intensity: models.High, Target: "Legs",
	}))

	_, err := s.AddGoal(models.Goal{
		Name: "Bench", Target: "100kg", Current: "85kg", Category: "Strength",
	})
	require.NoError(t, err)
	require.NoError(t, s.BoostRecovery(5))

	reopened := openStore(t, kv)

	if diff := cmp.Diff(s.Snapshot(), reopened.Snapshot()); diff != "" {
		t.Errorf("round trip mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestBestEffortPersistence(t *testing.T) {
	kv := &testutil.FailingKV{SaveErr: errors.New("read-only filesystem")}

	s, err := metrics.Open(kv)
	require.NoError(t, err)

	err = s.PrependHistory(models.HistoricalWorkout{Name: "kept"})
	assert.ErrorIs(t, err, metrics.ErrNotDurable)

	// in-memory state is ahead of durable state
	require.Len(t, s.History(), 1)
	assert.Equal(t, "kept", s.History()[0].Name)
}

func TestWriteVisibleToNextRead(t *testing.T) {
	kv := store.NewMemory(0)
	s := openStore(t, kv)

	require.NoError(t, s.PrependHistory(models.HistoricalWorkout{ID: "x"}))

	var d models.Dashboard

	found, err := store.LoadJSON(kv, store.DashboardKey, &d)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "x", d.History[0].ID)
}

func TestLongHistoryOnMemoryDriver(t *testing.T) {
	kv := store.NewMemory(0)
	s := openStore(t, kv)

	for i := range 200 {
		require.NoError(t, s.PrependHistory(models.HistoricalWorkout{
			Name:      fmt.Sprintf("Workout %d", i),
			Duration:  "45 min",
			Intensity: models.High,
			Target:    "Full Body",
		}), i)
	}

	reopened := openStore(t, kv)
	require.Len(t, reopened.History(), 200)
	assert.Equal(t, "Workout 199", reopened.History()[0].Name)
}

func TestDayStatus(t *testing.T) {
	kv := store.NewMemory(0)
	s := openStore(t, kv)

	ds, err := s.DayStatus()
	require.NoError(t, err)
	assert.Equal(t, models.DayStatus{Date: "2026-03-14"}, ds)

	ds, err = s.SetDayStatus(130)
	require.NoError(t, err)
	assert.Equal(t, 100, ds.Value)

	got, err := s.DayStatus()
	require.NoError(t, err)
	assert.Equal(t, ds, got)

	// independent of the dashboard aggregate
	assert.Equal(t, metrics.DefaultDashboard(), s.Snapshot())
}
