package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitdeck/fitdeck/internal/config"
	"github.com/fitdeck/fitdeck/internal/models"
	"github.com/fitdeck/fitdeck/internal/static"
	"github.com/fitdeck/fitdeck/internal/testutil"
	"github.com/fitdeck/fitdeck/metrics"
	"github.com/fitdeck/fitdeck/session"
	"github.com/fitdeck/fitdeck/store"
)

var today = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	disableStyling()

	os.Exit(m.Run())
}

func newStore(t *testing.T, kv store.KV) *metrics.Store {
	t.Helper()

	st, err := metrics.Open(kv, metrics.WithClock(testutil.FixedClock{T: today}))
	require.NoError(t, err)

	return st
}

func seedHistory(t *testing.T, st *metrics.Store, names ...string) []models.HistoricalWorkout {
	t.Helper()

	for _, name := range names {
		require.NoError(t, st.PrependHistory(models.HistoricalWorkout{
			Name:      name,
			Duration:  "30 min",
			Intensity: models.Medium,
			Target:    "Strength",
		}))
	}

	return st.History()
}

func TestResolveTemplate(t *testing.T) {
	templates, err := static.Embedded()
	require.NoError(t, err)

	testCases := []struct {
		name     string
		arg      string
		flags    templateFlags
		wantErr  bool
		wantName string
	}{
		{
			name:     "ad hoc from flags",
			flags:    templateFlags{name: "Lunch Run", duration: "20 min"},
			wantName: "Lunch Run",
		},
		{
			name:     "catalog name ignores case",
			arg:      "hiit blast",
			wantName: "HIIT Blast",
		},
		{
			name:     "flags override the catalog",
			arg:      "HIIT Blast",
			flags:    templateFlags{name: "Short HIIT"},
			wantName: "Short HIIT",
		},
		{
			name:    "unknown template",
			arg:     "Underwater Basket Weaving",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveTemplate(templates, tc.arg, tc.flags)
			if tc.wantErr {
				assert.ErrorIs(t, err, errUnknownTemplate)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantName, got.Name)

			if tc.flags.duration != "" {
				assert.Equal(t, tc.flags.duration, got.Duration)
			}
		})
	}
}

func TestSessionCmd(t *testing.T) {
	rec := models.HistoricalWorkout{
		ID:        "abc",
		Name:      "Leg Day",
		Date:      "2026-03-14",
		Duration:  "45 min",
		Intensity: models.High,
		Target:    "Strength",
	}

	t.Run("empty command", func(t *testing.T) {
		cmd, err := sessionCmd("  ", rec)
		assert.NoError(t, err)
		assert.Nil(t, cmd)
	})

	t.Run("unterminated quote", func(t *testing.T) {
		_, err := sessionCmd(`echo "done`, rec)
		assert.ErrorIs(t, err, errSessionCmd)
	})

	t.Run("arguments and environment", func(t *testing.T) {
		cmd, err := sessionCmd(`notify-send "Workout done" --urgency=low`, rec)
		require.NoError(t, err)

		assert.Equal(t, []string{"notify-send", "Workout done", "--urgency=low"}, cmd.Args)
		assert.Contains(t, cmd.Env, "FITDECK_WORKOUT_NAME=Leg Day")
		assert.Contains(t, cmd.Env, "FITDECK_WORKOUT_INTENSITY=High")
		assert.Contains(t, cmd.Env, "FITDECK_WORKOUT_DURATION=45 min")
	})
}

func TestRunSessionCmd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on true and false")
	}

	assert.NoError(t, runSessionCmd("true", models.HistoricalWorkout{}))
	assert.ErrorIs(t, runSessionCmd("false", models.HistoricalWorkout{}), errSessionCmd)
	assert.NoError(t, runSessionCmd("", models.HistoricalWorkout{}))
}

func TestWorkoutHooks(t *testing.T) {
	origNotify, origPlay := notify, playSound
	t.Cleanup(func() { notify, playSound = origNotify, origPlay })

	var titles, played []string

	notify = func(title, _ string) error {
		titles = append(titles, title)
		return errors.New("no notification daemon")
	}

	playSound = func(path string) error {
		played = append(played, path)
		return errors.New("no audio device")
	}

	cfg := &config.Config{}
	cfg.Session.Notify = true
	cfg.Session.Sound = "/tmp/gong.wav"
	cfg.Session.Cmd = `echo "unterminated`

	err := workoutHooks(cfg)(models.HistoricalWorkout{Name: "Core Circuit"})

	assert.Equal(t, []string{"Workout complete"}, titles)
	assert.Equal(t, []string{"/tmp/gong.wav"}, played)
	assert.ErrorIs(t, err, errNotify)
	assert.ErrorIs(t, err, errSound)
	assert.ErrorIs(t, err, errSessionCmd)

	titles, played = nil, nil
	cfg.Session.Notify = false
	cfg.Session.Sound = ""
	cfg.Session.Cmd = ""

	assert.NoError(t, workoutHooks(cfg)(models.HistoricalWorkout{}))
	assert.Empty(t, titles)
	assert.Empty(t, played)
}

func TestOpenSound(t *testing.T) {
	dir := t.TempDir()

	t.Run("unsupported extension", func(t *testing.T) {
		_, _, err := openSound(filepath.Join(dir, "bell.aiff"))
		assert.ErrorIs(t, err, errUnsupportedSound)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := openSound(filepath.Join(dir, "bell.ogg"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("wav", func(t *testing.T) {
		path := filepath.Join(dir, "Bell.WAV")
		format := beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}

		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, wav.Encode(f, beep.Silence(4410), format))
		require.NoError(t, f.Close())

		stream, got, err := openSound(path)
		require.NoError(t, err)

		defer stream.Close()

		assert.Equal(t, format.SampleRate, got.SampleRate)
		assert.Equal(t, 4410, stream.Len())
	})

	t.Run("not audio", func(t *testing.T) {
		path := filepath.Join(dir, "notes.flac")
		require.NoError(t, os.WriteFile(path, []byte("just text"), 0o600))

		_, _, err := openSound(path)
		assert.Error(t, err)
	})
}

func TestDelHistory(t *testing.T) {
	st := newStore(t, store.NewMemory(0))
	history := seedHistory(t, st, "first", "second", "third")

	var out bytes.Buffer

	err := delHistory(
		st,
		[]string{history[0].ID},
		false,
		strings.NewReader("\n"),
		&out,
	)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "third")
	assert.Contains(t, out.String(), "deleted permanently")
	assert.Len(t, st.History(), 2)

	err = delHistory(st, []string{"nope", history[1].ID}, true, nil, &out)
	assert.ErrorIs(t, err, metrics.ErrUnknownRecord)
	assert.Len(t, st.History(), 1)

	assert.ErrorIs(t, delHistory(st, nil, true, nil, &out), errMissingArg)
}

func TestDelGoals(t *testing.T) {
	st := newStore(t, store.NewMemory(0))

	g, err := st.AddGoal(models.Goal{Name: "Bench press", Target: "100kg", Current: "80kg"})
	require.NoError(t, err)

	var out bytes.Buffer

	require.NoError(t, delGoals(st, []string{g.ID}, true, nil, &out))
	assert.Empty(t, st.Goals())
}

func TestAdjustRecovery(t *testing.T) {
	st := newStore(t, store.NewMemory(0))

	var out bytes.Buffer

	require.NoError(t, adjustRecovery(st, "readiness", 5, 1, &out))
	assert.Equal(t, 73, st.Recovery().ReadinessScore)

	require.NoError(t, adjustRecovery(st, "readiness", 10, 1, &out))
	assert.Equal(t, models.High, st.Recovery().RecommendedIntensity)
	assert.Contains(t, out.String(), "Readiness 83")

	require.NoError(t, adjustRecovery(st, "sleep", 100, -1, &out))
	assert.Equal(t, 0, st.Recovery().SleepQuality)

	assert.Error(t, adjustRecovery(st, "mood", 5, 1, &out))
	assert.ErrorIs(t, adjustRecovery(st, "", 5, 1, &out), errMissingArg)
}

func TestGoalCommands(t *testing.T) {
	st := newStore(t, store.NewMemory(0))

	var out bytes.Buffer

	require.NoError(t, addGoal(st, models.Goal{
		Name:     "Bench press",
		Target:   "100kg",
		Current:  "80kg",
		Category: "Strength",
	}, &out))

	goals := st.Goals()
	require.Len(t, goals, 1)
	assert.Equal(t, 80, goals[0].Progress)

	out.Reset()

	require.NoError(t, updateGoal(st, goals[0].ID, "90kg", &out))
	assert.Equal(t, 90, st.Goals()[0].Progress)
	assert.Contains(t, out.String(), "Bench press is 90% complete")

	assert.ErrorIs(t, updateGoal(st, "nope", "90kg", &out), metrics.ErrUnknownRecord)
	assert.ErrorIs(t, updateGoal(st, "", "90kg", &out), errMissingArg)
}

func TestDayStatus(t *testing.T) {
	st := newStore(t, store.NewMemory(0))

	var out bytes.Buffer

	require.NoError(t, dayStatus(st, "140", &out))
	assert.Contains(t, out.String(), "Day status for 2026-03-14 set to 100")

	out.Reset()

	require.NoError(t, dayStatus(st, "", &out))
	assert.Contains(t, out.String(), "2026-03-14")
	assert.Contains(t, out.String(), "100%")

	assert.ErrorIs(t, dayStatus(st, "lots", &out), errInvalidArg)
}

func TestNotDurableWritesAreWarnings(t *testing.T) {
	kv := &testutil.FailingKV{SaveErr: errors.New("read-only filesystem")}
	st := newStore(t, kv)

	var out bytes.Buffer

	require.NoError(t, dayStatus(st, "50", &out))
	require.NoError(t, adjustRecovery(st, "muscle", 5, 1, &out))

	assert.Contains(t, out.String(), "not")
	assert.Equal(t, 70, st.Recovery().MuscleRecovery)
}

func TestMigrate(t *testing.T) {
	src := store.NewMemory(0)
	dst := store.NewMemory(0)

	st := newStore(t, src)
	seedHistory(t, st, "Leg Day")

	var out bytes.Buffer

	require.NoError(t, migrate(src, dst, &out))
	assert.Contains(t, out.String(), store.DashboardKey)

	moved := newStore(t, dst)
	require.Len(t, moved.History(), 1)
	assert.Equal(t, "Leg Day", moved.History()[0].Name)
}

func TestPrintTables(t *testing.T) {
	var out bytes.Buffer

	printHistoryTable(&out, nil)
	assert.Contains(t, out.String(), noHistoryMsg)

	out.Reset()

	printHistoryTable(&out, []models.HistoricalWorkout{
		{ID: "1", Name: "Leg Day", Date: "2026-03-14", Duration: "45 min", Intensity: models.High},
		{ID: "2", Name: "Core", Date: "2026-03-13", Duration: "15 min", Intensity: models.Low},
	})
	assert.Contains(t, out.String(), "Leg Day")
	assert.Contains(t, out.String(), "2 workouts")
	assert.Contains(t, out.String(), "60 min")

	out.Reset()

	templates, err := static.Embedded()
	require.NoError(t, err)

	printTemplatesTable(&out, templates)
	assert.Contains(t, out.String(), "HIIT Blast")

	out.Reset()

	printRecovery(&out, metrics.DefaultDashboard().Recovery)
	assert.Contains(t, out.String(), "Recommended intensity: Medium")
}

func TestDashboardReportsLiveWorkout(t *testing.T) {
	st := newStore(t, store.NewMemory(0))
	mgr := session.NewManager(st)

	t.Cleanup(mgr.Dispose)

	_, err := mgr.Start(models.Template{Name: "Core Circuit", Duration: "15"})
	require.NoError(t, err)

	get := func(srv http.Handler, path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		return rec
	}

	live := newDashboard(st, mgr)

	rec := get(live, "/api/session")
	require.Equal(t, http.StatusOK, rec.Code)

	var view session.View

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "Core Circuit", view.Metadata.Name)
	assert.Equal(t, "15 min", view.Metadata.Duration)

	rec = get(live, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")

	assert.Equal(t, http.StatusNotFound, get(newDashboard(st, nil), "/api/session").Code)
}

func TestServeInBackgroundStops(t *testing.T) {
	st := newStore(t, store.NewMemory(0))

	stop := serveInBackground(newDashboard(st, nil), "127.0.0.1:0")

	done := make(chan struct{})

	go func() {
		stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("dashboard did not stop")
	}
}

func TestProgressBar(t *testing.T) {
	pterm.DisableColor()

	testCases := []struct {
		percent int
		filled  int
		label   string
	}{
		{percent: 0, filled: 0, label: "  0%"},
		{percent: 50, filled: 10, label: " 50%"},
		{percent: 100, filled: 20, label: "100%"},
		{percent: 130, filled: 20, label: "100%"},
		{percent: -5, filled: 0, label: "  0%"},
	}

	for _, tc := range testCases {
		got := progressBar(tc.percent)

		assert.Equal(t, tc.filled, strings.Count(got, "█"), tc.percent)
		assert.True(t, strings.HasSuffix(got, tc.label), got)
	}
}
