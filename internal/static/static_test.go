package static

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitdeck/fitdeck/internal/duration"
	"github.com/fitdeck/fitdeck/internal/models"
)

func TestEmbeddedCatalog(t *testing.T) {
	templates, err := Embedded()
	require.NoError(t, err)
	require.NotEmpty(t, templates)

	labels := models.DefaultIntensityMap()

	for _, tmpl := range templates {
		t.Run(tmpl.Name, func(t *testing.T) {
			assert.NotEmpty(t, tmpl.Name)

			_, err := duration.Parse(tmpl.Duration)
			assert.NoError(t, err)

			_, ok := labels.Resolve(tmpl.Level)
			assert.True(t, ok, "level %q has no intensity", tmpl.Level)

			for _, e := range tmpl.Details.Exercises {
				assert.NotEmpty(t, e.Name)
				assert.NotEmpty(t, e.Duration)
			}
		})
	}
}

func TestInstallKeepsUserEdits(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Install(dir))

	path := filepath.Join(dir, TemplatesFile)
	assert.FileExists(t, path)

	custom := []byte("- name: Mine\n  duration: 10 min\n  level: Beginner\n")
	require.NoError(t, os.WriteFile(path, custom, 0o600))

	require.NoError(t, Install(dir))

	templates, err := LoadTemplates(dir)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "Mine", templates[0].Name)
}

func TestLoadTemplatesFallsBackToEmbedded(t *testing.T) {
	templates, err := LoadTemplates(t.TempDir())
	require.NoError(t, err)

	embedded, err := Embedded()
	require.NoError(t, err)

	assert.Equal(t, embedded, templates)
}

func TestParseTemplatesMalformed(t *testing.T) {
	_, err := ParseTemplates([]byte("name: [unclosed"))
	assert.Error(t, err)
}

func TestSortTemplatesNaturalOrder(t *testing.T) {
	templates := []models.Template{
		{Name: "Leg Day 10"},
		{Name: "Core Circuit"},
		{Name: "Leg Day 2"},
	}

	SortTemplates(templates)

	var names []string
	for _, tmpl := range templates {
		names = append(names, tmpl.Name)
	}

	assert.Equal(t, []string{"Core Circuit", "Leg Day 2", "Leg Day 10"}, names)
}

func TestFind(t *testing.T) {
	templates, err := Embedded()
	require.NoError(t, err)

	got, ok := Find(templates, "hiit blast")
	require.True(t, ok)
	assert.Equal(t, "HIIT Blast", got.Name)

	_, ok = Find(templates, "nope")
	assert.False(t, ok)
}
