// Package static embeds the workout template catalog and installs a
// user-editable copy of it in the data directory
package static

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/maruel/natural"
	"gopkg.in/yaml.v3"

	"github.com/fitdeck/fitdeck/internal/models"
	"github.com/fitdeck/fitdeck/internal/osutil"
)

const (
	filesDir = "files"

	// TemplatesFile is the catalog's file name.
	TemplatesFile = "templates.yml"
)

//go:embed files/*
var embeddedFiles embed.FS

// Install copies the embedded files into dataDir. Files that already exist
// are left alone so that user edits survive.
func Install(dataDir string) error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := embeddedFiles.ReadFile(path)
			if err != nil {
				return err
			}

			// embed paths always use forward slashes
			stripped := strings.TrimPrefix(path, filesDir+"/")

			destPath := filepath.Join(dataDir, filepath.FromSlash(stripped))

			if _, err := os.Stat(destPath); errors.Is(err, os.ErrNotExist) {
				err = os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission)
				if err != nil {
					return err
				}

				if err := os.WriteFile(destPath, b, osutil.FilePermission); err != nil {
					return err
				}
			}

			return nil
		},
	)
}

// Embedded returns the built-in catalog.
func Embedded() ([]models.Template, error) {
	b, err := embeddedFiles.ReadFile(filesDir + "/" + TemplatesFile)
	if err != nil {
		return nil, err
	}

	return ParseTemplates(b)
}

// ParseTemplates decodes a YAML catalog.
func ParseTemplates(b []byte) ([]models.Template, error) {
	var templates []models.Template

	if err := yaml.Unmarshal(b, &templates); err != nil {
		return nil, fmt.Errorf("parsing template catalog: %w", err)
	}

	return templates, nil
}

// LoadTemplates reads the catalog installed in dataDir, falling back to the
// embedded copy when it is missing.
func LoadTemplates(dataDir string) ([]models.Template, error) {
	b, err := os.ReadFile(filepath.Join(dataDir, TemplatesFile))
	if errors.Is(err, os.ErrNotExist) {
		return Embedded()
	}

	if err != nil {
		return nil, err
	}

	return ParseTemplates(b)
}

// SortTemplates orders templates by name in natural order, so that
// "Leg Day 2" sorts before "Leg Day 10".
func SortTemplates(templates []models.Template) {
	slices.SortStableFunc(templates, func(a, b models.Template) int {
		switch {
		case natural.Less(a.Name, b.Name):
			return -1
		case natural.Less(b.Name, a.Name):
			return 1
		}

		return 0
	})
}

// Find returns the template whose name matches name, ignoring case.
func Find(templates []models.Template, name string) (models.Template, bool) {
	for _, t := range templates {
		if strings.EqualFold(strings.TrimSpace(t.Name), strings.TrimSpace(name)) {
			return t, true
		}
	}

	return models.Template{}, false
}
