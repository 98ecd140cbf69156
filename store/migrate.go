package store

import (
	"errors"
	"fmt"
)

// Migrate copies the given keys from src to dst. Keys missing from src are
// skipped. It returns the keys that were copied.
func Migrate(dst, src KV, keys ...string) ([]string, error) {
	var copied []string

	for _, key := range keys {
		v, err := src.Load(key)
		if errors.Is(err, ErrNotFound) {
			continue
		}

		if err != nil {
			return copied, fmt.Errorf("reading %s: %w", key, err)
		}

		if err := dst.Save(key, v); err != nil {
			return copied, fmt.Errorf("writing %s: %w", key, err)
		}

		copied = append(copied, key)
	}

	return copied, nil
}
