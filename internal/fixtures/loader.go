// Package fixtures reads the static JSON collections the application treats
// as its external data source.
package fixtures

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var ErrCollectionNotFound = errors.New("fixture collection not found")

// LoadError reports a fixture that could not be fetched or decoded. The
// affected store keeps its previous snapshot; there is no retry.
type LoadError struct {
	Collection string
	Err        error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading fixture %q: %v", e.Collection, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Loader reads named collections from a directory of `<name>.json` files.
type Loader struct {
	dir string
}

func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

func (l *Loader) Path(collection string) string {
	return filepath.Join(l.dir, collection+".json")
}

func (l *Loader) Dir() string {
	return l.dir
}

// Load decodes the named collection into out, which must be a pointer to a
// slice.
func (l *Loader) Load(collection string, out any) error {
	raw, err := os.ReadFile(l.Path(collection))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &LoadError{Collection: collection, Err: ErrCollectionNotFound}
		}

		return &LoadError{Collection: collection, Err: err}
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return &LoadError{Collection: collection, Err: err}
	}

	return nil
}

// LoadCollection is the typed convenience wrapper around Load.
func LoadCollection[T any](l *Loader, collection string) ([]T, error) {
	var items []T
	if err := l.Load(collection, &items); err != nil {
		return nil, err
	}

	return items, nil
}
