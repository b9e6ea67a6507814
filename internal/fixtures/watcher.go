package fixtures

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads collections when their fixture file changes on disk, so
// downstream joins recompute from the fresh snapshot.
type Watcher struct {
	loader  *Loader
	reloads map[string]func() error
	fsw     *fsnotify.Watcher
}

// NewWatcher registers one reload callback per collection name. Callbacks run
// on the watcher goroutine; a failed reload is logged and the previous
// snapshot stays in place.
func NewWatcher(loader *Loader, reloads map[string]func() error) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err = fsw.Add(loader.Dir()); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{
		loader:  loader,
		reloads: reloads,
		fsw:     fsw,
	}, nil
}

// Watch blocks until ctx is done.
func (w *Watcher) Watch(ctx context.Context) {
	defer w.fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			collection := strings.TrimSuffix(filepath.Base(event.Name), ".json")
			reload, known := w.reloads[collection]
			if !known {
				continue
			}

			if err := reload(); err != nil {
				zap.L().Warn("fixture reload failed",
					zap.String("collection", collection),
					zap.Error(err))
				continue
			}

			zap.L().Info("fixture reloaded", zap.String("collection", collection))
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			zap.L().Warn("fixture watcher error", zap.Error(err))
		}
	}
}
