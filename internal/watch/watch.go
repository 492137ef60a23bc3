// ABOUTME: Manifest save watcher: debounced resync on pubspec writes
// ABOUTME: Watches the parent directory so atomic editor saves keep working

package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pubpal/pubpal/internal/log"
	"github.com/pubpal/pubpal/internal/manifest"
)

// Resyncer reconciles installed dependencies with the manifest.
type Resyncer interface {
	Resync(ctx context.Context) error
}

// DefaultDebounce is the save-burst settle window.
const DefaultDebounce = 500 * time.Millisecond

// ManifestWatcher triggers a debounced resync whenever the project
// manifest is saved. Independent of the suggestion engine; gated by the
// auto_resync setting at the call site.
type ManifestWatcher struct {
	root     string
	resync   Resyncer
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a watcher for the manifest under projectRoot.
// debounce <= 0 selects DefaultDebounce.
func New(projectRoot string, r Resyncer, debounce time.Duration) *ManifestWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &ManifestWatcher{root: projectRoot, resync: r, debounce: debounce}
}

// Run blocks watching for manifest saves until ctx is cancelled. Editors
// replace the file on save, so the parent directory is watched and events
// are filtered by name.
func (w *ManifestWatcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(w.root); err != nil {
		return err
	}

	target := manifest.FileName
	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return ctx.Err()
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.arm(ctx)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn("manifest watcher: %v", err)
		}
	}
}

// arm restarts the debounce window; a burst of saves collapses into one
// resync.
func (w *ManifestWatcher) arm(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		if ctx.Err() != nil {
			return
		}
		log.Debug("manifest saved, resyncing")
		if err := w.resync.Resync(ctx); err != nil {
			log.Error("auto resync failed: %v", err)
		}
	})
}

func (w *ManifestWatcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}
