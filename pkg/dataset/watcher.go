package dataset

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MovieMaker93/landscape2/pkg/catalog"
)

// reloadDelay coalesces the burst of events editors emit when they
// replace a file.
const reloadDelay = 200 * time.Millisecond

// Watcher reloads the dataset when its file changes on disk. Each
// successful reload produces a fresh catalog snapshot (copy-on-write);
// the previous snapshot stays valid for anything still reading it. A
// reload that fails validation keeps the old snapshot and reports the
// error instead.
type Watcher struct {
	path     string
	notifier *fsnotify.Watcher
	done     chan struct{}
}

// Watch starts watching the dataset file. onReload receives each new
// catalog snapshot; onError receives reload failures.
func Watch(path string, onReload func(*catalog.Catalog), onError func(error)) (*Watcher, error) {
	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory, not the file: editors often rename a temp file
	// over the original, which drops a watch placed on the file itself.
	dir := filepath.Dir(path)
	if err := notifier.Add(dir); err != nil {
		notifier.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{
		path:     path,
		notifier: notifier,
		done:     make(chan struct{}),
	}
	go w.run(onReload, onError)
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.notifier.Close()
}

func (w *Watcher) run(onReload func(*catalog.Catalog), onError func(error)) {
	var timer *time.Timer
	var pending <-chan time.Time

	target := filepath.Clean(w.path)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.notifier.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDelay)
			} else {
				timer.Reset(reloadDelay)
			}
			pending = timer.C
		case <-pending:
			pending = nil
			cat, err := Load(w.path)
			if err != nil {
				onError(err)
				continue
			}
			onReload(cat)
		case err, ok := <-w.notifier.Errors:
			if !ok {
				return
			}
			onError(err)
		}
	}
}
