package hue

import (
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/gopatchy/hue/pkg/log"
)

// Watcher flushes a [Cache] whenever a file in one of the watched rule
// directories changes, so edited rule files take effect on the next load.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	cache     *Cache
	done      chan struct{}
	flushed   chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// NewWatcher starts watching dirs. Directories that do not exist are
// skipped; at least one must exist.
func NewWatcher(cache *Cache, dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	watched := 0

	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			log.Debugf("[watch] skipping %s", dir)
			continue
		}

		err = fsw.Add(dir)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watching directory %s: %w", dir, err)
		}

		watched++
	}

	if watched == 0 {
		fsw.Close()
		return nil, fmt.Errorf("no rule directory to watch in %v: %w", dirs, ErrPatternFileNotFound)
	}

	w := &Watcher{
		fsWatcher: fsw,
		cache:     cache,
		done:      make(chan struct{}),
		flushed:   make(chan struct{}, 1),
	}

	go w.loop()

	return w, nil
}

// Flushed receives a value (coalesced, non-blocking) after each flush.
func (w *Watcher) Flushed() <-chan struct{} {
	return w.flushed
}

// Close stops watching. Later calls return the first call's result.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		w.closeErr = w.fsWatcher.Close()
	})

	return w.closeErr
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			log.Debugf("[watch] %s", event)
			w.cache.Flush()

			select {
			case w.flushed <- struct{}{}:
			default:
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}

			log.Debugf("[watch] error: %v", err)
		}
	}
}
