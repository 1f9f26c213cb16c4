// Package watch reports changes to the files in the config directory so the
// running TUI can reload its shortcuts.
package watch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/chatter/shortkey/internal/ignore"
	"github.com/chatter/shortkey/internal/logger"
)

// ChangedMsg is sent to the TUI when a config file changed.
type ChangedMsg struct {
	Path string
}

// Watcher watches a config directory tree.
type Watcher struct {
	watcher  *fsnotify.Watcher
	filtered chan fsnotify.Event
	done     chan struct{}
	log      *logger.Logger
	ignore   *ignore.Matcher
}

// New starts watching dir and its non-ignored subdirectories.
func New(dir string, log *logger.Logger) (*Watcher, error) {
	log.Debug("creating config watcher", "dir", dir)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Error("failed to create fsnotify watcher", "err", err)

		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		log.Warn("failed to watch config directory", "dir", dir, "err", err)
		watcher.Close()

		return nil, fmt.Errorf("watching config directory: %w", err)
	}

	ignoreMatcher := ignore.NewMatcher(dir)

	watchCount := 1
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() || path == dir {
			return nil
		}

		if ignoreMatcher.Match(path, true) {
			return filepath.SkipDir
		}

		if err := watcher.Add(path); err == nil {
			watchCount++
		}

		return nil
	})

	log.Info("config watcher started", "watched_dirs", watchCount)

	self := &Watcher{
		watcher:  watcher,
		filtered: make(chan fsnotify.Event, 1),
		done:     make(chan struct{}),
		log:      log,
		ignore:   ignoreMatcher,
	}

	go self.filterEvents()

	return self, nil
}

// Events returns the channel of filtered fsnotify events. It is closed when
// the watcher stops.
func (w *Watcher) Events() <-chan fsnotify.Event {
	return w.filtered
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)

	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("closing fsnotify watcher: %w", err)
	}

	return nil
}

func (w *Watcher) filterEvents() {
	defer close(w.filtered)

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			w.trackNewDirectory(event)

			if !w.shouldForward(event) {
				continue
			}

			w.log.Debug("config change detected", "path", event.Name, "op", event.Op.String())

			// A pending event already triggers a reload; drop the rest.
			select {
			case w.filtered <- event:
			default:
				w.log.Debug("config event dropped (pending)", "path", event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

			if err != nil {
				w.log.Warn("config watcher error", "err", err)
			}
		}
	}
}

// trackNewDirectory starts watching directories created after startup.
func (w *Watcher) trackNewDirectory(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil || !info.IsDir() {
		return
	}

	if w.ignore.Match(event.Name, true) {
		return
	}

	if err := w.watcher.Add(event.Name); err != nil {
		w.log.Debug("failed to watch new directory", "path", event.Name, "err", err)
	}
}

// shouldForward reports whether an event should be sent to consumers.
// Edits to ignore files only refresh the matcher.
func (w *Watcher) shouldForward(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	switch filepath.Base(event.Name) {
	case ".gitignore", ".shortkeyignore":
		w.ignore.Forget()

		return false
	}

	return !w.ignore.Match(event.Name, false)
}
