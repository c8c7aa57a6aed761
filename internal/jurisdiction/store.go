package jurisdiction

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 500 * time.Millisecond

// Store serves the registry built from a profiles directory and replaces it
// wholesale when the directory changes. Readers always see a complete
// registry; a reload that fails leaves the previous one in place.
type Store struct {
	dir      string
	logger   *slog.Logger
	debounce time.Duration
	current  atomic.Pointer[Registry]

	// OnReload, when set, is called after every reload attempt.
	OnReload func(reg *Registry, err error)
}

// NewStore loads the built-in profiles and those under dir.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{dir: dir, logger: logger, debounce: defaultDebounce}
	reg, err := Load(dir)
	if err != nil {
		return nil, err
	}
	s.current.Store(reg)
	return s, nil
}

func (s *Store) Current() *Registry {
	return s.current.Load()
}

// Reload rebuilds the registry from disk and swaps it in.
func (s *Store) Reload() error {
	reg, err := Load(s.dir)
	if err == nil {
		s.current.Store(reg)
		s.logger.Info("jurisdiction profiles reloaded", "dir", s.dir, "profiles", len(reg.IDs()))
	} else {
		s.logger.Error("jurisdiction profile reload rejected, keeping previous profiles", "dir", s.dir, "error", err)
	}
	if s.OnReload != nil {
		s.OnReload(s.Current(), err)
	}
	return err
}

// Watch reloads the registry whenever a file under the profiles directory
// changes. Bursts of events are coalesced. It blocks until ctx is done.
func (s *Store) Watch(ctx context.Context) error {
	if s.dir == "" {
		<-ctx.Done()
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create profile watcher: %w", err)
	}
	defer w.Close()
	if err := s.addWatches(w, s.dir); err != nil {
		return fmt.Errorf("watch %s: %w", s.dir, err)
	}
	s.logger.Info("watching jurisdiction profiles", "dir", s.dir, "debounce", s.debounce)

	timer := time.NewTimer(s.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := s.addWatches(w, ev.Name); err != nil {
						s.logger.Warn("failed to watch new profile directory", "path", ev.Name, "error", err)
					}
				}
			}
			timer.Reset(s.debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("profile watcher error", "error", err)
		case <-timer.C:
			_ = s.Reload()
		}
	}
}

// addWatches watches root and every directory below it. fsnotify does not
// recurse on its own.
func (s *Store) addWatches(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil {
			return err
		}
		s.logger.Debug("watching profile directory", "path", path)
		return nil
	})
}
