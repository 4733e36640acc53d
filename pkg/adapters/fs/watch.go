package fs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/eegcleaner/pkg/core"
)

// Watch reports changes of log files under root until ctx is done.
// The returned channel is closed when the watcher stops.
func (s *Store) Watch(ctx context.Context, root string) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := addRecursive(watcher, root); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	events := make(chan core.Event)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer watcher.Close()
		return s.watchLoop(ctx, watcher, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("watcher panic", "error", err)
	}))

	return events, nil
}

func (s *Store) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, out chan<- core.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			s.logger.Debug("event received", "name", event.Name, "op", event.Op.String())

			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := addRecursive(watcher, event.Name); err != nil {
					s.logger.Warn("failed to watch new directory", "dir", event.Name, "error", err)
				}
				continue
			}

			eType := s.mapEventType(event)
			if eType == "" {
				continue
			}
			e := core.Event{Type: eType, Dir: filepath.Dir(event.Name), Timestamp: time.Now().Unix()}
			select {
			case out <- e:
			case <-ctx.Done():
				return nil
			}

		case wErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("fsnotify error", "error", wErr)
		}
	}
}

// mapEventType keeps only changes of the log file itself; temp files of an
// in-flight write are ignored.
func (s *Store) mapEventType(event fsnotify.Event) core.EventType {
	if filepath.Base(event.Name) != s.config.FileName {
		return ""
	}
	switch {
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		return core.EventWrite
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	}
	return ""
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
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
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
