// Package watch re-runs a callback when rule files change on disk.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("gavel.watch")

// Config contains configuration for the watcher.
type Config struct {
	// Path is the file or directory to watch. Directories are watched
	// recursively; hidden subdirectories are skipped.
	Path string

	// Debounce is the quiet period after the last write to a file before
	// onChange fires for it.
	Debounce time.Duration

	// Extensions is the list of file extensions to report (e.g. ".rules").
	Extensions []string
}

// Watcher reports changed rule files. Each file is debounced on its own, so a
// burst of writes to one file yields one callback while edits to two files
// yield two.
type Watcher struct {
	watcher  *fsnotify.Watcher
	config   Config
	debounce *Debouncer

	mu      sync.Mutex
	running bool
}

func New(config Config) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watcher:  watcher,
		config:   config,
		debounce: NewDebouncer(config.Debounce),
	}, nil
}

// Watch blocks until ctx is cancelled, calling onChange with the path of every
// created or modified file that matches the configured extensions. Callbacks
// run on timer goroutines.
func (w *Watcher) Watch(ctx context.Context, onChange func(path string)) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.debounce.Stop()
		w.watcher.Close()
	}()

	if err := w.addPath(w.config.Path); err != nil {
		return fmt.Errorf("failed to watch path: %w", err)
	}

	log.Infof("watching %s (debounce %s)", w.config.Path, w.config.Debounce)

	for {
		select {
		case <-ctx.Done():
			log.Info("watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Has(fsnotify.Create) {
				w.watchNewDirectory(event.Name)
			}

			if !w.shouldProcessEvent(event) {
				continue
			}

			log.Debugf("%s %s", event.Op, event.Name)

			path := event.Name
			w.debounce.Trigger(path, func() {
				onChange(path)
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			log.Errorf("watch error: %s", err)
		}
	}
}

func (w *Watcher) addPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return w.addDirectory(path)
	}
	// Editors often replace files instead of writing them in place, which
	// drops a watch on the file itself. Watch its directory instead.
	return w.watcher.Add(filepath.Dir(path))
}

func (w *Watcher) addDirectory(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(filepath.Base(path), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %q: %w", path, err)
		}
		log.Debugf("watching directory %s", path)
		return nil
	})
}

func (w *Watcher) watchNewDirectory(path string) {
	if isDir, _ := isDirectory(path); !isDir || !w.watchingDirectory() {
		return
	}
	if err := w.addDirectory(path); err != nil {
		log.Errorf("%s", err)
	}
}

func (w *Watcher) watchingDirectory() bool {
	isDir, _ := isDirectory(w.config.Path)
	return isDir
}

func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}

	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}

	// A single watched file only reports itself, not its siblings.
	if !w.watchingDirectory() && filepath.Clean(event.Name) != filepath.Clean(w.config.Path) {
		return false
	}

	return w.hasValidExtension(strings.ToLower(filepath.Ext(event.Name)))
}

func (w *Watcher) hasValidExtension(ext string) bool {
	if len(w.config.Extensions) == 0 {
		return true
	}
	for _, validExt := range w.config.Extensions {
		if ext == strings.ToLower(validExt) {
			return true
		}
	}
	return false
}

func isDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
