package dev

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vango-dev/htmlgen/internal/errors"
)

// ChangeType represents the type of file change.
type ChangeType int

const (
	ChangeDocument ChangeType = iota
	ChangeCSS
	ChangeAsset
)

// String returns the change type's name.
func (c ChangeType) String() string {
	switch c {
	case ChangeDocument:
		return "document"
	case ChangeCSS:
		return "css"
	default:
		return "asset"
	}
}

// Change represents a detected file change.
type Change struct {
	Path    string
	Type    ChangeType
	Removed bool
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the directories to watch, recursively.
	Paths []string

	// Ignore patterns to skip (globs, names or path segments).
	Ignore []string

	// Debounce is how long the watcher waits for further events before
	// reporting a batch.
	Debounce time.Duration

	// Logger receives watcher diagnostics. Nil uses slog.Default.
	Logger *slog.Logger
}

// DefaultIgnore contains default patterns to ignore.
var DefaultIgnore = []string{
	".git",
	"node_modules",
	"dist",
	"tmp",
	"*.tmp",
	"*.swp",
	"*~",
	".#*",
}

// Watcher reports file changes below a set of directories. Bursts of events
// are coalesced into one batch per debounce window.
type Watcher struct {
	config   WatcherConfig
	logger   *slog.Logger
	onChange func([]Change)
	mu       sync.Mutex
	running  bool
	stopCh   chan struct{}
	ready    chan struct{}
	once     sync.Once
}

// NewWatcher creates a new file watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Debounce == 0 {
		config.Debounce = 100 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		config: config,
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// OnChange sets the callback for batches of file changes.
func (w *Watcher) OnChange(fn func([]Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Ready is closed once all paths are being watched.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Start watches until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return errors.New("H042").Wrap(err)
	}
	defer fsw.Close()

	for _, p := range w.config.Paths {
		if err := w.addRecursive(fsw, p); err != nil {
			w.mu.Unlock()
			return errors.New("H042").WithDetail("Could not watch " + p).Wrap(err)
		}
	}

	w.running = true
	w.stopCh = make(chan struct{})
	stopCh := w.stopCh
	w.mu.Unlock()

	w.logger.Debug("watching for changes", "paths", w.config.Paths)
	w.once.Do(func() { close(w.ready) })

	pending := make(map[string]Change)
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.markStopped()
			return ctx.Err()

		case <-stopCh:
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				w.markStopped()
				return nil
			}
			change, ok := w.handleEvent(fsw, event)
			if !ok {
				continue
			}
			pending[change.Path] = change

			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.config.Debounce)
			fire = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				w.markStopped()
				return nil
			}
			w.logger.Warn("watcher error", "error", err)

		case <-fire:
			fire = nil
			w.flush(pending)
			pending = make(map[string]Change)
		}
	}
}

// handleEvent turns an fsnotify event into a Change. New directories are
// added to the watch list.
func (w *Watcher) handleEvent(fsw *fsnotify.Watcher, event fsnotify.Event) (Change, bool) {
	if event.Op == fsnotify.Chmod || w.shouldIgnore(event.Name) {
		return Change{}, false
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addRecursive(fsw, event.Name); err != nil {
				w.logger.Warn("could not watch new directory", "path", event.Name, "error", err)
			}
			return Change{}, false
		}
	}

	w.logger.Debug("file changed", "path", event.Name, "op", event.Op.String())
	return Change{
		Path:    event.Name,
		Type:    classifyChange(event.Name),
		Removed: event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename),
	}, true
}

func (w *Watcher) flush(pending map[string]Change) {
	if len(pending) == 0 {
		return
	}
	w.mu.Lock()
	callback := w.onChange
	w.mu.Unlock()
	if callback == nil {
		return
	}

	changes := make([]Change, 0, len(pending))
	for _, c := range pending {
		changes = append(changes, c)
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })
	callback(changes)
}

// addRecursive watches root and every directory below it that is not ignored.
func (w *Watcher) addRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && w.shouldIgnore(p) {
			return filepath.SkipDir
		}
		return fsw.Add(p)
	})
}

func (w *Watcher) markStopped() {
	w.mu.Lock()
	w.running = false
	w.mu.Unlock()
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// IsRunning returns whether the watcher is running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// shouldIgnore checks if a path should be ignored. Patterns are matched
// against the path relative to the watched directory that contains it.
func (w *Watcher) shouldIgnore(fullPath string) bool {
	rel := w.relative(fullPath)
	name := filepath.Base(rel)
	normalized := filepath.ToSlash(rel)

	for _, pattern := range w.config.Ignore {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		if name == pattern {
			return true
		}

		hasPathSep := strings.Contains(pattern, "/") || strings.Contains(pattern, "\\")
		hasGlob := strings.ContainsAny(pattern, "*?[")

		if hasGlob {
			if hasPathSep {
				if matched, _ := path.Match(filepath.ToSlash(pattern), normalized); matched {
					return true
				}
			} else if matched, _ := filepath.Match(pattern, name); matched {
				return true
			}
			continue
		}

		if pathHasSegment(normalized, pattern) {
			return true
		}
	}

	return false
}

func (w *Watcher) relative(p string) string {
	for _, root := range w.config.Paths {
		rel, err := filepath.Rel(root, p)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		return rel
	}
	return p
}

func pathHasSegment(path, segment string) bool {
	if segment == "" {
		return false
	}
	for _, part := range strings.Split(path, "/") {
		if part == segment {
			return true
		}
	}
	return false
}

// classifyChange determines the type of change based on file extension.
func classifyChange(path string) ChangeType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return ChangeDocument
	case ".css":
		return ChangeCSS
	default:
		return ChangeAsset
	}
}
