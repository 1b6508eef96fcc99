package shader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/gfx-examples/internal/logger"
)

// Watcher reports shader programs whose source files changed on disk.
// Events are collected on a goroutine; Drain is called from the frame loop.
type Watcher struct {
	fsw     *fsnotify.Watcher
	changed chan string
	done    chan struct{}
}

// NewWatcher starts watching dir.
func NewWatcher(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &Watcher{
		fsw:     fsw,
		changed: make(chan string, 64),
		done:    make(chan struct{}),
	}
	go w.loop()

	logger.Info("watching shader sources", zap.String("dir", dir))
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			name, ok := programName(event.Name)
			if !ok {
				continue
			}
			select {
			case w.changed <- name:
			default:
				// Queue full; a reload is already pending.
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("shader watcher error", zap.Error(err))
		}
	}
}

// Drain returns the distinct program names changed since the last call.
func (w *Watcher) Drain() []string {
	var names []string
	seen := make(map[string]bool)
	for {
		select {
		case name := <-w.changed:
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		default:
			return names
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}

// programName maps a shader file path to its program name.
func programName(path string) (string, bool) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext != vertexExt && ext != fragmentExt {
		return "", false
	}
	name := strings.TrimSuffix(base, ext)
	return name, name != ""
}
