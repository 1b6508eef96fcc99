package shader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/gfx-examples/internal/engine/shader/shaders"
	"github.com/Faultbox/gfx-examples/internal/logger"
)

// ErrProgramNotFound is returned when a program's sources are missing.
var ErrProgramNotFound = errors.New("shader program not found")

const (
	vertexExt   = ".vert"
	fragmentExt = ".frag"
)

// Library loads vertex/fragment pairs by name: "cubes" reads cubes.vert and
// cubes.frag. Programs are loaded once and shared.
type Library struct {
	sources  fs.FS
	programs map[string]*Program
	watcher  *Watcher

	compile func(vertexSrc, fragmentSrc string) (uint32, error)
	release func(id uint32)
}

// NewLibrary returns a library reading from the embedded shader sources.
func NewLibrary() *Library {
	return newLibrary(shaders.FS)
}

// NewDirLibrary returns a library reading from dir on disk. With watch set
// it also watches dir and reloads programs whose files change.
func NewDirLibrary(dir string, watch bool) (*Library, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("shader dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("shader dir %s is not a directory", dir)
	}

	l := newLibrary(os.DirFS(dir))
	if watch {
		l.watcher, err = NewWatcher(dir)
		if err != nil {
			return nil, err
		}
	}
	return l, nil
}

func newLibrary(sources fs.FS) *Library {
	return &Library{
		sources:  sources,
		programs: make(map[string]*Program),
		compile:  CompileProgram,
		release:  deleteProgram,
	}
}

// Load returns the program called name, compiling it on first use.
func (l *Library) Load(name string) (*Program, error) {
	if p, ok := l.programs[name]; ok {
		return p, nil
	}

	id, err := l.build(name)
	if err != nil {
		return nil, err
	}

	p := &Program{name: name, id: id, uniforms: make(map[string]int32)}
	l.programs[name] = p
	logger.Debug("shader program loaded", zap.String("name", name), zap.Uint32("program", id))
	return p, nil
}

// Reload recompiles a loaded program. On failure the previous program stays
// in use and the error is returned.
func (l *Library) Reload(name string) error {
	p, ok := l.programs[name]
	if !ok {
		return fmt.Errorf("%w: %s is not loaded", ErrProgramNotFound, name)
	}

	id, err := l.build(name)
	if err != nil {
		return err
	}

	l.release(p.swap(id))
	logger.Info("shader program reloaded", zap.String("name", name), zap.Uint32("program", id))
	return nil
}

// ReloadChanged reloads every loaded program whose sources changed since the
// last call. It never blocks. Without a watcher it does nothing.
func (l *Library) ReloadChanged() error {
	if l.watcher == nil {
		return nil
	}

	var errs error
	for _, name := range l.watcher.Drain() {
		if _, ok := l.programs[name]; !ok {
			continue
		}
		if err := l.Reload(name); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("reload %s: %w", name, err))
		}
	}
	return errs
}

// Close deletes every program and stops the watcher.
func (l *Library) Close() error {
	for name, p := range l.programs {
		l.release(p.id)
		delete(l.programs, name)
	}
	if l.watcher != nil {
		return l.watcher.Close()
	}
	return nil
}

// build reads and compiles the sources for name.
func (l *Library) build(name string) (uint32, error) {
	vert, frag, err := l.readSources(name)
	if err != nil {
		return 0, err
	}

	id, err := l.compile(vert, frag)
	if err != nil {
		return 0, fmt.Errorf("compile %s: %w", name, err)
	}
	return id, nil
}

// readSources returns the vertex and fragment source for name.
func (l *Library) readSources(name string) (string, string, error) {
	vert, err := fs.ReadFile(l.sources, name+vertexExt)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s%s: %v", ErrProgramNotFound, name, vertexExt, err)
	}
	frag, err := fs.ReadFile(l.sources, name+fragmentExt)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s%s: %v", ErrProgramNotFound, name, fragmentExt, err)
	}
	return string(vert), string(frag), nil
}
