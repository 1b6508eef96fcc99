// Package animator animates a random window of a mesh's vertices and pushes
// only the touched range to a dynamic vertex buffer every frame.
package animator

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/gfx-examples/internal/logger"
	"github.com/Faultbox/gfx-examples/pkg/geometry"
)

// DefaultDuration is the length of one animation cycle in seconds.
const DefaultDuration = 1.0

var (
	// ErrUpdateCount is returned for a non-positive update count.
	ErrUpdateCount = errors.New("animator: update count must be positive")
	// ErrEmptyMesh is returned when there are no vertices to animate.
	ErrEmptyMesh = errors.New("animator: mesh has no vertices")
)

// Uploader receives a contiguous run of vertices starting at first.
type Uploader interface {
	UpdateVertices(first int, vertices []geometry.FlatVertex) error
}

// Config holds animation parameters.
type Config struct {
	UpdateCount int     // Vertices picked per cycle
	Duration    float32 // Cycle length in seconds
}

// DefaultConfig returns the parameters for a mesh of the given vertex count:
// one eighth of the vertices over a one second cycle.
func DefaultConfig(vertexCount int) Config {
	k := vertexCount / 8
	if k < 1 {
		k = 1
	}
	return Config{
		UpdateCount: k,
		Duration:    DefaultDuration,
	}
}

// Stats counts what the animator has done so far.
type Stats struct {
	Cycles           int
	Uploads          int
	UploadedVertices int
	SkippedUploads   int // Frames whose window had zero length
}

// Animator drives the select/animate cycle for one mesh.
// It is not safe for concurrent use; the frame loop owns it.
type Animator struct {
	config Config

	base    []geometry.FlatVertex // Never written after construction
	scratch []geometry.FlatVertex // Staging for the uploaded range

	source   IndexSource
	uploader Uploader

	window    Window
	start     float32
	animating bool

	stats Stats
}

// New creates an animator over a private copy of base.
func New(base []geometry.FlatVertex, uploader Uploader, source IndexSource, cfg Config) (*Animator, error) {
	if len(base) == 0 {
		return nil, ErrEmptyMesh
	}
	if cfg.UpdateCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrUpdateCount, cfg.UpdateCount)
	}
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDuration
	}

	a := &Animator{
		config:   cfg,
		base:     append([]geometry.FlatVertex(nil), base...),
		scratch:  make([]geometry.FlatVertex, len(base)),
		source:   source,
		uploader: uploader,
		window:   Window{Indices: make([]int, 0, cfg.UpdateCount)},
	}
	return a, nil
}

// Update advances the animation to time now (seconds).
//
// When idle it picks a new window and snapshots the base vertices covering
// it; nothing is uploaded on that frame. While animating it interpolates
// every selected vertex toward its outward offset and uploads the window.
// Once more than Duration has passed the animator goes idle without a final
// upload, leaving the last interpolated values in place.
func (a *Animator) Update(now float32) error {
	if !a.animating {
		a.begin(now)
		return nil
	}

	elapsed := now - a.start
	if elapsed > a.config.Duration {
		a.animating = false
		return nil
	}

	t := Ease(elapsed / a.config.Duration)
	lower := a.window.Lower
	for _, idx := range a.window.Indices {
		v := a.base[idx]
		p := v.Position()
		target := p.Add(p.Normalize())
		a.scratch[idx-lower] = v.WithPosition(p.Lerp(target, t))
	}

	if a.window.Empty() {
		a.stats.SkippedUploads++
		return nil
	}

	n := a.window.Len()
	if err := a.uploader.UpdateVertices(lower, a.scratch[:n]); err != nil {
		return fmt.Errorf("upload vertices [%d, %d): %w", lower, a.window.Upper, err)
	}
	a.stats.Uploads++
	a.stats.UploadedVertices += n
	return nil
}

// begin starts a new cycle at time now.
func (a *Animator) begin(now float32) {
	a.window.fill(a.source, a.config.UpdateCount, len(a.base))
	copy(a.scratch, a.base[a.window.Lower:a.window.Upper])

	a.start = now
	a.animating = true
	a.stats.Cycles++

	logger.Debug("animation cycle started",
		zap.Int("cycle", a.stats.Cycles),
		zap.Int("lower", a.window.Lower),
		zap.Int("upper", a.window.Upper),
	)
}

// Animating reports whether a cycle is in progress.
func (a *Animator) Animating() bool {
	return a.animating
}

// Window returns a copy of the current update window.
func (a *Animator) Window() Window {
	w := a.window
	w.Indices = append([]int(nil), a.window.Indices...)
	return w
}

// Stats returns the running counters.
func (a *Animator) Stats() Stats {
	return a.stats
}

// Config returns the effective configuration.
func (a *Animator) Config() Config {
	return a.config
}
