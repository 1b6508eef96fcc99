// Package debug provides debug visualization utilities.
package debug

import (
	"fmt"
	"strings"
	"time"
)

// TitlePrefix prefixes every overlay title line.
const TitlePrefix = "gfx-examples/"

// RefreshInterval is how often the overlay recomputes its averaged stats.
const RefreshInterval = time.Second

// Overlay holds the debug text shown for a running demo: its name, a
// description, the frame time and any status lines the demo reports.
type Overlay struct {
	name        string
	description string
	enabled     bool

	frameTime time.Duration // last frame
	avgFrame  time.Duration // averaged over the last interval
	fps       float64

	accum  time.Duration
	frames int

	status []string
}

// NewOverlay creates an overlay for the named demo.
func NewOverlay(name, description string, enabled bool) *Overlay {
	return &Overlay{
		name:        name,
		description: description,
		enabled:     enabled,
	}
}

// Enabled reports whether the overlay is shown.
func (o *Overlay) Enabled() bool {
	return o.enabled
}

// Toggle flips overlay visibility.
func (o *Overlay) Toggle() {
	o.enabled = !o.enabled
}

// Update records one frame. It returns true when a refresh interval has
// elapsed and the averaged stats were recomputed.
func (o *Overlay) Update(frameTime time.Duration) bool {
	o.frameTime = frameTime
	o.accum += frameTime
	o.frames++

	if o.accum < RefreshInterval {
		return false
	}

	o.avgFrame = o.accum / time.Duration(o.frames)
	o.fps = float64(o.frames) / o.accum.Seconds()
	o.accum = 0
	o.frames = 0
	return true
}

// SetStatus replaces the demo-specific status lines.
func (o *Overlay) SetStatus(lines ...string) {
	o.status = append(o.status[:0], lines...)
}

// FPS returns the frame rate averaged over the last refresh interval.
func (o *Overlay) FPS() float64 {
	return o.fps
}

// FrameTime returns the most recent frame time, or the interval average once
// one is available.
func (o *Overlay) FrameTime() time.Duration {
	if o.avgFrame > 0 {
		return o.avgFrame
	}
	return o.frameTime
}

// Lines returns the overlay text, one entry per line.
func (o *Overlay) Lines() []string {
	lines := make([]string, 0, 3+len(o.status))
	lines = append(lines,
		TitlePrefix+o.name,
		"Description: "+o.description,
		fmt.Sprintf("Frame: %7.3f[ms]", float64(o.FrameTime())/float64(time.Millisecond)),
	)
	return append(lines, o.status...)
}

// Title returns a single-line summary suitable for a window title.
func (o *Overlay) Title() string {
	if !o.enabled {
		return TitlePrefix + o.name
	}
	parts := []string{
		TitlePrefix + o.name,
		fmt.Sprintf("%.3f ms", float64(o.FrameTime())/float64(time.Millisecond)),
		fmt.Sprintf("%.0f fps", o.fps),
	}
	parts = append(parts, o.status...)
	return strings.Join(parts, " | ")
}
