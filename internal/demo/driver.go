package demo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/gfx-examples/internal/engine/debug"
	"github.com/Faultbox/gfx-examples/internal/engine/input"
	"github.com/Faultbox/gfx-examples/internal/engine/renderer"
	"github.com/Faultbox/gfx-examples/internal/logger"
	"github.com/Faultbox/gfx-examples/pkg/math"
)

// Platform delivers window-system events once per frame.
type Platform interface {
	Update() bool
	Events() []input.Event
}

// Display is the window the frame is presented to.
type Display interface {
	SwapBuffers()
	GetSize() (int, int)
	SetTitle(title string)
}

// Device is the renderer state the driver manages around the app's draws.
type Device interface {
	Begin()
	Resize(width, height int)
	SetViewTransform(view, proj math.Mat4)
	SetViewRect(x, y, width, height int)
	End() renderer.FrameStats
	ReadPixels(width, height int) []byte
}

// Reloader rebuilds shader programs whose sources changed.
type Reloader interface {
	ReloadChanged() error
}

// Options wires a Driver to its collaborators.
type Options struct {
	Platform Platform
	Display  Display
	Device   Device
	Reloader Reloader // Optional

	Overlay       bool
	ScreenshotDir string
}

// Driver owns the frame loop for one App.
type Driver struct {
	app  App
	ctx  *Context
	opts Options

	overlay     *debug.Overlay
	screenshots *debug.ScreenshotCapture
	now         func() time.Time

	width, height int
	frames        int
	last          renderer.FrameStats
}

// NewDriver creates a driver running app with the given collaborators.
func NewDriver(app App, ctx *Context, opts Options) *Driver {
	return &Driver{
		app:         app,
		ctx:         ctx,
		opts:        opts,
		overlay:     debug.NewOverlay(app.Name(), app.Description(), opts.Overlay),
		screenshots: debug.NewScreenshotCapture(opts.ScreenshotDir, app.Name()),
		now:         time.Now,
	}
}

// Frames returns how many frames have been presented.
func (d *Driver) Frames() int {
	return d.frames
}

// Run initializes the app and renders frames until the window is closed,
// Escape is pressed, or ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	if err := d.app.Init(d.ctx); err != nil {
		return fmt.Errorf("init %s: %w", d.app.Name(), err)
	}

	d.resize()
	d.opts.Display.SetTitle(d.overlay.Title())

	start := d.now()
	last := start

	logger.Info("starting frame loop",
		zap.String("demo", d.app.Name()),
		zap.Int("width", d.width),
		zap.Int("height", d.height),
	)

	for {
		select {
		case <-ctx.Done():
			logger.Info("frame loop cancelled", zap.Error(context.Cause(ctx)))
			return nil
		default:
		}

		if d.opts.Platform.Update() {
			logger.Info("window closed")
			return nil
		}
		if d.handleEvents() {
			return nil
		}

		d.reloadShaders()

		now := d.now()
		info := FrameInfo{
			Frame:     d.frames,
			Time:      float32(now.Sub(start).Seconds()),
			FrameTime: now.Sub(last),
			Width:     d.width,
			Height:    d.height,
		}
		last = now

		if err := d.frame(info); err != nil {
			return err
		}
	}
}

// Close releases the app's resources.
func (d *Driver) Close() {
	d.app.Close()
	logger.Info("demo closed",
		zap.String("demo", d.app.Name()),
		zap.Int("frames", d.frames),
	)
}

// handleEvents reacts to this frame's events and reports whether to quit.
func (d *Driver) handleEvents() bool {
	for _, e := range d.opts.Platform.Events() {
		switch e.Type {
		case input.EventQuit:
			return true
		case input.EventWindowResize:
			d.resize()
		case input.EventKeyDown:
			switch e.Key {
			case input.KeyEscape:
				logger.Info("escape pressed")
				return true
			case input.KeyF1:
				d.overlay.Toggle()
				d.opts.Display.SetTitle(d.overlay.Title())
			case input.KeyF12:
				d.screenshot()
			}
		}
	}
	return false
}

// resize picks up the drawable size, which differs from the window size on
// high-DPI displays.
func (d *Driver) resize() {
	d.width, d.height = d.opts.Display.GetSize()
	d.opts.Device.Resize(d.width, d.height)
}

func (d *Driver) reloadShaders() {
	if d.opts.Reloader == nil {
		return
	}
	if err := d.opts.Reloader.ReloadChanged(); err != nil {
		logger.Warn("shader reload failed", zap.Error(err))
	}
}

func (d *Driver) screenshot() {
	name, err := d.screenshots.Capture(d.opts.Device, d.width, d.height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}

func (d *Driver) frame(info FrameInfo) error {
	dev := d.opts.Device

	// Clears the view even when the app submits nothing.
	dev.Begin()

	view, proj := ViewProjection(d.app.Camera(), info.Width, info.Height)
	dev.SetViewTransform(view, proj)
	dev.SetViewRect(0, 0, info.Width, info.Height)

	if err := d.app.Frame(d.ctx, info); err != nil {
		return fmt.Errorf("frame %d: %w", info.Frame, err)
	}

	d.last = dev.End()
	d.opts.Display.SwapBuffers()
	d.frames++

	if d.overlay.Update(info.FrameTime) {
		d.refreshOverlay()
	}
	return nil
}

func (d *Driver) refreshOverlay() {
	status := []string{fmt.Sprintf("Draw calls: %d", d.last.DrawCalls)}
	if r, ok := d.app.(StatusReporter); ok {
		status = append(status, r.Status()...)
	}
	d.overlay.SetStatus(status...)

	if !d.overlay.Enabled() {
		return
	}
	d.opts.Display.SetTitle(d.overlay.Title())
	if logger.Enabled(zapcore.DebugLevel) {
		logger.Debug("overlay",
			zap.String("text", strings.Join(d.overlay.Lines(), "\n")),
			zap.Float64("fps", d.overlay.FPS()),
		)
	}
}
