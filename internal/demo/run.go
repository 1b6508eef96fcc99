package demo

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/gfx-examples/internal/config"
	"github.com/Faultbox/gfx-examples/internal/engine/debug"
	"github.com/Faultbox/gfx-examples/internal/engine/input"
	"github.com/Faultbox/gfx-examples/internal/engine/renderer"
	"github.com/Faultbox/gfx-examples/internal/engine/shader"
	"github.com/Faultbox/gfx-examples/internal/engine/window"
	"github.com/Faultbox/gfx-examples/internal/logger"
)

// ScreenshotDir is where F12 captures are written.
const ScreenshotDir = "screenshots"

// Run opens the window, sets up the renderer and shader library, and runs app
// until it exits. Teardown errors are combined with the run error.
func Run(ctx context.Context, cfg *config.Config, app App) (err error) {
	win, err := window.New(window.Config{
		Title:      debug.TitlePrefix + app.Name(),
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	width, height := win.GetSize()
	rend, err := renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: cfg.Graphics.ClearColor,
		ClearDepth: 1,
	})
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer rend.Close()

	shaders, err := newShaderLibrary(cfg.Shaders)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, shaders.Close())
	}()

	opts := Options{
		Platform:      input.New(),
		Display:       win,
		Device:        rend,
		Overlay:       cfg.Debug.Overlay,
		ScreenshotDir: ScreenshotDir,
	}
	if cfg.Shaders.Watch {
		opts.Reloader = shaders
	}

	driver := NewDriver(app, &Context{
		Config:   cfg,
		Renderer: rend,
		Shaders:  shaders,
	}, opts)
	defer driver.Close()

	return driver.Run(ctx)
}

func newShaderLibrary(cfg config.ShaderConfig) (*shader.Library, error) {
	if cfg.Dir == "" {
		return shader.NewLibrary(), nil
	}
	logger.Info("loading shaders from disk",
		zap.String("dir", cfg.Dir),
		zap.Bool("watch", cfg.Watch),
	)
	return shader.NewDirLibrary(cfg.Dir, cfg.Watch)
}
