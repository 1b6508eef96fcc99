// Package demo runs a demo application inside the frame loop: it polls
// events, tracks time, sets up the fixed camera and hands each frame to the
// application.
package demo

import (
	"time"

	"github.com/Faultbox/gfx-examples/internal/config"
	"github.com/Faultbox/gfx-examples/internal/engine/camera"
	"github.com/Faultbox/gfx-examples/internal/engine/renderer"
	"github.com/Faultbox/gfx-examples/internal/engine/shader"
	"github.com/Faultbox/gfx-examples/pkg/math"
)

// Context carries the shared collaborators handed to an App.
type Context struct {
	Config   *config.Config
	Renderer *renderer.Renderer
	Shaders  *shader.Library
}

// FrameInfo describes the frame being rendered.
type FrameInfo struct {
	Frame     int
	Time      float32       // Seconds since the loop started
	FrameTime time.Duration // Since the previous frame
	Width     int
	Height    int
}

// App is a single demo program.
type App interface {
	Name() string
	Description() string
	Camera() camera.FixedCamera
	Init(ctx *Context) error
	Frame(ctx *Context, info FrameInfo) error
	Close()
}

// StatusReporter is implemented by apps that add lines to the debug overlay.
type StatusReporter interface {
	Status() []string
}

// ViewProjection returns the view and projection matrices for cam on a
// viewport of the given size.
func ViewProjection(cam camera.FixedCamera, width, height int) (math.Mat4, math.Mat4) {
	return cam.ViewMatrix(), cam.ProjectionMatrix(width, height)
}
