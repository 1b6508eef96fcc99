// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/gfx-examples/internal/engine/shader"
	"github.com/Faultbox/gfx-examples/internal/logger"
	"github.com/Faultbox/gfx-examples/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor uint32 // RGBA, 0xRRGGBBAA
	ClearDepth float32
}

// FrameStats counts the work submitted during one frame.
type FrameStats struct {
	DrawCalls int
	Indices   int
}

// Renderer owns the view state and issues draw calls.
// Draws execute immediately; there is a single view.
type Renderer struct {
	config Config

	view     math.Mat4
	proj     math.Mat4
	viewRect [4]int32

	frame FrameStats
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if cfg.ClearDepth == 0 {
		cfg.ClearDepth = 1
	}

	r := &Renderer{
		config: cfg,
		view:   math.Identity(),
		proj:   math.Identity(),
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Setup default OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	cr, cg, cb, ca := unpackRGBA(cfg.ClearColor)
	gl.ClearColor(cr, cg, cb, ca)
	gl.ClearDepthf(cfg.ClearDepth)

	r.SetViewRect(0, 0, cfg.Width, cfg.Height)
	return r, nil
}

// Close logs the shutdown; meshes and programs are released by their owners.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	r.SetViewRect(0, 0, width, height)
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// SetViewTransform sets the view and projection matrices used by Submit.
func (r *Renderer) SetViewTransform(view, proj math.Mat4) {
	r.view = view
	r.proj = proj
}

// SetViewRect sets the viewport.
func (r *Renderer) SetViewRect(x, y, width, height int) {
	r.viewRect = [4]int32{int32(x), int32(y), int32(width), int32(height)}
	gl.Viewport(r.viewRect[0], r.viewRect[1], r.viewRect[2], r.viewRect[3])
}

// Begin starts a new frame and clears the view, whether or not anything is
// submitted to it.
func (r *Renderer) Begin() {
	r.frame = FrameStats{}
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Submit draws mesh with program using the model transform and the current
// view state.
func (r *Renderer) Submit(mesh *Mesh, program *shader.Program, model math.Mat4) {
	program.Use()
	program.SetMat4("u_model", model)
	program.SetMat4("u_view", r.view)
	program.SetMat4("u_proj", r.proj)
	program.SetVec4("u_viewRect", [4]float32{
		float32(r.viewRect[0]), float32(r.viewRect[1]),
		float32(r.viewRect[2]), float32(r.viewRect[3]),
	})

	gl.BindVertexArray(mesh.vao)
	gl.DrawElements(gl.TRIANGLES, int32(mesh.indexCount), gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)

	r.frame.DrawCalls++
	r.frame.Indices += mesh.indexCount
}

// End finishes the current frame and returns what was submitted.
func (r *Renderer) End() FrameStats {
	return r.frame
}

// ReadPixels reads back the default framebuffer as RGBA rows, bottom first.
func (r *Renderer) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// unpackRGBA splits 0xRRGGBBAA into normalized components.
func unpackRGBA(c uint32) (float32, float32, float32, float32) {
	return float32(c>>24&0xff) / 255,
		float32(c>>16&0xff) / 255,
		float32(c>>8&0xff) / 255,
		float32(c&0xff) / 255
}
