package demo

import (
	"fmt"

	"github.com/Faultbox/gfx-examples/internal/animator"
	"github.com/Faultbox/gfx-examples/internal/config"
	"github.com/Faultbox/gfx-examples/internal/engine/camera"
	"github.com/Faultbox/gfx-examples/internal/engine/renderer"
	"github.com/Faultbox/gfx-examples/internal/engine/shader"
	"github.com/Faultbox/gfx-examples/pkg/geometry"
	"github.com/Faultbox/gfx-examples/pkg/math"
)

// BufferUpdates draws a fan mesh whose vertices are partially re-uploaded
// every frame.
type BufferUpdates struct {
	config config.AnimatorConfig

	mesh     *renderer.Mesh
	program  *shader.Program
	animator *animator.Animator
}

// NewBufferUpdates creates the buffer updates demo.
func NewBufferUpdates(cfg config.AnimatorConfig) *BufferUpdates {
	return &BufferUpdates{config: cfg}
}

func (b *BufferUpdates) Name() string        { return "buffer-updates" }
func (b *BufferUpdates) Description() string { return "Buffer updates test." }

// Camera looks at the unit fan from 3 units back.
func (b *BufferUpdates) Camera() camera.FixedCamera {
	return camera.NewFixedCamera(math.Vec3{X: 0, Y: 0, Z: -3}, math.Vec3{})
}

// Init builds the fan into a dynamic buffer and starts the animator over it.
func (b *BufferUpdates) Init(ctx *Context) error {
	fan, err := geometry.BuildFan(b.config.Resolution)
	if err != nil {
		return err
	}

	mesh, err := renderer.NewMesh(geometry.FlatLayout, geometry.AsBytes(fan.Vertices), fan.Indices, renderer.Dynamic)
	if err != nil {
		return fmt.Errorf("fan mesh: %w", err)
	}

	program, err := ctx.Shaders.Load("buffer_updates")
	if err != nil {
		mesh.Destroy()
		return err
	}

	anim, err := animator.New(fan.Vertices, flatUploader{mesh}, animator.NewRandSource(b.config.Seed), animator.Config{
		UpdateCount: b.config.EffectiveUpdateCount(),
		Duration:    b.config.Duration,
	})
	if err != nil {
		mesh.Destroy()
		return err
	}

	b.mesh = mesh
	b.program = program
	b.animator = anim
	return nil
}

// Frame advances the animation, then draws the fan.
func (b *BufferUpdates) Frame(ctx *Context, info FrameInfo) error {
	if err := b.animator.Update(info.Time); err != nil {
		return err
	}
	ctx.Renderer.Submit(b.mesh, b.program, math.Identity())
	return nil
}

// Status reports the animator counters.
func (b *BufferUpdates) Status() []string {
	if b.animator == nil {
		return nil
	}
	return animatorStatus(b.animator.Stats(), b.animator.Window())
}

// Close destroys the fan mesh.
func (b *BufferUpdates) Close() {
	if b.mesh != nil {
		b.mesh.Destroy()
		b.mesh = nil
	}
}

func animatorStatus(s animator.Stats, w animator.Window) []string {
	return []string{
		fmt.Sprintf("Cycles: %d", s.Cycles),
		fmt.Sprintf("Uploads: %d (%d vertices, %d skipped)", s.Uploads, s.UploadedVertices, s.SkippedUploads),
		fmt.Sprintf("Window: [%d, %d)", w.Lower, w.Upper),
	}
}

// flatUploader adapts a dynamic mesh to the animator's Uploader.
type flatUploader struct {
	mesh *renderer.Mesh
}

func (u flatUploader) UpdateVertices(first int, vertices []geometry.FlatVertex) error {
	return u.mesh.UpdateVertices(first, geometry.AsBytes(vertices))
}
