package demo

import (
	"fmt"

	"github.com/Faultbox/gfx-examples/internal/engine/camera"
	"github.com/Faultbox/gfx-examples/internal/engine/renderer"
	"github.com/Faultbox/gfx-examples/internal/engine/shader"
	"github.com/Faultbox/gfx-examples/pkg/geometry"
	"github.com/Faultbox/gfx-examples/pkg/math"
)

// GridSize is the number of cubes along each side of the grid.
const GridSize = 11

// Cubes draws a grid of rotating wireframed cubes from one static mesh.
type Cubes struct {
	mesh    *renderer.Mesh
	program *shader.Program
	wire    [4]float32
	models  []math.Mat4
}

// NewCubes creates the cubes demo.
func NewCubes() *Cubes {
	return &Cubes{
		wire: [4]float32{1, 1, 1, 1},
	}
}

func (c *Cubes) Name() string        { return "cubes" }
func (c *Cubes) Description() string { return "Rendering simple static mesh." }

// Camera looks at the grid from 35 units back.
func (c *Cubes) Camera() camera.FixedCamera {
	return camera.NewFixedCamera(math.Vec3{X: 0, Y: 0, Z: -35}, math.Vec3{})
}

// Init uploads the adjacency cube and loads the wireframe program.
func (c *Cubes) Init(ctx *Context) error {
	cube := geometry.BuildCube()

	mesh, err := renderer.NewMesh(geometry.AdjacencyLayout, geometry.AsBytes(cube.Vertices), cube.Indices, renderer.Static)
	if err != nil {
		return fmt.Errorf("cube mesh: %w", err)
	}

	program, err := ctx.Shaders.Load("cubes")
	if err != nil {
		mesh.Destroy()
		return err
	}

	c.mesh = mesh
	c.program = program
	return nil
}

// Frame submits one draw per grid cell.
func (c *Cubes) Frame(ctx *Context, info FrameInfo) error {
	c.program.Use()
	c.program.SetVec4("u_wireColor", c.wire)

	c.models = AppendGridTransforms(c.models[:0], info.Time, GridSize)
	for _, model := range c.models {
		ctx.Renderer.Submit(c.mesh, c.program, model)
	}
	return nil
}

// Close destroys the cube mesh. The program belongs to the shader library.
func (c *Cubes) Close() {
	if c.mesh != nil {
		c.mesh.Destroy()
		c.mesh = nil
	}
}

// GridTransforms returns the model matrices for an n×n grid of cubes at the
// given time, row-major by y then x.
func GridTransforms(time float32, n int) []math.Mat4 {
	return AppendGridTransforms(make([]math.Mat4, 0, n*n), time, n)
}

// AppendGridTransforms appends the grid model matrices to dst.
// Cell (x, y) spins by (time+0.21x, time+0.37y) and sits at
// (-15+3x, -15+3y, 0).
func AppendGridTransforms(dst []math.Mat4, time float32, n int) []math.Mat4 {
	for yy := 0; yy < n; yy++ {
		for xx := 0; xx < n; xx++ {
			m := math.RotateXY(time+float32(xx)*0.21, time+float32(yy)*0.37).
				WithTranslation(-15+float32(xx)*3, -15+float32(yy)*3, 0)
			dst = append(dst, m)
		}
	}
	return dst
}
