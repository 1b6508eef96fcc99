package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/gfx-examples/pkg/math"
)

// Program is a linked shader program. The handle survives reloads: the
// library swaps the underlying GL object and clears the uniform cache.
type Program struct {
	name     string
	id       uint32
	uniforms map[string]int32
}

// Name returns the name the program was loaded under.
func (p *Program) Name() string {
	return p.name
}

// ID returns the GL program object.
func (p *Program) ID() uint32 {
	return p.id
}

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Uniform returns the cached location of a uniform, -1 if inactive.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// SetMat4 uploads a matrix uniform. Inactive uniforms are skipped.
func (p *Program) SetMat4(name string, m math.Mat4) {
	if loc := p.Uniform(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, m.Ptr())
	}
}

// SetVec4 uploads a vec4 uniform. Inactive uniforms are skipped.
func (p *Program) SetVec4(name string, v [4]float32) {
	if loc := p.Uniform(name); loc >= 0 {
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}

// swap replaces the GL object and returns the old one.
func (p *Program) swap(id uint32) uint32 {
	old := p.id
	p.id = id
	p.uniforms = make(map[string]int32)
	return old
}
