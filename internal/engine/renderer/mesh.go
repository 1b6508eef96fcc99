package renderer

import (
	"errors"
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/gfx-examples/internal/logger"
	"github.com/Faultbox/gfx-examples/pkg/geometry"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	// ErrRangeOutOfBounds is returned for an update past the end of a buffer.
	ErrRangeOutOfBounds = errors.New("vertex range out of bounds")
	// ErrStaticBuffer is returned when updating a mesh created static.
	ErrStaticBuffer = errors.New("mesh is not dynamic")
	// ErrMisaligned is returned when vertex data is not a whole number of vertices.
	ErrMisaligned = errors.New("vertex data not a multiple of the stride")
)

// Usage selects how a mesh's vertex buffer will be written.
type Usage int

const (
	Static  Usage = iota // Uploaded once
	Dynamic              // Partially re-uploaded after creation
)

// Mesh is a vertex buffer and index buffer bound to one vertex array.
type Mesh struct {
	vao uint32
	vbo uint32
	ebo uint32

	layout      geometry.Layout
	usage       Usage
	vertexCount int
	indexCount  int
}

// NewMesh uploads vertex bytes laid out per layout plus 16-bit indices.
func NewMesh(layout geometry.Layout, vertices []byte, indices []uint16, usage Usage) (*Mesh, error) {
	if layout.Stride == 0 || len(vertices)%layout.Stride != 0 {
		return nil, fmt.Errorf("%w: %d bytes, stride %d", ErrMisaligned, len(vertices), layout.Stride)
	}
	if len(vertices) == 0 || len(indices) == 0 {
		return nil, errors.New("mesh needs vertices and indices")
	}

	m := &Mesh{
		layout:      layout,
		usage:       usage,
		vertexCount: len(vertices) / layout.Stride,
		indexCount:  len(indices),
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices), unsafe.Pointer(&vertices[0]), glUsage(usage))

	for _, a := range layout.Attributes {
		gl.VertexAttribPointerWithOffset(uint32(a.Attrib), int32(a.Components), glType(a.Type),
			a.Normalized, int32(layout.Stride), uintptr(a.Offset))
		gl.EnableVertexAttribArray(uint32(a.Attrib))
	}

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, unsafe.Pointer(&indices[0]), glUsage(usage))

	// Unbind the VAO first so it keeps its element buffer.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	logger.Debug("mesh created",
		zap.Uint32("vao", m.vao),
		zap.Int("vertices", m.vertexCount),
		zap.Int("indices", m.indexCount),
		zap.Bool("dynamic", usage == Dynamic),
	)
	return m, nil
}

// VertexCount returns the number of vertices in the buffer.
func (m *Mesh) VertexCount() int {
	return m.vertexCount
}

// IndexCount returns the number of indices drawn by Submit.
func (m *Mesh) IndexCount() int {
	return m.indexCount
}

// UpdateVertices overwrites vertices starting at first with data, which
// must hold whole vertices. An empty update is a no-op.
func (m *Mesh) UpdateVertices(first int, data []byte) error {
	if m.usage != Dynamic {
		return ErrStaticBuffer
	}
	if len(data)%m.layout.Stride != 0 {
		return fmt.Errorf("%w: %d bytes, stride %d", ErrMisaligned, len(data), m.layout.Stride)
	}

	count := len(data) / m.layout.Stride
	if err := checkRange(first, count, m.vertexCount); err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, first*m.layout.Stride, len(data), unsafe.Pointer(&data[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

// Destroy releases the GL objects.
func (m *Mesh) Destroy() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	m.vao, m.vbo, m.ebo = 0, 0, 0
}

// checkRange validates [first, first+count) against a buffer of total vertices.
func checkRange(first, count, total int) error {
	if first < 0 || count < 0 || first > total || count > total-first {
		return fmt.Errorf("%w: [%d, %d) in buffer of %d", ErrRangeOutOfBounds, first, first+count, total)
	}
	return nil
}

func glUsage(u Usage) uint32 {
	if u == Dynamic {
		return gl.DYNAMIC_DRAW
	}
	return gl.STATIC_DRAW
}

func glType(t geometry.AttribType) uint32 {
	if t == geometry.Uint8 {
		return gl.UNSIGNED_BYTE
	}
	return gl.FLOAT
}
