package geometry

// Attrib names the semantic slot an attribute feeds in the vertex shader.
// The numeric value is the shader location.
type Attrib uint32

const (
	AttribPosition Attrib = iota
	AttribNormal
	AttribTangent
	AttribBitangent
	AttribColor0
)

func (a Attrib) String() string {
	switch a {
	case AttribPosition:
		return "position"
	case AttribNormal:
		return "normal"
	case AttribTangent:
		return "tangent"
	case AttribBitangent:
		return "bitangent"
	case AttribColor0:
		return "color0"
	default:
		return "unknown"
	}
}

// AttribType is the component type of an attribute.
type AttribType int

const (
	Float AttribType = iota
	Uint8
)

// Size returns the byte size of one component.
func (t AttribType) Size() int {
	if t == Uint8 {
		return 1
	}
	return 4
}

// Attribute describes one vertex attribute.
type Attribute struct {
	Attrib     Attrib
	Components int
	Type       AttribType
	Normalized bool
	Offset     int
}

// Layout is an ordered vertex declaration with packed offsets.
type Layout struct {
	Attributes []Attribute
	Stride     int
}

// LayoutBuilder accumulates attributes in declaration order.
type LayoutBuilder struct {
	layout Layout
}

// NewLayout starts a new declaration.
func NewLayout() *LayoutBuilder {
	return &LayoutBuilder{}
}

// Add appends an attribute at the current end of the vertex.
func (b *LayoutBuilder) Add(attrib Attrib, components int, typ AttribType, normalized bool) *LayoutBuilder {
	b.layout.Attributes = append(b.layout.Attributes, Attribute{
		Attrib:     attrib,
		Components: components,
		Type:       typ,
		Normalized: normalized,
		Offset:     b.layout.Stride,
	})
	b.layout.Stride += components * typ.Size()
	return b
}

// End returns the finished layout.
func (b *LayoutBuilder) End() Layout {
	return b.layout
}

// AdjacencyLayout matches AdjacencyVertex: position+corner id, two neighbors
// routed through the tangent and bitangent slots, and the color.
var AdjacencyLayout = NewLayout().
	Add(AttribPosition, 4, Float, false).
	Add(AttribTangent, 3, Float, false).
	Add(AttribBitangent, 3, Float, false).
	Add(AttribColor0, 4, Uint8, true).
	End()

// FlatLayout matches FlatVertex.
var FlatLayout = NewLayout().
	Add(AttribPosition, 3, Float, false).
	Add(AttribNormal, 3, Float, false).
	Add(AttribColor0, 4, Uint8, true).
	End()
