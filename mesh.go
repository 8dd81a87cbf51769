package softwillow

import (
	"errors"
	"fmt"

	"github.com/phanxgames/softwillow/math3d"
)

// ErrInvalidMesh is returned by Mesh.Validate when indices are malformed.
var ErrInvalidMesh = errors.New("invalid mesh")

// Vertex is a mesh vertex: a local-space position and a texture coordinate.
type Vertex struct {
	Position math3d.Float3
	UV       math3d.Float2
}

// Equal reports whether v and o share a position. Texture coordinates are
// ignored; this is the identity MeshBuilder deduplicates on.
func (v Vertex) Equal(o Vertex) bool {
	return v.Position == o.Position
}

// Mesh is indexed triangle geometry. Every three consecutive Indices form
// one triangle; each index refers into Vertices. Texture is optional.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Texture  *Texture
}

// TriangleCount returns the number of complete triangles in the index list.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate checks that the index count is a multiple of three and that every
// index is in range. An empty mesh is valid.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%d indices is not a multiple of 3: %w", len(m.Indices), ErrInvalidMesh)
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("index %d = %d out of range (%d vertices): %w",
				i, idx, len(m.Vertices), ErrInvalidMesh)
		}
	}
	if t := m.Texture; t != nil && len(t.Texels) != t.Width*t.Height {
		return fmt.Errorf("texture %dx%d has %d texels: %w", t.Width, t.Height, len(t.Texels), ErrInvalidMesh)
	}
	return nil
}

// MeshBuilder accumulates triangles and deduplicates vertices that share a
// position. The first UV seen for a position wins.
type MeshBuilder struct {
	mesh  Mesh
	index map[math3d.Float3]uint32
}

// NewMeshBuilder returns an empty builder.
func NewMeshBuilder() *MeshBuilder {
	return &MeshBuilder{index: make(map[math3d.Float3]uint32)}
}

// AddVertex returns the index of v, appending it if no vertex with the same
// position exists yet.
func (b *MeshBuilder) AddVertex(v Vertex) uint32 {
	if idx, ok := b.index[v.Position]; ok {
		return idx
	}
	idx := uint32(len(b.mesh.Vertices))
	b.mesh.Vertices = append(b.mesh.Vertices, v)
	b.index[v.Position] = idx
	return idx
}

// AddTriangle appends triangle abc.
func (b *MeshBuilder) AddTriangle(a, c, d Vertex) {
	b.mesh.Indices = append(b.mesh.Indices, b.AddVertex(a), b.AddVertex(c), b.AddVertex(d))
}

// SetTexture sets the texture of the built mesh.
func (b *MeshBuilder) SetTexture(t *Texture) {
	b.mesh.Texture = t
}

// Build returns the accumulated mesh. The builder must not be used afterwards.
func (b *MeshBuilder) Build() *Mesh {
	m := b.mesh
	b.mesh = Mesh{}
	b.index = nil
	return &m
}
