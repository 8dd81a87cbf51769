package softwillow

import "github.com/phanxgames/softwillow/math3d"

// Procedural meshes. Triangles are wound counter-clockwise when seen from
// outside, so cross(v1-v0, v2-v0) points outward.

// NewCubeMesh builds an axis-aligned cube of edge length size centered at the
// origin. Each face carries its own four vertices so UVs span the full
// texture on every face.
func NewCubeMesh(size float32) *Mesh {
	h := size / 2
	type face struct {
		corners [4]math3d.Float3 // counter-clockwise from outside, starting bottom-left
	}
	faces := []face{
		{[4]math3d.Float3{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},     // +Z
		{[4]math3d.Float3{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}}, // -Z
		{[4]math3d.Float3{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},     // +X
		{[4]math3d.Float3{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}}, // -X
		{[4]math3d.Float3{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},     // +Y
		{[4]math3d.Float3{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}}, // -Y
	}
	uvs := [4]math3d.Float2{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

	m := &Mesh{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	for _, f := range faces {
		base := uint32(len(m.Vertices))
		for i, p := range f.corners {
			m.Vertices = append(m.Vertices, Vertex{Position: p, UV: uvs[i]})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// NewPlaneMesh builds a size x size quad in the XY plane facing +Z,
// subdivided into cols x rows cells. UVs run from (0,0) top-left to (1,1)
// bottom-right.
func NewPlaneMesh(size float32, cols, rows int) *Mesh {
	cols = max(cols, 1)
	rows = max(rows, 1)
	h := size / 2

	m := &Mesh{
		Vertices: make([]Vertex, 0, (cols+1)*(rows+1)),
		Indices:  make([]uint32, 0, cols*rows*6),
	}
	for r := 0; r <= rows; r++ {
		v := float32(r) / float32(rows)
		for c := 0; c <= cols; c++ {
			u := float32(c) / float32(cols)
			m.Vertices = append(m.Vertices, Vertex{
				Position: math3d.Float3{X: -h + u*size, Y: h - v*size},
				UV:       math3d.Float2{X: u, Y: v},
			})
		}
	}
	stride := uint32(cols + 1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			tl := uint32(r)*stride + uint32(c)
			tr := tl + 1
			bl := tl + stride
			br := bl + 1
			m.Indices = append(m.Indices, bl, br, tr, bl, tr, tl)
		}
	}
	return m
}

// NewPyramidMesh builds a square-based pyramid with base edge size and the
// given height, base centered on the origin in the XZ plane, apex on +Y.
// Shared positions are deduplicated.
func NewPyramidMesh(size, height float32) *Mesh {
	h := size / 2
	apex := Vertex{Position: math3d.Float3{Y: height}, UV: math3d.Float2{X: 0.5, Y: 0}}
	b0 := Vertex{Position: math3d.Float3{X: -h, Z: h}, UV: math3d.Float2{X: 0, Y: 1}}
	b1 := Vertex{Position: math3d.Float3{X: h, Z: h}, UV: math3d.Float2{X: 1, Y: 1}}
	b2 := Vertex{Position: math3d.Float3{X: h, Z: -h}, UV: math3d.Float2{X: 0, Y: 1}}
	b3 := Vertex{Position: math3d.Float3{X: -h, Z: -h}, UV: math3d.Float2{X: 1, Y: 1}}

	b := NewMeshBuilder()
	b.AddTriangle(b0, b1, apex)
	b.AddTriangle(b1, b2, apex)
	b.AddTriangle(b2, b3, apex)
	b.AddTriangle(b3, b0, apex)
	b.AddTriangle(b0, b3, b2)
	b.AddTriangle(b0, b2, b1)
	return b.Build()
}
