package softwillow

// RenderOptions selects which passes the renderer draws.
type RenderOptions struct {
	BackFaceCulling bool `yaml:"back_face_culling"`
	Wireframe       bool `yaml:"wireframe"`
	Filled          bool `yaml:"filled"`
	VertexMarkers   bool `yaml:"vertex_markers"`
	Textured        bool `yaml:"textured"`
	Grid            bool `yaml:"grid"`
}

// DefaultRenderOptions returns culling and wireframe on, everything else off.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		BackFaceCulling: true,
		Wireframe:       true,
	}
}

// Apply flips the flag a toggle event names. It reports whether ev was a
// toggle; other events leave the options unchanged.
func (o *RenderOptions) Apply(ev Event) bool {
	switch ev {
	case EventToggleFilled:
		o.Filled = !o.Filled
	case EventToggleWireframe:
		o.Wireframe = !o.Wireframe
	case EventToggleCulling:
		o.BackFaceCulling = !o.BackFaceCulling
	case EventToggleVertexMarkers:
		o.VertexMarkers = !o.VertexMarkers
	case EventToggleTextured:
		o.Textured = !o.Textured
	case EventToggleGrid:
		o.Grid = !o.Grid
	default:
		return false
	}
	return true
}
