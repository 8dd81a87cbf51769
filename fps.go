package softwillow

import (
	"fmt"
	"strings"
)

// hudText formats the on-screen overlay: timing, triangle counts and the
// render flags with the key that toggles each.
func hudText(fps, tps float64, o RenderOptions, s FrameStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f\nTPS: %.1f\n", fps, tps)
	fmt.Fprintf(&b, "tris: %d  culled: %d\n", s.Drawn, s.Culled)
	flag := func(key int, name string, on bool) {
		mark := " "
		if on {
			mark = "x"
		}
		fmt.Fprintf(&b, "[%s] %d %s\n", mark, key, name)
	}
	flag(1, "filled", o.Filled)
	flag(2, "wireframe", o.Wireframe)
	flag(3, "cull", o.BackFaceCulling)
	flag(4, "vertices", o.VertexMarkers)
	flag(5, "textured", o.Textured)
	flag(6, "grid", o.Grid)
	return b.String()
}
