// Package softwillow is a CPU software rasterizer for small 3D scenes,
// presented through [Ebitengine].
//
// Every frame runs on the calling goroutine: poll one input event, update
// entity transforms, transform and project each mesh's triangles, sort them
// back to front, rasterize them into a 32-bit ARGB [Canvas] and hand the
// buffer to a [Presenter]. No GPU shading is involved; Ebitengine is only
// the window and the blit.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window, wires the
// keyboard and drives the renderer until Esc or the window closes:
//
//	r, err := softwillow.NewRenderer(softwillow.RendererConfig{Width: 800, Height: 600})
//	if err != nil {
//		log.Fatal(err)
//	}
//	cube := softwillow.NewEntity("cube", softwillow.NewCubeMesh(1))
//	cube.Transform.Position.Z = -5
//	cube.Updater = softwillow.Spin{Rate: math3d.Float3{X: 0.5, Y: 1}}
//	if err := r.AddEntity(cube); err != nil {
//		log.Fatal(err)
//	}
//	if err := softwillow.Run(r, softwillow.RunConfig{Title: "Cube", ShowFPS: true}); err != nil {
//		log.Fatal(err)
//	}
//
// For headless use, skip Run and call [Renderer.Frame] directly with a
// [ScriptedInput] and a [PresenterFunc] that captures the buffer.
//
// # Render flags
//
// [RenderOptions] toggle filled, wireframe, textured and vertex-marker
// drawing, back-face culling and a background grid. [KeyboardInput] maps the
// digit keys 1-6 to these toggles and Esc to quit.
//
// # Math
//
// Vectors, matrices and projection live in the math3d subpackage, generic
// over float32 and float64.
//
// # Coordinate conventions
//
// The default projection is right-handed: the camera sits at the origin
// looking down -Z, so visible geometry has negative z. Triangles are sorted
// by ascending mean z, which draws the most distant ones first in that
// setup. Meshes wind counter-clockwise when seen from outside. Screen space
// has its origin in the top-left corner with y pointing down.
//
// [Ebitengine]: https://ebitengine.org
package softwillow
