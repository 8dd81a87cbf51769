package softwillow

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/phanxgames/softwillow/math3d"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	r := newTestRenderer(t, 8, DefaultRenderOptions())
	r.SetDebugMode(true)
	r.InjectEvent(EventEscape)
	r.Frame()

	out := buf.String()
	for _, want := range []string{"stop requested", "renderer stopping", "msg=frame"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}

func TestDroppedTrianglesWarnWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { SetLogger(nil) })

	r := newTestRenderer(t, 100, RenderOptions{})
	m := &Mesh{
		Vertices: []Vertex{
			{Position: math3d.Float3{X: -1, Y: -1, Z: -1e-6}},
			{Position: math3d.Float3{X: 1, Y: -1, Z: -1e-6}},
			{Position: math3d.Float3{X: 0, Y: 1, Z: -1e-6}},
		},
		Indices: []uint32{0, 1, 2},
	}
	addEntity(t, r, "near", m)
	r.Frame()

	out := buf.String()
	if !strings.Contains(out, "triangles dropped by projection guard") || !strings.Contains(out, "count=1") {
		t.Errorf("expected a drop warning, got:\n%s", out)
	}
}
