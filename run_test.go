package softwillow

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type countingPresenter struct {
	frames int
}

func (p *countingPresenter) Present([]uint32, int, int) { p.frames++ }

func TestGameUpdateStopsOnWindowClose(t *testing.T) {
	r := newTestRenderer(t, 8, DefaultRenderOptions())
	r.SetInput(NewScriptedInput())
	store := &recordingStore{}
	r.SetEventStore(store)

	g := &game{r: r, closing: func() bool { return true }, escape: func() bool { return false }}
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("expected ebiten.Termination, got %v", err)
	}
	if r.Running() {
		t.Error("renderer should be stopped")
	}
	if r.FrameCount() != 1 {
		t.Errorf("the closing frame should complete, count = %d", r.FrameCount())
	}
	if len(store.events) != 1 || store.events[0].Event != EventQuit {
		t.Errorf("expected one quit event, got %+v", store.events)
	}
}

func TestGameUpdateEscapeWithCustomInput(t *testing.T) {
	r := newTestRenderer(t, 8, DefaultRenderOptions())
	r.SetInput(NewScriptedInput(EventToggleFilled))

	g := &game{r: r, closing: func() bool { return false }, escape: func() bool { return true }}
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("expected ebiten.Termination, got %v", err)
	}
	if r.Running() {
		t.Error("renderer should be stopped")
	}
}

func TestGameUpdateContinues(t *testing.T) {
	r := newTestRenderer(t, 8, DefaultRenderOptions())
	g := &game{r: r, closing: func() bool { return false }, escape: func() bool { return false }}
	for i := 0; i < 3; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
	}
	if r.FrameCount() != 3 {
		t.Errorf("expected 3 frames, got %d", r.FrameCount())
	}
}

func TestAttachPollsWindowOnlyForCustomInput(t *testing.T) {
	r := newTestRenderer(t, 8, DefaultRenderOptions())
	g := &game{r: r}
	restore := g.attach()
	if _, ok := r.input.(*KeyboardInput); !ok {
		t.Fatalf("expected keyboard input to be installed, got %T", r.input)
	}
	if g.closing != nil || g.escape != nil {
		t.Error("keyboard input already reports close and Esc")
	}
	restore()

	r2 := newTestRenderer(t, 8, DefaultRenderOptions())
	in := NewScriptedInput()
	r2.SetInput(in)
	g2 := &game{r: r2}
	restore = g2.attach()
	defer restore()
	if r2.input != InputSource(in) {
		t.Error("custom input source should be kept")
	}
	if g2.closing == nil || g2.escape == nil {
		t.Error("custom input needs the window close and Esc checks")
	}
}

func TestAttachRestoresPresenter(t *testing.T) {
	r := newTestRenderer(t, 8, DefaultRenderOptions())
	prev := &countingPresenter{}
	r.SetPresenter(prev)

	for run := 0; run < 2; run++ {
		g := &game{r: r}
		restore := g.attach()
		ps, ok := r.presenter.(Presenters)
		if !ok || len(ps) != 2 || ps[1] != Presenter(prev) {
			t.Fatalf("run %d: expected window presenter plus the original, got %#v", run, r.presenter)
		}
		restore()
		if r.presenter != Presenter(prev) {
			t.Fatalf("run %d: original presenter not restored", run)
		}
	}
}
