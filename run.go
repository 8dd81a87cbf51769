package softwillow

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title   string  `yaml:"title"`    // default "softwillow"
	Scale   float64 `yaml:"scale"`    // window size = canvas size * Scale; default 1
	ShowFPS bool    `yaml:"show_fps"` // draw FPS/TPS and render flags
	TPS     int     `yaml:"tps"`      // frames per second; 0 keeps Ebitengine's default
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = "softwillow"
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	return c
}

// game adapts a Renderer to ebiten.Game. Each Update runs one renderer frame,
// whose presenter uploads the finished buffer; Draw blits it to the screen.
//
// closing and escape are polled only when the renderer's input source is not
// a KeyboardInput, which already reports both.
type game struct {
	r       *Renderer
	image   *ImagePresenter
	showFPS bool

	closing func() bool
	escape  func() bool
}

func (g *game) Update() error {
	switch {
	case g.closing != nil && g.closing():
		g.r.handleEvent(EventQuit)
	case g.escape != nil && g.escape():
		g.r.handleEvent(EventEscape)
	}
	if !g.r.Frame() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.image.Image(), nil)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, hudText(ebiten.ActualFPS(), ebiten.ActualTPS(), g.r.Options(), g.r.Stats()))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.r.Canvas().Width(), g.r.Canvas().Height()
}

// Run opens a window and drives r until it stops or the window closes.
//
// The window's frame is presented in addition to any presenter already set
// on r; that presenter is restored when Run returns. Keyboard input is used
// when r has no input source. With any other source, closing the window or
// pressing Esc still stops the loop. Quitting returns nil.
func Run(r *Renderer, cfg RunConfig) error {
	cfg = cfg.withDefaults()

	w, h := r.Canvas().Width(), r.Canvas().Height()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(int(float64(w)*cfg.Scale), int(float64(h)*cfg.Scale))
	ebiten.SetWindowClosingHandled(true)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	g := &game{r: r, image: NewImagePresenter(w, h), showFPS: cfg.ShowFPS}
	restore := g.attach()
	defer restore()

	Logger().Info("run", "title", cfg.Title, "width", w, "height", h)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// attach installs the window presenter and, if needed, keyboard input on the
// renderer. The returned func puts the previous presenter back.
func (g *game) attach() (restore func()) {
	r := g.r
	prev := r.presenter
	if prev != nil {
		r.SetPresenter(Presenters{g.image, prev})
	} else {
		r.SetPresenter(g.image)
	}
	if r.input == nil {
		r.SetInput(NewKeyboardInput())
	}
	if _, ok := r.input.(*KeyboardInput); !ok {
		g.closing = ebiten.IsWindowBeingClosed
		g.escape = escapePressed
	}
	return func() { r.SetPresenter(prev) }
}

func escapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
