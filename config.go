package softwillow

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config bundles window and renderer settings, as loaded from YAML.
//
//	window:
//	  title: Cube
//	  scale: 1
//	  show_fps: true
//	renderer:
//	  width: 800
//	  height: 600
//	  projection:
//	    fovy: 1.0472
//	    handedness: right
//	    depth_range: negative-one-to-one
//	  options:
//	    filled: true
//	    back_face_culling: true
type Config struct {
	Window   RunConfig      `yaml:"window"`
	Renderer RendererConfig `yaml:"renderer"`
}

// LoadConfig parses a YAML configuration. Omitted fields keep their zero
// value and pick up defaults in NewRenderer and Run.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Renderer.Width < 0 || cfg.Renderer.Height < 0 {
		return Config{}, fmt.Errorf("parse config: canvas %dx%d: %w",
			cfg.Renderer.Width, cfg.Renderer.Height, ErrInvalidCanvasSize)
	}
	if cfg.Renderer.Projection.Near < 0 || cfg.Renderer.Projection.Far < 0 {
		return Config{}, fmt.Errorf("parse config: negative clip plane")
	}
	return cfg, nil
}
