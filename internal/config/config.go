package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"portfolio/internal/logger"
	"portfolio/internal/world"
)

// DefaultPath is the prefs file, relative to the process working directory.
const DefaultPath = "config/portfolio.json"

// Prefs holds showcase preferences: window, overlays, catalog source, world tuning and key
// bindings. Fields missing from the file keep their Default() value.
type Prefs struct {
	Window      WindowPrefs         `json:"window"`
	ShowFPS     bool                `json:"show_fps"`
	ShowDebug   bool                `json:"show_debug"`
	Font        string              `json:"font,omitempty"` // path or family name under assets/fonts
	Stylesheet  string              `json:"stylesheet,omitempty"`
	CatalogPath string              `json:"catalog_path,omitempty"`
	LogPath     string              `json:"log_path"`
	StarCount   int                 `json:"star_count"`
	StarSeed    int64               `json:"star_seed"`
	World       WorldPrefs          `json:"world"`
	Keys        map[string][]string `json:"keys"`
}

// WindowPrefs configures the raylib window.
type WindowPrefs struct {
	Width      int32  `json:"width"`
	Height     int32  `json:"height"`
	Title      string `json:"title"`
	Fullscreen bool   `json:"fullscreen"`
	TargetFPS  int32  `json:"target_fps"`
}

// WorldPrefs mirrors world.Config in file form.
type WorldPrefs struct {
	Bounds           float32    `json:"bounds"`
	InteractDistance float32    `json:"interact_distance"`
	Speed            float32    `json:"speed"`
	RotationSpeed    float32    `json:"rotation_speed"`
	HighlightScale   float32    `json:"highlight_scale"`
	BobAmplitude     float32    `json:"bob_amplitude"`
	SpinSpeed        float32    `json:"spin_speed"`
	Hint             string     `json:"hint"`
	Start            [3]float32 `json:"start"`
}

// Default returns stock preferences (windowed 1280x720, overlays off, embedded catalog).
func Default() Prefs {
	wc := world.DefaultConfig()
	return Prefs{
		Window: WindowPrefs{
			Width:     1280,
			Height:    720,
			Title:     "Portfolio",
			TargetFPS: 60,
		},
		LogPath:   logger.DefaultPath,
		StarCount: 1200,
		StarSeed:  1,
		World: WorldPrefs{
			Bounds:           wc.Bounds,
			InteractDistance: wc.InteractDistance,
			Speed:            wc.Speed,
			RotationSpeed:    wc.RotationSpeed,
			HighlightScale:   wc.HighlightScale,
			BobAmplitude:     wc.BobAmplitude,
			SpinSpeed:        wc.SpinSpeed,
			Hint:             wc.Hint,
			Start:            wc.Start,
		},
		Keys: map[string][]string{
			"forward":    {"w", "up"},
			"backward":   {"s", "down"},
			"turn_left":  {"a", "left"},
			"turn_right": {"d", "right"},
			"confirm":    {"e"},
			"cancel":     {"escape"},
		},
	}
}

// WorldConfig converts the world section to the core's Config.
func (p Prefs) WorldConfig() world.Config {
	return world.Config{
		Bounds:           p.World.Bounds,
		InteractDistance: p.World.InteractDistance,
		Speed:            p.World.Speed,
		RotationSpeed:    p.World.RotationSpeed,
		HighlightScale:   p.World.HighlightScale,
		BobAmplitude:     p.World.BobAmplitude,
		SpinSpeed:        p.World.SpinSpeed,
		Hint:             p.World.Hint,
		Start:            mgl32.Vec3(p.World.Start),
	}
}

// Validate rejects values the loop cannot run with.
func (p Prefs) Validate() error {
	switch {
	case p.World.Bounds <= 0:
		return errors.New("world.bounds must be positive")
	case p.World.InteractDistance <= 0:
		return errors.New("world.interact_distance must be positive")
	case p.World.Speed < 0 || p.World.RotationSpeed < 0:
		return errors.New("world speeds must not be negative")
	case p.Window.Width <= 0 || p.Window.Height <= 0:
		return errors.New("window size must be positive")
	case p.StarCount < 0:
		return errors.New("star_count must not be negative")
	}
	return nil
}

// Load reads preferences from path on top of Default(). A missing file is not an error.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("config: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return p, nil
}

// Save writes preferences to path, creating its directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
