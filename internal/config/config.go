// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/taigrr/wheelcut/pkg/lighting"
	"github.com/taigrr/wheelcut/pkg/scene"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all viewer settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Clip    ClipConfig    `yaml:"clip"`
	Light   LightConfig   `yaml:"light"`
	Scene   SceneConfig   `yaml:"scene"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds frame rate and drawing style.
type RenderConfig struct {
	FPS   int    `yaml:"fps"`
	Mode  string `yaml:"mode"` // solid, wireframe, mixed
	Theme string `yaml:"theme"`
	HUD   bool   `yaml:"hud"`
}

// ClipConfig holds the initial cut plane.
type ClipConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Offset    float64 `yaml:"offset"`
	ShowPlane bool    `yaml:"show_plane"`
}

// LightConfig holds the initial light rig.
type LightConfig struct {
	Mode  lighting.Mode `yaml:"mode"`
	Color string        `yaml:"color"`
	Cone  float64       `yaml:"cone"`
}

// SceneConfig holds wheel and floor settings.
type SceneConfig struct {
	Compound  string  `yaml:"compound"`
	ShowFloor bool    `yaml:"show_floor"`
	Spin      bool    `yaml:"spin"`
	SpinSpeed float64 `yaml:"spin_speed"`
	Model     string  `yaml:"model"` // optional extra GLB/GLTF mesh
}

// OutputConfig holds where screenshots and exports are written.
type OutputConfig struct {
	Dir              string `yaml:"dir"`
	ScreenshotFormat string `yaml:"screenshot_format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			FPS:   30,
			Mode:  scene.RenderSolid.String(),
			Theme: scene.ThemeDark.String(),
			HUD:   true,
		},
		Clip: ClipConfig{
			Enabled:   true,
			Offset:    0,
			ShowPlane: true,
		},
		Light: LightConfig{
			Mode:  lighting.ModeNormal,
			Color: scene.LightWhite.String(),
			Cone:  lighting.DefaultCone,
		},
		Scene: SceneConfig{
			Compound:  scene.CompoundSoft.String(),
			ShowFloor: true,
			SpinSpeed: 2,
		},
		Output: OutputConfig{
			Dir:              ".",
			ScreenshotFormat: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "wheelcut.log",
		},
	}
}

// Validate checks names and ranges and reports every problem found.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Render.FPS < 1 || c.Render.FPS > 240 {
		bad("render.fps %d out of range 1..240", c.Render.FPS)
	}
	if _, err := scene.ParseRenderMode(c.Render.Mode); err != nil {
		bad("render.mode: %v", err)
	}
	if _, err := scene.ParseTheme(c.Render.Theme); err != nil {
		bad("render.theme: %v", err)
	}
	if _, err := c.Light.Mode.MarshalText(); err != nil {
		bad("light.mode: %v", err)
	}
	if _, err := scene.ParseLightColor(c.Light.Color); err != nil {
		bad("light.color: %v", err)
	}
	if c.Light.Cone < scene.MinCone || c.Light.Cone > scene.MaxCone {
		bad("light.cone %v out of range %v..%v", c.Light.Cone, scene.MinCone, scene.MaxCone)
	}
	if _, err := scene.ParseCompound(c.Scene.Compound); err != nil {
		bad("scene.compound: %v", err)
	}
	if c.Scene.SpinSpeed < scene.MinSpinSpeed {
		bad("scene.spin_speed %v below %v", c.Scene.SpinSpeed, scene.MinSpinSpeed)
	}
	if f := c.Output.ScreenshotFormat; f != "png" && f != "bmp" {
		bad("output.screenshot_format %q (want png or bmp)", f)
	}

	return errors.Join(errs...)
}

// State converts the config into the initial controls state.
func (c *Config) State() (scene.State, error) {
	if err := c.Validate(); err != nil {
		return scene.State{}, err
	}

	s := scene.DefaultState()
	s.RenderMode, _ = scene.ParseRenderMode(c.Render.Mode)
	s.Theme, _ = scene.ParseTheme(c.Render.Theme)
	s.Clipping = c.Clip.Enabled
	s.CutOffset = c.Clip.Offset
	s.ShowPlane = c.Clip.ShowPlane
	s.LightMode = c.Light.Mode
	s.LightColor, _ = scene.ParseLightColor(c.Light.Color)
	s.Cone = c.Light.Cone
	s.Compound, _ = scene.ParseCompound(c.Scene.Compound)
	s.ShowFloor = c.Scene.ShowFloor
	s.Spinning = c.Scene.Spin
	s.SpinSpeed = c.Scene.SpinSpeed
	return s, nil
}
