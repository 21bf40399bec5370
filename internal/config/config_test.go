package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/wheelcut/pkg/lighting"
	"github.com/taigrr/wheelcut/pkg/scene"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wheelcut.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func parseFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("wheelcut", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return f
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Render.FPS != 30 {
		t.Errorf("expected fps 30, got %d", cfg.Render.FPS)
	}
	if !cfg.Clip.Enabled || !cfg.Clip.ShowPlane {
		t.Error("expected clipping and plane overlay on by default")
	}
	if cfg.Light.Mode != lighting.ModeNormal {
		t.Errorf("expected normal light, got %v", cfg.Light.Mode)
	}
	if cfg.Light.Cone != 20 {
		t.Errorf("expected cone 20, got %v", cfg.Light.Cone)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
render:
  fps: 60
  mode: mixed
  theme: garage
clip:
  enabled: false
  offset: 0.4
light:
  mode: free
  color: purple
  cone: 31
scene:
  compound: hard
  spin: true
logging:
  level: debug
`)

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Render.FPS != 60 || cfg.Render.Mode != "mixed" || cfg.Render.Theme != "garage" {
		t.Errorf("render = %+v", cfg.Render)
	}
	if cfg.Clip.Enabled || cfg.Clip.Offset != 0.4 {
		t.Errorf("clip = %+v", cfg.Clip)
	}
	if !cfg.Clip.ShowPlane {
		t.Error("unset show_plane should keep its default")
	}
	if cfg.Light.Mode != lighting.ModeFreeFlashlight || cfg.Light.Color != "purple" || cfg.Light.Cone != 31 {
		t.Errorf("light = %+v", cfg.Light)
	}
	if cfg.Scene.Compound != "hard" || !cfg.Scene.Spin {
		t.Errorf("scene = %+v", cfg.Scene)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	path := writeConfig(t, "render: [not, a, map")
	if err := loadFromFile(Default(), path); err == nil {
		t.Error("expected error for malformed YAML")
	}

	path = writeConfig(t, "light:\n  mode: strobe\n")
	if err := loadFromFile(Default(), path); err == nil {
		t.Error("expected error for unknown light mode")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadPriority(t *testing.T) {
	path := writeConfig(t, `
render:
  fps: 60
  theme: light
clip:
  offset: 0.5
`)

	f := parseFlags(t, "--config", path, "--fps", "24", "--cut", "0", "--light", "flashlight", "--debug")
	cfg, err := Load(f)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Render.FPS != 24 {
		t.Errorf("flag should override file fps: got %d", cfg.Render.FPS)
	}
	if cfg.Render.Theme != "light" {
		t.Errorf("file should override default theme: got %s", cfg.Render.Theme)
	}
	if cfg.Clip.Offset != 0 {
		t.Errorf("explicit --cut 0 should override file: got %v", cfg.Clip.Offset)
	}
	if cfg.Light.Mode != lighting.ModeFlashlight {
		t.Errorf("light mode = %v", cfg.Light.Mode)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("--debug should force debug level, got %s", cfg.Logging.Level)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad light", []string{"--light", "laser"}},
		{"bad theme", []string{"--theme", "neon"}},
		{"bad fps", []string{"--fps", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "render:\n  fps: 30\n")
			args := append([]string{"--config", path}, tt.args...)
			if _, err := Load(parseFlags(t, args...)); err == nil {
				t.Error("expected Load to fail")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"fps", func(c *Config) { c.Render.FPS = 500 }},
		{"render mode", func(c *Config) { c.Render.Mode = "cel" }},
		{"theme", func(c *Config) { c.Render.Theme = "" }},
		{"light mode", func(c *Config) { c.Light.Mode = lighting.Mode(9) }},
		{"light colour", func(c *Config) { c.Light.Color = "orange" }},
		{"cone", func(c *Config) { c.Light.Cone = 60 }},
		{"compound", func(c *Config) { c.Scene.Compound = "wet" }},
		{"spin speed", func(c *Config) { c.Scene.SpinSpeed = 0.1 }},
		{"screenshot format", func(c *Config) { c.Output.ScreenshotFormat = "gif" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestState(t *testing.T) {
	cfg := Default()
	cfg.Render.Theme = "black"
	cfg.Render.Mode = "wireframe"
	cfg.Clip.Offset = -0.3
	cfg.Light.Mode = lighting.ModeFreeFlashlight
	cfg.Light.Color = "green"
	cfg.Scene.Compound = "medium"
	cfg.Scene.ShowFloor = false

	s, err := cfg.State()
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if s.Theme != scene.ThemeBlack || s.RenderMode != scene.RenderWireframe {
		t.Errorf("theme/mode = %v/%v", s.Theme, s.RenderMode)
	}
	if s.CutOffset != -0.3 || !s.Clipping {
		t.Errorf("clip = %v/%v", s.CutOffset, s.Clipping)
	}
	if s.LightMode != lighting.ModeFreeFlashlight || s.LightColor != scene.LightGreen {
		t.Errorf("light = %v/%v", s.LightMode, s.LightColor)
	}
	if s.Compound != scene.CompoundMedium || s.ShowFloor {
		t.Errorf("scene = %v/%v", s.Compound, s.ShowFloor)
	}
	if s.Yaw != 45 || s.Pitch != 20 || s.Distance != 20 {
		t.Errorf("view = %v/%v/%v, want the default view", s.Yaw, s.Pitch, s.Distance)
	}

	cfg.Light.Cone = 1
	if _, err := cfg.State(); err == nil {
		t.Error("State should reject an invalid config")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Light.Mode = lighting.ModeFreeFlashlight
	cfg.Clip.Offset = 0.7
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Light.Mode != lighting.ModeFreeFlashlight || loaded.Clip.Offset != 0.7 {
		t.Errorf("reloaded = %+v / %+v", loaded.Light, loaded.Clip)
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir := ConfigDir()
	if dir == "" {
		t.Fatal("ConfigDir returned empty")
	}
	if filepath.Base(dir) != "wheelcut" {
		t.Errorf("ConfigDir = %s, want a wheelcut directory", dir)
	}
}
