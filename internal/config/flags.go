package config

import (
	"flag"
	"fmt"

	"github.com/taigrr/wheelcut/pkg/lighting"
)

// Flags are the command-line overrides, registered on a FlagSet.
type Flags struct {
	fs *flag.FlagSet

	config   *string
	fps      *int
	theme    *string
	light    *string
	color    *string
	mode     *string
	compound *string
	cut      *float64
	model    *string
	outDir   *string
	debug    *bool
	logFile  *string
}

// RegisterFlags defines the override flags on fs. Parse fs before Load.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs:       fs,
		config:   fs.String("config", "", "Path to config file"),
		fps:      fs.Int("fps", 0, "Target FPS"),
		theme:    fs.String("theme", "", "Theme: dark, black, garage, light"),
		light:    fs.String("light", "", "Light mode: normal, flashlight, free-flashlight"),
		color:    fs.String("color", "", "Light colour: white, red, blue, yellow, green, purple"),
		mode:     fs.String("mode", "", "Render mode: solid, wireframe, mixed"),
		compound: fs.String("compound", "", "Tyre compound: soft, medium, hard"),
		cut:      fs.Float64("cut", 0, "Initial cut plane offset along the axle"),
		model:    fs.String("model", "", "Extra GLB/GLTF model to show next to the wheel"),
		outDir:   fs.String("out", "", "Directory for screenshots and exports"),
		debug:    fs.Bool("debug", false, "Enable debug logging"),
		logFile:  fs.String("log-file", "", "Log file path"),
	}
}

// ConfigPath returns the explicit config path if provided via --config flag.
func (f *Flags) ConfigPath() string {
	return *f.config
}

// apply copies every flag that was set on the command line into cfg.
func (f *Flags) apply(cfg *Config) error {
	set := make(map[string]bool)
	f.fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if set["fps"] {
		cfg.Render.FPS = *f.fps
	}
	if set["theme"] {
		cfg.Render.Theme = *f.theme
	}
	if set["light"] {
		m, err := lighting.ParseMode(*f.light)
		if err != nil {
			return fmt.Errorf("--light: %w", err)
		}
		cfg.Light.Mode = m
	}
	if set["color"] {
		cfg.Light.Color = *f.color
	}
	if set["mode"] {
		cfg.Render.Mode = *f.mode
	}
	if set["compound"] {
		cfg.Scene.Compound = *f.compound
	}
	if set["cut"] {
		cfg.Clip.Offset = *f.cut
	}
	if set["model"] {
		cfg.Scene.Model = *f.model
	}
	if set["out"] {
		cfg.Output.Dir = *f.outDir
	}
	if *f.debug {
		cfg.Logging.Level = "debug"
	}
	if set["log-file"] {
		cfg.Logging.LogFile = *f.logFile
	}
	return nil
}
