package main

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"go.uber.org/zap"

	"github.com/taigrr/wheelcut/internal/config"
	"github.com/taigrr/wheelcut/internal/logger"
	"github.com/taigrr/wheelcut/pkg/lighting"
	"github.com/taigrr/wheelcut/pkg/models"
	"github.com/taigrr/wheelcut/pkg/render"
	"github.com/taigrr/wheelcut/pkg/scene"
)

// request is work the input goroutine hands to the render loop because it
// needs the finished frame.
type request int

const (
	requestScreenshot request = iota
	requestExport
)

type termSize struct {
	width, height int
}

// viewer is the state shared between the input goroutine and the render
// loop. Controls and inertia are safe for concurrent use; everything owned
// by the render loop travels over the channels.
type viewer struct {
	cfg      *config.Config
	controls *scene.Controls
	inertia  *orbitInertia
	showHUD  atomic.Bool
	requests chan request
	resizes  chan termSize
	cancel   context.CancelFunc
	log      *zap.Logger

	// Mouse state (input goroutine only)
	dragButton   uv.MouseButton
	dragging     bool
	lastX, lastY int
}

func newViewer(cfg *config.Config, initial scene.State, cancel context.CancelFunc) *viewer {
	v := &viewer{
		cfg:      cfg,
		controls: scene.NewControls(initial),
		inertia:  newOrbitInertia(cfg.Render.FPS),
		requests: make(chan request, 4),
		resizes:  make(chan termSize, 1),
		cancel:   cancel,
		log:      logger.Named("input"),
	}
	v.showHUD.Store(cfg.Render.HUD)
	return v
}

var lightColorKeys = [scene.NumLightColors]string{"1", "2", "3", "4", "5", "6"}

func (v *viewer) handleEvents(events <-chan uv.Event) {
	for ev := range events {
		switch ev := ev.(type) {
		case uv.WindowSizeEvent:
			// Latest size wins.
			select {
			case <-v.resizes:
			default:
			}
			v.resizes <- termSize{ev.Width, ev.Height}

		case uv.KeyPressEvent:
			if !v.handleKey(ev) {
				v.cancel()
				return
			}

		case uv.MouseClickEvent:
			v.dragging = true
			v.dragButton = ev.Button
			v.lastX, v.lastY = ev.X, ev.Y

		case uv.MouseReleaseEvent:
			v.dragging = false
			v.inertia.Release()

		case uv.MouseMotionEvent:
			if !v.dragging {
				continue
			}
			dx := float64(ev.X-v.lastX) * scene.OrbitDegPerPx
			dy := float64(ev.Y-v.lastY) * scene.OrbitDegPerPx
			v.lastX, v.lastY = ev.X, ev.Y
			if v.dragButton == uv.MouseRight {
				v.controls.AimLight(dx, dy)
				continue
			}
			v.controls.Orbit(dx, dy)
			v.inertia.Drag(dx, dy)

		case uv.MouseWheelEvent:
			switch ev.Button {
			case uv.MouseWheelUp:
				v.controls.Zoom(-scene.ZoomStep)
			case uv.MouseWheelDown:
				v.controls.Zoom(scene.ZoomStep)
			}
		}
	}
}

// handleKey applies one key press. It returns false when the viewer should quit.
func (v *viewer) handleKey(ev uv.KeyPressEvent) bool {
	c := v.controls
	switch {
	case ev.MatchString("escape", "ctrl+c"):
		return false

	case ev.MatchString("up"):
		s := c.MoveCut(scene.CutStep)
		v.log.Debug("cut plane", zap.Float64("offset", s.CutOffset))
	case ev.MatchString("down"):
		s := c.MoveCut(-scene.CutStep)
		v.log.Debug("cut plane", zap.Float64("offset", s.CutOffset))
	case ev.MatchString("c"):
		s := c.ToggleClipping()
		v.log.Info("clipping", zap.Bool("enabled", s.Clipping))
	case ev.MatchString("v"):
		c.TogglePlane()

	case ev.MatchString("n"):
		v.setLight(lighting.ModeNormal)
	case ev.MatchString("l"):
		v.setLight(lighting.ModeFlashlight)
	case ev.MatchString("k"):
		v.setLight(lighting.ModeFreeFlashlight)
	case ev.MatchString("["):
		s := c.AdjustCone(-scene.ConeStep)
		v.log.Debug("cone", zap.Float64("degrees", s.Cone))
	case ev.MatchString("]"):
		s := c.AdjustCone(scene.ConeStep)
		v.log.Debug("cone", zap.Float64("degrees", s.Cone))

	case ev.MatchString("w"):
		v.setRenderMode(scene.RenderSolid)
	case ev.MatchString("e"):
		v.setRenderMode(scene.RenderWireframe)
	case ev.MatchString("q"):
		v.setRenderMode(scene.RenderMixed)

	case ev.MatchString("t"):
		s := c.NextTheme()
		v.log.Info("theme", zap.Stringer("theme", s.Theme))
	case ev.MatchString("b"):
		s := c.NextCompound()
		v.log.Info("compound", zap.Stringer("compound", s.Compound))

	case ev.MatchString("space"):
		c.ToggleSpin()
	case ev.MatchString("+", "="):
		c.AdjustSpinSpeed(scene.SpinStep)
	case ev.MatchString("-", "_"):
		c.AdjustSpinSpeed(-scene.SpinStep)
	case ev.MatchString("p"):
		c.ToggleFloor()

	case ev.MatchString("r"):
		c.Reset()
		v.inertia.Reset()
	case ev.MatchString("s"):
		v.request(requestScreenshot)
	case ev.MatchString("x"):
		v.request(requestExport)
	case ev.MatchString("?", "shift+/"):
		v.showHUD.Store(!v.showHUD.Load())

	default:
		for i, key := range lightColorKeys {
			if ev.MatchString(key) {
				s := c.SetLightColor(scene.LightColor(i))
				v.log.Info("light colour", zap.Stringer("color", s.LightColor))
				break
			}
		}
	}
	return true
}

func (v *viewer) setLight(m lighting.Mode) {
	s := v.controls.SetLightMode(m)
	v.log.Info("light mode", zap.Stringer("mode", s.LightMode))
}

func (v *viewer) setRenderMode(m scene.RenderMode) {
	s := v.controls.SetRenderMode(m)
	v.log.Info("render mode", zap.Stringer("mode", s.RenderMode))
}

// request queues work for the render loop, dropping it when the queue is full.
func (v *viewer) request(r request) {
	select {
	case v.requests <- r:
	default:
		v.log.Warn("request dropped", zap.Int("request", int(r)))
	}
}

// serve runs a queued request against the finished frame and returns the
// HUD message describing the outcome.
func (v *viewer) serve(r request, fb *render.Framebuffer, res scene.FrameResult) string {
	out := v.cfg.Output
	if err := os.MkdirAll(out.Dir, 0o755); err != nil {
		logger.Error("output dir", zap.String("dir", out.Dir), zap.Error(err))
		return fmt.Sprintf("error: %v", err)
	}

	now := time.Now()
	switch r {
	case requestScreenshot:
		path := outputPath(out.Dir, "wheelcut", out.ScreenshotFormat, now)
		if err := fb.Save(path); err != nil {
			logger.Error("screenshot failed", zap.String("path", path), zap.Error(err))
			return fmt.Sprintf("screenshot failed: %v", err)
		}
		logger.Info("screenshot saved", zap.String("path", path), zap.Int("width", fb.Width), zap.Int("height", fb.Height))
		return "saved " + path

	case requestExport:
		meshes := exportMeshes(res)
		path := outputPath(out.Dir, "wheelcut-cut", "glb", now)
		if err := models.SaveGLB(path, meshes...); err != nil {
			logger.Error("export failed", zap.String("path", path), zap.Error(err))
			return fmt.Sprintf("export failed: %v", err)
		}
		logger.Info("export saved", zap.String("path", path), zap.Int("meshes", len(meshes)), zap.Int("faces", res.FacesOut))
		return "exported " + path
	}
	return ""
}
