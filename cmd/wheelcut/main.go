// wheelcut - Terminal F1 wheel cutaway viewer
// Orbit a procedurally built racing wheel, slide a clipping plane through it
// and light it with a Phong lamp or a flashlight.
//
// Controls:
//
//	Mouse drag   - Orbit (right button aims the free flashlight)
//	Scroll       - Zoom in/out
//	Up/Down      - Move the cut plane
//	C / V        - Toggle clipping / plane overlay
//	N / L / K    - Normal light / flashlight / free flashlight
//	1-6          - Light colour
//	[ / ]        - Narrow / widen the flashlight cone
//	W / E / Q    - Solid / wireframe / mixed
//	T / B        - Next theme / next tyre compound
//	Space, + / - - Spin on/off, spin speed
//	P            - Toggle floor
//	R            - Reset view
//	S / X        - Screenshot / export the cut wheel as GLB
//	?            - Toggle HUD
//	Esc          - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"go.uber.org/zap"

	"github.com/taigrr/wheelcut/internal/config"
	"github.com/taigrr/wheelcut/internal/logger"
	"github.com/taigrr/wheelcut/pkg/lighting"
	"github.com/taigrr/wheelcut/pkg/math3d"
	"github.com/taigrr/wheelcut/pkg/models"
	"github.com/taigrr/wheelcut/pkg/render"
	"github.com/taigrr/wheelcut/pkg/scene"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "wheelcut - Terminal F1 wheel cutaway viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: wheelcut [options] [extra-model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag  - Orbit (right button aims the free flashlight)\n")
		fmt.Fprintf(os.Stderr, "  Scroll      - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  Up/Down     - Move the cut plane\n")
		fmt.Fprintf(os.Stderr, "  C/V         - Clipping / plane overlay\n")
		fmt.Fprintf(os.Stderr, "  N/L/K       - Normal light / flashlight / free flashlight\n")
		fmt.Fprintf(os.Stderr, "  1-6         - Light colour\n")
		fmt.Fprintf(os.Stderr, "  [ ]         - Cone angle\n")
		fmt.Fprintf(os.Stderr, "  W/E/Q       - Solid / wireframe / mixed\n")
		fmt.Fprintf(os.Stderr, "  T/B         - Theme / tyre compound\n")
		fmt.Fprintf(os.Stderr, "  Space, +/-  - Spin, spin speed\n")
		fmt.Fprintf(os.Stderr, "  P           - Floor\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset view\n")
		fmt.Fprintf(os.Stderr, "  S/X         - Screenshot / GLB export\n")
		fmt.Fprintf(os.Stderr, "  ?           - HUD\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flag.NArg() > 0 {
		cfg.Scene.Model = flag.Arg(0)
	}

	// The terminal belongs to the viewer, so logs only go to the file.
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, false); err != nil {
		fmt.Fprintf(os.Stderr, "Error: init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("exit", zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Imported models are fitted to this size and placed beside the tyre.
const (
	importedSize   = 3.0
	importedOffset = 5.5
)

// fitMesh centres m, scales its largest dimension to size and moves it to at.
func fitMesh(m *models.Mesh, size float64, at math3d.Vec3) *models.Mesh {
	extent := m.Size()
	maxDim := math.Max(extent.X, math.Max(extent.Y, extent.Z))
	if maxDim == 0 {
		return m.Transformed(math3d.Translate(at.Sub(m.Center())))
	}
	s := size / maxDim
	transform := math3d.Translate(at).
		Mul(math3d.ScaleUniform(s)).
		Mul(math3d.Translate(m.Center().Negate()))
	fitted := m.Transformed(transform)
	fitted.Name = m.Name
	return fitted
}

// buildAssembly creates the wheel and appends the optional imported model.
func buildAssembly(cfg *config.Config) (*scene.Assembly, error) {
	opts := scene.DefaultWheelOptions()
	asm := scene.BuildWheel(opts)

	log := logger.Named("scene")
	for _, c := range asm.Components {
		log.Debug("part built", zap.Stringer("part", c.Part),
			zap.Int("vertices", c.Mesh.VertexCount()), zap.Int("faces", c.Mesh.TriangleCount()))
	}

	if cfg.Scene.Model != "" {
		mesh, err := models.LoadGLB(cfg.Scene.Model)
		if err != nil {
			return nil, fmt.Errorf("load model: %w", err)
		}
		asm.AddMesh(fitMesh(mesh, importedSize, math3d.V3(importedOffset, 0, 0)))
		log.Info("model imported", zap.String("path", cfg.Scene.Model),
			zap.Int("vertices", mesh.VertexCount()), zap.Int("faces", mesh.TriangleCount()))
	}

	log.Info("assembly ready", zap.Int("components", len(asm.Components)), zap.Int("faces", asm.TriangleCount()))
	return asm, nil
}

// toRGBA converts shaded colours into dst, reusing its storage.
func toRGBA(dst []color.RGBA, src []lighting.RGB) []color.RGBA {
	dst = dst[:0]
	for _, c := range src {
		dst = append(dst, c.RGBA())
	}
	return dst
}

// drawFrame rasterizes one frame result: solids, then wires, then the
// translucent cut plane.
func drawFrame(rast *render.Rasterizer, fb *render.Framebuffer, res scene.FrameResult, mode scene.RenderMode, buf []color.RGBA) []color.RGBA {
	fb.Clear(res.Background.RGBA())
	rast.ClearDepth()

	for _, d := range res.Drawables {
		if d.Colors == nil {
			continue
		}
		buf = toRGBA(buf, d.Colors)
		rast.DrawMeshFlat(d.World, buf)
	}
	if mode.Wire() {
		for _, d := range res.Drawables {
			rast.DrawMeshWireframe(d.World, d.Wire.RGBA(), mode.Solid())
		}
	}
	if res.Plane != nil {
		rast.DrawPlaneOverlay(res.Plane.Corners, res.Plane.Color.RGBA(), res.Plane.Alpha)
	}
	return buf
}

// outputPath names a timestamped file in the output directory.
func outputPath(dir, prefix, ext string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%s.%s", prefix, now.Format("20060102-150405"), ext))
}

// exportMeshes collects the clipped model-space meshes of a frame, without
// the floor.
func exportMeshes(res scene.FrameResult) []*models.Mesh {
	meshes := make([]*models.Mesh, 0, len(res.Drawables))
	for _, d := range res.Drawables {
		if d.Part == scene.PartFloor {
			continue
		}
		meshes = append(meshes, d.Model)
	}
	return meshes
}

func run(cfg *config.Config) error {
	initial, err := cfg.State()
	if err != nil {
		return err
	}
	asm, err := buildAssembly(cfg)
	if err != nil {
		return err
	}

	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	logger.Info("terminal started", zap.Int("width", width), zap.Int("height", height),
		zap.Int("fps", cfg.Render.FPS), zap.Stringer("light", initial.LightMode))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	v := newViewer(cfg, initial, cancel)
	go v.handleEvents(term.Events())

	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()
	fb := render.NewFramebuffer(fbWidth, fbHeight)
	camera := render.NewCamera(initial.Distance)
	camera.SetAspectRatio(float64(fbWidth) / float64(fbHeight))
	rasterizer := render.NewRasterizer(camera, fb)

	palette := scene.DefaultPalette()
	hud := NewHUD(palette)
	cut := newSmoothValue(cfg.Render.FPS, initial.CutOffset)
	var colorBuf []color.RGBA
	lastCut := math.NaN()

	targetDuration := time.Second / time.Duration(cfg.Render.FPS)
	for {
		start := time.Now()

		select {
		case <-ctx.Done():
			logger.Info("shutdown")
			return nil
		case sz := <-v.resizes:
			term.Erase()
			term.Resize(sz.width, sz.height)
			termRenderer = render.NewTerminalRenderer(term, sz.width, sz.height)
			fbWidth, fbHeight = termRenderer.FramebufferSize()
			fb = render.NewFramebuffer(fbWidth, fbHeight)
			rasterizer = render.NewRasterizer(camera, fb)
			camera.SetAspectRatio(float64(fbWidth) / float64(fbHeight))
			logger.Debug("resized", zap.Int("width", sz.width), zap.Int("height", sz.height))
		default:
		}

		if dYaw, dPitch := v.inertia.Step(); dYaw != 0 || dPitch != 0 {
			v.controls.Orbit(dYaw, dPitch)
		}
		state := v.controls.Advance()
		target := state.CutOffset
		state.CutOffset = cut.Update(target)
		camera.SetDistance(state.Distance)

		res := scene.Frame(asm, palette, state)
		if state.CutOffset == target && target != lastCut {
			logger.Debug("cut settled", zap.Float64("offset", target),
				zap.Int("faces_in", res.FacesIn), zap.Int("faces_out", res.FacesOut))
			lastCut = target
		}

		colorBuf = drawFrame(rasterizer, fb, res, state.RenderMode, colorBuf)

		select {
		case req := <-v.requests:
			hud.Notify(v.serve(req, fb, res))
		default:
		}

		termRenderer.Render(fb)
		if v.showHUD.Load() {
			hud.Draw(termRenderer, state, res)
		}
		if err := termRenderer.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}

		if hud.UpdateFPS() {
			logger.Debug("frame", zap.Float64("fps", hud.FPS()),
				zap.Int("triangles", rasterizer.Stats.Triangles), zap.Int("culled", rasterizer.Stats.Culled),
				zap.Duration("last", time.Since(start)))
		}

		// Frame timing
		if elapsed := time.Since(start); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
