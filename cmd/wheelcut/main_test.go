package main

import (
	"context"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/taigrr/wheelcut/internal/config"
	"github.com/taigrr/wheelcut/pkg/lighting"
	"github.com/taigrr/wheelcut/pkg/math3d"
	"github.com/taigrr/wheelcut/pkg/models"
	"github.com/taigrr/wheelcut/pkg/render"
	"github.com/taigrr/wheelcut/pkg/scene"
)

func TestFitMesh(t *testing.T) {
	m := models.NewMesh("box",
		[]math3d.Vec3{{X: 10, Y: 10, Z: 10}, {X: 14, Y: 12, Z: 11}, {X: 10, Y: 12, Z: 10}},
		[]models.Face{{0, 1, 2}},
	)
	at := math3d.V3(5, 0, 0)
	fitted := fitMesh(m, 2, at)

	if got := fitted.Size().X; math.Abs(got-2) > 1e-9 {
		t.Errorf("largest dimension = %v, want 2", got)
	}
	if !fitted.Center().ApproxEqual(at, 1e-9) {
		t.Errorf("centre = %v, want %v", fitted.Center(), at)
	}
	if fitted.Name != "box" {
		t.Errorf("name = %q", fitted.Name)
	}
	if m.Vertices[0] != (math3d.Vec3{X: 10, Y: 10, Z: 10}) {
		t.Error("fitMesh modified its input")
	}
}

func TestToRGBAReusesBuffer(t *testing.T) {
	buf := make([]color.RGBA, 0, 4)
	out := toRGBA(buf, []lighting.RGB{{R: 1}, lighting.Gray(0)})
	if len(out) != 2 || out[0] != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("toRGBA = %v", out)
	}
	if &out[0] != &buf[:1][0] {
		t.Error("buffer not reused")
	}
}

func TestDrawFrame(t *testing.T) {
	asm := scene.BuildWheel(scene.DefaultWheelOptions())
	state := scene.DefaultState()
	state.RenderMode = scene.RenderMixed
	res := scene.Frame(asm, scene.DefaultPalette(), state)

	fb := render.NewFramebuffer(80, 48)
	camera := render.NewCamera(state.Distance)
	camera.SetAspectRatio(80.0 / 48.0)
	rast := render.NewRasterizer(camera, fb)

	drawFrame(rast, fb, res, state.RenderMode, nil)

	bg := res.Background.RGBA()
	if fb.GetPixel(0, 0) != bg {
		t.Errorf("corner = %v, want background %v", fb.GetPixel(0, 0), bg)
	}
	if fb.GetPixel(40, 24) == bg {
		t.Error("wheel centre not drawn")
	}
	if rast.Stats.Triangles == 0 {
		t.Error("no triangles submitted")
	}
}

func TestExportMeshesSkipsFloor(t *testing.T) {
	res := scene.Frame(scene.BuildWheel(scene.DefaultWheelOptions()), scene.DefaultPalette(), scene.DefaultState())
	meshes := exportMeshes(res)
	if len(meshes) != len(res.Drawables)-1 {
		t.Fatalf("exported %d meshes from %d drawables", len(meshes), len(res.Drawables))
	}
	for _, m := range meshes {
		if m.Name == "floor" {
			t.Error("floor exported")
		}
	}
}

func TestServeRequests(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Dir = filepath.Join(t.TempDir(), "out")
	v := newViewer(cfg, scene.DefaultState(), func() {})

	res := scene.Frame(scene.BuildWheel(scene.DefaultWheelOptions()), scene.DefaultPalette(), scene.DefaultState())
	fb := render.NewFramebuffer(8, 8)

	msg := v.serve(requestScreenshot, fb, res)
	if !strings.HasPrefix(msg, "saved ") {
		t.Fatalf("screenshot message = %q", msg)
	}
	if _, err := os.Stat(strings.TrimPrefix(msg, "saved ")); err != nil {
		t.Errorf("screenshot missing: %v", err)
	}

	msg = v.serve(requestExport, fb, res)
	if !strings.HasPrefix(msg, "exported ") {
		t.Fatalf("export message = %q", msg)
	}
	mesh, err := models.LoadGLB(strings.TrimPrefix(msg, "exported "))
	if err != nil {
		t.Fatalf("reload export: %v", err)
	}
	if mesh.TriangleCount() != res.FacesOut {
		t.Errorf("exported %d faces, want %d", mesh.TriangleCount(), res.FacesOut)
	}
}

func TestRequestQueueDrops(t *testing.T) {
	v := newViewer(config.Default(), scene.DefaultState(), context.CancelFunc(func() {}))
	for range cap(v.requests) + 3 {
		v.request(requestScreenshot)
	}
	if len(v.requests) != cap(v.requests) {
		t.Errorf("queue length = %d", len(v.requests))
	}
}

func TestRotationAxisDecays(t *testing.T) {
	a := NewRotationAxis(30)
	a.Velocity = 5
	total := 0.0
	for range 300 {
		total += a.Update()
	}
	if a.Velocity != 0 {
		t.Errorf("velocity = %v after settling, want 0", a.Velocity)
	}
	if total <= 5 {
		t.Errorf("coasting travelled %v, want more than the first step", total)
	}
}

func TestOrbitInertia(t *testing.T) {
	o := newOrbitInertia(30)
	o.Drag(2, -1)
	if y, p := o.Step(); y != 0 || p != 0 {
		t.Errorf("Step while dragging = %v, %v", y, p)
	}
	o.Release()
	if y, p := o.Step(); y != 2 || p != -1 {
		t.Errorf("first coasting step = %v, %v, want 2, -1", y, p)
	}
	o.Reset()
	if y, p := o.Step(); y != 0 || p != 0 {
		t.Errorf("Step after reset = %v, %v", y, p)
	}
}

func TestSmoothValueSettles(t *testing.T) {
	v := newSmoothValue(30, 0)
	first := v.Update(1)
	if first <= 0 || first >= 1 {
		t.Errorf("first step = %v, want strictly between start and target", first)
	}
	for range 300 {
		v.Update(1)
	}
	if v.Position != 1 {
		t.Errorf("position = %v, want exactly 1", v.Position)
	}
}

func TestStatusLine(t *testing.T) {
	s := scene.DefaultState()
	s.LightMode = lighting.ModeFlashlight
	s.CutOffset = 0.3
	line := statusLine(s)
	for _, want := range []string{"cut +0.30", "flashlight 20°", "solid", "soft"} {
		if !strings.Contains(line, want) {
			t.Errorf("status %q missing %q", line, want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	now := time.Date(2026, 3, 1, 14, 5, 9, 0, time.UTC)
	if got := outputPath("shots", "wheelcut", "bmp", now); got != filepath.Join("shots", "wheelcut-20260301-140509.bmp") {
		t.Errorf("outputPath = %q", got)
	}
}
