package render

import (
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(7, 5)
	c := color.RGBA{10, 20, 30, 255}
	fb.Clear(c)
	for i, p := range fb.Pixels {
		if p != c {
			t.Fatalf("pixel %d = %v, want %v", i, p, c)
		}
	}
}

func TestFramebufferBounds(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.SetPixel(-1, 0, red)
	fb.SetPixel(4, 0, red)
	fb.BlendPixel(0, 9, red, 1)
	if got := fb.GetPixel(10, 10); got != (color.RGBA{}) {
		t.Errorf("out of bounds GetPixel = %v", got)
	}
	for _, p := range fb.Pixels {
		if p != (color.RGBA{}) {
			t.Fatal("out of bounds write landed in the buffer")
		}
	}
}

func TestBlendPixel(t *testing.T) {
	tests := []struct {
		name  string
		alpha float64
		want  color.RGBA
	}{
		{"transparent", 0, color.RGBA{0, 0, 200, 255}},
		{"opaque", 1, color.RGBA{200, 0, 0, 255}},
		{"half", 0.5, color.RGBA{100, 0, 100, 255}},
		{"clamped", 3, color.RGBA{200, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := NewFramebuffer(1, 1)
			fb.Clear(color.RGBA{0, 0, 200, 255})
			fb.BlendPixel(0, 0, color.RGBA{200, 0, 0, 255}, tt.alpha)
			if got := fb.GetPixel(0, 0); got != tt.want {
				t.Errorf("BlendPixel = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDrawLine(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.DrawLine(0, 0, 7, 7, red)
	for i := range 8 {
		if fb.GetPixel(i, i) != red {
			t.Errorf("diagonal pixel %d not set", i)
		}
	}
	if fb.GetPixel(7, 0) == red {
		t.Error("pixel off the line was set")
	}
}

func TestBresenhamFraction(t *testing.T) {
	var ts []float64
	bresenham(0, 0, 4, 0, func(_, _ int, frac float64) { ts = append(ts, frac) })
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	if len(ts) != len(want) {
		t.Fatalf("got %d steps, want %d", len(ts), len(want))
	}
	for i := range want {
		if ts[i] != want[i] {
			t.Errorf("t[%d] = %v, want %v", i, ts[i], want[i])
		}
	}

	n := 0
	bresenham(3, 3, 3, 3, func(_, _ int, frac float64) {
		n++
		if frac != 0 {
			t.Errorf("single point fraction = %v", frac)
		}
	})
	if n != 1 {
		t.Errorf("single point plotted %d times", n)
	}
}

func TestSave(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Clear(black)
	fb.SetPixel(2, 1, red)
	dir := t.TempDir()

	t.Run("png", func(t *testing.T) {
		path := filepath.Join(dir, "shot.png")
		if err := fb.Save(path); err != nil {
			t.Fatalf("Save: %v", err)
		}
		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		img, err := png.Decode(f)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got := color.RGBAModel.Convert(img.At(2, 1)); got != red {
			t.Errorf("pixel = %v, want red", got)
		}
	})

	t.Run("bmp", func(t *testing.T) {
		path := filepath.Join(dir, "shot.BMP")
		if err := fb.Save(path); err != nil {
			t.Fatalf("Save: %v", err)
		}
		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		img, err := bmp.Decode(f)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
			t.Errorf("bounds = %v", b)
		}
		r, g, b, _ := img.At(2, 1).RGBA()
		if r>>8 != 255 || g != 0 || b != 0 {
			t.Errorf("pixel = %d,%d,%d, want red", r>>8, g>>8, b>>8)
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		err := fb.Save(filepath.Join(dir, "shot.jpg"))
		if !errors.Is(err, ErrImageFormat) {
			t.Errorf("Save(.jpg) error = %v, want ErrImageFormat", err)
		}
	})
}

func TestToImage(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.SetPixel(1, 0, blue)
	img := fb.ToImage()
	if got := img.RGBAAt(1, 0); got != blue {
		t.Errorf("RGBAAt = %v, want blue", got)
	}
}

func TestTerminalRendererSize(t *testing.T) {
	tr := NewTerminalRenderer(nil, 80, 24)
	if w, h := tr.FramebufferSize(); w != 80 || h != 48 {
		t.Errorf("FramebufferSize = %d x %d, want 80 x 48", w, h)
	}
	if w, h := tr.Size(); w != 80 || h != 24 {
		t.Errorf("Size = %d x %d", w, h)
	}
	// Off-screen rows never touch the screen.
	tr.DrawText(0, 30, "hidden", nil, nil)
}

func TestRGBAToColor(t *testing.T) {
	if rgbaToColor(color.RGBA{}) != nil {
		t.Error("transparent pixel should map to no colour")
	}
	if rgbaToColor(red) == nil {
		t.Error("opaque pixel lost its colour")
	}
}
