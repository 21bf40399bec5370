package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/taigrr/wheelcut/pkg/render"
	"github.com/taigrr/wheelcut/pkg/scene"
)

// messageTTL is how long a status message stays on the HUD.
const messageTTL = 3 * time.Second

var (
	hudBg     = color.RGBA{0, 0, 0, 255}
	hudWhite  = color.RGBA{230, 230, 230, 255}
	hudGreen  = color.RGBA{80, 230, 120, 255}
	hudYellow = color.RGBA{240, 220, 90, 255}
	hudCyan   = color.RGBA{90, 210, 240, 255}
)

// HUD renders an overlay with frame stats and the current settings
type HUD struct {
	palette   *scene.Palette
	fps       float64
	fpsFrames int
	fpsTime   time.Time

	message   string
	messageAt time.Time
}

// NewHUD creates a new HUD
func NewHUD(palette *scene.Palette) *HUD {
	return &HUD{palette: palette, fpsTime: time.Now()}
}

// UpdateFPS updates the FPS counter (call once per frame). It reports true
// when a new reading is available.
func (h *HUD) UpdateFPS() bool {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed < time.Second {
		return false
	}
	h.fps = float64(h.fpsFrames) / elapsed.Seconds()
	h.fpsFrames = 0
	h.fpsTime = time.Now()
	return true
}

// FPS returns the last measured frame rate.
func (h *HUD) FPS() float64 { return h.fps }

// Notify shows a status message for a few seconds.
func (h *HUD) Notify(msg string) {
	h.message = msg
	h.messageAt = time.Now()
}

func check(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// statusLine describes the settings shown on the bottom row.
func statusLine(s scene.State) string {
	light := s.LightMode.String()
	if s.LightMode.IsSpot() {
		light = fmt.Sprintf("%s %.0f°", light, s.Cone)
	}
	return fmt.Sprintf(" cut %+.2f %s clip %s plane | light %s %s | %s | %s | spin %s %.1f ",
		s.CutOffset, check(s.Clipping), check(s.ShowPlane),
		light, s.LightColor, s.RenderMode, s.Compound, check(s.Spinning), s.SpinSpeed)
}

// Draw writes the HUD rows onto the terminal cells.
func (h *HUD) Draw(tr *render.TerminalRenderer, s scene.State, res scene.FrameResult) {
	width, height := tr.Size()

	fps := fmt.Sprintf(" %.0f FPS ", h.fps)
	tr.DrawText(0, 0, fps, hudGreen, hudBg)

	title := fmt.Sprintf(" WHEELCUT - %s ", h.palette.Theme(s.Theme).Title)
	tr.DrawText(max((width-len(title))/2, len(fps)), 0, title, hudWhite, hudBg)

	faces := fmt.Sprintf(" %d/%d faces ", res.FacesOut, res.FacesIn)
	tr.DrawText(max(width-len(faces), 0), 0, faces, hudCyan, hudBg)

	tr.DrawText(0, height-1, statusLine(s), hudWhite, hudBg)

	if h.message != "" && time.Since(h.messageAt) < messageTTL && height > 2 {
		tr.DrawText(0, height-2, " "+h.message+" ", hudYellow, hudBg)
	}
}
