package scene

import (
	"math"
	"sync"

	"github.com/taigrr/wheelcut/pkg/lighting"
)

// Control limits and steps.
const (
	CutStep       = 0.1
	ConeStep      = 2.0
	MinCone       = 5.0
	MaxCone       = 45.0
	SpinStep      = 0.5
	MinSpinSpeed  = 0.5
	OrbitDegPerPx = 0.5
	ZoomStep      = 1.0
	MinDistance   = 5.0
	MaxDistance   = 60.0
)

// State is an immutable snapshot of the controls, taken once per frame.
// Angles are in degrees.
type State struct {
	CutOffset  float64
	Clipping   bool
	ShowPlane  bool
	LightMode  lighting.Mode
	LightColor LightColor
	Cone       float64
	Soft       float64
	AimYaw     float64 // free flashlight aim
	AimPitch   float64
	Theme      Theme
	Compound   Compound
	RenderMode RenderMode
	Spinning   bool
	SpinSpeed  float64 // degrees per frame
	SpinAngle  float64
	ShowFloor  bool
	Yaw        float64 // orbit
	Pitch      float64
	Distance   float64 // camera distance from the origin
}

// DefaultState is the view a session starts from.
func DefaultState() State {
	return State{
		Clipping:   true,
		ShowPlane:  true,
		LightMode:  lighting.ModeNormal,
		LightColor: LightWhite,
		Cone:       lighting.DefaultCone,
		Soft:       lighting.DefaultSoft,
		Theme:      ThemeDark,
		Compound:   CompoundSoft,
		RenderMode: RenderSolid,
		SpinSpeed:  2.0,
		ShowFloor:  true,
		Yaw:        45,
		Pitch:      20,
		Distance:   20,
	}
}

// Controls is the mutable view configuration shared between the input
// handler and the frame loop. All methods are safe for concurrent use.
type Controls struct {
	mu      sync.Mutex
	s       State
	initial State
}

// NewControls creates controls starting from initial.
func NewControls(initial State) *Controls {
	return &Controls{s: initial, initial: initial}
}

// Snapshot returns a copy of the current state.
func (c *Controls) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.s
}

func (c *Controls) update(fn func(s *State)) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.s)
	return c.s
}

// MoveCut shifts the cut plane by delta.
func (c *Controls) MoveCut(delta float64) State {
	return c.update(func(s *State) { s.CutOffset += delta })
}

// SetCutOffset places the cut plane.
func (c *Controls) SetCutOffset(z float64) State {
	return c.update(func(s *State) { s.CutOffset = z })
}

// ToggleClipping turns clipping on or off.
func (c *Controls) ToggleClipping() State {
	return c.update(func(s *State) { s.Clipping = !s.Clipping })
}

// TogglePlane shows or hides the cut-plane overlay.
func (c *Controls) TogglePlane() State {
	return c.update(func(s *State) { s.ShowPlane = !s.ShowPlane })
}

// SetLightMode switches the lighting model.
func (c *Controls) SetLightMode(m lighting.Mode) State {
	return c.update(func(s *State) { s.LightMode = m })
}

// SetLightColor selects the light tint.
func (c *Controls) SetLightColor(lc LightColor) State {
	return c.update(func(s *State) {
		if lc >= 0 && lc < NumLightColors {
			s.LightColor = lc
		}
	})
}

// AdjustCone widens or narrows the spotlight cone within [MinCone, MaxCone].
func (c *Controls) AdjustCone(delta float64) State {
	return c.update(func(s *State) {
		s.Cone = math.Max(MinCone, math.Min(MaxCone, s.Cone+delta))
	})
}

// NextTheme cycles the theme.
func (c *Controls) NextTheme() State {
	return c.update(func(s *State) { s.Theme = s.Theme.Next() })
}

// NextCompound cycles the tyre compound.
func (c *Controls) NextCompound() State {
	return c.update(func(s *State) { s.Compound = s.Compound.Next() })
}

// SetRenderMode selects solid, wireframe or mixed drawing.
func (c *Controls) SetRenderMode(m RenderMode) State {
	return c.update(func(s *State) { s.RenderMode = m })
}

// ToggleSpin starts or stops the wheel spinning about its axle.
func (c *Controls) ToggleSpin() State {
	return c.update(func(s *State) { s.Spinning = !s.Spinning })
}

// AdjustSpinSpeed changes the spin speed, never below MinSpinSpeed.
func (c *Controls) AdjustSpinSpeed(delta float64) State {
	return c.update(func(s *State) { s.SpinSpeed = math.Max(MinSpinSpeed, s.SpinSpeed+delta) })
}

// ToggleFloor shows or hides the floor.
func (c *Controls) ToggleFloor() State {
	return c.update(func(s *State) { s.ShowFloor = !s.ShowFloor })
}

// Orbit turns the view by the given degrees.
func (c *Controls) Orbit(dYaw, dPitch float64) State {
	return c.update(func(s *State) {
		s.Yaw += dYaw
		s.Pitch += dPitch
	})
}

// AimLight turns the free flashlight; it has no effect in other modes.
func (c *Controls) AimLight(dYaw, dPitch float64) State {
	return c.update(func(s *State) {
		if s.LightMode != lighting.ModeFreeFlashlight {
			return
		}
		s.AimYaw += dYaw
		s.AimPitch += dPitch
	})
}

// Zoom moves the camera toward (negative) or away from the wheel.
func (c *Controls) Zoom(delta float64) State {
	return c.update(func(s *State) {
		s.Distance = math.Max(MinDistance, math.Min(MaxDistance, s.Distance+delta))
	})
}

// Advance steps the spin animation by one frame.
func (c *Controls) Advance() State {
	return c.update(func(s *State) {
		if !s.Spinning {
			return
		}
		s.SpinAngle = math.Mod(s.SpinAngle+s.SpinSpeed, 360)
	})
}

// Reset restores the initial view, spin angle and light aim. Other
// settings are kept.
func (c *Controls) Reset() State {
	return c.update(func(s *State) {
		s.Yaw, s.Pitch, s.Distance = c.initial.Yaw, c.initial.Pitch, c.initial.Distance
		s.SpinAngle = 0
		s.AimYaw, s.AimPitch = 0, 0
	})
}
