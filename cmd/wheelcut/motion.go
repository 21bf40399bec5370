package main

import (
	"math"
	"sync"

	"github.com/charmbracelet/harmonica"
)

// settleEpsilon is how close a smoothed value must get before it snaps to
// its target.
const settleEpsilon = 1e-4

// RotationAxis carries the orbit speed left over after a mouse drag and
// springs it back to zero.
type RotationAxis struct {
	Velocity  float64 // degrees per frame
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewRotationAxis creates an axis with harmonica spring for smooth velocity decay
func NewRotationAxis(fps int) RotationAxis {
	return RotationAxis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update returns this frame's rotation and decays the velocity toward 0.
func (a *RotationAxis) Update() float64 {
	step := a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
	if math.Abs(a.Velocity) < settleEpsilon && math.Abs(a.velAccel) < settleEpsilon {
		a.Velocity, a.velAccel = 0, 0
	}
	return step
}

// orbitInertia lets the view keep turning briefly after a drag ends. It is
// fed by the input goroutine and stepped by the render loop.
type orbitInertia struct {
	mu         sync.Mutex
	yaw, pitch RotationAxis
	dragging   bool
	fps        int
}

func newOrbitInertia(fps int) *orbitInertia {
	return &orbitInertia{
		yaw:   NewRotationAxis(fps),
		pitch: NewRotationAxis(fps),
		fps:   fps,
	}
}

// Drag records the latest per-event drag so the release can carry it on.
func (o *orbitInertia) Drag(dYaw, dPitch float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.dragging = true
	o.yaw.Velocity, o.yaw.velAccel = dYaw, 0
	o.pitch.Velocity, o.pitch.velAccel = dPitch, 0
}

// Release lets the recorded drag coast.
func (o *orbitInertia) Release() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.dragging = false
}

// Step returns the coasting rotation for one frame; zero while dragging.
func (o *orbitInertia) Step() (dYaw, dPitch float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.dragging {
		return 0, 0
	}
	return o.yaw.Update(), o.pitch.Update()
}

// Reset stops all coasting.
func (o *orbitInertia) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.yaw = NewRotationAxis(o.fps)
	o.pitch = NewRotationAxis(o.fps)
	o.dragging = false
}

// smoothValue eases a displayed value toward a target with a critically
// damped spring. It is owned by the render loop.
type smoothValue struct {
	Position float64
	velocity float64
	spring   harmonica.Spring
}

func newSmoothValue(fps int, start float64) smoothValue {
	return smoothValue{
		Position: start,
		spring:   harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0),
	}
}

// Update moves one frame toward target and returns the new position.
func (v *smoothValue) Update(target float64) float64 {
	v.Position, v.velocity = v.spring.Update(v.Position, v.velocity, target)
	if math.Abs(v.Position-target) < settleEpsilon && math.Abs(v.velocity) < settleEpsilon {
		v.Position, v.velocity = target, 0
	}
	return v.Position
}
