package scene

import "github.com/Faultbox/veekay/pkg/math"

// Camera defaults.
const (
	DefaultFOV  = 60.0
	DefaultNear = 0.01
	DefaultFar  = 100.0

	// RotateSensitivity is degrees of rotation per pixel of mouse drag.
	RotateSensitivity = 0.15
	// MaxPitch bounds the pitch angle in degrees.
	MaxPitch = 89.0
)

// WorldUp is the up hint used in look-at mode.
var WorldUp = math.Vec3{0, 1, 0}

// Camera is a free camera with two modes: Euler angles (Rotation, degrees)
// or look-at (Target).
type Camera struct {
	Position math.Vec3
	Rotation math.Vec3
	Target   math.Vec3

	FOV  float32 // vertical, degrees
	Near float32
	Far  float32

	LookAtMode bool
}

// NewCamera returns the camera the testbed starts with.
func NewCamera() *Camera {
	return &Camera{
		Position: math.Vec3{0, -0.5, -3},
		Target:   math.Vec3{0, -0.5, 0},
		FOV:      DefaultFOV,
		Near:     DefaultNear,
		Far:      DefaultFar,
	}
}

// View returns the view matrix for the current mode.
func (c *Camera) View() math.Mat4 {
	if c.LookAtMode {
		return math.LookAt(c.Position, c.Target, WorldUp)
	}
	return math.EulerView(c.Position, radians(c.Rotation))
}

// Projection returns the perspective projection for the given aspect ratio.
func (c *Camera) Projection(aspect float32) math.Mat4 {
	return math.Projection(c.FOV, aspect, c.Near, c.Far)
}

// ViewProjection returns View() * Projection(aspect).
func (c *Camera) ViewProjection(aspect float32) math.Mat4 {
	return math.ViewProjection(c.View(), c.Projection(aspect))
}

// SetLookAtMode switches modes. Leaving look-at mode resets the Euler
// rotation so the view does not jump to stale angles.
func (c *Camera) SetLookAtMode(on bool) {
	if c.LookAtMode == on {
		return
	}
	c.LookAtMode = on
	if !on {
		c.Rotation = math.Vec3{}
	}
}

// Rotate applies a mouse drag in pixels. It does nothing in look-at mode.
func (c *Camera) Rotate(dx, dy float32) {
	if c.LookAtMode {
		return
	}
	c.Rotation[1] -= dx * RotateSensitivity
	c.Rotation[0] -= dy * RotateSensitivity
	c.Rotation[0] = clamp(c.Rotation[0], -MaxPitch, MaxPitch)
}

// Basis returns the camera's right and front directions read back from the
// current view matrix.
func (c *Camera) Basis() (right, front math.Vec3) {
	v := c.View()
	right = math.Vec3{v[0][0], v[1][0], v[2][0]}.Normalized()
	front = math.Vec3{-v[0][2], -v[1][2], -v[2][2]}.Normalized()
	return right, front
}

// Move translates the camera along its basis. forward and right are usually
// -1, 0 or 1 from key state; up moves along world Y.
func (c *Camera) Move(forward, right, up, speed float32) {
	r, f := c.Basis()
	c.Position.AddAssign(f.Scale(forward * speed))
	c.Position.AddAssign(r.Scale(right * speed))
	c.Position[1] += up * speed
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
