package scene

import "github.com/Faultbox/veekay/pkg/math"

// AmbientLight is a constant light term.
type AmbientLight struct {
	Color math.Vec3
}

// DirectionalLight is a light at infinity, like the sun.
type DirectionalLight struct {
	Direction math.Vec3
	Color     math.Vec3
}

// PointLight is an omnidirectional light with distance attenuation
// 1 / (Constant + Linear*d + Quadratic*d*d).
type PointLight struct {
	Position  math.Vec3
	Color     math.Vec3
	Constant  float32
	Linear    float32
	Quadratic float32
}

// SpotLight is a cone light. Cutoff angles are in degrees.
type SpotLight struct {
	Position    math.Vec3
	Direction   math.Vec3
	Color       math.Vec3
	InnerCutoff float32
	OuterCutoff float32
}

// DefaultAmbientLight returns a dim grey ambient term.
func DefaultAmbientLight() AmbientLight {
	return AmbientLight{Color: math.Vec3{0.1, 0.1, 0.1}}
}

// DefaultDirectionalLight returns a white light pointing straight down.
func DefaultDirectionalLight() DirectionalLight {
	return DirectionalLight{
		Direction: math.Vec3{0, -1, 0},
		Color:     math.Vec3{1, 1, 1},
	}
}

// DefaultPointLight returns a white light one unit above the origin.
func DefaultPointLight() PointLight {
	return PointLight{
		Position:  math.Vec3{0, 1, 0},
		Color:     math.Vec3{1, 1, 1},
		Constant:  1,
		Linear:    0.09,
		Quadratic: 0.032,
	}
}

// DefaultSpotLight returns a white spot light pointing down from y=2.
func DefaultSpotLight() SpotLight {
	return SpotLight{
		Position:    math.Vec3{0, 2, 0},
		Direction:   math.Vec3{0, -1, 0},
		Color:       math.Vec3{1, 1, 1},
		InnerCutoff: 12.5,
		OuterCutoff: 17.5,
	}
}

// Normalize rescales the direction to unit length. A zero direction stays
// zero.
func (l *DirectionalLight) Normalize() {
	l.Direction = l.Direction.Normalized()
}

// Normalize rescales the direction to unit length. A zero direction stays
// zero.
func (l *SpotLight) Normalize() {
	l.Direction = l.Direction.Normalized()
}
