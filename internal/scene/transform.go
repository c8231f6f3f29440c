// Package scene holds the camera, object and light state that the renderer
// turns into matrices and uniform blocks each frame.
package scene

import "github.com/Faultbox/veekay/pkg/math"

// Transform places an object in the world. Rotation is in degrees.
type Transform struct {
	Position math.Vec3
	Scale    math.Vec3
	Rotation math.Vec3
}

// NewTransform returns a transform at the origin with unit scale.
func NewTransform() Transform {
	return Transform{Scale: math.Vec3{1, 1, 1}}
}

// Matrix returns the model matrix T * Rz * Ry * Rx * S.
func (t Transform) Matrix() math.Mat4 {
	return math.ModelMatrix(t.Position, radians(t.Rotation), t.Scale)
}

// Material holds per-object shading parameters.
type Material struct {
	Albedo    math.Vec3
	Specular  math.Vec3
	Shininess float32
}

// DefaultMaterial returns a white material with shininess 32.
func DefaultMaterial() Material {
	return Material{
		Albedo:    math.Vec3{1, 1, 1},
		Specular:  math.Vec3{1, 1, 1},
		Shininess: 32,
	}
}

// Model is a mesh placed in the scene.
type Model struct {
	Name      string
	Mesh      string // "plane" or "cube"
	Transform Transform
	Material  Material
}

func radians(deg math.Vec3) math.Vec3 {
	return math.Vec3{math.Radians(deg[0]), math.Radians(deg[1]), math.Radians(deg[2])}
}
