package scene

import "github.com/Faultbox/veekay/pkg/math"

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the middle of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Radius returns the half-diagonal.
func (b Bounds) Radius() float32 {
	return b.Max.Sub(b.Min).Scale(0.5).Length()
}

// Extend grows the box to contain p.
func (b *Bounds) Extend(p math.Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// Half-extents of the built-in meshes in object space. Unknown meshes are
// treated as cubes.
var meshHalfExtents = map[string]math.Vec3{
	"plane": {5, 0, 5},
	"cube":  {0.5, 0.5, 0.5},
}

// HalfExtents returns the object-space half-size of a mesh.
func HalfExtents(mesh string) math.Vec3 {
	if e, ok := meshHalfExtents[mesh]; ok {
		return e
	}
	return meshHalfExtents["cube"]
}

// Bounds returns the box around every model from its mesh extents, position
// and scale. Rotation is ignored. An empty scene has zero bounds.
func (s *Scene) Bounds() Bounds {
	if len(s.Models) == 0 {
		return Bounds{}
	}
	first := s.Models[0].Transform.Position
	b := Bounds{Min: first, Max: first}
	for _, m := range s.Models {
		half := abs3(m.Transform.Scale).Mul(HalfExtents(m.Mesh))
		b.Extend(m.Transform.Position.Sub(half))
		b.Extend(m.Transform.Position.Add(half))
	}
	return b
}

// ShadowMatrix returns the light-space view-projection that fits b into an
// orthographic shadow volume. The light sits at twice the bounds radius
// behind the center, against its travel direction.
func (l DirectionalLight) ShadowMatrix(b Bounds) math.Mat4 {
	center := b.Center()
	radius := b.Radius()
	if radius < math.Epsilon {
		radius = 1
	}

	toLight := l.Direction.Normalized().Neg()
	distance := radius * 2
	eye := center.Add(toLight.Scale(distance))

	// A vertical light needs a different up hint.
	up := WorldUp
	if abs32(toLight[1]) > 0.99 {
		up = math.Vec3{0, 0, 1}
	}
	view := math.LookAt(eye, center, up)

	padding := radius * 0.1
	half := radius + padding
	proj := math.Orthographic(-half, half, -half, half, 0.1, distance+radius+padding)

	return math.ViewProjection(view, proj)
}

func abs3(v math.Vec3) math.Vec3 {
	return math.Vec3{abs32(v[0]), abs32(v[1]), abs32(v[2])}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
