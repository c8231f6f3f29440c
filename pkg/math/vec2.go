// Package math provides the vector and matrix algebra used to build
// model, view and projection transforms for the renderer.
//
// Matrices are stored as four Vec4 columns. Mat4.Mul and Mat4.MulVec4 share
// one convention, so A.Mul(B) applies A first and B second. The 16 floats
// uploaded to the GPU are the columns in order.
package math

import "math"

// Vec2 is a 2D vector.
type Vec2 [2]float32

// X returns the first component.
func (v Vec2) X() float32 { return v[0] }

// Y returns the second component.
func (v Vec2) Y() float32 { return v[1] }

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v[0] + other[0], v[1] + other[1]}
}

// AddScalar returns v with s added to every component.
func (v Vec2) AddScalar(s float32) Vec2 {
	return Vec2{v[0] + s, v[1] + s}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v[0] - other[0], v[1] - other[1]}
}

// SubScalar returns v with s subtracted from every component.
func (v Vec2) SubScalar(s float32) Vec2 {
	return Vec2{v[0] - s, v[1] - s}
}

// Mul returns the component-wise product.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v[0] * other[0], v[1] * other[1]}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v[0] * s, v[1] * s}
}

// Div returns the component-wise quotient.
func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v[0] / other[0], v[1] / other[1]}
}

// DivScalar returns v / scalar.
func (v Vec2) DivScalar(s float32) Vec2 {
	return Vec2{v[0] / s, v[1] / s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v[0], -v[1]}
}

// AddAssign sets v to v + other and returns v.
func (v *Vec2) AddAssign(other Vec2) *Vec2 {
	*v = v.Add(other)
	return v
}

// AddScalarAssign adds s to every component of v and returns v.
func (v *Vec2) AddScalarAssign(s float32) *Vec2 {
	*v = v.AddScalar(s)
	return v
}

// SubAssign sets v to v - other and returns v.
func (v *Vec2) SubAssign(other Vec2) *Vec2 {
	*v = v.Sub(other)
	return v
}

// SubScalarAssign subtracts s from every component of v and returns v.
func (v *Vec2) SubScalarAssign(s float32) *Vec2 {
	*v = v.SubScalar(s)
	return v
}

// MulAssign multiplies v component-wise by other and returns v.
func (v *Vec2) MulAssign(other Vec2) *Vec2 {
	*v = v.Mul(other)
	return v
}

// ScaleAssign multiplies v by s and returns v.
func (v *Vec2) ScaleAssign(s float32) *Vec2 {
	*v = v.Scale(s)
	return v
}

// DivAssign divides v component-wise by other and returns v.
func (v *Vec2) DivAssign(other Vec2) *Vec2 {
	*v = v.Div(other)
	return v
}

// DivScalarAssign divides v by s and returns v.
func (v *Vec2) DivScalarAssign(s float32) *Vec2 {
	*v = v.DivScalar(s)
	return v
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v[0]*other[0] + v[1]*other[1]
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns a unit vector, or the zero vector when v is shorter
// than Epsilon.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if float64(l) < Epsilon {
		return Vec2{}
	}
	return Vec2{v[0] / l, v[1] / l}
}
