package math

import "math"

// Epsilon is the length below which a vector has no usable direction.
const Epsilon = 1e-6

// Vec3 is a 3D vector.
type Vec3 [3]float32

// X returns the first component.
func (v Vec3) X() float32 { return v[0] }

// Y returns the second component.
func (v Vec3) Y() float32 { return v[1] }

// Z returns the third component.
func (v Vec3) Z() float32 { return v[2] }

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

// AddScalar returns v with s added to every component.
func (v Vec3) AddScalar(s float32) Vec3 {
	return Vec3{v[0] + s, v[1] + s, v[2] + s}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v[0] - other[0], v[1] - other[1], v[2] - other[2]}
}

// SubScalar returns v with s subtracted from every component.
func (v Vec3) SubScalar(s float32) Vec3 {
	return Vec3{v[0] - s, v[1] - s, v[2] - s}
}

// Mul returns the component-wise product.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v[0] * other[0], v[1] * other[1], v[2] * other[2]}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Div returns the component-wise quotient.
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{v[0] / other[0], v[1] / other[1], v[2] / other[2]}
}

// DivScalar returns v / scalar.
func (v Vec3) DivScalar(s float32) Vec3 {
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// AddAssign sets v to v + other and returns v.
func (v *Vec3) AddAssign(other Vec3) *Vec3 {
	*v = v.Add(other)
	return v
}

// AddScalarAssign adds s to every component of v and returns v.
func (v *Vec3) AddScalarAssign(s float32) *Vec3 {
	*v = v.AddScalar(s)
	return v
}

// SubAssign sets v to v - other and returns v.
func (v *Vec3) SubAssign(other Vec3) *Vec3 {
	*v = v.Sub(other)
	return v
}

// SubScalarAssign subtracts s from every component of v and returns v.
func (v *Vec3) SubScalarAssign(s float32) *Vec3 {
	*v = v.SubScalar(s)
	return v
}

// MulAssign multiplies v component-wise by other and returns v.
func (v *Vec3) MulAssign(other Vec3) *Vec3 {
	*v = v.Mul(other)
	return v
}

// ScaleAssign multiplies v by s and returns v.
func (v *Vec3) ScaleAssign(s float32) *Vec3 {
	*v = v.Scale(s)
	return v
}

// DivAssign divides v component-wise by other and returns v.
func (v *Vec3) DivAssign(other Vec3) *Vec3 {
	*v = v.Div(other)
	return v
}

// DivScalarAssign divides v by s and returns v.
func (v *Vec3) DivScalarAssign(s float32) *Vec3 {
	*v = v.DivScalar(s)
	return v
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2]
}

// SquaredLength returns v.Dot(v).
func (v Vec3) SquaredLength() float32 {
	return v.Dot(v)
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.SquaredLength())))
}

// Normalized returns v scaled to unit length. Vectors shorter than Epsilon
// come back as the zero vector, which callers must read as "no direction".
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if float64(l) < Epsilon {
		return Vec3{}
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// Cross returns the right-handed cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
	}
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Vec4 extends v with a fourth component.
func (v Vec3) Vec4(w float32) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}
