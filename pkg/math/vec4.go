package math

// Vec4 is a 4-component vector. It is also the column type of Mat4.
type Vec4 [4]float32

// X returns the first component.
func (v Vec4) X() float32 { return v[0] }

// Y returns the second component.
func (v Vec4) Y() float32 { return v[1] }

// Z returns the third component.
func (v Vec4) Z() float32 { return v[2] }

// W returns the fourth component.
func (v Vec4) W() float32 { return v[3] }

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v[0] - other[0], v[1] - other[1], v[2] - other[2], v[3] - other[3]}
}

// Mul returns the component-wise product.
func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{v[0] * other[0], v[1] * other[1], v[2] * other[2], v[3] * other[3]}
}

// Div returns the component-wise quotient.
func (v Vec4) Div(other Vec4) Vec4 {
	return Vec4{v[0] / other[0], v[1] / other[1], v[2] / other[2], v[3] / other[3]}
}

// AddAssign sets v to v + other and returns v.
func (v *Vec4) AddAssign(other Vec4) *Vec4 {
	*v = v.Add(other)
	return v
}

// SubAssign sets v to v - other and returns v.
func (v *Vec4) SubAssign(other Vec4) *Vec4 {
	*v = v.Sub(other)
	return v
}

// MulAssign multiplies v component-wise by other and returns v.
func (v *Vec4) MulAssign(other Vec4) *Vec4 {
	*v = v.Mul(other)
	return v
}

// DivAssign divides v component-wise by other and returns v.
func (v *Vec4) DivAssign(other Vec4) *Vec4 {
	*v = v.Div(other)
	return v
}

// XYZ drops the fourth component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}
