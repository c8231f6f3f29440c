package math

import "math"

// Radians converts degrees to radians.
func Radians(degrees float32) float32 {
	return degrees * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(radians float32) float32 {
	return radians * 180 / math.Pi
}

// Translation returns a translation matrix.
func Translation(v Vec3) Mat4 {
	m := Identity()
	m[3][0] = v[0]
	m[3][1] = v[1]
	m[3][2] = v[2]
	return m
}

// Scaling returns a scale matrix.
func Scaling(v Vec3) Mat4 {
	var m Mat4
	m[0][0] = v[0]
	m[1][1] = v[1]
	m[2][2] = v[2]
	m[3][3] = 1
	return m
}

// Rotation returns a rotation of angle radians about axis (Rodrigues).
// The axis is normalized here by dividing by its length; a zero axis is not
// guarded and yields NaN entries.
func Rotation(axis Vec3, angle float32) Mat4 {
	length := axis.Length()
	debugAssert(float64(length) >= Epsilon, "math: rotation axis has zero length")

	x := axis[0] / length
	y := axis[1] / length
	z := axis[2] / length

	s := float32(math.Sin(float64(angle)))
	c := float32(math.Cos(float64(angle)))
	t := 1 - c

	return Mat4{
		{x*x*t + c, x*y*t + z*s, x*z*t - y*s, 0},
		{y*x*t - z*s, y*y*t + c, y*z*t + x*s, 0},
		{z*x*t + y*s, z*y*t - x*s, z*z*t + c, 0},
		{0, 0, 0, 1},
	}
}

// RotationX returns a rotation about the X axis.
func RotationX(angle float32) Mat4 {
	return Rotation(Vec3{1, 0, 0}, angle)
}

// RotationY returns a rotation about the Y axis.
func RotationY(angle float32) Mat4 {
	return Rotation(Vec3{0, 1, 0}, angle)
}

// RotationZ returns a rotation about the Z axis.
func RotationZ(angle float32) Mat4 {
	return Rotation(Vec3{0, 0, 1}, angle)
}

// Projection returns a perspective projection with Vulkan's [0, 1] depth
// range. fov is the vertical field of view in degrees, aspect is
// width/height. View-space +Z is forward and lands in clip-space W.
func Projection(fov, aspect, near, far float32) Mat4 {
	radians := float32(float64(fov) * math.Pi / 180)
	cot := 1 / float32(math.Tan(float64(radians/2)))

	var m Mat4
	m[0][0] = cot / aspect
	m[1][1] = cot
	m[2][3] = 1
	m[2][2] = far / (far - near)
	m[3][2] = (-near * far) / (far - near)
	return m
}

// Orthographic returns an orthographic projection with Vulkan's [0, 1]
// depth range, +Z forward like Projection.
func Orthographic(left, right, bottom, top, near, far float32) Mat4 {
	var m Mat4
	m[0][0] = 2 / (right - left)
	m[1][1] = 2 / (top - bottom)
	m[2][2] = 1 / (far - near)
	m[3][0] = -(right + left) / (right - left)
	m[3][1] = -(top + bottom) / (top - bottom)
	m[3][2] = -near / (far - near)
	m[3][3] = 1
	return m
}

// LookAt returns a view matrix for a camera at position looking at target.
// up must not be parallel to target - position; that case is not guarded
// and leaves the right axis at zero.
func LookAt(position, target, up Vec3) Mat4 {
	forward := target.Sub(position).Normalized()
	right := up.Cross(forward).Normalized()
	trueUp := forward.Cross(right)

	debugAssert(right != Vec3{}, "math: look-at up vector is parallel to the view direction")

	return Mat4{
		{right[0], right[1], right[2], 0},
		{trueUp[0], trueUp[1], trueUp[2], 0},
		{-forward[0], -forward[1], -forward[2], 0},
		// Translation pairs with the un-negated forward axis.
		{-right.Dot(position), -trueUp.Dot(position), -forward.Dot(position), 1},
	}
}
