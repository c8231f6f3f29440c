package math

// ModelMatrix composes an object transform as
//
//	Translation(position) * Rz * Ry * Rx * Scaling(scale)
//
// with rotation angles in radians.
func ModelMatrix(position, rotation, scale Vec3) Mat4 {
	t := Translation(position)
	s := Scaling(scale)
	rx := RotationX(rotation[0])
	ry := RotationY(rotation[1])
	rz := RotationZ(rotation[2])
	return t.Mul(rz).Mul(ry).Mul(rx).Mul(s)
}

// EulerView builds a camera view matrix from a position and Euler angles in
// radians by inverting each step:
//
//	Rz(-z) * Ry(-y) * Rx(-x) * Translation(-position)
func EulerView(position, rotation Vec3) Mat4 {
	t := Translation(position.Neg())
	rx := RotationX(-rotation[0])
	ry := RotationY(-rotation[1])
	rz := RotationZ(-rotation[2])
	return rz.Mul(ry).Mul(rx).Mul(t)
}

// ViewProjection returns view * projection. The operand order matters.
func ViewProjection(view, projection Mat4) Mat4 {
	return view.Mul(projection)
}
