package math

import (
	"encoding/binary"
	"math"
)

// Mat4 is a 4x4 matrix stored as four columns.
// m[c] is column c and m[c][r] is row r of that column:
//
//	[m[0][0] m[1][0] m[2][0] m[3][0]]
//	[m[0][1] m[1][1] m[2][1] m[3][1]]
//	[m[0][2] m[1][2] m[2][2] m[3][2]]
//	[m[0][3] m[1][3] m[2][3] m[3][3]]
//
// Translation lives in m[3][0..2].
type Mat4 [4]Vec4

// Mat4Size is the size in bytes of a packed Mat4.
const Mat4Size = 64

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Column returns column c.
func (m Mat4) Column(c int) Vec4 {
	return m[c]
}

// Row returns row r gathered across the four columns.
func (m Mat4) Row(r int) Vec4 {
	return Vec4{m[0][r], m[1][r], m[2][r], m[3][r]}
}

// Mul returns m * other, defined on the column storage as
//
//	result[c][r] = sum over k of m[c][k] * other[k][r]
//
// The loop nest and accumulation order are fixed; every transform in the
// renderer is composed through this product.
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			for k := 0; k < 4; k++ {
				// The conversion keeps the product rounded before the add (no FMA).
				result[c][r] += float32(m[c][k] * other[k][r])
			}
		}
	}
	return result
}

// Transpose returns m with rows and columns swapped.
func (m Mat4) Transpose() Mat4 {
	var result Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			result[c][r] = m[r][c]
		}
	}
	return result
}

// MulVec4 applies m to v with the same convention as Mul:
//
//	result[r] = sum over k of v[k] * m[k][r]
//
// so a.MulVec4 followed by b.MulVec4 equals a.Mul(b).MulVec4. This is also
// what a shader computes for M * v on the uploaded matrix.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	var result Vec4
	for r := 0; r < 4; r++ {
		for k := 0; k < 4; k++ {
			result[r] += float32(v[k] * m[k][r])
		}
	}
	return result
}

// TransformPoint transforms a 3D point by this matrix (assumes w=1).
// The result is divided by w unless w is 0 or 1.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	v := m.MulVec4(p.Vec4(1))
	if w := v[3]; w != 0 && w != 1 {
		return Vec3{v[0] / w, v[1] / w, v[2] / w}
	}
	return v.XYZ()
}

// TransformDirection transforms a direction vector (ignores translation).
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return m.MulVec4(d.Vec4(0)).XYZ()
}

// Floats returns the 16 elements column by column, the order a uniform
// buffer expects.
func (m Mat4) Floats() [16]float32 {
	var out [16]float32
	for c := 0; c < 4; c++ {
		copy(out[c*4:], m[c][:])
	}
	return out
}

// AppendBytes appends the 64-byte little-endian column-major encoding of m.
func (m Mat4) AppendBytes(dst []byte) []byte {
	for _, f := range m.Floats() {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
	}
	return dst
}

// Bytes returns the 64-byte little-endian column-major encoding of m.
func (m Mat4) Bytes() []byte {
	return m.AppendBytes(make([]byte, 0, Mat4Size))
}

// Mat4FromBytes decodes a matrix written by AppendBytes.
// b must hold at least Mat4Size bytes.
func Mat4FromBytes(b []byte) Mat4 {
	var m Mat4
	for i := 0; i < 16; i++ {
		m[i/4][i%4] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return m
}
