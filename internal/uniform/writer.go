// Package uniform packs scene state into the byte layouts the shaders read:
// the scene uniform buffer, the dynamic per-model uniform buffer, the point
// light storage buffer and the fragment push constants.
//
// All values are little-endian 32-bit. A vec3 is always followed by one
// float of padding or by a scalar that fills the 16-byte slot.
package uniform

import (
	"encoding/binary"
	gomath "math"

	"github.com/Faultbox/veekay/pkg/math"
)

// Writer appends GPU-layout values to a byte slice.
type Writer struct {
	buf []byte
}

// NewWriter returns a writer with room for size bytes.
func NewWriter(size int) *Writer {
	return &Writer{buf: make([]byte, 0, size)}
}

// Float32 appends a float.
func (w *Writer) Float32(f float32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, gomath.Float32bits(f))
}

// Uint32 appends an unsigned integer.
func (w *Writer) Uint32(u uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, u)
}

// Vec3 appends three floats without padding.
func (w *Writer) Vec3(v math.Vec3) {
	w.Float32(v[0])
	w.Float32(v[1])
	w.Float32(v[2])
}

// Vec3Padded appends a vec3 and one float of padding.
func (w *Writer) Vec3Padded(v math.Vec3) {
	w.Vec3(v)
	w.Pad(4)
}

// Mat4 appends 64 bytes, column-major.
func (w *Writer) Mat4(m math.Mat4) {
	w.buf = m.AppendBytes(w.buf)
}

// Pad appends n zero bytes.
func (w *Writer) Pad(n int) {
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, 0)
	}
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf
}
