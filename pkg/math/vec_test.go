package math

import (
	"math/rand"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("Vec2{}.Normalize() = %v, want zero", got)
	}
}

func TestVec2ScalarOps(t *testing.T) {
	v := Vec2{2, 4}
	tests := []struct {
		name string
		got  Vec2
		want Vec2
	}{
		{"AddScalar", v.AddScalar(1), Vec2{3, 5}},
		{"SubScalar", v.SubScalar(1), Vec2{1, 3}},
		{"Scale", v.Scale(2), Vec2{4, 8}},
		{"DivScalar", v.DivScalar(2), Vec2{1, 2}},
		{"Mul", v.Mul(Vec2{3, 0.5}), Vec2{6, 2}},
		{"Div", v.Div(Vec2{2, 4}), Vec2{1, 1}},
		{"Neg", v.Neg(), Vec2{-2, -4}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("Vec2.%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Accessors(t *testing.T) {
	v := Vec3{1, 2, 3}
	if v.X() != v[0] || v.Y() != v[1] || v.Z() != v[2] {
		t.Errorf("accessors disagree with indexing: %v", v)
	}
	w := Vec4{1, 2, 3, 4}
	if w.X() != 1 || w.Y() != 2 || w.Z() != 3 || w.W() != 4 {
		t.Errorf("Vec4 accessors: got %v", w)
	}
	if w.XYZ() != v {
		t.Errorf("Vec4.XYZ() = %v, want %v", w.XYZ(), v)
	}
}

func TestVec3Ops(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"Add", a.Add(b), Vec3{5, 7, 9}},
		{"Sub", a.Sub(b), Vec3{-3, -3, -3}},
		{"Mul", a.Mul(b), Vec3{4, 10, 18}},
		{"Div", b.Div(Vec3{2, 5, 3}), Vec3{2, 1, 2}},
		{"AddScalar", a.AddScalar(1), Vec3{2, 3, 4}},
		{"SubScalar", a.SubScalar(1), Vec3{0, 1, 2}},
		{"Scale", a.Scale(2), Vec3{2, 4, 6}},
		{"DivScalar", b.DivScalar(2), Vec3{2, 2.5, 3}},
		{"Neg", a.Neg(), Vec3{-1, -2, -3}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("Vec3.%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestVec3DotLength(t *testing.T) {
	v := Vec3{2, 3, 6}
	if got := v.Dot(Vec3{1, 1, 1}); got != 11 {
		t.Errorf("Dot = %v, want 11", got)
	}
	if got := v.SquaredLength(); got != 49 {
		t.Errorf("SquaredLength = %v, want 49", got)
	}
	if got := v.Length(); got != 7 {
		t.Errorf("Length = %v, want 7", got)
	}
}

func TestAssignMatchesBinaryOps(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{0.5, -4, 8}

	got := a
	got.AddAssign(b)
	if got != a.Add(b) {
		t.Errorf("AddAssign: got %v, want %v", got, a.Add(b))
	}

	got = a
	got.SubAssign(b).MulAssign(b).DivScalarAssign(2)
	want := a.Sub(b).Mul(b).DivScalar(2)
	if got != want {
		t.Errorf("chained assign: got %v, want %v", got, want)
	}

	got = a
	got.AddScalarAssign(1).SubScalarAssign(0.5).ScaleAssign(3).DivAssign(b)
	want = a.AddScalar(1).SubScalar(0.5).Scale(3).Div(b)
	if got != want {
		t.Errorf("scalar assign: got %v, want %v", got, want)
	}

	p := Vec2{1, 2}
	p.AddAssign(Vec2{1, 1}).SubAssign(Vec2{0, 1}).MulAssign(Vec2{2, 2}).DivAssign(Vec2{4, 1})
	if p != (Vec2{1, 4}) {
		t.Errorf("Vec2 assign chain: got %v", p)
	}
	p.AddScalarAssign(1).SubScalarAssign(2).ScaleAssign(2).DivScalarAssign(2)
	if p != (Vec2{0, 3}) {
		t.Errorf("Vec2 scalar assign chain: got %v", p)
	}

	q := Vec4{1, 2, 3, 4}
	q.AddAssign(Vec4{1, 1, 1, 1}).SubAssign(Vec4{0, 0, 0, 1}).MulAssign(Vec4{2, 2, 2, 2}).DivAssign(Vec4{2, 3, 4, 4})
	if q != (Vec4{2, 2, 2, 2}) {
		t.Errorf("Vec4 assign chain: got %v", q)
	}
}

func TestVec4Ops(t *testing.T) {
	a := Vec4{1, 2, 3, 4}
	b := Vec4{2, 2, 2, 2}
	if got := a.Add(b); got != (Vec4{3, 4, 5, 6}) {
		t.Errorf("Vec4.Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec4{-1, 0, 1, 2}) {
		t.Errorf("Vec4.Sub = %v", got)
	}
	if got := a.Mul(b); got != (Vec4{2, 4, 6, 8}) {
		t.Errorf("Vec4.Mul = %v", got)
	}
	if got := a.Div(b); got != (Vec4{0.5, 1, 1.5, 2}) {
		t.Errorf("Vec4.Div = %v", got)
	}
}

func TestNormalizedUnitLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := Vec3{
			rng.Float32()*200 - 100,
			rng.Float32()*200 - 100,
			rng.Float32()*200 - 100,
		}
		if v.Length() < Epsilon {
			continue
		}
		l := v.Normalized().Length()
		if abs(l-1) > 1e-5 {
			t.Fatalf("Normalized(%v).Length() = %v, want 1", v, l)
		}
	}
}

func TestNormalizedDegenerate(t *testing.T) {
	tests := []Vec3{
		{},
		{1e-7, 0, 0},
		{0, -5e-7, 5e-7},
	}
	for _, v := range tests {
		if got := v.Normalized(); got != (Vec3{}) {
			t.Errorf("Normalized(%v) = %v, want zero vector", v, got)
		}
	}
}

func TestCrossOrthogonal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		a := Vec3{rng.Float32()*20 - 10, rng.Float32()*20 - 10, rng.Float32()*20 - 10}
		b := Vec3{rng.Float32()*20 - 10, rng.Float32()*20 - 10, rng.Float32()*20 - 10}
		c := a.Cross(b)
		if d := c.Dot(a); abs(d) > 1e-2 {
			t.Fatalf("Cross(%v, %v)·a = %v, want 0", a, b, d)
		}
		if d := c.Dot(b); abs(d) > 1e-2 {
			t.Fatalf("Cross(%v, %v)·b = %v, want 0", a, b, d)
		}
	}
}
