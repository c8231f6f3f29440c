package scene

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/veekay/pkg/math"
)

func TestNewCamera(t *testing.T) {
	c := NewCamera()

	assert.Equal(t, math.Vec3{0, -0.5, -3}, c.Position)
	assert.Equal(t, math.Vec3{0, -0.5, 0}, c.Target)
	assert.Equal(t, float32(60), c.FOV)
	assert.Equal(t, float32(0.01), c.Near)
	assert.Equal(t, float32(100), c.Far)
	assert.False(t, c.LookAtMode)
}

func TestCameraViewModes(t *testing.T) {
	c := NewCamera()
	c.Rotation = math.Vec3{10, 20, 30}

	want := math.EulerView(c.Position, math.Vec3{math.Radians(10), math.Radians(20), math.Radians(30)})
	assert.Equal(t, want, c.View())

	c.SetLookAtMode(true)
	assert.Equal(t, math.LookAt(c.Position, c.Target, math.Vec3{0, 1, 0}), c.View())

	aspect := float32(16.0 / 9.0)
	assert.Equal(t, c.View().Mul(math.Projection(60, aspect, 0.01, 100)), c.ViewProjection(aspect))
}

func TestCameraLeavingLookAtResetsRotation(t *testing.T) {
	c := NewCamera()
	c.Rotation = math.Vec3{5, 5, 5}

	c.SetLookAtMode(true)
	assert.Equal(t, math.Vec3{5, 5, 5}, c.Rotation, "entering look-at keeps angles")

	c.SetLookAtMode(false)
	assert.Equal(t, math.Vec3{}, c.Rotation)
}

func TestCameraRotate(t *testing.T) {
	c := NewCamera()

	c.Rotate(10, 0)
	assert.InDelta(t, -1.5, c.Rotation[1], 1e-6)

	c.Rotate(0, -1000)
	assert.Equal(t, float32(MaxPitch), c.Rotation[0])

	c.Rotate(0, 2000)
	assert.Equal(t, float32(-MaxPitch), c.Rotation[0])

	c.SetLookAtMode(true)
	before := c.Rotation
	c.Rotate(100, 100)
	assert.Equal(t, before, c.Rotation, "rotation is ignored in look-at mode")
}

func TestCameraBasisAndMove(t *testing.T) {
	c := NewCamera()

	right, front := c.Basis()
	assert.Equal(t, math.Vec3{1, 0, 0}, right)
	assert.Equal(t, math.Vec3{0, 0, -1}, front)

	c.Move(1, 0, 0, 1)
	assert.Equal(t, math.Vec3{0, -0.5, -4}, c.Position)

	c.Move(0, 1, 0, 0.5)
	assert.Equal(t, math.Vec3{0.5, -0.5, -4}, c.Position)

	c.Move(0, 0, 1, 0.25)
	assert.Equal(t, math.Vec3{0.5, -0.25, -4}, c.Position)
}

func TestTransformMatrix(t *testing.T) {
	tr := NewTransform()
	assert.Equal(t, math.Identity(), tr.Matrix())

	tr.Position = math.Vec3{1, 2, 3}
	tr.Rotation = math.Vec3{0, 90, 0}
	tr.Scale = math.Vec3{2, 2, 2}

	want := math.ModelMatrix(tr.Position, math.Vec3{0, math.Radians(90), 0}, tr.Scale)
	assert.Equal(t, want, tr.Matrix())
}

func TestDefaultScene(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())

	require.Len(t, s.Models, 4)
	assert.Equal(t, "plane", s.Models[0].Mesh)
	assert.Equal(t, math.Vec3{1, 0, 0}, s.Models[1].Material.Albedo)
	assert.Equal(t, float32(64), s.Models[3].Material.Shininess)
	require.Len(t, s.PointLights, 2)
	red, green := s.PointLights[0], s.PointLights[1]
	assert.Equal(t, math.Vec3{2, 1, 0}, red.Position)
	assert.Equal(t, math.Vec3{1, 0, 0}, red.Color)
	assert.Equal(t, math.Vec3{-2, 1, 0}, green.Position)
	assert.Equal(t, math.Vec3{0, 1, 0}, green.Color)
	for _, l := range s.PointLights {
		assert.Equal(t, float32(1), l.Constant)
		assert.Equal(t, float32(0.14), l.Linear)
		assert.Equal(t, float32(0.07), l.Quadratic)
	}

	f := s.Frame(16.0 / 9.0)
	require.Len(t, f.Models, 4)
	assert.Equal(t, math.Identity(), f.Models[0])
	assert.Equal(t, math.Vec4{-2, -0.5, -1.5, 1}, f.Models[1][3])
	assert.Equal(t, f.View.Mul(f.Projection), f.ViewProjection)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scene)
		want   error
	}{
		{"too many models", func(s *Scene) { s.Models = make([]Model, MaxModels+1) }, ErrTooManyModels},
		{"too many lights", func(s *Scene) { s.PointLights = make([]PointLight, MaxPointLights+1) }, ErrTooManyPointLights},
		{"nil camera", func(s *Scene) { s.Camera = nil }, ErrInvalidCamera},
		{"zero fov", func(s *Scene) { s.Camera.FOV = 0 }, ErrInvalidCamera},
		{"far before near", func(s *Scene) { s.Camera.Far = 0.001 }, ErrInvalidCamera},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			assert.ErrorIs(t, s.Validate(), tt.want)
		})
	}
}

func TestNormalizeLights(t *testing.T) {
	s := New()
	s.Directional.Direction = math.Vec3{0, -2, 0}
	s.Spot.Direction = math.Vec3{}

	s.NormalizeLights()
	assert.Equal(t, math.Vec3{0, -1, 0}, s.Directional.Direction)
	assert.Equal(t, math.Vec3{}, s.Spot.Direction, "zero direction stays zero")
}

func TestSceneBounds(t *testing.T) {
	assert.Equal(t, Bounds{}, New().Bounds())

	// The 10x10 ground plane encloses every cube in x and z.
	b := Default().Bounds()
	assert.Equal(t, math.Vec3{-5, -1, -5}, b.Min)
	assert.Equal(t, math.Vec3{5, 0, 5}, b.Max)
	assert.Equal(t, math.Vec3{0, -0.5, 0}, b.Center())
	assert.InDelta(t, 7.0887, b.Radius(), 1e-3)

	s := New()
	s.Models = []Model{{Mesh: "cube", Transform: Transform{Position: math.Vec3{1, 1, 1}, Scale: math.Vec3{2, -4, 1}}}}
	b = s.Bounds()
	assert.Equal(t, math.Vec3{0, -1, 0.5}, b.Min)
	assert.Equal(t, math.Vec3{2, 3, 1.5}, b.Max)

	assert.Equal(t, math.Vec3{5, 0, 5}, HalfExtents("plane"))
	assert.Equal(t, HalfExtents("cube"), HalfExtents("teapot"))
}

func TestShadowMatrix(t *testing.T) {
	s := Default()
	b := s.Bounds()

	// Straight down: the up hint must be swapped or the right axis vanishes.
	down := DefaultDirectionalLight().ShadowMatrix(b)
	assert.NotEqual(t, math.Vec4{}, down[0])

	slanted := DirectionalLight{Direction: math.Vec3{1, -1, 0.5}, Color: math.Vec3{1, 1, 1}}
	for _, m := range []math.Mat4{down, slanted.ShadowMatrix(b), slanted.ShadowMatrix(Bounds{})} {
		for c := 0; c < 4; c++ {
			for r := 0; r < 4; r++ {
				assert.False(t, gomath.IsNaN(float64(m[c][r])), "element [%d][%d]", c, r)
			}
		}
	}

	f := s.Frame(1)
	assert.Equal(t, s.Directional.ShadowMatrix(b), f.LightSpace)
}
