package scene

import (
	"errors"
	"fmt"

	"github.com/Faultbox/veekay/pkg/math"
)

// Buffer capacities on the GPU side.
const (
	MaxModels      = 1024
	MaxPointLights = 8
)

var (
	// ErrTooManyModels is returned when a scene exceeds MaxModels.
	ErrTooManyModels = errors.New("too many models")
	// ErrTooManyPointLights is returned when a scene exceeds MaxPointLights.
	ErrTooManyPointLights = errors.New("too many point lights")
	// ErrInvalidCamera is returned for a camera that cannot produce a projection.
	ErrInvalidCamera = errors.New("invalid camera")
)

// Scene is everything evaluated once per frame.
type Scene struct {
	Camera      *Camera
	Models      []Model
	Ambient     AmbientLight
	Directional DirectionalLight
	PointLights []PointLight
	Spot        SpotLight
}

// Frame is the per-frame output of a scene evaluation.
type Frame struct {
	View           math.Mat4
	Projection     math.Mat4
	ViewProjection math.Mat4
	LightSpace     math.Mat4   // directional light shadow view-projection
	Models         []math.Mat4 // one model matrix per Scene.Models entry
}

// New returns an empty scene with default camera and lights.
func New() *Scene {
	return &Scene{
		Camera:      NewCamera(),
		Ambient:     DefaultAmbientLight(),
		Directional: DefaultDirectionalLight(),
		Spot:        DefaultSpotLight(),
	}
}

// Default returns the testbed scene: a ground plane, three coloured cubes
// and two point lights.
func Default() *Scene {
	s := New()

	cube := func(name string, pos, albedo math.Vec3) Model {
		t := NewTransform()
		t.Position = pos
		return Model{
			Name:      name,
			Mesh:      "cube",
			Transform: t,
			Material:  Material{Albedo: albedo, Specular: math.Vec3{1, 1, 1}, Shininess: 64},
		}
	}

	s.Models = []Model{
		{
			Name:      "ground",
			Mesh:      "plane",
			Transform: NewTransform(),
			Material:  Material{Albedo: math.Vec3{0.8, 0.8, 0.8}, Specular: math.Vec3{0.5, 0.5, 0.5}, Shininess: 16},
		},
		cube("red", math.Vec3{-2, -0.5, -1.5}, math.Vec3{1, 0, 0}),
		cube("green", math.Vec3{1.5, -0.5, -0.5}, math.Vec3{0, 1, 0}),
		cube("blue", math.Vec3{0, -0.5, 1}, math.Vec3{0, 0, 1}),
	}
	s.PointLights = []PointLight{
		{Position: math.Vec3{2, 1, 0}, Color: math.Vec3{1, 0, 0}, Constant: 1, Linear: 0.14, Quadratic: 0.07},
		{Position: math.Vec3{-2, 1, 0}, Color: math.Vec3{0, 1, 0}, Constant: 1, Linear: 0.14, Quadratic: 0.07},
	}
	return s
}

// Validate checks the scene fits the GPU buffers and has a usable camera.
func (s *Scene) Validate() error {
	if len(s.Models) > MaxModels {
		return fmt.Errorf("%d models (max %d): %w", len(s.Models), MaxModels, ErrTooManyModels)
	}
	if len(s.PointLights) > MaxPointLights {
		return fmt.Errorf("%d point lights (max %d): %w", len(s.PointLights), MaxPointLights, ErrTooManyPointLights)
	}
	if s.Camera == nil {
		return fmt.Errorf("camera is nil: %w", ErrInvalidCamera)
	}
	c := s.Camera
	if c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("fov %v out of range (0, 180): %w", c.FOV, ErrInvalidCamera)
	}
	if c.Near <= 0 || c.Far <= c.Near {
		return fmt.Errorf("near %v / far %v: %w", c.Near, c.Far, ErrInvalidCamera)
	}
	return nil
}

// NormalizeLights rescales the directional and spot light directions.
func (s *Scene) NormalizeLights() {
	s.Directional.Normalize()
	s.Spot.Normalize()
}

// Frame evaluates the camera and every model transform.
func (s *Scene) Frame(aspect float32) Frame {
	view := s.Camera.View()
	proj := s.Camera.Projection(aspect)

	f := Frame{
		View:           view,
		Projection:     proj,
		ViewProjection: math.ViewProjection(view, proj),
		LightSpace:     s.Directional.ShadowMatrix(s.Bounds()),
		Models:         make([]math.Mat4, len(s.Models)),
	}
	for i := range s.Models {
		f.Models[i] = s.Models[i].Transform.Matrix()
	}
	return f
}
