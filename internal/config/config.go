// Package config handles scene configuration loading and management.
package config

import (
	"github.com/Faultbox/veekay/internal/scene"
	"github.com/Faultbox/veekay/pkg/math"
)

// Config holds a scene description plus runtime settings.
// Vectors are written as [x, y, z]; angles are in degrees.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Models  []ModelConfig `yaml:"models"`
	Lights  LightsConfig  `yaml:"lights"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds the framebuffer size used for the aspect ratio.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CameraConfig holds the camera state.
type CameraConfig struct {
	Position math.Vec3 `yaml:"position"`
	Rotation math.Vec3 `yaml:"rotation"`
	Target   math.Vec3 `yaml:"target"`
	LookAt   bool      `yaml:"look_at"`
	FOV      float32   `yaml:"fov"`
	Near     float32   `yaml:"near"`
	Far      float32   `yaml:"far"`
}

// ModelConfig places one mesh. A zero scale is read as {1, 1, 1}.
type ModelConfig struct {
	Name      string    `yaml:"name"`
	Mesh      string    `yaml:"mesh"`
	Position  math.Vec3 `yaml:"position"`
	Rotation  math.Vec3 `yaml:"rotation"`
	Scale     math.Vec3 `yaml:"scale"`
	Albedo    math.Vec3 `yaml:"albedo"`
	Specular  math.Vec3 `yaml:"specular"`
	Shininess float32   `yaml:"shininess"`
}

// LightsConfig holds every light in the scene.
type LightsConfig struct {
	Ambient     math.Vec3          `yaml:"ambient"`
	Directional DirectionalConfig  `yaml:"directional"`
	Points      []PointLightConfig `yaml:"points"`
	Spot        SpotLightConfig    `yaml:"spot"`
}

// DirectionalConfig describes the directional light.
type DirectionalConfig struct {
	Direction math.Vec3 `yaml:"direction"`
	Color     math.Vec3 `yaml:"color"`
}

// PointLightConfig describes one point light.
type PointLightConfig struct {
	Position  math.Vec3 `yaml:"position"`
	Color     math.Vec3 `yaml:"color"`
	Constant  float32   `yaml:"constant"`
	Linear    float32   `yaml:"linear"`
	Quadratic float32   `yaml:"quadratic"`
}

// SpotLightConfig describes the spot light. Cutoffs are in degrees.
type SpotLightConfig struct {
	Position    math.Vec3 `yaml:"position"`
	Direction   math.Vec3 `yaml:"direction"`
	Color       math.Vec3 `yaml:"color"`
	InnerCutoff float32   `yaml:"inner_cutoff"`
	OuterCutoff float32   `yaml:"outer_cutoff"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config describing the default testbed scene.
func Default() *Config {
	cfg := FromScene(scene.Default())
	cfg.Window = WindowConfig{Width: 1280, Height: 720}
	cfg.Logging = LoggingConfig{Level: "info"}
	return cfg
}

// FromScene captures a scene as configuration.
func FromScene(s *scene.Scene) *Config {
	cfg := &Config{
		Camera: CameraConfig{
			Position: s.Camera.Position,
			Rotation: s.Camera.Rotation,
			Target:   s.Camera.Target,
			LookAt:   s.Camera.LookAtMode,
			FOV:      s.Camera.FOV,
			Near:     s.Camera.Near,
			Far:      s.Camera.Far,
		},
		Lights: LightsConfig{
			Ambient: s.Ambient.Color,
			Directional: DirectionalConfig{
				Direction: s.Directional.Direction,
				Color:     s.Directional.Color,
			},
			Spot: SpotLightConfig{
				Position:    s.Spot.Position,
				Direction:   s.Spot.Direction,
				Color:       s.Spot.Color,
				InnerCutoff: s.Spot.InnerCutoff,
				OuterCutoff: s.Spot.OuterCutoff,
			},
		},
	}
	for _, m := range s.Models {
		cfg.Models = append(cfg.Models, ModelConfig{
			Name:      m.Name,
			Mesh:      m.Mesh,
			Position:  m.Transform.Position,
			Rotation:  m.Transform.Rotation,
			Scale:     m.Transform.Scale,
			Albedo:    m.Material.Albedo,
			Specular:  m.Material.Specular,
			Shininess: m.Material.Shininess,
		})
	}
	for _, l := range s.PointLights {
		cfg.Lights.Points = append(cfg.Lights.Points, PointLightConfig(l))
	}
	return cfg
}

// Scene builds the runtime scene. Light directions are normalized.
func (c *Config) Scene() *scene.Scene {
	s := scene.New()
	s.Camera = &scene.Camera{
		Position:   c.Camera.Position,
		Rotation:   c.Camera.Rotation,
		Target:     c.Camera.Target,
		FOV:        c.Camera.FOV,
		Near:       c.Camera.Near,
		Far:        c.Camera.Far,
		LookAtMode: c.Camera.LookAt,
	}

	for _, m := range c.Models {
		t := scene.NewTransform()
		t.Position = m.Position
		t.Rotation = m.Rotation
		if m.Scale != (math.Vec3{}) {
			t.Scale = m.Scale
		}
		s.Models = append(s.Models, scene.Model{
			Name:      m.Name,
			Mesh:      m.Mesh,
			Transform: t,
			Material: scene.Material{
				Albedo:    m.Albedo,
				Specular:  m.Specular,
				Shininess: m.Shininess,
			},
		})
	}

	s.Ambient.Color = c.Lights.Ambient
	s.Directional = scene.DirectionalLight(c.Lights.Directional)
	for _, l := range c.Lights.Points {
		s.PointLights = append(s.PointLights, scene.PointLight(l))
	}
	s.Spot = scene.SpotLight(c.Lights.Spot)
	s.NormalizeLights()
	return s
}

// Aspect returns width / height.
func (c *Config) Aspect() float32 {
	return float32(c.Window.Width) / float32(c.Window.Height)
}
