package uniform

import (
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/veekay/internal/logger"
	"github.com/Faultbox/veekay/internal/scene"
	"github.com/Faultbox/veekay/pkg/math"
)

// Block sizes in bytes.
const (
	// SceneSize holds the view-projection matrix.
	SceneSize = math.Mat4Size
	// ModelSize holds the model matrix, albedo, shininess, specular and pad.
	ModelSize = math.Mat4Size + 32
	// PointLightSize holds position and color (each padded to 16), then
	// constant, linear, quadratic and pad.
	PointLightSize = 48
	// LightBufferSize is every light slot, the uint count and 36 bytes of pad.
	LightBufferSize = scene.MaxPointLights*PointLightSize + 40
	// PushConstantsSize is seven padded vec3s, two cosines and two pads.
	PushConstantsSize = 7*16 + 16
)

// Blocks holds every buffer uploaded for one frame.
type Blocks struct {
	Scene  []byte
	Models []byte
	Lights []byte
	Push   []byte
}

// DynamicOffset returns the dynamic uniform offset of model i.
func DynamicOffset(i int) uint32 {
	return uint32(i * ModelSize)
}

// EncodeScene packs the scene uniform buffer.
func EncodeScene(viewProjection math.Mat4) []byte {
	w := NewWriter(SceneSize)
	w.Mat4(viewProjection)
	return w.Bytes()
}

// EncodeModel appends one model uniform record.
func EncodeModel(w *Writer, model math.Mat4, mat scene.Material) {
	w.Mat4(model)
	w.Vec3(mat.Albedo)
	w.Float32(mat.Shininess)
	w.Vec3(mat.Specular)
	w.Pad(4)
}

// EncodeModels packs one record per model. matrices[i] belongs to models[i].
func EncodeModels(matrices []math.Mat4, models []scene.Model) ([]byte, error) {
	if len(matrices) != len(models) {
		return nil, fmt.Errorf("uniform: %d matrices for %d models", len(matrices), len(models))
	}
	if len(models) > scene.MaxModels {
		return nil, fmt.Errorf("uniform: %d models: %w", len(models), scene.ErrTooManyModels)
	}
	w := NewWriter(len(models) * ModelSize)
	for i := range models {
		EncodeModel(w, matrices[i], models[i].Material)
	}
	return w.Bytes(), nil
}

// EncodeLights packs the point light storage buffer. Unused slots are zero.
func EncodeLights(lights []scene.PointLight) ([]byte, error) {
	if len(lights) > scene.MaxPointLights {
		return nil, fmt.Errorf("uniform: %d point lights: %w", len(lights), scene.ErrTooManyPointLights)
	}
	w := NewWriter(LightBufferSize)
	for i := 0; i < scene.MaxPointLights; i++ {
		if i >= len(lights) {
			w.Pad(PointLightSize)
			continue
		}
		l := lights[i]
		w.Vec3Padded(l.Position)
		w.Vec3Padded(l.Color)
		w.Float32(l.Constant)
		w.Float32(l.Linear)
		w.Float32(l.Quadratic)
		w.Pad(4)
	}
	w.Uint32(uint32(len(lights)))
	w.Pad(36)
	return w.Bytes(), nil
}

// EncodePushConstants packs the fragment shader push constants. Spot light
// cutoffs are sent as cosines.
func EncodePushConstants(s *scene.Scene) []byte {
	w := NewWriter(PushConstantsSize)
	w.Vec3Padded(s.Camera.Position)
	w.Vec3Padded(s.Ambient.Color)
	w.Vec3Padded(s.Directional.Direction)
	w.Vec3Padded(s.Directional.Color)
	w.Vec3Padded(s.Spot.Position)
	w.Vec3Padded(s.Spot.Direction)
	w.Vec3Padded(s.Spot.Color)
	w.Float32(cosDegrees(s.Spot.InnerCutoff))
	w.Float32(cosDegrees(s.Spot.OuterCutoff))
	w.Pad(8)
	return w.Bytes()
}

// EncodeFrame evaluates the scene for the given aspect ratio and packs
// every block.
func EncodeFrame(s *scene.Scene, aspect float32) (*Blocks, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	frame := s.Frame(aspect)

	models, err := EncodeModels(frame.Models, s.Models)
	if err != nil {
		return nil, err
	}
	lights, err := EncodeLights(s.PointLights)
	if err != nil {
		return nil, err
	}

	b := &Blocks{
		Scene:  EncodeScene(frame.ViewProjection),
		Models: models,
		Lights: lights,
		Push:   EncodePushConstants(s),
	}
	logger.Debug("frame encoded",
		zap.Int("models", len(s.Models)),
		zap.Int("point_lights", len(s.PointLights)),
		zap.Int("bytes", len(b.Scene)+len(b.Models)+len(b.Lights)+len(b.Push)),
	)
	return b, nil
}

func cosDegrees(deg float32) float32 {
	return float32(gomath.Cos(float64(math.Radians(deg))))
}
