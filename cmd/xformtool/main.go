// xformtool evaluates veekay transforms and scenes from the command line.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/veekay/internal/config"
	"github.com/Faultbox/veekay/internal/logger"
	"github.com/Faultbox/veekay/internal/scene"
	"github.com/Faultbox/veekay/internal/uniform"
	"github.com/Faultbox/veekay/pkg/math"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	// Warnings go to stderr from the start; scene commands re-init from config.
	if err := logger.Init("info", ""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var err error
	switch command {
	case "model":
		err = cmdModel(os.Stdout, args)
	case "lookat":
		err = cmdLookAt(os.Stdout, args)
	case "project":
		err = cmdProject(os.Stdout, args)
	case "frame":
		err = cmdFrame(os.Stdout, args)
	case "dump":
		err = cmdDump(os.Stdout, args)
	case "init":
		err = cmdInit(os.Stdout, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func printUsage() {
	fmt.Println(`xformtool - veekay transform and scene utility

Usage:
  xformtool <command> [options]

Commands:
  model   -pos x,y,z -rot x,y,z -scale x,y,z   Print a model matrix (degrees)
  lookat  -eye x,y,z -target x,y,z -up x,y,z   Print a look-at view matrix
  project -fov 60 -aspect 1.78 -near 0.01 -far 100
                                               Print a perspective projection
  frame   [scene flags]                        Evaluate a scene and print its matrices
  dump    [scene flags] [output]               Pack the frame's GPU blocks (hex if no output)
  init    [path]                               Write the default scene config

Scene flags:
  -config scene.yaml  -width N  -height N  -fov DEG  -lookat  -debug  -log FILE

Examples:
  xformtool model -pos 0,1,0 -rot 0,45,0
  xformtool frame -config scene.yaml -width 1920 -height 1080
  xformtool dump -lookat frame.bin`)
}

func cmdModel(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("model", flag.ContinueOnError)
	pos := vec3Flag{}
	rot := vec3Flag{}
	scale := vec3Flag{1, 1, 1}
	fs.Var(&pos, "pos", "position x,y,z")
	fs.Var(&rot, "rot", "rotation x,y,z in degrees")
	fs.Var(&scale, "scale", "scale x,y,z")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t := scene.Transform{
		Position: math.Vec3(pos),
		Rotation: math.Vec3(rot),
		Scale:    math.Vec3(scale),
	}
	printMat4(w, "model", t.Matrix())
	return nil
}

func cmdLookAt(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("lookat", flag.ContinueOnError)
	eye := vec3Flag{}
	target := vec3Flag{0, 0, 1}
	up := vec3Flag(scene.WorldUp)
	fs.Var(&eye, "eye", "camera position x,y,z")
	fs.Var(&target, "target", "look-at target x,y,z")
	fs.Var(&up, "up", "up hint x,y,z")
	if err := fs.Parse(args); err != nil {
		return err
	}

	forward := math.Vec3(target).Sub(math.Vec3(eye))
	if forward.Normalized().Cross(math.Vec3(up).Normalized()).Length() < math.Epsilon {
		logger.Warn("up is parallel to the view direction; the view matrix is degenerate")
	}
	printMat4(w, "view", math.LookAt(math.Vec3(eye), math.Vec3(target), math.Vec3(up)))
	return nil
}

func cmdProject(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("project", flag.ContinueOnError)
	fov := fs.Float64("fov", scene.DefaultFOV, "vertical field of view in degrees")
	aspect := fs.Float64("aspect", 16.0/9.0, "width / height")
	near := fs.Float64("near", scene.DefaultNear, "near plane")
	far := fs.Float64("far", scene.DefaultFar, "far plane")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *near <= 0 || *far <= *near {
		return fmt.Errorf("near %v / far %v: %w", *near, *far, scene.ErrInvalidCamera)
	}

	printMat4(w, "projection", math.Projection(float32(*fov), float32(*aspect), float32(*near), float32(*far)))
	return nil
}

// loadScene parses scene flags, loads the config and starts logging.
func loadScene(name string, args []string) (*config.Config, *scene.Scene, *config.Flags, error) {
	flags, err := config.ParseFlags(name, args)
	if err != nil {
		return nil, nil, nil, err
	}
	cfg, err := config.Load(flags)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, nil, nil, err
	}

	s := cfg.Scene()
	if err := s.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("scene: %w", err)
	}
	logger.Info("scene loaded",
		zap.Int("models", len(s.Models)),
		zap.Int("point_lights", len(s.PointLights)),
		zap.Bool("look_at", s.Camera.LookAtMode),
		zap.Float32("aspect", cfg.Aspect()),
	)
	return cfg, s, flags, nil
}

func cmdFrame(w io.Writer, args []string) error {
	cfg, s, _, err := loadScene("frame", args)
	if err != nil {
		return err
	}

	frame := s.Frame(cfg.Aspect())
	logger.Debug("frame evaluated", logger.Mat4("view_projection", frame.ViewProjection))

	printMat4(w, "view", frame.View)
	printMat4(w, "projection", frame.Projection)
	printMat4(w, "view_projection", frame.ViewProjection)
	printMat4(w, "light_space", frame.LightSpace)
	for i, m := range frame.Models {
		printMat4(w, fmt.Sprintf("model[%d] %s", i, s.Models[i].Name), m)
	}
	return nil
}

func cmdDump(w io.Writer, args []string) error {
	cfg, s, flags, err := loadScene("dump", args)
	if err != nil {
		return err
	}

	blocks, err := uniform.EncodeFrame(s, cfg.Aspect())
	if err != nil {
		return err
	}

	sections := []struct {
		name string
		data []byte
	}{
		{"scene", blocks.Scene},
		{"models", blocks.Models},
		{"lights", blocks.Lights},
		{"push", blocks.Push},
	}

	rest := flags.Args
	if len(rest) == 0 {
		for _, sec := range sections {
			fmt.Fprintf(w, "%s (%d bytes)\n%s", sec.name, len(sec.data), hex.Dump(sec.data))
		}
		return nil
	}

	f, err := os.Create(rest[0])
	if err != nil {
		return err
	}
	defer f.Close()

	offset := 0
	for _, sec := range sections {
		if _, err := f.Write(sec.data); err != nil {
			return fmt.Errorf("writing %s block: %w", sec.name, err)
		}
		fmt.Fprintf(w, "%-7s offset %5d size %5d\n", sec.name, offset, len(sec.data))
		offset += len(sec.data)
	}
	logger.Info("frame dumped", zap.String("path", rest[0]), zap.Int("bytes", offset))
	return f.Close()
}

func cmdInit(w io.Writer, args []string) error {
	cfg := config.Default()
	if len(args) == 0 {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	if err := cfg.SaveTo(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s\n", args[0])
	return nil
}

// printMat4 prints m in mathematical layout: one line per row.
func printMat4(w io.Writer, name string, m math.Mat4) {
	fmt.Fprintf(w, "%s:\n", name)
	for r := 0; r < 4; r++ {
		row := m.Row(r)
		fmt.Fprintf(w, "  %10.4f %10.4f %10.4f %10.4f\n", clean(row[0]), clean(row[1]), clean(row[2]), clean(row[3]))
	}
}

// clean turns negative zero into zero so it prints without a sign.
func clean(f float32) float32 {
	if f == 0 {
		return 0
	}
	return f
}
