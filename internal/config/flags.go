package config

import "flag"

// Flags holds command-line overrides for a scene config.
type Flags struct {
	Config string
	Debug  bool
	Width  int
	Height int
	FOV    float64
	LookAt bool
	Log    string

	// Args are the positional arguments left after the flags.
	Args []string
}

// ParseFlags parses scene flags from args (os.Args[1:] or the arguments
// after a subcommand). Errors are returned, never turned into an exit.
func ParseFlags(name string, args []string) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&f.Config, "config", "", "Path to scene config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.IntVar(&f.Width, "width", 0, "Framebuffer width")
	fs.IntVar(&f.Height, "height", 0, "Framebuffer height")
	fs.Float64Var(&f.FOV, "fov", 0, "Vertical field of view in degrees")
	fs.BoolVar(&f.LookAt, "lookat", false, "Use look-at camera mode")
	fs.StringVar(&f.Log, "log", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	f.Args = fs.Args()
	return f, nil
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Width > 0 {
		cfg.Window.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Window.Height = f.Height
	}
	if f.FOV > 0 {
		cfg.Camera.FOV = float32(f.FOV)
	}
	if f.LookAt {
		cfg.Camera.LookAt = true
	}
	if f.Log != "" {
		cfg.Logging.LogFile = f.Log
	}
}
