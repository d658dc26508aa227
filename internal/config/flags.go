package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagA          = flag.Float64("a", 0, "Surface parameter a")
	flagB          = flag.Float64("b", 0, "Surface parameter b")
	flagStepsU     = flag.Int("u-steps", 0, "Tessellation steps along u")
	flagStepsV     = flag.Int("v-steps", 0, "Tessellation steps along v")
	flagTexture    = flag.String("texture", "", "Texture image (PNG, JPEG or BMP)")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagOutput     = flag.String("output", "", "Directory for screenshots and exports")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// setFlags returns the names of the flags given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags applies the flags named in set over the config. Only flags
// actually given override, so an explicit zero such as -a 0 is honored.
func applyFlags(cfg *Config, set map[string]bool) {
	if set["debug"] && *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if set["a"] {
		cfg.Surface.A = *flagA
	}
	if set["b"] {
		cfg.Surface.B = *flagB
	}
	if set["u-steps"] {
		cfg.Surface.StepsU = *flagStepsU
	}
	if set["v-steps"] {
		cfg.Surface.StepsV = *flagStepsV
	}
	if set["texture"] {
		cfg.Material.Texture = *flagTexture
		cfg.Material.Textured = *flagTexture != ""
	}
	if set["windowed"] && *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if set["fullscreen"] && *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if set["width"] {
		cfg.Window.Width = *flagWidth
	}
	if set["height"] {
		cfg.Window.Height = *flagHeight
	}
	if set["output"] {
		cfg.Output.Dir = *flagOutput
	}
}
