package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jmylchreest/base9/internal/colour"
	"github.com/jmylchreest/base9/internal/palette"
	"github.com/jmylchreest/base9/internal/seed"
)

// Colour output modes for --colour.
const (
	colourAuto   = "auto"
	colourAlways = "always"
	colourNever  = "never"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	seedValue  int64
	seedMode   string
	chroma     string
	verbose    bool
	colourMode string

	// Parsed forms, set by validate.
	seedConfig seed.Config
	chromaMode palette.ChromaMode
}

func (o *globalOptions) register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.configPath, "config", "c", "", "path to a base9 YAML config (merged over the defaults)")
	fs.Int64Var(&o.seedValue, "seed", 0, "seed for generated colours (implies --seed-mode manual)")
	fs.StringVar(&o.seedMode, "seed-mode", string(seed.ModeRandom), "seed mode (random, content, manual)")
	fs.StringVar(&o.chroma, "chroma", palette.ChromaAverage.String(), "chroma of generated accents (average, range)")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "enable verbose output")
	fs.StringVar(&o.colourMode, "colour", colourAuto, "colour previews (auto, always, never)")
}

// validate parses the flag values. fs is used to tell explicit flags from
// defaults.
func (o *globalOptions) validate(fs *pflag.FlagSet) error {
	mode, err := seed.ParseMode(o.seedMode)
	if err != nil {
		return err
	}
	seedGiven := fs.Changed("seed")
	if seedGiven && !fs.Changed("seed-mode") {
		mode = seed.ModeManual
	}
	if seedGiven && mode != seed.ModeManual {
		return fmt.Errorf("--seed can only be used with --seed-mode manual")
	}
	o.seedConfig = seed.Config{Mode: mode}
	if seedGiven {
		v := o.seedValue
		o.seedConfig.Value = &v
	}

	if o.chromaMode, err = palette.ParseChromaMode(o.chroma); err != nil {
		return err
	}

	switch o.colourMode {
	case colourAuto, colourAlways, colourNever:
	default:
		return fmt.Errorf("invalid colour mode: %s (valid: auto, always, never)", o.colourMode)
	}
	return nil
}

// newLogger returns a named logger writing to w at debug level when verbose,
// and a silent one otherwise.
func newLogger(verbose bool, w io.Writer) hclog.Logger {
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "base9",
			Output: w,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "base9",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// enableColour turns ANSI previews on or off. In auto mode they are on only
// when w is a terminal.
func enableColour(mode string, w io.Writer) {
	switch mode {
	case colourAlways:
		colour.DisableColourOutput = false
	case colourNever:
		colour.DisableColourOutput = true
	default:
		colour.DisableColourOutput = !isTerminal(w)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}
