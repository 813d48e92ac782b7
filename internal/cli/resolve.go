package cli

import (
	"fmt"

	"github.com/jmylchreest/base9/internal/colourmap"
	"github.com/jmylchreest/base9/internal/config"
	"github.com/jmylchreest/base9/internal/palette"
	"github.com/jmylchreest/base9/internal/seed"
)

// defaultPaletteArg selects the palette code from the config.
const defaultPaletteArg = "-"

// resolved is a palette argument turned into a complete palette.
type resolved struct {
	code    string
	seed    int64
	palette palette.Palette
	config  config.Config
}

func (a *app) loadConfig() (config.Config, error) {
	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if a.opts.configPath != "" {
		a.logger.Debug("loaded config", "path", a.opts.configPath)
	}
	return cfg, nil
}

// resolve parses the palette argument and generates its unset colours.
func (a *app) resolve(arg string) (*resolved, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	code := arg
	if code == defaultPaletteArg {
		code = cfg.Palette
		if code == "" {
			code = "?"
		}
		a.logger.Debug("using configured palette", "code", code)
	}

	pp, err := palette.ParsePartial(code)
	if err != nil {
		return nil, fmt.Errorf("invalid palette code %q: %w", code, err)
	}

	s, err := seed.Calculate(code, a.opts.seedConfig)
	if err != nil {
		return nil, err
	}
	p := palette.Generate(pp, seed.NewRand(s), palette.WithChromaMode(a.opts.chromaMode))
	a.logger.Debug("resolved palette", "input", code, "palette", p.String(), "seed", s, "dark", p.IsDark())

	return &resolved{code: code, seed: s, palette: p, config: cfg}, nil
}

// variables resolves the palette argument and builds its template data.
func (a *app) variables(arg string) (map[string]any, *resolved, error) {
	r, err := a.resolve(arg)
	if err != nil {
		return nil, nil, err
	}
	data, err := colourmap.Variables(r.palette, r.config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build colour variables: %w", err)
	}
	return data, r, nil
}
