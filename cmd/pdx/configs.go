package main

import (
	"io"
	"os"

	"github.com/pdxmerge/pdx-format/go-pdx/encode"

	"github.com/caarlos0/env/v11"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact single-line format'"`
	Gops    bool `cli:"name=gops desc='start a gops diagnostics agent'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// EnvConfig holds defaults taken from the process environment; command
// line flags override them.
type EnvConfig struct {
	Strategy string `env:"PDX_STRATEGY" envDefault:"last"`
	Filter   string `env:"PDX_FILTER"`
	Jobs     int    `env:"PDX_JOBS" envDefault:"0"`
}

func ParseEnvConfig() (*EnvConfig, error) {
	cfg := &EnvConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type CheckConfig struct {
	*MainConfig
	Check *cli.Command
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type TokensConfig struct {
	*MainConfig
	Tokens *cli.Command
}
