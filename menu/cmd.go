package menu

import (
	"io"
	"log/slog"
	"os"

	"pgmproc/ops"
	"pgmproc/raster"
)

type CLICmd struct {
	Input string    `help:"Source PGM image" default:"input.pgm" type:"path"`
	In    io.Reader `kong:"-"`
	Out   io.Writer `kong:"-"`
}

func (c *CLICmd) Run(runner *ops.Runner) error {
	src, err := raster.Load(runner.FS, c.Input)
	if err != nil {
		return err
	}
	slog.Info("loaded", append([]any{"file", c.Input}, ops.Summary(src)...)...)

	in, out := c.In, c.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return NewSession(in, out, runner, src).Loop()
}
