package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"pgmproc/apply"
	"pgmproc/batch"
	"pgmproc/convert"
	"pgmproc/fsutil"
	"pgmproc/menu"
	"pgmproc/ops"
)

type CLI struct {
	ResultDir string            `help:"Folder receiving the results" default:"result" type:"path"`
	Output    map[string]string `help:"Override the output path of an operation, e.g. --output=negate=neg.pgm. Rotation paths may use {angle} and {direction}."`
	LogLevel  string            `help:"Log level" enum:"debug,info,warn,error" default:"info"`
	Config    kong.ConfigFlag   `help:"Load flag values from a JSON file"`

	Menu    menu.CLICmd    `cmd:"" default:"withargs" help:"Interactive menu over one image"`
	Apply   apply.CLICmd   `cmd:"" help:"Apply one operation to an image"`
	Batch   batch.CLICmd   `cmd:"" help:"Apply one operation to every PGM image of a folder"`
	Convert convert.CLICmd `cmd:"" help:"Convert a picture to a binary PGM image"`
}

func (c *CLI) runner() (*ops.Runner, error) {
	outputs, err := ops.DefaultOutputs(c.ResultDir).Merge(c.Output)
	if err != nil {
		return nil, err
	}
	return &ops.Runner{
		FS:      fsutil.OSFileSystem{},
		Outputs: outputs,
		Logger:  slog.Default(),
	}, nil
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("pgmproc"),
		kong.Description("Grayscale PGM image transformations."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, "pgmproc.json"),
	)

	var level slog.Level
	if err := level.UnmarshalText([]byte(cli.LogLevel)); err != nil {
		kctx.FatalIfErrorf(fmt.Errorf("invalid log level %q: %w", cli.LogLevel, err))
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	runner, err := cli.runner()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := kctx.Run(runner); err != nil {
		slog.Error("failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
