// Package convert turns pictures in common formats into binary PGM images.
package convert

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"

	"pgmproc/ops"
	"pgmproc/raster"
)

type CLICmd struct {
	Src  string `arg:"" help:"Picture to convert (gif, jpeg, png, bmp, tiff, webp)" type:"path"`
	Dest string `arg:"" help:"Destination PGM file" default:"input.pgm" type:"path"`
}

func (c *CLICmd) Run(runner *ops.Runner) error {
	logger := slog.Default().With("file", c.Src)

	f, err := runner.FS.Open(c.Src)
	if err != nil {
		return fmt.Errorf("could not open picture %q: %w", c.Src, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logger.Error("could not close picture", "error", closeErr)
		}
	}()

	img, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("could not decode picture %q: %w", c.Src, err)
	}

	g, err := raster.FromImage(img)
	if err != nil {
		return fmt.Errorf("could not convert picture %q: %w", c.Src, err)
	}

	if err = raster.Save(runner.FS, g, c.Dest); err != nil {
		return err
	}
	logger.Info("converted", append([]any{"format", format, "dest", c.Dest}, ops.Summary(g)...)...)
	return nil
}
