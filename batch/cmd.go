// Package batch applies one operation to every PGM image of a folder.
package batch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/alecthomas/kong"

	"pgmproc/apply"
	"pgmproc/ops"
	"pgmproc/parallel"
	"pgmproc/raster"
)

type CLICmd struct {
	Scan    string `help:"Source folder to scan" default:"."`
	Dest    string `help:"Destination folder for results. Relative to scan dir if not absolute." default:"processed"`
	Op      string `help:"Operation to apply" default:"negate" enum:"rotate,sobel,translate,threshold,magnify,histogram,contrast,brightness,blur,negate,pixelate"`
	Workers int    `help:"Number of workers, 0 for one per CPU" default:"0"`
	apply.Flags
}

// Validate only resolves paths. The scan folder itself is checked by Run
// through the runner's FileSystem.
func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	if c.Workers < 0 {
		return fmt.Errorf("invalid number of workers: %d", c.Workers)
	}
	return nil
}

// Run writes the result for <scan>/<name>.pgm to <dest>/<name>/<output file>,
// where the output file name is the one configured for the operation.
func (c *CLICmd) Run(runner *ops.Runner) error {
	outName, ok := runner.Outputs[c.Op]
	if !ok {
		return fmt.Errorf("%w: no output path for %q", ops.ErrUnknownOperation, c.Op)
	}
	outName = filepath.Base(outName)

	files, err := runner.FS.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}

	params := c.Params()
	pool := parallel.Start(c.Workers)

	var processedCount, errCount atomic.Uint64
	for _, fileName := range files {
		if !strings.EqualFold(filepath.Ext(fileName), ".pgm") {
			continue
		}

		pool.Do(func() {
			filePath := filepath.Join(c.Scan, fileName)
			logger := slog.Default().With("file", filePath)

			src, err := raster.Load(runner.FS, filePath)
			if err != nil {
				errCount.Add(1)
				logger.Error("could not load image", "error", err)
				return
			}

			stem := strings.TrimSuffix(fileName, filepath.Ext(fileName))
			fileRunner := &ops.Runner{
				FS:      runner.FS,
				Outputs: ops.Outputs{c.Op: filepath.Join(c.Dest, stem, outName)},
				Logger:  logger,
			}

			_, path, err := fileRunner.Apply(src, c.Op, params)
			if err != nil {
				errCount.Add(1)
				logger.Error("could not process image", "op", c.Op, "kind", ops.Kind(err), "error", err)
				return
			}
			logger.Debug("saved", "op", c.Op, "path", path)
			processedCount.Add(1)
		})
	}

	pool.Wait()

	processed := processedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors,
		"total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}
