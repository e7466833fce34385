package raster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"pgmproc/fsutil"
)

// Tag identifies the binary graymap format.
const Tag = "P5"

// EncodedMaxValue is the max value written to every header, whatever the
// grid's own MaxValue. Sample bytes are written unchanged.
const EncodedMaxValue = 255

var (
	ErrUnknownFormat = errors.New("unknown raster format")
	ErrFormat        = errors.New("malformed raster")
	ErrTruncated     = errors.New("truncated raster")
	ErrUnsupported   = errors.New("unsupported raster")
)

// Decode reads a binary PGM image.
func Decode(r io.Reader) (*Grid, error) {
	br := bufio.NewReader(r)

	tag := make([]byte, len(Tag))
	if _, err := io.ReadFull(br, tag); err != nil {
		return nil, fmt.Errorf("%w: could not read tag: %w", ErrTruncated, err)
	}
	if string(tag) != Tag {
		return nil, fmt.Errorf("%w: tag %q", ErrUnknownFormat, tag)
	}

	var header [3]int
	for i, name := range []string{"width", "height", "max value"} {
		n, err := readHeaderInt(br)
		if err != nil {
			return nil, fmt.Errorf("could not read %s: %w", name, err)
		}
		header[i] = n
	}
	width, height, maxValue := header[0], header[1], header[2]

	if maxValue < 1 {
		return nil, fmt.Errorf("%w: max value %d", ErrFormat, maxValue)
	}
	if maxValue > 255 {
		return nil, fmt.Errorf("%w: max value %d needs 16-bit samples", ErrUnsupported, maxValue)
	}
	if width > 0 && height > math.MaxInt32/width {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	g, err := New(width, height, maxValue)
	if err != nil {
		return nil, err
	}

	if _, err := io.ReadFull(br, g.Pix); err != nil {
		return nil, fmt.Errorf("%w: want %d samples: %w", ErrTruncated, len(g.Pix), err)
	}

	for i, v := range g.Pix {
		if int(v) > maxValue {
			return nil, fmt.Errorf("%w: sample %d at (%d,%d) exceeds max value %d",
				ErrFormat, v, i%width, i/width, maxValue)
		}
	}

	return g, nil
}

// readHeaderInt skips whitespace and comments, reads a decimal integer and
// consumes the single whitespace byte that terminates it.
func readHeaderInt(br *bufio.Reader) (int, error) {
	var b byte
	var err error
	for {
		if b, err = br.ReadByte(); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrTruncated, err)
		}
		if b == '#' {
			if _, err = br.ReadString('\n'); err != nil {
				return 0, fmt.Errorf("%w: unterminated comment: %w", ErrTruncated, err)
			}
			continue
		}
		if !isSpace(b) {
			break
		}
	}

	n, digits := 0, 0
	for ; b >= '0' && b <= '9'; digits++ {
		if n > (math.MaxInt32-int(b-'0'))/10 {
			return 0, fmt.Errorf("%w: header value overflows", ErrFormat)
		}
		n = n*10 + int(b-'0')
		if b, err = br.ReadByte(); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrTruncated, err)
		}
	}

	if digits == 0 {
		return 0, fmt.Errorf("%w: unexpected byte %q", ErrFormat, b)
	}
	if !isSpace(b) {
		return 0, fmt.Errorf("%w: unexpected byte %q after number", ErrFormat, b)
	}
	return n, nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Encode writes g as a binary PGM image.
func Encode(w io.Writer, g *Grid) error {
	if !g.Allocated() {
		return fmt.Errorf("%w: grid has no samples", ErrInvalidDimensions)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n%d\n", Tag, g.Width, g.Height, EncodedMaxValue); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}
	if _, err := bw.Write(g.Pix); err != nil {
		return fmt.Errorf("could not write samples: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("could not flush samples: %w", err)
	}
	return nil
}

// Load decodes the PGM image stored at path.
func Load(fsys fsutil.FileSystem, path string) (*Grid, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close image", "name", path, "error", closeErr)
		}
	}()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode image %q: %w", path, err)
	}
	return g, nil
}

// Save encodes g to path, creating the parent folder when needed.
func Save(fsys fsutil.FileSystem, g *Grid, path string) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := fsys.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("unable to create destination folder %q: %w", dir, err)
		}
	}

	f, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create file %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close destination %q: %w", path, closeErr)
		}
	}()

	if err = Encode(f, g); err != nil {
		return fmt.Errorf("could not encode destination %q: %w", path, err)
	}
	return nil
}
