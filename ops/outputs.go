package ops

import (
	"fmt"
	"maps"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

// Placeholders expanded in output paths.
const (
	AngleField     = "{angle}"
	DirectionField = "{direction}"
)

// Outputs maps an operation name to the path its result is written to.
// Paths may contain AngleField and DirectionField.
type Outputs map[string]string

var legacyNames = map[string]string{
	Rotate:     "rotation_" + AngleField + "_degrees_" + DirectionField + ".pgm",
	Sobel:      "sobel.pgm",
	Translate:  "translation.pgm",
	Threshold:  "seuillage.pgm",
	Magnify:    "redimensionner.pgm",
	Histogram:  "histogramme.pgm",
	Contrast:   "contraste.pgm",
	Brightness: "luminosite.pgm",
	Blur:       "flooter.pgm",
	Negate:     "negatif.pgm",
	Pixelate:   "pixeliser.pgm",
}

// DefaultOutputs places every result in dir under its historical file name.
func DefaultOutputs(dir string) Outputs {
	out := make(Outputs, len(legacyNames))
	for name, file := range legacyNames {
		out[name] = filepath.Join(dir, file)
	}
	return out
}

// Merge returns a copy of o with overrides applied. Unknown operation names
// are rejected.
func (o Outputs) Merge(overrides map[string]string) (Outputs, error) {
	out := maps.Clone(o)
	if out == nil {
		out = make(Outputs, len(overrides))
	}
	for name, path := range overrides {
		if _, err := Lookup(name); err != nil {
			return nil, fmt.Errorf("invalid output override: %w", err)
		}
		if path == "" {
			return nil, fmt.Errorf("invalid output override: empty path for %q", name)
		}
		out[name] = path
	}
	return out, nil
}

// Path resolves the output path of an operation run with p.
func (o Outputs) Path(name string, p Params) (string, error) {
	path, ok := o[name]
	if !ok {
		return "", fmt.Errorf("%w: no output path for %q", ErrUnknownOperation, name)
	}

	direction := "not_in_clockwise"
	if p.Clockwise {
		direction = "in_clockwise"
	}
	return strings.NewReplacer(
		AngleField, angleText(p.Angle),
		DirectionField, direction,
	).Replace(path), nil
}

// angleText formats the whole degrees of angle. +0 folds negative zero.
func angleText(angle float64) string {
	return strconv.FormatFloat(math.Trunc(angle)+0, 'f', 0, 64)
}
