package convert

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"pgmproc/fsutil"
	"pgmproc/ops"
	"pgmproc/raster"
)

func encoded(t *testing.T, encode func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.Black)
	img.Set(1, 0, color.RGBA{R: 90, G: 90, B: 90, A: 255})
	img.Set(2, 0, color.White)

	var buf bytes.Buffer
	require.NoError(t, encode(&buf, img))
	return buf.Bytes()
}

func TestRun(t *testing.T) {
	formats := map[string]func(*bytes.Buffer, image.Image) error{
		"png": func(b *bytes.Buffer, img image.Image) error { return png.Encode(b, img) },
		"bmp": func(b *bytes.Buffer, img image.Image) error { return bmp.Encode(b, img) },
	}

	for name, encode := range formats {
		t.Run(name, func(t *testing.T) {
			mfs := fsutil.NewMemoryFileSystem()
			mfs.WriteFile("pic."+name, encoded(t, encode))
			runner := &ops.Runner{FS: mfs}

			cmd := &CLICmd{Src: "pic." + name, Dest: "input.pgm"}
			require.NoError(t, cmd.Run(runner))

			g, err := raster.Load(mfs, "input.pgm")
			require.NoError(t, err)
			assert.Equal(t, []uint8{0, 90, 255}, g.Pix)
		})
	}
}

func TestRun_Errors(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	runner := &ops.Runner{FS: mfs}

	assert.Error(t, (&CLICmd{Src: "missing.png", Dest: "x.pgm"}).Run(runner))

	mfs.WriteFile("junk.png", []byte("definitely not a picture"))
	assert.ErrorIs(t, (&CLICmd{Src: "junk.png", Dest: "x.pgm"}).Run(runner), image.ErrFormat)
	assert.False(t, mfs.Exists("x.pgm"))
}
