package imageproc

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	return img
}

func TestFit(t *testing.T) {
	small := solid(100, 50)
	assert.Same(t, image.Image(small), Fit(small, 512))

	wide := Fit(solid(1024, 256), 512)
	assert.Equal(t, 512, wide.Bounds().Dx())
	assert.Equal(t, 128, wide.Bounds().Dy())

	tall := Fit(solid(300, 900), 300)
	assert.Equal(t, 100, tall.Bounds().Dx())
	assert.Equal(t, 300, tall.Bounds().Dy())
}

func TestLogoToWebP(t *testing.T) {
	var src bytes.Buffer
	require.NoError(t, png.Encode(&src, solid(800, 400)))

	out, err := LogoToWebP(&src)
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.Width)
	assert.Equal(t, 256, cfg.Height)
}

func TestLogoToWebP_Rejects(t *testing.T) {
	_, err := LogoToWebP(strings.NewReader("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = LogoToWebP(bytes.NewReader(make([]byte, MaxLogoBytes+1)))
	assert.ErrorIs(t, err, ErrImageTooLarge)
}
