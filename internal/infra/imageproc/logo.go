package imageproc

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/reverse-logistics/internal/httperr"
)

const (
	MaxLogoSide  = 512
	MaxLogoBytes = 5 << 20
	logoQuality  = 80
)

var (
	ErrUnsupportedImage = httperr.ErrBusiness("unsupported_image")
	ErrImageTooLarge    = httperr.ErrBusiness("image_too_large")
)

// LogoToWebP decodes a PNG, JPEG or WebP image, shrinks it to fit in
// MaxLogoSide x MaxLogoSide and re-encodes it as lossy WebP.
func LogoToWebP(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxLogoBytes+1))
	if err != nil {
		return nil, err
	}
	if len(raw) > MaxLogoBytes {
		return nil, ErrImageTooLarge
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Join(ErrUnsupportedImage, err)
	}

	dst := Fit(src, MaxLogoSide)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: logoQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Fit scales img down, keeping its aspect ratio, so neither side exceeds
// side. Smaller images are returned unchanged.
func Fit(img image.Image, side int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= side && h <= side {
		return img
	}

	nw, nh := side, side
	if w > h {
		nh = h * side / w
	} else {
		nw = w * side / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
