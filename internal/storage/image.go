package storage

import (
	"bytes"
	"image"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

const (
	maxPosterWidth = 1280
	posterQuality  = 80
)

// EncodePosterWebP decodes an uploaded image, downscales anything wider
// than maxPosterWidth and re-encodes as webp, so posters are a uniform
// format and bounded size regardless of what was uploaded.
func EncodePosterWebP(r io.Reader) ([]byte, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	img = shrink(img, maxPosterWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: posterQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func shrink(img image.Image, maxW int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxW {
		return img
	}

	h := b.Dy() * maxW / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxW, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
