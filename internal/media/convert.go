package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const ContentTypeWebP = "image/webp"

const webpQuality = 80

var (
	ErrEmptyImage       = errors.New("media: empty image")
	ErrUnsupportedImage = errors.New("media: unsupported image")
)

// ConvertToWebP decodes a JPEG, PNG or WebP upload, downscales it to at
// most maxWidth pixels wide and re-encodes it as lossy WebP.
func ConvertToWebP(data []byte, maxWidth int) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	img := Downscale(src, maxWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("media: encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// Downscale keeps the aspect ratio. Images already narrower than maxWidth
// are returned as is.
func Downscale(src image.Image, maxWidth int) image.Image {
	b := src.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return src
	}

	h := b.Dy() * maxWidth / b.Dx()
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
