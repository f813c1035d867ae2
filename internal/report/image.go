package report

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrImageDecode marks an embedded image that could not be decoded.
var ErrImageDecode = errors.New("image decode failed")

type preparedImage struct {
	jpeg   []byte
	width  int
	height int
}

// prepareImage decodes raw image bytes, flattens transparency onto white,
// downscales anything wider than ImageMaxPixels, and re-encodes the result as
// baseline JPEG so the PDF writer only ever sees one well-formed format.
// Headers claiming more than ImageMaxSourcePixels are rejected undecoded.
func prepareImage(data []byte, l Layout) (*preparedImage, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageDecode, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: empty bounds %dx%d", ErrImageDecode, cfg.Width, cfg.Height)
	}
	if int64(cfg.Width)*int64(cfg.Height) > int64(l.ImageMaxSourcePixels) {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrImageDecode, cfg.Width, cfg.Height, l.ImageMaxSourcePixels)
	}
	maxPixels := l.ImageMaxPixels

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageDecode, err)
	}

	w, h := cfg.Width, cfg.Height
	if w > maxPixels {
		h = max(h*maxPixels/w, 1)
		w = maxPixels
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: l.ImageJPEGQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}

	return &preparedImage{
		jpeg:   buf.Bytes(),
		width:  w,
		height: h,
	}, nil
}

// fit scales an image of w×h to fit inside a boxW×boxH box, preserving aspect
// ratio, and centres it. It returns the offset from the box's lower-left
// corner and the drawn size.
func fit(w, h int, boxW, boxH float64) (dx, dy, dw, dh float64) {
	scale := min(boxW/float64(w), boxH/float64(h))
	dw = float64(w) * scale
	dh = float64(h) * scale
	return (boxW - dw) / 2, (boxH - dh) / 2, dw, dh
}
