// Package imagex normalizes uploaded listing pictures.
package imagex

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

const jpegQuality = 85

// Decoding allocates per declared pixel, so sources are bounded by their
// header before any pixel data is read.
const (
	MaxSourceSide   = 10000
	MaxSourcePixels = 40_000_000
)

// ErrSourceTooLarge is returned for images whose declared canvas exceeds
// MaxSourceSide or MaxSourcePixels.
var ErrSourceTooLarge = errors.New("image dimensions too large")

// Result is an encoded, resized image.
type Result struct {
	Body        []byte
	ContentType string
	Ext         string
}

// Resize decodes data and scales it to exactly width x height, cropping
// around the center to fill the box. PNG input stays PNG, everything else is
// re-encoded as JPEG.
func Resize(data []byte, width, height int) (*Result, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", width, height)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image header: %w", err)
	}
	if cfg.Width > MaxSourceSide || cfg.Height > MaxSourceSide || cfg.Width*cfg.Height > MaxSourcePixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrSourceTooLarge, cfg.Width, cfg.Height)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	resized := imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)

	out := &Result{ContentType: "image/jpeg", Ext: ".jpg"}
	encFormat := imaging.JPEG
	if format == "png" {
		out.ContentType, out.Ext, encFormat = "image/png", ".png", imaging.PNG
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, encFormat, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	out.Body = buf.Bytes()
	return out, nil
}

// ReplaceExt swaps the extension of name for ext.
func ReplaceExt(name, ext string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}
