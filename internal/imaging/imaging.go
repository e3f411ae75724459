// Package imaging normalizes uploaded pictures into JPEG.
package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	ProfilePictureSize = 400
	jpegQuality        = 85
	ContentTypeJPEG    = "image/jpeg"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// Result is an encoded JPEG.
type Result struct {
	Data   []byte
	Width  int
	Height int
}

// ContentType sniffs data. Only the first 512 bytes are looked at.
func ContentType(data []byte) string {
	return http.DetectContentType(data)
}

// IsImage reports whether data is one of the accepted upload formats.
func IsImage(data []byte) bool {
	switch ContentType(data) {
	case "image/jpeg", "image/png", "image/webp":
		return true
	}
	return false
}

func decode(data []byte) (image.Image, error) {
	r := bytes.NewReader(data)

	switch ContentType(data) {
	case "image/jpeg":
		return jpeg.Decode(r)
	case "image/png":
		return png.Decode(r)
	case "image/webp":
		return webp.Decode(r)
	}
	return nil, ErrUnsupportedFormat
}

// Normalize re-encodes any accepted image as JPEG at its original size.
func Normalize(data []byte) (Result, error) {
	img, err := decode(data)
	if err != nil {
		return Result{}, err
	}
	return encode(img)
}

// Square center-crops the image to a square and scales it to size×size.
func Square(data []byte, size int) (Result, error) {
	img, err := decode(data)
	if err != nil {
		return Result{}, err
	}

	b := img.Bounds()
	side := min(b.Dx(), b.Dy())
	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	crop := image.Rect(x0, y0, x0+side, y0+side)

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Over, nil)

	return encode(dst)
}

func encode(img image.Image) (Result, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return Result{}, err
	}

	b := img.Bounds()
	return Result{Data: buf.Bytes(), Width: b.Dx(), Height: b.Dy()}, nil
}
