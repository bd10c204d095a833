// Package imaging turns portfolio pictures into resized WebP thumbnails.
package imaging

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// Resize scales img down so it is at most maxWidth pixels wide, keeping the
// aspect ratio. Images already narrow enough are returned unchanged.
func Resize(img image.Image, maxWidth int) image.Image {
	b := img.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return img
	}
	h := b.Dy() * maxWidth / b.Dx()
	if h < 1 {
		h = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Encode writes img to w as WebP.
func Encode(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("imaging: webp encode: %w", err)
	}
	return nil
}

// Decode reads a PNG or JPEG image.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imaging: decode: %w", err)
	}
	return img, nil
}

// Convert decodes src, resizes it and writes the WebP result to dst,
// creating dst's directory if needed. It returns the output dimensions.
func Convert(src, dst string, maxWidth int) (image.Point, error) {
	in, err := os.Open(src)
	if err != nil {
		return image.Point{}, err
	}
	defer in.Close()

	img, err := Decode(in)
	if err != nil {
		return image.Point{}, fmt.Errorf("%s: %w", src, err)
	}
	img = Resize(img, maxWidth)

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return image.Point{}, err
	}
	out, err := os.Create(dst)
	if err != nil {
		return image.Point{}, err
	}
	if err := Encode(out, img); err != nil {
		out.Close()
		return image.Point{}, err
	}
	if err := out.Close(); err != nil {
		return image.Point{}, err
	}
	return img.Bounds().Size(), nil
}

// IsSource reports whether name has an extension Decode understands.
func IsSource(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// ThumbName maps a source path relative to the input root to its output path.
func ThumbName(rel string) string {
	return strings.TrimSuffix(rel, filepath.Ext(rel)) + ".webp"
}
