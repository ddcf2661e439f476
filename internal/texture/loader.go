package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/ftrvxmtrx/tga"
)

// Extensions lists the texture formats LoadTexture decodes, in order of
// preference when several share a stem. Alpha-capable formats come first.
var Extensions = []string{".png", ".tga", ".jpg", ".jpeg"}

// LoadTexture reads a PNG, TGA or JPEG file and returns an NRGBA image.
func LoadTexture(path string) (*image.NRGBA, error) {
	if rank(filepath.Ext(path)) < 0 {
		return nil, fmt.Errorf("texture: unknown extension: %s", filepath.Ext(path))
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	return toNRGBA(img), nil
}

// rank returns the preference of ext in Extensions, or -1.
func rank(ext string) int {
	ext = strings.ToLower(ext)
	for i, e := range Extensions {
		if e == ext {
			return i
		}
	}
	return -1
}

// toNRGBA converts any image to NRGBA with its origin at (0, 0).
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
