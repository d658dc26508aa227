// Package texture decodes images and uploads them as GPU textures.
package texture

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"os"

	_ "golang.org/x/image/bmp" // BMP decoder registration

	hcolor "github.com/Faultbox/hornview/internal/engine/color"
	"github.com/Faultbox/hornview/internal/engine/gpu"
)

// Load decodes an image file and converts it to RGBA with rows flipped
// for GL's bottom-left origin.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}

	return ImageToRGBA(img, true), nil
}

// ImageToRGBA converts any image.Image to a tightly packed *image.RGBA
// anchored at the origin. With flipY the first row becomes the bottom row.
func ImageToRGBA(img image.Image, flipY bool) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		dy := y
		if flipY {
			dy = h - 1 - y
		}
		for x := 0; x < w; x++ {
			r16, g16, b16, a16 := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			rgba.SetRGBA(x, dy, color.RGBA{
				R: uint8(r16 >> 8),
				G: uint8(g16 >> 8),
				B: uint8(b16 >> 8),
				A: uint8(a16 >> 8),
			})
		}
	}
	return rgba
}

// Checker builds a size x size checkerboard with cells squares per side.
// It stands in when no texture file is configured or the file fails to load.
func Checker(size, cells int, a, b hcolor.RGB) *image.RGBA {
	if size < 1 {
		size = 1
	}
	if cells < 1 {
		cells = 1
	}
	ca, cb := toRGBA(a), toRGBA(b)
	cell := max(size/cells, 1)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := ca
			if (x/cell+y/cell)%2 == 1 {
				c = cb
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func toRGBA(c hcolor.RGB) color.RGBA {
	return color.RGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: 255,
	}
}

// Upload creates a GPU texture from img.
func Upload(dev gpu.Device, img *image.RGBA) gpu.Texture {
	b := img.Bounds()
	return dev.CreateTexture(b.Dx(), b.Dy(), img.Pix)
}
