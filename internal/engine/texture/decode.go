package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	// Codecs for the texture formats used by scene assets.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// ErrUnsupportedChannels is returned for images that are neither RGB nor RGBA.
var ErrUnsupportedChannels = errors.New("texture: image is not 3- or 4-channel")

// DecodeFile reads and decodes an image file, returning RGBA pixels flipped
// vertically for GL texture coordinates, plus the source channel count.
// Grayscale and alpha-only images are rejected.
func DecodeFile(path string) (*image.RGBA, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding %s: %w", path, err)
	}

	channels := channelCount(img)
	if channels != 3 && channels != 4 {
		return nil, channels, fmt.Errorf("%s image with %d channels: %w", format, channels, ErrUnsupportedChannels)
	}

	return toRGBA(img, true), channels, nil
}

// channelCount maps the decoded color model to a source channel count.
func channelCount(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr:
		return 3
	case *image.CMYK:
		return 4
	case *image.RGBA, *image.RGBA64, *image.NRGBA, *image.NRGBA64:
		return 4
	case *image.Paletted:
		// Palettes expand to RGB unless any entry carries transparency.
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	default:
		return 0
	}
}

// toRGBA converts any image to *image.RGBA, optionally flipping it
// vertically so row 0 is the bottom of the image.
func toRGBA(img image.Image, flip bool) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		destY := y - bounds.Min.Y
		if flip {
			destY = bounds.Max.Y - 1 - y
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			rgba.SetRGBA(x-bounds.Min.X, destY, color.RGBA{
				R: uint8(r16 >> 8),
				G: uint8(g16 >> 8),
				B: uint8(b16 >> 8),
				A: uint8(a16 >> 8),
			})
		}
	}

	return rgba
}
