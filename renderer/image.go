package renderer

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/cgmb/ray/types"
)

// A row-major grid of unclamped colors accumulated by the render workers.
type Image struct {
	Pixels []types.Vec3

	width  int
	height int
}

// Create an image buffer. Construction fails when the pixel count would
// not fit an unsigned 32-bit index.
func NewImage(width, height int) (*Image, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("image dimensions of [%d,%d] are not positive", width, height)
	}
	if uint64(width)*uint64(height) > math.MaxUint32 {
		return nil, fmt.Errorf("image too large; dimensions of [%d,%d] require %d pixels",
			width, height, uint64(width)*uint64(height))
	}
	return &Image{
		Pixels: make([]types.Vec3, width*height),
		width:  width,
		height: height,
	}, nil
}

func (img *Image) Width() int {
	return img.width
}

func (img *Image) Height() int {
	return img.height
}

// Get the color of a pixel.
func (img *Image) Px(x, y int) types.Vec3 {
	return img.Pixels[y*img.width+x]
}

// Set the color of a pixel.
func (img *Image) SetPx(x, y int, color types.Vec3) {
	img.Pixels[y*img.width+x] = color
}

// Clamp every channel to at most 1. Values below 0 are left alone.
func (img *Image) ClampColors() {
	for i, p := range img.Pixels {
		img.Pixels[i] = types.MinVec3(p, types.XYZ(1, 1, 1))
	}
}

// Encode the image as 8-bit RGB PNG.
func (img *Image) WritePNG(w io.Writer) error {
	out := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			p := img.Px(x, y)
			offset := out.PixOffset(x, y)
			out.Pix[offset] = channelToByte(p[0])
			out.Pix[offset+1] = channelToByte(p[1])
			out.Pix[offset+2] = channelToByte(p[2])
			out.Pix[offset+3] = 0xff
		}
	}
	return png.Encode(w, out)
}

// Write the image to a PNG file.
func (img *Image) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return img.WritePNG(f)
}

func channelToByte(c float32) uint8 {
	scaled := c * 255
	if scaled <= 0 {
		return 0
	}
	if scaled >= 255 {
		return 255
	}
	return uint8(scaled)
}
