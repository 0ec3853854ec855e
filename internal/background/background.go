package background

import (
	"fmt"
	"image"
	"os"

	"gocv.io/x/gocv"
)

// DimFactor scales every channel of the splash image. It matches a black
// overlay with alpha 120 composited over the picture.
const DimFactor = float32(255-120) / 255

// Load reads the splash picture at path, resizes it to width x height and
// dims it. A missing file is reported with an error wrapping
// fs.ErrNotExist so callers can fall back to a plain splash.
func Load(path string, width, height int) (image.Image, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("background %s: %w", path, err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%d", width, height)
	}

	src := gocv.IMRead(path, gocv.IMReadColor)
	defer src.Close()
	if src.Empty() {
		return nil, fmt.Errorf("background %s: unsupported or corrupt image", path)
	}

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(src, &resized, image.Pt(width, height), 0, 0, gocv.InterpolationLinear)

	dimmed := gocv.NewMat()
	defer dimmed.Close()
	resized.ConvertToWithParams(&dimmed, resized.Type(), DimFactor, 0)

	img, err := dimmed.ToImage()
	if err != nil {
		return nil, fmt.Errorf("background %s: converting to image: %w", path, err)
	}
	return img, nil
}
