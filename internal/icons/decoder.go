package icons

import (
	"errors"
	"fmt"
	"image"
	"os"

	"gocv.io/x/gocv"
)

var ErrDecode = errors.New("image could not be decoded")

// Decoder reads icon files with OpenCV and resamples them to a square.
type Decoder struct {
	interpolation gocv.InterpolationFlags
}

func NewDecoder() *Decoder {
	return &Decoder{interpolation: gocv.InterpolationArea}
}

// Decode loads path and returns a size×size RGBA image. Aspect ratio is
// not preserved; icons are stretched to fill their grid cell.
func (d *Decoder) Decode(path string, size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrDecode, path)
	}

	src, err := read(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	if src.Rows() == size && src.Cols() == size {
		src.CopyTo(&dst)
	} else {
		gocv.Resize(src, &dst, image.Pt(size, size), 0, 0, d.interpolation)
	}
	if dst.Empty() {
		return nil, fmt.Errorf("%w: resize of %s failed", ErrDecode, path)
	}

	return matToRGBA(dst)
}

// read keeps the alpha channel when the file has one. Anything that is
// not 8-bit is re-read as plain 8-bit BGR.
func read(path string) (gocv.Mat, error) {
	mat := gocv.IMRead(path, gocv.IMReadUnchanged)
	if mat.Empty() {
		mat.Close()
		return gocv.Mat{}, fmt.Errorf("%w: %s", ErrDecode, path)
	}

	switch mat.Type() {
	case gocv.MatTypeCV8UC1, gocv.MatTypeCV8UC3, gocv.MatTypeCV8UC4:
		return mat, nil
	}

	mat.Close()
	mat = gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		mat.Close()
		return gocv.Mat{}, fmt.Errorf("%w: %s", ErrDecode, path)
	}
	return mat, nil
}
