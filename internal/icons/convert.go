package icons

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// matToRGBA converts an 8-bit gray, BGR or BGRA Mat into an RGBA image
func matToRGBA(src gocv.Mat) (*image.RGBA, error) {
	rows, cols, channels := src.Rows(), src.Cols(), src.Channels()
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", cols, rows)
	}

	data := src.ToBytes()
	if len(data) < rows*cols*channels {
		return nil, fmt.Errorf("short pixel buffer: %d bytes for %dx%dx%d", len(data), cols, rows, channels)
	}

	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			in := (y*cols + x) * channels
			out := img.PixOffset(x, y)

			switch channels {
			case 1:
				v := data[in]
				img.Pix[out], img.Pix[out+1], img.Pix[out+2], img.Pix[out+3] = v, v, v, 0xff
			case 3:
				img.Pix[out] = data[in+2]
				img.Pix[out+1] = data[in+1]
				img.Pix[out+2] = data[in]
				img.Pix[out+3] = 0xff
			case 4:
				a := data[in+3]
				// RGBA is alpha-premultiplied
				img.Pix[out] = premultiply(data[in+2], a)
				img.Pix[out+1] = premultiply(data[in+1], a)
				img.Pix[out+2] = premultiply(data[in], a)
				img.Pix[out+3] = a
			default:
				return nil, fmt.Errorf("unsupported channel count: %d", channels)
			}
		}
	}

	return img, nil
}

func premultiply(c, a uint8) uint8 {
	return uint8((uint16(c)*uint16(a) + 127) / 255)
}
