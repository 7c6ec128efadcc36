package imageio

import (
	"fmt"
	stdimage "image"
	"slices"

	"golang.org/x/image/draw"

	"github.com/gogpu/imgproc"
	"github.com/gogpu/imgproc/image"
)

// FromStd converts a standard library image to an 8-bit image.
//
//   - Gray becomes 1 channel, Gray16 too after dropping the low byte.
//   - NRGBA keeps 4 channels, or becomes 2 channels (gray+alpha) when every
//     pixel has R == G == B. PNG decodes gray+alpha files to NRGBA.
//   - YCbCr (JPEG), CMYK and every other fully opaque image become 3
//     channels.
//   - Everything else, including paletted and 16-bit color images with
//     transparency, is converted to non-premultiplied RGBA with 4 channels.
//
// Alpha-only images are rejected with ErrUnsupportedColorType.
func FromStd(src stdimage.Image) (*image.Image[uint8], error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	info, err := image.NewInfo(w, h, 1, false)
	if err != nil {
		return nil, err
	}

	switch s := src.(type) {
	case *stdimage.Gray:
		return image.New(info, copyRows(s.Pix, s.PixOffset(b.Min.X, b.Min.Y), s.Stride, w, h))

	case *stdimage.Gray16:
		imgproc.Logger().Warn("imageio: reducing 16-bit gray to 8 bits", "width", w, "height", h)
		data := make([]uint8, 0, w*h)
		for y := range h {
			row := s.Pix[s.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := range w {
				data = append(data, row[2*x])
			}
		}
		return image.New(info, data)

	case *stdimage.NRGBA:
		data := copyRows(s.Pix, s.PixOffset(b.Min.X, b.Min.Y), s.Stride, 4*w, h)
		if ga, ok := grayAlpha(data); ok {
			return image.New(info.WithChannels(2, true), ga)
		}
		return image.New(info.WithChannels(4, true), data)

	case *stdimage.YCbCr, *stdimage.CMYK:
		return image.New(info.WithChannels(3, false), dropAlpha(toNRGBA(src)))

	case *stdimage.Alpha, *stdimage.Alpha16:
		return nil, fmt.Errorf("%w: alpha-only image %T", ErrUnsupportedColorType, src)

	case *stdimage.RGBA64, *stdimage.NRGBA64:
		imgproc.Logger().Warn("imageio: reducing 16-bit color to 8 bits", "width", w, "height", h)
	}

	nrgba := toNRGBA(src)
	if o, ok := src.(interface{ Opaque() bool }); ok && o.Opaque() {
		return image.New(info.WithChannels(3, false), dropAlpha(nrgba))
	}
	return image.New(info.WithChannels(4, true), nrgba.Pix)
}

// ToStd converts an 8-bit image to a standard library image: 1 channel to
// *image.Gray, RGB to an opaque *image.RGBA, and gray+alpha or RGBA to
// *image.NRGBA.
func ToStd(img *image.Image[uint8]) (stdimage.Image, error) {
	w, h, c, alpha := img.WHCA()
	rect := stdimage.Rect(0, 0, w, h)
	data := img.Data()

	switch {
	case c == 1:
		return &stdimage.Gray{Pix: slices.Clone(data), Stride: w, Rect: rect}, nil

	case c == 4 && alpha:
		return &stdimage.NRGBA{Pix: slices.Clone(data), Stride: 4 * w, Rect: rect}, nil

	case c == 3 && !alpha:
		out := stdimage.NewRGBA(rect)
		for i := range img.Size() {
			p, q := img.At(i), out.Pix[4*i:4*i+4]
			q[0], q[1], q[2], q[3] = p[0], p[1], p[2], 255
		}
		return out, nil

	case c == 2 && alpha:
		out := stdimage.NewNRGBA(rect)
		for i := range img.Size() {
			p, q := img.At(i), out.Pix[4*i:4*i+4]
			q[0], q[1], q[2], q[3] = p[0], p[0], p[0], p[1]
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %d channels (alpha=%t)", ErrUnsupportedColorType, c, alpha)
}

// grayAlpha packs interleaved RGBA data into gray+alpha pairs. It reports
// false if any pixel has differing color channels.
func grayAlpha(rgba []uint8) ([]uint8, bool) {
	for i := 0; i < len(rgba); i += 4 {
		if rgba[i] != rgba[i+1] || rgba[i] != rgba[i+2] {
			return nil, false
		}
	}
	out := make([]uint8, 0, len(rgba)/2)
	for i := 0; i < len(rgba); i += 4 {
		out = append(out, rgba[i], rgba[i+3])
	}
	return out, true
}

func toNRGBA(src stdimage.Image) *stdimage.NRGBA {
	b := src.Bounds()
	dst := stdimage.NewNRGBA(stdimage.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// dropAlpha returns the RGB channels of src.
func dropAlpha(src *stdimage.NRGBA) []uint8 {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	data := make([]uint8, 0, 3*w*h)
	for y := range h {
		row := src.Pix[y*src.Stride:]
		for x := range w {
			data = append(data, row[4*x:4*x+3]...)
		}
	}
	return data
}

func copyRows(pix []uint8, offset, stride, rowLen, h int) []uint8 {
	data := make([]uint8, 0, rowLen*h)
	for y := range h {
		start := offset + y*stride
		data = append(data, pix[start:start+rowLen]...)
	}
	return data
}

// opaqueRGB drops a fully opaque alpha channel from an RGBA image.
func opaqueRGB(img *image.Image[uint8]) *image.Image[uint8] {
	if img.Channels() != 4 {
		return img
	}
	data := img.Data()
	for i := 3; i < len(data); i += 4 {
		if data[i] != 255 {
			return img
		}
	}
	out := image.Empty[uint8](img.Info().WithChannels(3, false))
	for i := range img.Size() {
		out.AppendPixel(img.At(i)[:3])
	}
	return out
}
