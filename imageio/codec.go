package imageio

import (
	"bufio"
	"fmt"
	stdimage "image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register the WebP decoder

	"github.com/gogpu/imgproc"
	"github.com/gogpu/imgproc/image"
)

// Decode reads an image in any supported format and reports the format
// found in the data.
func Decode(r io.Reader) (*image.Image[uint8], Format, error) {
	src, name, err := stdimage.Decode(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	f, err := ParseFormat(name)
	if err != nil {
		return nil, 0, err
	}

	img, err := FromStd(src)
	if err != nil {
		return nil, 0, err
	}
	logDecoded(f, src, img)
	return img, f, nil
}

func logDecoded(f Format, src stdimage.Image, img *image.Image[uint8]) {
	imgproc.Logger().Debug("imageio: decoded",
		"format", f.String(),
		"model", fmt.Sprintf("%T", src),
		"width", img.Width(),
		"height", img.Height(),
		"channels", img.Channels())
}

// Encode writes img to w in format f. WebP cannot be encoded.
func Encode(w io.Writer, img *image.Image[uint8], f Format, opts ...Option) error {
	std, err := ToStd(img)
	if err != nil {
		return err
	}

	o := collect(opts)
	switch f {
	case PNG:
		err = png.Encode(w, std)
	case JPEG:
		err = jpeg.Encode(w, std, &jpeg.Options{Quality: o.jpegQuality})
	case BMP:
		err = bmp.Encode(w, std)
	case TIFF:
		err = tiff.Encode(w, std, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: cannot encode %v", ErrUnsupportedFileFormat, f)
	}
	if err != nil {
		return fmt.Errorf("%w: %v: %w", ErrEncode, f, err)
	}
	return nil
}

// Load reads the image at path. The extension must name a supported format.
//
// With WithAutoOrient, JPEG and TIFF files are turned upright according to
// their EXIF orientation.
func Load(path string, opts ...Option) (*image.Image[uint8], error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() { _ = file.Close() }()

	o := collect(opts)
	if o.autoOrient && (f == JPEG || f == TIFF) {
		return loadOriented(file, f)
	}

	img, got, err := Decode(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if got != f {
		imgproc.Logger().Debug("imageio: extension does not match content",
			"path", path, "extension", f.String(), "content", got.String())
	}
	return img, nil
}

func loadOriented(r io.Reader, f Format) (*image.Image[uint8], error) {
	src, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	img, err := FromStd(src)
	if err != nil {
		return nil, err
	}
	// Reorienting yields NRGBA; JPEG has no alpha to keep.
	if f == JPEG {
		img = opaqueRGB(img)
	}
	logDecoded(f, src, img)
	return img, nil
}

// Save writes img to path in the format named by its extension.
func Save(path string, img *image.Image[uint8], opts ...Option) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if f == WebP {
		return fmt.Errorf("%w: cannot encode %v", ErrUnsupportedFileFormat, f)
	}

	return writeFile(path, func(w io.Writer) error {
		return Encode(w, img, f, opts...)
	})
}

// writeFile creates path and writes it through a buffer.
func writeFile(path string, write func(w io.Writer) error) error {
	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	bw := bufio.NewWriter(file)
	if err := write(bw); err != nil {
		_ = file.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = file.Close()
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
