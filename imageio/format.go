package imageio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies an image file format.
type Format int

const (
	PNG Format = iota
	JPEG
	BMP
	TIFF
	// WebP can be decoded but not encoded.
	WebP
)

var formatNames = [...]string{"png", "jpeg", "bmp", "tiff", "webp"}

// String returns the format name as reported by image.Decode.
func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat parses a format name as returned by Format.String.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFileFormat, name)
}

// FormatFromPath picks the format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".webp":
		return WebP, nil
	default:
		return 0, fmt.Errorf("%w: extension %q", ErrUnsupportedFileFormat, ext)
	}
}
