package imageio

import "errors"

// I/O errors. Failures from codecs and the filesystem wrap one of these
// together with the underlying error.
var (
	// ErrUnsupportedFileFormat is returned when a path extension or format
	// name is not recognized, or the format cannot be written.
	ErrUnsupportedFileFormat = errors.New("imageio: unsupported file format")

	// ErrUnsupportedColorType is returned when a color model cannot be
	// represented with 1 to 4 channels of 8 bits.
	ErrUnsupportedColorType = errors.New("imageio: unsupported color type")

	// ErrDecode is returned when a codec fails to decode its input.
	ErrDecode = errors.New("imageio: decode error")

	// ErrEncode is returned when a codec fails to encode an image.
	ErrEncode = errors.New("imageio: encode error")

	// ErrIO is returned when a file cannot be opened or created.
	ErrIO = errors.New("imageio: I/O error")

	// ErrWrite is returned when buffered output cannot be flushed or closed.
	ErrWrite = errors.New("imageio: write error")
)
