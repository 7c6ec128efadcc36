package imgproc

import "errors"

// Processing errors. Operators wrap these with the offending argument so that
// callers can match them with errors.Is.
var (
	// ErrInvalidArg is returned when an argument fails validation: an even
	// kernel length, mismatched channel counts, an out-of-range factor, or a
	// non-grayscale input where grayscale is required.
	ErrInvalidArg = errors.New("imgproc: invalid argument")

	// ErrNumeric is returned when a numeric decomposition fails.
	ErrNumeric = errors.New("imgproc: numeric error")
)
