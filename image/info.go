package image

import "github.com/gogpu/imgproc/internal/check"

// MaxChannels is the largest supported channel count.
const MaxChannels = 4

// Info describes the shape of an image. It is a small value type and is
// passed by value.
type Info struct {
	Width    int
	Height   int
	Channels int
	// Alpha reports whether the last channel is an alpha channel.
	Alpha bool
}

// NewInfo returns a validated Info.
func NewInfo(width, height, channels int, alpha bool) (Info, error) {
	info := Info{Width: width, Height: height, Channels: channels, Alpha: alpha}
	if err := info.Validate(); err != nil {
		return Info{}, err
	}
	return info, nil
}

// Validate checks that both dimensions are positive and the channel count
// is between 1 and MaxChannels. A single-channel image cannot carry alpha.
func (i Info) Validate() error {
	if i.Width < 1 || i.Height < 1 {
		return check.Errorf("image dimensions must be positive, got %dx%d", i.Width, i.Height)
	}
	if err := check.InRange(i.Channels, 1, MaxChannels, "channels"); err != nil {
		return err
	}
	if i.Alpha && i.Channels < 2 {
		return check.Errorf("alpha requires at least 2 channels, got %d", i.Channels)
	}
	return nil
}

// Size returns the number of pixels.
func (i Info) Size() int { return i.Width * i.Height }

// FullSize returns the number of channel values.
func (i Info) FullSize() int { return i.Width * i.Height * i.Channels }

// ChannelsNonAlpha returns the number of color channels.
func (i Info) ChannelsNonAlpha() int {
	if i.Alpha {
		return i.Channels - 1
	}
	return i.Channels
}

// WH returns width and height.
func (i Info) WH() (int, int) { return i.Width, i.Height }

// WHC returns width, height and channels.
func (i Info) WHC() (int, int, int) { return i.Width, i.Height, i.Channels }

// WHCA returns width, height, channels and the alpha flag.
func (i Info) WHCA() (int, int, int, bool) { return i.Width, i.Height, i.Channels, i.Alpha }

// WithChannels returns a copy of i with a different channel layout.
func (i Info) WithChannels(channels int, alpha bool) Info {
	i.Channels = channels
	i.Alpha = alpha
	return i
}

// WithSize returns a copy of i with different dimensions.
func (i Info) WithSize(width, height int) Info {
	i.Width = width
	i.Height = height
	return i
}
