package image

// Alpha returns the last channel of p.
func Alpha[T Number](p []T) T {
	return p[len(p)-1]
}

// WithoutAlpha returns the leading len(p)-1 channels of p.
func WithoutAlpha[T Number](p []T) []T {
	return p[:len(p)-1]
}

// MapPixel returns a new pixel with f applied to every channel of p.
func MapPixel[T, S Number](p []T, f func(T) S) []S {
	out := make([]S, len(p))
	for i, v := range p {
		out[i] = f(v)
	}
	return out
}

// MapPixelAlpha is MapPixel with g applied to the last channel instead of f.
func MapPixelAlpha[T, S Number](p []T, f, g func(T) S) []S {
	out := make([]S, len(p))
	last := len(p) - 1
	for i, v := range p[:last] {
		out[i] = f(v)
	}
	out[last] = g(p[last])
	return out
}

// ApplyPixel rewrites every channel of p in place.
func ApplyPixel[T Number](p []T, f func(T) T) {
	for i, v := range p {
		p[i] = f(v)
	}
}

// ApplyPixelAlpha rewrites p in place, using g for the last channel.
func ApplyPixelAlpha[T Number](p []T, f, g func(T) T) {
	last := len(p) - 1
	for i, v := range p[:last] {
		p[i] = f(v)
	}
	p[last] = g(p[last])
}
