package filter

import (
	"math"

	"github.com/gogpu/imgproc/image"
	"github.com/gogpu/imgproc/internal/check"
	"github.com/gogpu/imgproc/internal/parallel"
)

// Median replaces every channel value with the median of its
// (2*radius+1) x (2*radius+1) neighborhood.
//
// The filter follows Weiss's partial-histogram method with a tier radix of
// two. The image is cut into vertical strips of stripWidth(radius) columns
// that share one central histogram per channel; each column keeps a partial
// histogram holding its difference from the central one. Moving down a row
// adds one image row to the histograms and removes another, and each
// column's median is found by walking from the previous row's median. Strips
// are independent and run in parallel.
func Median(img *image.Image[uint8], radius int) (*image.Image[uint8], error) {
	if err := check.NonNeg(radius, "radius"); err != nil {
		return nil, err
	}
	nCols := stripWidth(radius)
	out := image.Blank[uint8](img.Info())
	strips := (img.Width() + nCols - 1) / nCols
	parallel.Tasks(strips, func(s int) {
		medianStrip(img, out.Data(), radius, nCols, s*nCols)
	})
	return out, nil
}

// stripWidth returns ⌊4·r^(2/3)⌋ rounded up to the next odd number.
func stripWidth(radius int) int {
	n := int(math.Floor(4 * math.Pow(float64(radius), 2.0/3.0)))
	if n%2 == 0 {
		n++
	}
	return n
}

// partialHistograms holds one strip's histograms for a single channel. bins
// has nCols entries; bins[nHalf] is the central histogram and every other
// entry is the partial that turns the central window into column n's window.
//
// A row update takes the row's values from column x0-radius to
// x0+nCols+radius-1, so column n's window is vals[n : n+size].
type partialHistograms struct {
	bins  [][256]int32
	nCols int
	nHalf int
	size  int
}

func newPartialHistograms(radius, nCols int) partialHistograms {
	return partialHistograms{
		bins:  make([][256]int32, nCols),
		nCols: nCols,
		nHalf: nCols / 2,
		size:  2*radius + 1,
	}
}

// update adds (inc = 1) or removes (inc = -1) one row.
func (h *partialHistograms) update(vals []uint8, inc int32) {
	for n := range h.nHalf {
		lower := &h.bins[n]
		upper := &h.bins[h.nCols-1-n]
		for i := n; i < h.nHalf; i++ {
			lower[vals[i]] += inc
			lower[vals[i+h.size]] -= inc

			iu := h.nCols + h.size - 2 - i
			upper[vals[iu]] += inc
			upper[vals[iu-h.size]] -= inc
		}
	}

	central := &h.bins[h.nHalf]
	for _, v := range vals[h.nHalf : h.nHalf+h.size] {
		central[v] += inc
	}
}

// count returns the number of values equal to key in column n's window.
func (h *partialHistograms) count(key, n int) int32 {
	c := h.bins[h.nHalf][key]
	if n != h.nHalf {
		c += h.bins[n][key]
	}
	return c
}

// medianHist tracks, per column, the previous median (pivot) and the number
// of window values strictly below it (sum).
type medianHist struct {
	hist   partialHistograms
	sums   []int32
	pivots []uint8
	primed bool
}

func newMedianHist(radius, nCols int) medianHist {
	return medianHist{
		hist:   newPartialHistograms(radius, nCols),
		sums:   make([]int32, nCols),
		pivots: make([]uint8, nCols),
	}
}

func (m *medianHist) update(vals []uint8, inc int32, active int) {
	m.hist.update(vals, inc)
	if !m.primed {
		return
	}
	for n := range active {
		pivot := m.pivots[n]
		for _, v := range vals[n : n+m.hist.size] {
			if v < pivot {
				m.sums[n] += inc
			}
		}
	}
}

// scan finds column n's median by counting up from bin 0.
func (m *medianHist) scan(n int, center int32) {
	var sum int32
	for key := range 256 {
		add := m.hist.count(key, n)
		if sum+add >= center {
			m.pivots[n] = uint8(key)
			m.sums[n] = sum
			return
		}
		sum += add
	}
}

// walk moves column n's pivot up or down to the new median.
func (m *medianHist) walk(n int, center int32) {
	pivot := int(m.pivots[n])
	sum := m.sums[n]
	if sum < center {
		for key := pivot; key < 256; key++ {
			add := m.hist.count(key, n)
			if sum+add >= center {
				m.pivots[n] = uint8(key)
				m.sums[n] = sum
				return
			}
			sum += add
		}
		return
	}
	for key := pivot - 1; key >= 0; key-- {
		sum -= m.hist.count(key, n)
		if sum < center {
			m.pivots[n] = uint8(key)
			m.sums[n] = sum
			return
		}
	}
}

// medianStrip filters columns [x0, x0+nCols) of every row into dst.
func medianStrip(img *image.Image[uint8], dst []uint8, radius, nCols, x0 int) {
	w, h, c := img.WHC()
	size := 2*radius + 1
	center := int32(size*size/2 + 1)
	active := min(nCols, w-x0)
	src := img.Data()

	cols := make([]int, nCols+size-1)
	for i := range cols {
		cols[i] = clampInt(x0-radius+i, 0, w-1)
	}
	vals := make([]uint8, len(cols))
	gather := func(y, ch int) []uint8 {
		row := y * w
		for i, x := range cols {
			vals[i] = src[(row+x)*c+ch]
		}
		return vals
	}

	hists := make([]medianHist, c)
	for ch := range hists {
		hists[ch] = newMedianHist(radius, nCols)
	}

	for j := -radius; j <= radius; j++ {
		y := clampInt(j, 0, h-1)
		for ch := range hists {
			hists[ch].update(gather(y, ch), 1, active)
		}
	}
	for ch := range hists {
		m := &hists[ch]
		for n := range active {
			m.scan(n, center)
			dst[(x0+n)*c+ch] = m.pivots[n]
		}
		m.primed = true
	}

	for y := 1; y < h; y++ {
		yIn := clampInt(y+radius, 0, h-1)
		yOut := clampInt(y-radius-1, 0, h-1)
		for ch := range hists {
			m := &hists[ch]
			m.update(gather(yIn, ch), 1, active)
			m.update(gather(yOut, ch), -1, active)
			for n := range active {
				m.walk(n, center)
				dst[(y*w+x0+n)*c+ch] = m.pivots[n]
			}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
