// Package scale provides the linear and band scales used for bar layout.
package scale

import "math"

// Linear maps a numeric domain onto a pixel range. The range may be
// inverted (rangeMin > rangeMax) so that larger values map to smaller
// pixel offsets.
type Linear struct {
	domainMin, domainMax float64
	rangeMin, rangeMax   float64
}

// NewLinear returns a linear scale mapping [domainMin, domainMax] onto
// [rangeMin, rangeMax].
func NewLinear(domainMin, domainMax, rangeMin, rangeMax float64) Linear {
	return Linear{
		domainMin: domainMin,
		domainMax: domainMax,
		rangeMin:  rangeMin,
		rangeMax:  rangeMax,
	}
}

// Scale maps v into the pixel range. A degenerate domain maps every value
// to the range start; a NaN value stays NaN for the caller to handle.
func (s Linear) Scale(v float64) float64 {
	span := s.domainMax - s.domainMin
	if span == 0 || math.IsNaN(span) {
		return s.rangeMin
	}
	t := (v - s.domainMin) / span
	return s.rangeMin + t*(s.rangeMax-s.rangeMin)
}

// Band divides a pixel range into equal padded bands, one per category.
// Categories are de-duplicated preserving first occurrence. Inner padding
// spaces bands apart; outer padding insets the first and last band, with
// the leftover distributed evenly on both sides.
type Band struct {
	domain    []string
	index     map[string]int
	start     float64
	step      float64
	bandwidth float64
}

// NewBand returns a band scale over categories across [rangeMin, rangeMax].
func NewBand(categories []string, rangeMin, rangeMax, paddingInner, paddingOuter float64) Band {
	index := make(map[string]int, len(categories))
	domain := make([]string, 0, len(categories))
	for _, c := range categories {
		if _, ok := index[c]; ok {
			continue
		}
		index[c] = len(domain)
		domain = append(domain, c)
	}

	n := float64(len(domain))
	width := rangeMax - rangeMin
	denom := n - paddingInner + 2*paddingOuter
	if denom < 1 {
		denom = 1
	}
	step := width / denom
	start := rangeMin + (width-step*(n-paddingInner))/2
	return Band{
		domain:    domain,
		index:     index,
		start:     start,
		step:      step,
		bandwidth: step * (1 - paddingInner),
	}
}

// Bandwidth returns the width of one band.
func (b Band) Bandwidth() float64 {
	return b.bandwidth
}

// Position returns the left edge of the band for category, and whether the
// category is part of the domain.
func (b Band) Position(category string) (float64, bool) {
	i, ok := b.index[category]
	if !ok {
		return 0, false
	}
	return b.start + b.step*float64(i), true
}

// Domain returns the de-duplicated categories in occurrence order.
func (b Band) Domain() []string {
	return b.domain
}
