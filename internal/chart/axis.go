package chart

import (
	"math"
	"strconv"
)

// linearScale maps a data interval onto a pixel interval.
type linearScale struct {
	min, max float64
	px0, px1 float64
}

func (s linearScale) pos(v float64) float64 {
	if s.max == s.min {
		return s.px0
	}
	t := (v - s.min) / (s.max - s.min)
	return s.px0 + t*(s.px1-s.px0)
}

// logScale maps a data interval onto a pixel interval in log10 space.
// min and max must be positive.
type logScale struct {
	min, max float64
	px0, px1 float64
}

func (s logScale) pos(v float64) float64 {
	lmin := math.Log10(s.min)
	lmax := math.Log10(s.max)
	if lmax == lmin {
		return s.px0
	}
	t := (math.Log10(v) - lmin) / (lmax - lmin)
	return s.px0 + t*(s.px1-s.px0)
}

// logTicks returns the powers of ten covering [min, max].
func logTicks(min, max float64) []float64 {
	if min <= 0 || max < min {
		return nil
	}
	start := int(math.Ceil(math.Log10(min) - 1e-9))
	end := int(math.Floor(math.Log10(max) + 1e-9))

	var ticks []float64
	for e := start; e <= end; e++ {
		ticks = append(ticks, math.Pow(10, float64(e)))
	}
	return ticks
}

// linearTicks returns n evenly spaced ticks from 0 to max, excluding zero.
func linearTicks(max float64, n int) []float64 {
	if max <= 0 || n < 1 {
		return nil
	}
	ticks := make([]float64, n)
	for i := 1; i <= n; i++ {
		ticks[i-1] = max * float64(i) / float64(n)
	}
	return ticks
}

// niceMax rounds v up to 1, 2 or 5 times a power of ten. Used for the
// auto-fit axis bound.
func niceMax(v float64) float64 {
	if v <= 0 {
		return 1
	}
	exp := math.Pow(10, math.Floor(math.Log10(v)))
	frac := v / exp
	switch {
	case frac <= 1:
		return exp
	case frac <= 2:
		return 2 * exp
	case frac <= 5:
		return 5 * exp
	default:
		return 10 * exp
	}
}

// formatTick renders a tick value compactly ("1e+06", "40000").
func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
