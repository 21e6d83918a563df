package series

import "math"

// Series is an ordered sequence of float64 samples.
type Series []float64

func (s Series) Clone() Series {
	c := make(Series, len(s))
	copy(c, s)
	return c
}

func (s Series) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s Series) Min() float64 {
	if len(s) == 0 {
		return 0
	}
	min := s[0]
	for _, v := range s[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func (s Series) Max() float64 {
	if len(s) == 0 {
		return 0
	}
	max := s[0]
	for _, v := range s[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func (s Series) AllPositive() bool {
	for _, v := range s {
		if v <= 0 {
			return false
		}
	}
	return true
}

func (s Series) StrictlyIncreasing() bool {
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return false
		}
	}
	return true
}

// Div returns the element-wise quotient s/other. Both series must have
// the same length; callers validate lengths before dividing.
func (s Series) Div(other Series) Series {
	result := make(Series, len(s))
	for i := range s {
		result[i] = s[i] / other[i]
	}
	return result
}

func (s Series) Scale(factor float64) Series {
	result := make(Series, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}
