package dataset

import "math"

// Stats summarizes the present values of a numeric column.
type Stats struct {
	Count   int
	Missing int
	Min     float64
	Max     float64
	Mean    float64
	Std     float64
}

// Stats computes summary statistics for a numeric column using Welford's
// update. ok is false for non-numeric columns.
func (c *Column) Stats() (s Stats, ok bool) {
	if c.Kind != KindNumeric {
		return Stats{}, false
	}
	var mean, m2 float64
	s.Min, s.Max = math.Inf(1), math.Inf(-1)
	for _, x := range c.nums {
		if math.IsNaN(x) {
			s.Missing++
			continue
		}
		s.Count++
		if x < s.Min {
			s.Min = x
		}
		if x > s.Max {
			s.Max = x
		}
		delta := x - mean
		mean += delta / float64(s.Count)
		m2 += delta * (x - mean)
	}
	s.Mean = mean
	if s.Count > 1 {
		s.Std = math.Sqrt(m2 / float64(s.Count-1))
	}
	return s, true
}
