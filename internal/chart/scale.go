package chart

import "math"

// DefaultStep is the y-axis tick step, and the rounding unit of the stepped domain.
const DefaultStep = 20.0

// Domain is the numeric range mapped onto canvas rows.
type Domain struct {
	Min float64
	Max float64
}

// span is the width of the domain, 1 for a flat domain.
func (d Domain) span() float64 {
	if d.Max == d.Min {
		return 1
	}
	return d.Max - d.Min
}

// lo is the value that lands on the baseline row. A flat domain is
// centred inside its unit span so it renders on the middle row.
func (d Domain) lo() float64 {
	if d.Max == d.Min {
		return d.Min - 0.5
	}
	return d.Min
}

// DomainPolicy derives the plotted domain from a series.
type DomainPolicy interface {
	Domain(series []float64) Domain
}

// Tight takes min and max straight from the data.
type Tight struct{}

func (Tight) Domain(series []float64) Domain {
	lo, hi, _ := extent(series)
	return Domain{Min: lo, Max: hi}
}

// Stepped pins the minimum to zero and rounds the maximum up to the next
// multiple of Step. A series whose maximum is not positive gets one Step.
type Stepped struct {
	Step float64
}

func (s Stepped) Domain(series []float64) Domain {
	step := s.step()
	_, hi, _ := extent(series)
	top := math.Ceil(hi/step) * step
	if top <= 0 {
		top = step
	}
	return Domain{Min: 0, Max: top}
}

func (s Stepped) step() float64 {
	if s.Step <= 0 {
		return DefaultStep
	}
	return s.Step
}

// extent returns the min and max of the non-missing values in series.
func extent(series []float64) (lo, hi float64, ok bool) {
	for _, v := range series {
		if math.IsNaN(v) {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi, ok
}

// Scale maps values to canvas rows and series indices to canvas columns.
type Scale struct {
	Domain Domain
	Width  int
	Height int
	// Len is the full series length, missing points included.
	Len int
}

// Row returns the canvas row of v. Row 0 is the domain maximum and row
// Height the baseline. Values are not clamped.
func (s Scale) Row(v float64) int {
	h := float64(s.Height)
	return round(h - (v-s.Domain.lo())/s.Domain.span()*h)
}

// Col returns the canvas column of series index i.
func (s Scale) Col(i int) int {
	if s.Len < 2 {
		return 0
	}
	return round(float64(i*(s.Width-1)) / float64(s.Len-1))
}

// Norm returns v as a fraction of the domain span above the baseline.
func (s Scale) Norm(v float64) float64 {
	return (v - s.Domain.lo()) / s.Domain.span()
}

// round rounds half up, so -2.5 becomes -2.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
