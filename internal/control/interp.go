// Package control maps hand geometry onto scroll, volume and cursor output
// and drives the output devices for the current mode.
package control

// Range is a closed interval. Min may be greater than Max for a descending
// output scale.
type Range struct {
	Min float64
	Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Interp maps v linearly from in to out, clamping to out's endpoints.
// Inputs at or beyond an input endpoint return the matching output endpoint
// exactly. in must be ascending; when in is a single point, values below
// it map to out.Min and all others to out.Max.
func Interp(v float64, in, out Range) float64 {
	if v >= in.Max {
		return out.Max
	}
	if v <= in.Min {
		return out.Min
	}

	t := (v - in.Min) / in.Span()
	return out.Min + t*out.Span()
}
