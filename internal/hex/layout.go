package hex

import "math"

// Layout converts between axial coordinates and screen pixels for a
// pointy-top grid. Size is the hex radius (center to corner) in pixels;
// CenterX/CenterY locate the origin cell on screen.
type Layout struct {
	Size    float64
	CenterX float64
	CenterY float64
}

// ToPixel returns the screen-space center of cell a.
//
//	x = size * (√3·q + √3/2·r) + centerX
//	y = size * (3/2·r)         + centerY
func (l Layout) ToPixel(a Axial) (x, y float64) {
	x = l.Size*(math.Sqrt(3)*float64(a.Q)+math.Sqrt(3)/2*float64(a.R)) + l.CenterX
	y = l.Size*(1.5*float64(a.R)) + l.CenterY
	return x, y
}

// FromPixel returns the cell containing the screen point (x, y).
// The inverse projection yields fractional axial coordinates, which are
// then snapped with cube rounding so every pixel maps to exactly one
// cell with no gaps or overlaps along cell boundaries.
func (l Layout) FromPixel(x, y float64) Axial {
	px := (x - l.CenterX) / l.Size
	py := (y - l.CenterY) / l.Size
	q := math.Sqrt(3)/3*px - 1.0/3*py
	r := 2.0 / 3 * py
	return round(q, r)
}

// round snaps fractional axial coordinates to the nearest cell.
// Each cube component is rounded independently, then the component with
// the largest rounding error is recomputed from the other two so that
// q+r+s stays zero.
func round(fq, fr float64) Axial {
	fs := -fq - fr

	q := math.Round(fq)
	r := math.Round(fr)
	s := math.Round(fs)

	dq := math.Abs(q - fq)
	dr := math.Abs(r - fr)
	ds := math.Abs(s - fs)

	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	}
	return Axial{Q: int(q), R: int(r)}
}
