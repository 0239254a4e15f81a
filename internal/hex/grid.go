package hex

// Disk returns every coordinate within radius of the origin: the
// hexagonal region whose cube components are all ≤ radius in absolute
// value. The result has exactly 3r²+3r+1 cells. The r range is clamped
// per q column so no out-of-bounds cell is ever generated.
func Disk(radius int) []Axial {
	if radius < 0 {
		return nil
	}
	out := make([]Axial, 0, 3*radius*radius+3*radius+1)
	for q := -radius; q <= radius; q++ {
		lo := max(-radius, -q-radius)
		hi := min(radius, -q+radius)
		for r := lo; r <= hi; r++ {
			out = append(out, Axial{Q: q, R: r})
		}
	}
	return out
}

// InRange reports whether a lies within radius of the origin, using the
// same cube-component bound as Disk.
func InRange(a Axial, radius int) bool {
	return abs(a.Q) <= radius && abs(a.R) <= radius && abs(a.S()) <= radius
}
