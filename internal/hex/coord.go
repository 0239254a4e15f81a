// Package hex provides axial hex-grid coordinates, distance, and the
// pixel projection for pointy-top layouts.
// The third cube coordinate s is derived: s = -q - r.
package hex

import (
	"fmt"
	"strconv"
	"strings"
)

// Axial is a position on the hex grid in axial coordinates.
type Axial struct {
	Q int
	R int
}

// S returns the implicit third cube coordinate.
func (a Axial) S() int {
	return -a.Q - a.R
}

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial {
	return Axial{a.Q + b.Q, a.R + b.R}
}

// Sub returns a-b in axial space.
func (a Axial) Sub(b Axial) Axial {
	return Axial{a.Q - b.Q, a.R - b.R}
}

// Key returns the canonical map key for this coordinate, e.g. "3,-2".
// ParseKey round-trips it exactly.
func (a Axial) Key() string {
	return strconv.Itoa(a.Q) + "," + strconv.Itoa(a.R)
}

// ParseKey parses a key produced by Key back into the same coordinate.
func ParseKey(key string) (Axial, error) {
	q, r, ok := strings.Cut(key, ",")
	if !ok {
		return Axial{}, fmt.Errorf("hex: malformed key %q", key)
	}
	qi, err := strconv.Atoi(q)
	if err != nil {
		return Axial{}, fmt.Errorf("hex: malformed key %q: %w", key, err)
	}
	ri, err := strconv.Atoi(r)
	if err != nil {
		return Axial{}, fmt.Errorf("hex: malformed key %q: %w", key, err)
	}
	return Axial{Q: qi, R: ri}, nil
}

// Directions are the six axial neighbor offsets in pointy-top orientation,
// starting east and proceeding counter-clockwise.
var Directions = [6]Axial{
	{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {-1, +1}, {0, +1},
}

// Neighbors returns the six adjacent coordinates.
func (a Axial) Neighbors() [6]Axial {
	var out [6]Axial
	for i, d := range Directions {
		out[i] = a.Add(d)
	}
	return out
}

// Distance returns the hex (cube) distance between a and b: the
// max-component form, equal to (|dq|+|dr|+|ds|)/2.
func Distance(a, b Axial) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	if dq >= dr && dq >= ds {
		return dq
	}
	if dr >= ds {
		return dr
	}
	return ds
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
