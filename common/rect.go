package common

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned rectangle in world units.
type Rect struct {
	Min cp.Vector
	Max cp.Vector
}

func NewRect(center, size cp.Vector) Rect {
	half := size.Mult(0.5)
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

func (r Rect) Center() cp.Vector {
	return r.Min.Add(r.Max).Mult(0.5)
}

// Extents returns the half size.
func (r Rect) Extents() cp.Vector {
	return r.Max.Sub(r.Min).Mult(0.5)
}

func (r Rect) Contains(p cp.Vector) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func (r Rect) Intersects(other Rect) bool {
	return r.Min.X < other.Max.X && r.Max.X > other.Min.X &&
		r.Min.Y < other.Max.Y && r.Max.Y > other.Min.Y
}

// Inset shrinks the rect by margin on every side, capped at half of each
// extent so a small room never inverts.
func (r Rect) Inset(margin float64) Rect {
	ext := r.Extents()
	mx := min(margin, ext.X*0.5)
	my := min(margin, ext.Y*0.5)
	return Rect{
		Min: cp.Vector{X: r.Min.X + mx, Y: r.Min.Y + my},
		Max: cp.Vector{X: r.Max.X - mx, Y: r.Max.Y - my},
	}
}

func (r Rect) BB() cp.BB {
	return cp.BB{L: r.Min.X, B: r.Min.Y, R: r.Max.X, T: r.Max.Y}
}
