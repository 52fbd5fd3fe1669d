package section

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/alexiusacademia/steelqty/internal/formula"
	"github.com/alexiusacademia/steelqty/internal/profile"
)

// circleSegments is the number of straight edges used for a full circle.
const circleSegments = 72

// ErrNoOutline is returned for shapes that have no single outline, such as
// composite plates.
var ErrNoOutline = errors.New("no outline for this shape")

func mm(v float64) float64 {
	return formula.Round(v/formula.MM, 6)
}

// FromShape builds the outline of a parsed profile in millimetres. Members
// give their cross-section; plate pieces, discs and spheres give their plan.
// Root radii and cold-formed corner radii are ignored.
func FromShape(name string, shape profile.Shape) (*Section, error) {
	s := &Section{Name: name, Family: shape.Family().String()}

	switch v := shape.(type) {
	case *profile.HSection:
		s.Outer = iShape(mm((v.H1+v.H2)/2), mm(v.B1), mm(v.T1), mm(v.B2), mm(v.T2), mm(v.S))
	case *profile.Cruciform:
		outer, err := cross(v)
		if err != nil {
			return nil, err
		}
		s.Outer = outer
	case *profile.TSection:
		s.Outer = tShape(mm(v.H.Value()), mm(v.B), mm(v.S), mm(v.T))
	case *profile.Rolled:
		h, b, sw, t := mm(v.H), mm(v.B), mm(v.S), mm(v.T)
		switch {
		case v.Kind == profile.FamilyI:
			s.Outer = iShape(h, b, t, b, t, sw)
		case v.Arrangement == profile.BackToBack:
			s.Outer = iShape(h, 2*b, t, 2*b, t, 2*sw)
		case v.Arrangement == profile.MouthToMouth:
			s.Outer = rect(0, 0, 2*b, h)
			s.Holes = [][]Point{rect(sw, t, 2*b-sw, h-t)}
		default:
			s.Outer = channel(h, b, sw, t)
		}
	case *profile.Angle:
		h, b, t := mm(v.H), mm(v.B), mm(v.T)
		if v.Pair {
			s.Outer = []Point{{0, 0}, {2 * b, 0}, {2 * b, t}, {b + t, t}, {b + t, h}, {b - t, h}, {b - t, t}, {0, t}}
		} else {
			s.Outer = []Point{{0, 0}, {b, 0}, {b, t}, {t, t}, {t, h}, {0, h}}
		}
	case *profile.Box:
		h, b, sw, t := mm((v.H1+v.H2)/2), mm(v.B), mm(v.S), mm(v.T)
		s.Outer = rect(0, 0, b, h)
		s.Holes = [][]Point{rect(sw, t, b-sw, h-t)}
	case *profile.ColdRectHollow:
		h, b, t := mm(v.H), mm(v.B), mm(v.T)
		s.Outer = rect(0, 0, b, h)
		s.Holes = [][]Point{rect(t, t, b-t, h-t)}
	case *profile.ColdCurvedHollow:
		a, b, t := mm(v.A), mm(v.B), mm(v.T)
		if v.Outline == profile.StadiumOutline {
			// A is the overall height, B the width
			s.Outer = stadium(0, 0, b, a)
			s.Holes = [][]Point{stadium(t, t, b-2*t, a-2*t)}
		} else {
			s.Outer = ellipse(b/2, a/2, b, a)
			s.Holes = [][]Point{ellipse(b/2, a/2, b-2*t, a-2*t)}
		}
	case *profile.Circular:
		d := mm(v.D.Value())
		s.Outer = ellipse(d/2, d/2, d, d)
		if v.T > 0 {
			s.Holes = [][]Point{ellipse(d/2, d/2, d-2*mm(v.T), d-2*mm(v.T))}
		}
	case *profile.Lipped:
		if v.Arrangement != profile.Single {
			return nil, errors.Wrapf(ErrNoOutline, "%s", shape.Family())
		}
		h, b1, b2, c, t := mm(v.H), mm(v.B1), mm(v.B2), mm(v.C), mm(v.T)
		if v.Z {
			s.Outer = lippedZ(h, b1, b2, c, t)
		} else {
			s.Outer = lippedChannel(h, b1, b2, c, t)
		}
	case *profile.Plate:
		if v.Strip {
			s.Outer = rect(0, 0, mm(v.B.Value()), mm(v.T))
		} else {
			s.Outer = rect(0, 0, mm(v.B.Value()), mm(v.L.Value()))
		}
	case *profile.Triangle:
		s.Outer = []Point{{0, 0}, {mm(v.B.Value()), 0}, {0, mm(v.L.Value())}}
	case *profile.Disc:
		d := mm(v.D)
		s.Outer = ellipse(d/2, d/2, d, d)
	case *profile.Sphere:
		d := mm(v.D)
		s.Outer = ellipse(d/2, d/2, d, d)
	default:
		return nil, errors.Wrapf(ErrNoOutline, "%s", shape.Family())
	}

	if err := s.Validate(); err != nil {
		return nil, errors.Wrapf(err, "%s outline", name)
	}
	return s, nil
}

func rect(x0, y0, x1, y1 float64) []Point {
	return []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

// iShape is a doubly symmetric web with possibly different flanges, the top
// flange first.
func iShape(h, bTop, tTop, bBot, tBot, s float64) []Point {
	cx := math.Max(bTop, bBot) / 2
	return []Point{
		{cx - bBot/2, 0}, {cx + bBot/2, 0}, {cx + bBot/2, tBot}, {cx + s/2, tBot},
		{cx + s/2, h - tTop}, {cx + bTop/2, h - tTop}, {cx + bTop/2, h}, {cx - bTop/2, h},
		{cx - bTop/2, h - tTop}, {cx - s/2, h - tTop}, {cx - s/2, tBot}, {cx - bBot/2, tBot},
	}
}

func tShape(h, b, s, t float64) []Point {
	cx := b / 2
	return []Point{
		{cx - s/2, 0}, {cx + s/2, 0}, {cx + s/2, h - t}, {cx + b/2, h - t},
		{cx + b/2, h}, {cx - b/2, h}, {cx - b/2, h - t}, {cx - s/2, h - t},
	}
}

func channel(h, b, s, t float64) []Point {
	return []Point{{0, 0}, {b, 0}, {b, t}, {s, t}, {s, h - t}, {b, h - t}, {b, h}, {0, h}}
}

// lippedChannel opens to the right; b1 is the top flange.
func lippedChannel(h, b1, b2, c, t float64) []Point {
	return []Point{
		{0, 0}, {b2, 0}, {b2, c}, {b2 - t, c}, {b2 - t, t}, {t, t},
		{t, h - t}, {b1 - t, h - t}, {b1 - t, h - c}, {b1, h - c}, {b1, h}, {0, h},
	}
}

// lippedZ has the top flange b1 to the left of the web and the bottom
// flange b2 to the right.
func lippedZ(h, b1, b2, c, t float64) []Point {
	w := b1 - t // left face of the web
	return []Point{
		{w, 0}, {w + b2, 0}, {w + b2, c}, {w + b2 - t, c}, {w + b2 - t, t}, {b1, t},
		{b1, h}, {0, h}, {0, h - c}, {t, h - c}, {t, h - t}, {w, h - t},
	}
}

// cross is two H members, the second turned a quarter and split by the
// first one's web. It is built one quadrant at a time.
func cross(v *profile.Cruciform) ([]Point, error) {
	h1, b1, s1, t1 := mm(v.H1), mm(v.B1), mm(v.S1), mm(v.T1)
	h2, b2, s2, t2 := mm(v.H2), mm(v.B2), mm(v.S2), mm(v.T2)
	if b1/2 >= h2/2-t2 || b2/2 >= h1/2-t1 {
		return nil, &ValidationError{"cruciform flanges overlap"}
	}

	q := []Point{
		{h2 / 2, 0}, {h2 / 2, b2 / 2}, {h2/2 - t2, b2 / 2}, {h2/2 - t2, s2 / 2},
		{s1 / 2, s2 / 2}, {s1 / 2, h1/2 - t1}, {b1 / 2, h1/2 - t1}, {b1 / 2, h1 / 2},
		{0, h1 / 2},
	}
	n := len(q)
	ring := make([]Point, 0, 4*n)
	ring = append(ring, q...)
	for i := n - 2; i >= 0; i-- {
		ring = append(ring, Point{-q[i].X, q[i].Y})
	}
	for i := 1; i < n; i++ {
		ring = append(ring, Point{-q[i].X, -q[i].Y})
	}
	for i := n - 2; i > 0; i-- {
		ring = append(ring, Point{q[i].X, -q[i].Y})
	}

	dx, dy := math.Max(b1, h2)/2, math.Max(h1, b2)/2
	for i := range ring {
		ring[i].X += dx
		ring[i].Y += dy
	}
	return ring, nil
}

// ellipse approximates an ellipse with axes w by h centred on (cx, cy).
func ellipse(cx, cy, w, h float64) []Point {
	pts := make([]Point, circleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = Point{cx + w/2*math.Cos(a), cy + h/2*math.Sin(a)}
	}
	return pts
}

// stadium is an upright rectangle of width w and height h with
// semicircular ends, its bounding box starting at (x0, y0).
func stadium(x0, y0, w, h float64) []Point {
	r := w / 2
	cx := x0 + r
	top, bottom := y0+h-r, y0+r
	half := circleSegments / 2
	pts := make([]Point, 0, circleSegments+2)
	for i := 0; i <= half; i++ {
		a := math.Pi * float64(i) / float64(half)
		pts = append(pts, Point{cx + r*math.Cos(a), top + r*math.Sin(a)})
	}
	for i := 0; i <= half; i++ {
		a := math.Pi + math.Pi*float64(i)/float64(half)
		pts = append(pts, Point{cx + r*math.Cos(a), bottom + r*math.Sin(a)})
	}
	return pts
}
