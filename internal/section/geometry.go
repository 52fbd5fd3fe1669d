package section

import (
	"math"
	"sort"
)

// CalculateProperties computes geometric properties of the section
func (s *Section) CalculateProperties() *Properties {
	props := &Properties{}

	if len(s.Outer) < 3 {
		return props
	}

	// Find bounding box
	props.MinX, props.MaxX = s.Outer[0].X, s.Outer[0].X
	props.MinY, props.MaxY = s.Outer[0].Y, s.Outer[0].Y

	for _, v := range s.Outer {
		props.MinX = math.Min(props.MinX, v.X)
		props.MaxX = math.Max(props.MaxX, v.X)
		props.MinY = math.Min(props.MinY, v.Y)
		props.MaxY = math.Max(props.MaxY, v.Y)
	}

	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	// Net area and centroid: holes are subtracted as negative areas
	area, cx, cy := ringAreaAndCentroid(s.Outer)
	momentX, momentY := area*cx, area*cy
	props.Perimeter = ringPerimeter(s.Outer)
	for _, h := range s.Holes {
		a, hx, hy := ringAreaAndCentroid(h)
		area -= a
		momentX -= a * hx
		momentY -= a * hy
		props.Perimeter += ringPerimeter(h)
	}

	props.Area = area
	if area > 0 {
		props.CentroidX = momentX / area
		props.CentroidY = momentY / area
	}

	return props
}

// ringAreaAndCentroid uses the shoelace formula. The area is unsigned.
func ringAreaAndCentroid(ring []Point) (area, cx, cy float64) {
	n := len(ring)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
		signedArea += cross
		sumX += (ring[i].X + ring[j].X) * cross
		sumY += (ring[i].Y + ring[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}

func ringPerimeter(ring []Point) float64 {
	var p float64
	for i := range ring {
		j := (i + 1) % len(ring)
		p += math.Hypot(ring[j].X-ring[i].X, ring[j].Y-ring[i].Y)
	}
	return p
}

// WidthAtY calculates the net width of the section at a Y coordinate, holes
// excluded. Uses horizontal line intersection with every ring.
func (s *Section) WidthAtY(y float64) float64 {
	intersections := findIntersectionsAtY(s.Outer, y)
	for _, h := range s.Holes {
		intersections = append(intersections, findIntersectionsAtY(h, y)...)
	}

	if len(intersections) < 2 {
		return 0
	}

	// Sort intersections by X coordinate
	sort.Float64s(intersections)

	// Even-odd: every other gap is material
	var totalWidth float64
	for i := 0; i+1 < len(intersections); i += 2 {
		totalWidth += intersections[i+1] - intersections[i]
	}

	return totalWidth
}

// Inside reports whether the point lies in material (even-odd rule).
func (s *Section) Inside(x, y float64) bool {
	inside := crossings(s.Outer, x, y)%2 == 1
	for _, h := range s.Holes {
		if crossings(h, x, y)%2 == 1 {
			inside = !inside
		}
	}
	return inside
}

func crossings(ring []Point, x, y float64) int {
	n := 0
	for _, ix := range findIntersectionsAtY(ring, y) {
		if ix > x {
			n++
		}
	}
	return n
}

// findIntersectionsAtY finds all X coordinates where a horizontal line at Y intersects the ring
func findIntersectionsAtY(ring []Point, y float64) []float64 {
	var intersections []float64
	n := len(ring)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		v1, v2 := ring[i], ring[j]

		// Check if the edge crosses the Y level
		if (v1.Y <= y && v2.Y > y) || (v2.Y <= y && v1.Y > y) {
			t := (y - v1.Y) / (v2.Y - v1.Y)
			x := v1.X + t*(v2.X-v1.X)
			intersections = append(intersections, x)
		}
	}

	return intersections
}
