package font

// SurfaceArea computes the outline surface of a glyph in area units: the sum
// of the absolute shoelace areas of its contours. Quadratic segments are
// approximated by their control polygon, which is stable enough for
// release-to-release comparison.
func (g *Glyph) SurfaceArea() float64 {
	total := 0.0
	for _, contour := range g.Contours {
		total += abs(shoelace(contour))
	}
	return total
}

// GlyphSurfaceAreas returns the surface area of every glyph with outlines.
func (f *Font) GlyphSurfaceAreas() map[string]float64 {
	areas := make(map[string]float64, len(f.Glyphs))
	for name, g := range f.Glyphs {
		areas[name] = g.SurfaceArea()
	}
	return areas
}

func shoelace(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}
	sum := 0.0
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sum += float64(p.X)*float64(q.Y) - float64(q.X)*float64(p.Y)
	}
	return sum / 2
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
