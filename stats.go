package wld

import "github.com/serioustools/wld/format"

// Stats aggregates a decoded world for display. All fields are derived; the
// world itself is never mutated.
type Stats struct {
	Brushes  int
	Mips     int
	Sectors  int
	Polygons int
	Vertices int
	Elements int

	// EmptyPolygons counts polygons with no resolved geometry (pre-version-4
	// polygon records carry none; they triangulate as fans at render time).
	EmptyPolygons int

	// World bounding box over all sector vertices. HasBounds is false for a
	// world with no geometry.
	BoundsMin format.Vec3
	BoundsMax format.Vec3
	HasBounds bool
}

// Collect walks the world model once and returns its aggregates.
func Collect(w *format.World) Stats {
	var s Stats
	if w == nil {
		return s
	}
	s.Brushes = len(w.Brushes)
	for _, brush := range w.Brushes {
		s.Mips += len(brush.Mips)
		for _, mip := range brush.Mips {
			s.Sectors += len(mip.Sectors)
			for _, sector := range mip.Sectors {
				s.Polygons += len(sector.Polygons)
				s.Vertices += len(sector.Vertices)
				for _, v := range sector.Vertices {
					s.extend(v)
				}
				for _, polygon := range sector.Polygons {
					s.Elements += len(polygon.Indices)
					if len(polygon.Vertices) == 0 {
						s.EmptyPolygons++
					}
				}
			}
		}
	}
	return s
}

func (s *Stats) extend(v format.Vec3) {
	if !s.HasBounds {
		s.BoundsMin, s.BoundsMax = v, v
		s.HasBounds = true
		return
	}
	if v.X < s.BoundsMin.X {
		s.BoundsMin.X = v.X
	}
	if v.Y < s.BoundsMin.Y {
		s.BoundsMin.Y = v.Y
	}
	if v.Z < s.BoundsMin.Z {
		s.BoundsMin.Z = v.Z
	}
	if v.X > s.BoundsMax.X {
		s.BoundsMax.X = v.X
	}
	if v.Y > s.BoundsMax.Y {
		s.BoundsMax.Y = v.Y
	}
	if v.Z > s.BoundsMax.Z {
		s.BoundsMax.Z = v.Z
	}
}
