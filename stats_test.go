package wld

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/serioustools/wld/format"
)

func TestCollect(t *testing.T) {
	w := &format.World{
		Brushes: []format.Brush{
			{
				ID: 0,
				Mips: []format.BrushMip{
					{
						MaxDistance: 500,
						Sectors: []format.Sector{
							{
								Vertices: []format.Vec3{
									{X: -1, Y: 0, Z: 2},
									{X: 3, Y: -4, Z: 0},
								},
								Polygons: []format.Polygon{
									{
										Vertices: []format.Vec3{{X: -1, Y: 0, Z: 2}},
										Indices:  []uint32{0, 1, 0},
									},
									{}, // legacy record with no triangle data
								},
							},
						},
					},
				},
			},
			{ID: 1},
		},
	}

	s := Collect(w)
	assert.Equal(t, 2, s.Brushes)
	assert.Equal(t, 1, s.Mips)
	assert.Equal(t, 1, s.Sectors)
	assert.Equal(t, 2, s.Polygons)
	assert.Equal(t, 2, s.Vertices)
	assert.Equal(t, 3, s.Elements)
	assert.Equal(t, 1, s.EmptyPolygons)

	assert.True(t, s.HasBounds)
	assert.Equal(t, format.Vec3{X: -1, Y: -4, Z: 0}, s.BoundsMin)
	assert.Equal(t, format.Vec3{X: 3, Y: 0, Z: 2}, s.BoundsMax)
}

func TestCollectEmpty(t *testing.T) {
	s := Collect(&format.World{})
	assert.Equal(t, Stats{}, s)
	assert.False(t, s.HasBounds)

	assert.Equal(t, Stats{}, Collect(nil))
}
