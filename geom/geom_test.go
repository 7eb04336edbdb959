package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestBounds(t *testing.T) {
	var b Bounds
	assert.True(t, b.Empty())
	assert.Equal(t, "None", b.String())

	b.AddPoint(Point{1, 2})
	b.AddRect(R(-1, 0, 0.5, 5))
	r, ok := b.Rect()
	assert.True(t, ok)
	assert.Equal(t, R(-1, 0, 1, 5), r)

	var other Bounds
	assert.False(t, b.Equal(other))
	other.AddRect(R(-1, 0, 1, 5))
	assert.True(t, b.Equal(other))
	assert.True(t, Bounds{}.Equal(Bounds{}))
}

func TestRectOverlapsIgnoresTouching(t *testing.T) {
	a := R(0, 0, 1, 1)
	assert.True(t, a.Overlaps(R(0.5, 0.5, 2, 2)))
	assert.False(t, a.Overlaps(R(1, 0, 2, 1)), "shared edge is not overlap")
	assert.False(t, a.Overlaps(R(3, 3, 4, 4)))
}

func TestOverlapArea(t *testing.T) {
	square := R(0, 0, 2, 2).Polygon()

	tests := []struct {
		name  string
		poly  Polygon
		probe Rect
		want  float64
	}{
		{"contained probe", square, R(0.5, 0.5, 1.5, 1.5), 1},
		{"half overlap", square, R(1, 0, 3, 2), 2},
		{"touching edge", square, R(2, 0, 3, 2), 0},
		{"disjoint", square, R(5, 5, 6, 6), 0},
		{
			// L shape: the notch at the top right is empty
			name:  "concave notch",
			poly:  Polygon{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}},
			probe: R(1.2, 1.2, 1.8, 1.8),
			want:  0,
		},
		{
			name:  "concave arm",
			poly:  Polygon{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}},
			probe: R(0, 0, 2, 2),
			want:  3,
		},
		{
			name:  "triangle",
			poly:  Polygon{{0, 0}, {2, 0}, {0, 2}},
			probe: R(0, 0, 1, 1),
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, OverlapArea(tt.poly, tt.probe), 1e-9)
		})
	}
}

func TestAnyOverlap(t *testing.T) {
	polys := []Polygon{R(0, 0, 1, 1).Polygon(), R(10, 10, 11, 11).Polygon()}

	assert.True(t, AnyOverlap(polys, R(10.5, 10.5, 12, 12)))
	assert.False(t, AnyOverlap(polys, R(1, 0, 2, 1)))
	assert.False(t, AnyOverlap(nil, R(0, 0, 1, 1)))

	// a single 1nm x 1nm overlap on the usual micron grid
	unit := []Polygon{R(0.999, 0.5, 1.05, 0.501).Polygon()}
	assert.True(t, AnyOverlap(unit, R(0, 0, 1, 1)))
}

func TestPlacement(t *testing.T) {
	p := Point{1, 2}

	tests := []struct {
		name    string
		origin  Point
		rot     float64
		mag     float64
		reflect bool
		want    Point
	}{
		{"identity", Point{}, 0, 1, false, Point{1, 2}},
		{"translate", Point{10, 20}, 0, 1, false, Point{11, 22}},
		{"rotate 90", Point{}, 90, 1, false, Point{-2, 1}},
		{"rotate 180", Point{}, 180, 1, false, Point{-1, -2}},
		{"rotate -90", Point{}, -90, 1, false, Point{2, -1}},
		{"reflect", Point{}, 0, 1, true, Point{1, -2}},
		{"reflect then rotate 90", Point{}, 90, 1, true, Point{2, 1}},
		{"magnify", Point{}, 0, 2, false, Point{2, 4}},
		{"zero mag means one", Point{}, 0, 0, false, Point{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Placement(tt.origin, tt.rot, tt.mag, tt.reflect).Apply(p)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThenComposes(t *testing.T) {
	inner := Placement(Point{5, 0}, 90, 1, false)
	outer := Placement(Point{0, 100}, 0, 2, true)
	p := Point{1, 1}

	assert.Equal(t, outer.Apply(inner.Apply(p)), inner.Then(outer).Apply(p))
	assert.True(t, inner.Then(outer).Manhattan())
	assert.False(t, Placement(Point{}, 45, 1, false).Manhattan())
}

func TestPolygonTransform(t *testing.T) {
	poly := R(0, 0, 2, 1).Polygon()
	got := poly.Transform(Placement(Point{10, 0}, 90, 1, false))

	want := Polygon{{10, 0}, {10, 2}, {9, 2}, {9, 0}}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("transformed polygon mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, R(9, 0, 10, 2), Placement(Point{10, 0}, 90, 1, false).ApplyRect(R(0, 0, 2, 1)))
}
