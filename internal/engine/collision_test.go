package engine

import (
	"testing"

	"github.com/piwi3910/garageplan/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b model.Rect
		want bool
	}{
		{"identical", model.Rect{X: 0, Y: 0, W: 10, H: 10}, model.Rect{X: 0, Y: 0, W: 10, H: 10}, true},
		{"partial", model.Rect{X: 0, Y: 0, W: 10, H: 10}, model.Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", model.Rect{X: 0, Y: 0, W: 100, H: 100}, model.Rect{X: 10, Y: 10, W: 5, H: 5}, true},
		{"touching east edge", model.Rect{X: 0, Y: 0, W: 10, H: 10}, model.Rect{X: 10, Y: 0, W: 10, H: 10}, false},
		{"touching south edge", model.Rect{X: 0, Y: 0, W: 10, H: 10}, model.Rect{X: 0, Y: 10, W: 10, H: 10}, false},
		{"touching corner", model.Rect{X: 0, Y: 0, W: 10, H: 10}, model.Rect{X: 10, Y: 10, W: 10, H: 10}, false},
		{"apart", model.Rect{X: 0, Y: 0, W: 10, H: 10}, model.Rect{X: 50, Y: 50, W: 10, H: 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.a, tc.b))
			assert.Equal(t, Overlaps(tc.a, tc.b), Overlaps(tc.b, tc.a), "overlap must be symmetric")
		})
	}
}

func TestInBounds(t *testing.T) {
	space := model.NewGarageSpace(240, 300, 108)

	assert.True(t, InBounds(model.Rect{X: 0, Y: 0, W: 240, H: 300}, space))
	assert.True(t, InBounds(model.Rect{X: 200, Y: 250, W: 40, H: 50}, space))
	assert.False(t, InBounds(model.Rect{X: -1, Y: 0, W: 10, H: 10}, space))
	assert.False(t, InBounds(model.Rect{X: 0, Y: -1, W: 10, H: 10}, space))
	assert.False(t, InBounds(model.Rect{X: 231, Y: 0, W: 10, H: 10}, space))
	assert.False(t, InBounds(model.Rect{X: 0, Y: 291, W: 10, H: 10}, space))
}

func TestLayout_IsClear(t *testing.T) {
	space := model.NewGarageSpace(300, 300, 108)
	layout := NewLayout(space, []model.Constraint{
		{Type: model.FeatureGarageDoor, X: 54, Y: 240, Width: 192, Depth: 60},
		{Type: model.FeatureEntryDoor, X: 0, Y: 0, Width: 36, Depth: 36},
	})
	layout.Zones = append(layout.Zones, model.Zone{Type: model.ZoneWorkbench, X: 100, Y: 0, Width: 48, Depth: 60})

	r := model.Rect{X: 90, Y: 96, W: 120, H: 204}
	assert.False(t, layout.IsClear(r, nil), "garage door clearance blocks without exemption")
	assert.True(t, layout.IsClear(r, isGarageDoor), "garage door clearance is exempt for vehicles")

	assert.False(t, layout.IsClear(model.Rect{X: 10, Y: 10, W: 10, H: 10}, isGarageDoor), "entry door is never exempt")
	assert.False(t, layout.IsClear(model.Rect{X: 120, Y: 30, W: 10, H: 10}, nil), "placed zones block")
	assert.True(t, layout.IsClear(model.Rect{X: 36, Y: 0, W: 64, H: 60}, nil), "touching neighbours is fine")
	assert.False(t, layout.IsClear(model.Rect{X: 290, Y: 0, W: 20, H: 10}, nil), "out of bounds")
}
