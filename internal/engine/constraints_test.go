package engine

import (
	"testing"

	"github.com/piwi3910/garageplan/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_WallGeometry(t *testing.T) {
	space := model.NewGarageSpace(300, 240, 108)
	space.North = []model.Feature{model.NewFeature("Entry Door", model.FeatureEntryDoor, 100, 36)}
	space.East = []model.Feature{model.NewFeature("Water Heater", model.FeatureWaterHeater, 30, 30)}
	space.South = []model.Feature{model.NewFeature("Service Door", model.FeatureServiceDoor, 250, 36)}
	space.West = []model.Feature{model.NewFeature("Window", model.FeatureWindow, 10, 36)}
	space.Floor = []model.Feature{model.NewFeature("Drain", "drain", 50, 6)}

	got := NewConstraintGenerator(model.DefaultSettings()).Generate(space)
	require.Len(t, got, 4, "floor features produce no constraints")

	// N, E, S, W order
	assert.Equal(t, model.Rect{X: 82, Y: 0, W: 36, H: 36}, got[0].Rect())
	assert.Equal(t, model.WallNorth, got[0].Wall)

	assert.Equal(t, model.Rect{X: 276, Y: 15, W: 24, H: 30}, got[1].Rect())
	assert.Equal(t, model.WallEast, got[1].Wall)

	assert.Equal(t, model.Rect{X: 232, Y: 204, W: 36, H: 36}, got[2].Rect())
	assert.Equal(t, model.WallSouth, got[2].Wall)

	// Position 10 with a 36" window would start at -8; clamped.
	assert.Equal(t, model.Rect{X: 0, Y: 0, W: 6, H: 36}, got[3].Rect())
	assert.Equal(t, model.WallWest, got[3].Wall)
	assert.Equal(t, "Window - keep 6\" clear", got[3].Description)
}

func TestGenerate_GarageDoorUsesPullIn(t *testing.T) {
	space := model.NewGarageSpace(300, 300, 108)
	space.South = []model.Feature{model.NewFeature("Garage Door", model.FeatureGarageDoor, 150, 192)}

	got := NewConstraintGenerator(model.DefaultSettings()).Generate(space)
	require.Len(t, got, 1)

	c := got[0]
	assert.Equal(t, 60.0, c.Depth, "pull-in overrides the door clearance")
	assert.Equal(t, 240.0, c.Y)
	assert.Equal(t, 54.0, c.X)
	assert.Equal(t, 192.0, c.Width)
	assert.Equal(t, "Garage Door - keep 3' clear", c.Description)
}

func TestGenerate_GarageDoorOnOtherWalls(t *testing.T) {
	space := model.NewGarageSpace(300, 300, 108)
	space.North = []model.Feature{model.NewFeature("Rear Garage Door", "garage_door_rear", 150, 96)}
	space.East = []model.Feature{{Name: "Side garage door", Type: "door", Position: 150, Width: 108}}

	got := NewConstraintGenerator(model.DefaultSettings()).Generate(space)
	require.Len(t, got, 2)

	assert.Equal(t, model.Rect{X: 102, Y: 0, W: 96, H: 60}, got[0].Rect())
	assert.Equal(t, model.Rect{X: 240, Y: 96, W: 60, H: 108}, got[1].Rect())
	assert.True(t, got[1].Type.IsGarageDoor(), "doors named as garage doors are tagged as such")
}

func TestGenerate_UnknownTypeUsesDefault(t *testing.T) {
	space := model.NewGarageSpace(300, 300, 108)
	space.North = []model.Feature{{Name: "Hose Bib", Type: "hose_bib", Position: 200, Width: 10}}

	got := NewConstraintGenerator(model.DefaultSettings()).Generate(space)
	require.Len(t, got, 1)
	assert.Equal(t, 24.0, got[0].Depth)
	assert.Equal(t, model.FeatureType("hose_bib"), got[0].Type)
}

func TestConstraintGenerator_CopiesSettings(t *testing.T) {
	settings := model.DefaultSettings()
	gen := NewConstraintGenerator(settings)

	settings.FeatureClearances[model.FeatureWindow] = 48

	assert.Equal(t, 6.0, gen.Clearance(model.FeatureWindow), "later edits must not leak into the generator")
}
