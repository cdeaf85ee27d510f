package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShowSlotsFor(t *testing.T) {
	show := &Show{PrerollSlots: 1, MidrollSlots: 3, PostrollSlots: 2}

	assert.Equal(t, 1, show.SlotsFor(PlacementPreroll))
	assert.Equal(t, 3, show.SlotsFor(PlacementMidroll))
	assert.Equal(t, 2, show.SlotsFor(PlacementPostroll))
	assert.Equal(t, 0, show.SlotsFor("banner"))
}

func TestValidPlacement(t *testing.T) {
	assert.True(t, ValidPlacement(PlacementPreroll))
	assert.True(t, ValidPlacement(PlacementMidroll))
	assert.True(t, ValidPlacement(PlacementPostroll))

	assert.False(t, ValidPlacement(""))
	assert.False(t, ValidPlacement("midrolls"))
	assert.False(t, ValidPlacement("Midroll"))
}
