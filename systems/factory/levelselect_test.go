package factory

import (
	"testing"

	"github.com/automoto/doomerang-duel/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCreateLevelSelect(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	levels := []components.LevelEntry{
		{Map: "rooftops", Name: "Rooftops"},
		{Map: "foundry", Name: "Foundry"},
	}

	entry := CreateLevelSelect(e, levels, "foundry", 960, 540)

	first, ok := components.LevelSelect.First(e.World)
	require.True(t, ok)
	assert.Equal(t, entry.Entity(), first.Entity())

	data := components.LevelSelect.Get(entry)
	assert.Equal(t, 1, data.Hovered)
	assert.Len(t, data.Cards, 2)
	assert.NotNil(t, data.Space)
}
