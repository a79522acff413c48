package factory

import (
	"github.com/automoto/doomerang-duel/archetypes"
	"github.com/automoto/doomerang-duel/components"
	"github.com/automoto/doomerang-duel/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevelSelect spawns the level grid for levels with preferred hovered
func CreateLevelSelect(ecs *ecs.ECS, levels []components.LevelEntry, preferred string, screenW, screenH int) *donburi.Entry {
	grid := archetypes.LevelSelect.Spawn(ecs)
	data := systems.NewLevelSelectData(levels, preferred, screenW, screenH)
	components.LevelSelect.Set(grid, &data)
	return grid
}
