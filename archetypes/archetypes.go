package archetypes

import (
	"github.com/automoto/doomerang-duel/components"
	"github.com/automoto/doomerang-duel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LayerDefault is the only layer the menu worlds use
const LayerDefault ecs.LayerID = iota

var (
	Input = newArchetype(
		tags.Input,
		components.Input,
	)
	MainMenu = newArchetype(
		tags.Menu,
		components.MainMenu,
	)
	PlayerList = newArchetype(
		tags.PlayerList,
		components.PlayerList,
	)
	Rendezvous = newArchetype(
		tags.Rendezvous,
		components.Rendezvous,
	)
	LevelSelect = newArchetype(
		tags.LevelSelect,
		components.LevelSelect,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
