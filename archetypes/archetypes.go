package archetypes

import (
	"github.com/automoto/pingpong/components"
	cfg "github.com/automoto/pingpong/config"
	"github.com/automoto/pingpong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Match = newArchetype(
		tags.Match,
		components.Match,
		components.Input,
		components.Screen,
		components.Clock,
		components.Overlay,
	)
	Audio = newArchetype(
		components.Audio,
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
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
