package ecs_test

import "github.com/plus3/tileswap/ecs"

type Position struct {
	X, Y, Z float32
}

type Tint struct {
	Dark bool
}

type Marker struct{}

type Label string

type Counter struct {
	Ticks int
}

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Tint](registry)
	ecs.RegisterComponent[Marker](registry)
	ecs.RegisterComponent[Label](registry)
	return registry
}
