package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/tileswap/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcSystem func(frame *ecs.UpdateFrame)

func (f funcSystem) Execute(frame *ecs.UpdateFrame) { f(frame) }

func TestCommandsAreDeferredUntilFlush(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	target := storage.Spawn(Position{X: 1}, Tint{})
	ref := storage.CreateEntityRef(target)

	var during *Marker
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(funcSystem(func(frame *ecs.UpdateFrame) {
		frame.Commands.AddComponent(target, Marker{})
		frame.Commands.Spawn(Label("new"))
		during = ecs.ReadComponent[Marker](frame.Storage, target)
	}))

	scheduler.Once(0)

	assert.Nil(t, during)
	assert.NotNil(t, ecs.ReadComponent[Marker](storage, ref.Id))
	assert.Equal(t, 2, storage.CollectStats().TotalEntityCount)
}

func TestCommandsDropChangesToDeletedEntities(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	doomed := storage.Spawn(Position{}, Marker{})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(funcSystem(func(frame *ecs.UpdateFrame) {
		frame.Commands.RemoveComponent(doomed, reflect.TypeFor[Marker]())
		frame.Commands.AddComponent(doomed, Tint{})
		frame.Commands.Delete(doomed)
	}))
	scheduler.Once(0)

	assert.Zero(t, storage.CollectStats().TotalEntityCount)
}

func TestCommandsDeferRunsLast(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var order []string
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(funcSystem(func(frame *ecs.UpdateFrame) {
		before := frame.Storage.CollectStats().TotalEntityCount
		frame.Commands.Defer(func() {
			order = append(order, "defer")
			require.Equal(t, before+1, frame.Storage.CollectStats().TotalEntityCount)
		})
		frame.Commands.Spawn(Label("spawned"))
		order = append(order, "system")
	}))
	scheduler.Once(0)

	assert.Equal(t, []string{"system", "defer"}, order)

	scheduler.Once(0)
	assert.Equal(t, []string{"system", "defer", "system", "defer"}, order)
	assert.Equal(t, 2, storage.CollectStats().TotalEntityCount)
}
