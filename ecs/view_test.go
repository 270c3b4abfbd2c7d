package ecs_test

import (
	"testing"

	"github.com/plus3/tileswap/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type positionAndTint struct {
	*Position
	*Tint
}

type positionMaybeMarked struct {
	*Position
	Mark *Marker `ecs:"optional"`
}

func TestViewGetAndFill(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	both := storage.Spawn(Position{X: 1}, Tint{Dark: true})
	onlyPos := storage.Spawn(Position{X: 2})

	view := ecs.NewView[positionAndTint](storage)

	item := view.Get(both)
	require.NotNil(t, item)
	assert.Equal(t, float32(1), item.Position.X)
	assert.True(t, item.Tint.Dark)

	assert.Nil(t, view.Get(onlyPos))
	assert.Nil(t, view.Get(ecs.NewEntityId(7, 0)))

	item.Position.X = 10
	assert.Equal(t, float32(10), ecs.ReadComponent[Position](storage, both).X)
}

func TestViewOptionalFields(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	marked := storage.Spawn(Position{X: 1}, Marker{})
	plain := storage.Spawn(Position{X: 2})
	storage.Spawn(Tint{})

	view := ecs.NewView[positionMaybeMarked](storage)

	seen := map[ecs.EntityId]bool{}
	for id, item := range view.Iter() {
		seen[id] = item.Mark != nil
	}

	assert.Equal(t, map[ecs.EntityId]bool{marked: true, plain: false}, seen)
}

func TestViewValuesStopsEarly(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	for i := 0; i < 5; i++ {
		storage.Spawn(Position{X: float32(i)})
	}

	view := ecs.NewView[struct{ *Position }](storage)
	count := 0
	for range view.Values() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestViewPanicsOnBadShape(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { ecs.NewView[int](storage) })
	assert.Panics(t, func() { ecs.NewView[struct{ P Position }](storage) })
	assert.Panics(t, func() {
		ecs.NewView[struct {
			P *Position `ecs:"sometimes"`
		}](storage)
	})
}

func TestQuerySnapshot(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{X: 1}, Tint{})

	query := ecs.NewQuery[positionAndTint](storage)
	assert.Panics(t, func() { query.Iter() })

	query.Execute()
	assert.Equal(t, 1, query.Len())

	storage.Spawn(Position{X: 2}, Tint{}, Marker{})
	assert.Equal(t, 1, query.Len(), "snapshot only changes on Execute")

	query.Execute()
	assert.Equal(t, 2, query.Len())

	total := float32(0)
	for item := range query.Values() {
		total += item.Position.X
	}
	assert.Equal(t, float32(3), total)
}
