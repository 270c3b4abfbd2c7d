package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/tileswap/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityIdEncoding(t *testing.T) {
	for _, tt := range []struct {
		archetype, index uint32
	}{
		{0, 0},
		{1, 0},
		{0, 1},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{0x12345678, 0x9ABCDEF0},
	} {
		id := ecs.NewEntityId(tt.archetype, tt.index)
		assert.Equal(t, tt.archetype, id.ArchetypeId())
		assert.Equal(t, tt.index, id.Index())
	}
}

func TestSpawnAndGetComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1, Y: 2, Z: 3}, &Tint{Dark: true})

	pos := ecs.ReadComponent[Position](storage, id)
	require.NotNil(t, pos)
	assert.Equal(t, Position{X: 1, Y: 2, Z: 3}, *pos)

	tint := ecs.ReadComponent[Tint](storage, id)
	require.NotNil(t, tint)
	assert.True(t, tint.Dark)

	assert.Nil(t, ecs.ReadComponent[Label](storage, id))
	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Position]()))
	assert.False(t, storage.HasComponent(id, reflect.TypeFor[Marker]()))
}

func TestComponentPointersAreLive(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Tint{})

	ecs.ReadComponent[Tint](storage, id).Dark = true

	assert.True(t, ecs.ReadComponent[Tint](storage, id).Dark)
}

func TestSpawnOrderDoesNotChangeArchetype(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Position{}, Tint{})
	b := storage.Spawn(Tint{}, Position{})

	assert.Equal(t, a.ArchetypeId(), b.ArchetypeId())
	assert.NotEqual(t, a.Index(), b.Index())
}

func TestSpawnPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() })
	assert.Panics(t, func() { storage.Spawn(Counter{}) })
	assert.Panics(t, func() { storage.Spawn(map[string]int{}) })
}

func TestDeleteReusesSlot(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	first := storage.Spawn(Label("first"))
	storage.Spawn(Label("second"))
	storage.Delete(first)

	assert.Nil(t, ecs.ReadComponent[Label](storage, first))

	third := storage.Spawn(Label("third"))
	assert.Equal(t, first, third)
	assert.Equal(t, Label("third"), *ecs.ReadComponent[Label](storage, third))

	storage.Delete(ecs.NewEntityId(42, 42))
}

func TestAddComponentMovesEntity(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 5}, Tint{Dark: true})

	moved := storage.AddComponent(id, Marker{})

	assert.NotEqual(t, id.ArchetypeId(), moved.ArchetypeId())
	assert.Nil(t, ecs.ReadComponent[Position](storage, id))
	assert.Equal(t, float32(5), ecs.ReadComponent[Position](storage, moved).X)
	assert.True(t, ecs.ReadComponent[Tint](storage, moved).Dark)
	assert.NotNil(t, ecs.ReadComponent[Marker](storage, moved))
}

func TestAddExistingComponentOverwrites(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1})

	same := storage.AddComponent(id, &Position{X: 9})

	assert.Equal(t, id, same)
	assert.Equal(t, float32(9), ecs.ReadComponent[Position](storage, id).X)
}

func TestRemoveComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{Y: 4}, Marker{})

	moved := storage.RemoveComponent(id, reflect.TypeFor[Marker]())
	assert.Nil(t, ecs.ReadComponent[Marker](storage, moved))
	assert.Equal(t, float32(4), ecs.ReadComponent[Position](storage, moved).Y)

	unchanged := storage.RemoveComponent(moved, reflect.TypeFor[Marker]())
	assert.Equal(t, moved, unchanged)

	assert.Equal(t, ecs.EntityId(0), storage.RemoveComponent(moved, reflect.TypeFor[Position]()))
	assert.Nil(t, ecs.ReadComponent[Position](storage, moved))
}

func TestSingletons(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	counter := ecs.NewSingleton(storage, Counter{Ticks: 3})
	counter.Get().Ticks++

	again := ecs.NewSingleton(storage, Counter{Ticks: 100})
	assert.Equal(t, 4, again.Get().Ticks, "initializer must not overwrite an existing singleton")

	var read *Counter
	require.True(t, storage.ReadSingleton(&read))
	assert.Same(t, counter.Get(), read)

	var missing *Label
	assert.False(t, storage.ReadSingleton(&missing))
	assert.Nil(t, missing)

	storage.AddSingleton(Counter{Ticks: 7})
	assert.Equal(t, 7, counter.Get().Ticks)
}

func TestSingletonWithoutStorage(t *testing.T) {
	var s ecs.Singleton[Counter]
	assert.Nil(t, s.Get())
	assert.False(t, s.Exists())
}

func TestCollectStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	stats := storage.CollectStats()
	assert.Zero(t, stats.ArchetypeCount)
	assert.Zero(t, stats.TotalEntityCount)
	assert.Zero(t, stats.SingletonCount)

	storage.Spawn(Position{}, Tint{})
	storage.Spawn(Position{}, Tint{})
	gone := storage.Spawn(Label("x"))
	storage.Spawn(Label("y"))
	storage.Delete(gone)
	ecs.NewSingleton(storage, Counter{})

	stats = storage.CollectStats()
	assert.Equal(t, 2, stats.ArchetypeCount)
	assert.Equal(t, 3, stats.TotalEntityCount)
	assert.Equal(t, 1, stats.SingletonCount)
	assert.Equal(t, []string{"ecs_test.Counter"}, stats.SingletonTypes)

	require.Len(t, stats.ArchetypeBreakdown, 2)
	assert.Equal(t, 2, stats.ArchetypeBreakdown[0].EntityCount)
	assert.Equal(t, []string{"ecs_test.Position", "ecs_test.Tint"}, stats.ArchetypeBreakdown[0].ComponentTypes)
	assert.Equal(t, 1, stats.ArchetypeBreakdown[1].EntityCount)
}

func TestStorageComponentTypes(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1}, Tint{})
	types := storage.ComponentTypes(id)
	require.Len(t, types, 2)
	assert.ElementsMatch(t, []reflect.Type{reflect.TypeFor[Position](), reflect.TypeFor[Tint]()}, types)

	storage.Delete(id)
	assert.Nil(t, storage.ComponentTypes(id))
}
