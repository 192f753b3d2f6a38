package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/vigil/ecs"
)

func TestGetComponents(t *testing.T) {
	storage := newTestStorage()

	a1 := Position{X: 1}
	b1 := Velocity{DX: 1}
	a2 := Position{X: 2}

	e1 := storage.CreateEntity(a1, b1)
	e2 := storage.CreateEntity(a2)

	posType := ecs.ComponentTypeOf[Position](storage)
	velType := ecs.ComponentTypeOf[Velocity](storage)
	healthType := ecs.ComponentTypeOf[Health](storage)

	t.Run("intersection of two types", func(t *testing.T) {
		results := collectIds(storage, posType, velType)
		assert.Equal(t, map[ecs.EntityId][]any{e1: {a1, b1}}, results)
	})

	t.Run("single type returns every carrier", func(t *testing.T) {
		results := collectIds(storage, posType)
		assert.Equal(t, map[ecs.EntityId][]any{e1: {a1}, e2: {a2}}, results)
	})

	t.Run("components follow request order", func(t *testing.T) {
		results := collectIds(storage, velType, posType)
		assert.Equal(t, map[ecs.EntityId][]any{e1: {b1, a1}}, results)
	})

	t.Run("never populated type yields nothing", func(t *testing.T) {
		assert.Empty(t, collectIds(storage, velType, healthType))
		assert.Empty(t, collectIds(storage, healthType))
		assert.Empty(t, collectIds(storage, ecs.ComponentType(999)))
	})

	t.Run("no types yields nothing", func(t *testing.T) {
		assert.Empty(t, collectIds(storage))
	})

	t.Run("repeated type", func(t *testing.T) {
		results := collectIds(storage, velType, velType)
		assert.Equal(t, map[ecs.EntityId][]any{e1: {b1, b1}}, results)
	})

	t.Run("early break", func(t *testing.T) {
		count := 0
		for range storage.GetComponents(posType) {
			count++
			break
		}
		assert.Equal(t, 1, count)
	})

	t.Run("count", func(t *testing.T) {
		assert.Equal(t, 2, storage.Count(posType))
		assert.Equal(t, 1, storage.Count(posType, velType))
		assert.Equal(t, 0, storage.Count(healthType))
	})
}

func TestGetComponentsIsLazy(t *testing.T) {
	storage := newTestStorage()
	posType := ecs.ComponentTypeOf[Position](storage)

	// built before any Position exists, evaluated afterwards
	seq := storage.GetComponents(posType)
	id := storage.CreateEntity(Position{X: 7})

	matches := ecs.Collect(seq)
	require.Len(t, matches, 1)
	assert.Equal(t, id, matches[0].Entity)
	assert.Equal(t, []any{Position{X: 7}}, matches[0].Components)
}

func TestCollectAllowsMutation(t *testing.T) {
	storage := newTestStorage()
	for i := 0; i < 10; i++ {
		storage.CreateEntity(Health{Current: i, Max: 10})
	}

	healthType := ecs.ComponentTypeOf[Health](storage)
	for _, match := range ecs.Collect(storage.GetComponents(healthType)) {
		health := match.Components[0].(Health)
		require.NoError(t, storage.AddComponent(match.Entity, Health{Current: health.Max, Max: health.Max}))
	}

	for _, components := range storage.GetComponents(healthType) {
		assert.Equal(t, 10, components[0].(Health).Current)
	}
	assert.Equal(t, 10, storage.Count(healthType))
}

func TestStoryScenario(t *testing.T) {
	storage := newTestStorage()

	e1 := storage.CreateEntity(Enemy{"Joker"}, City{"Gotham"}, Action{"X"})
	e2 := storage.CreateEntity(Hero{"Batman"}, ActionList{[]string{"Y", "Z"}})

	enemyType := ecs.ComponentTypeOf[Enemy](storage)
	actionType := ecs.ComponentTypeOf[Action](storage)
	cityType := ecs.ComponentTypeOf[City](storage)
	heroType := ecs.ComponentTypeOf[Hero](storage)
	listType := ecs.ComponentTypeOf[ActionList](storage)

	assert.Equal(t,
		[]ecs.Match{{Entity: e1, Components: []any{Enemy{"Joker"}, Action{"X"}, City{"Gotham"}}}},
		ecs.Collect(storage.GetComponents(enemyType, actionType, cityType)),
	)
	assert.Equal(t,
		[]ecs.Match{{Entity: e2, Components: []any{Hero{"Batman"}, ActionList{[]string{"Y", "Z"}}}}},
		ecs.Collect(storage.GetComponents(heroType, listType)),
	)
	assert.Empty(t, ecs.Collect(storage.GetComponents(heroType, cityType)))
}
