package ecs

import (
	"bytes"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolTypeMismatchIsReported(t *testing.T) {
	var logs bytes.Buffer
	scene := NewScene(
		WithRegistry(NewComponentRegistry()),
		WithLogger(zerolog.New(&logs)),
	)
	e := scene.CreateEntity()

	// Corrupt the table: the id of string now holds an int pool.
	id := ComponentIDFor[string](scene.registry)
	scene.pools.Put(id, NewPool[int](0))
	scene.records[e.index].components.Set(uint32(id))

	_, err := Assign(scene, e, "x")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrPoolAccess))

	_, err = GetMut[string](scene, e)
	assert.True(t, eris.Is(err, ErrPoolAccess))

	err = Remove[string](scene, e)
	assert.True(t, eris.Is(err, ErrPoolAccess))

	assert.Contains(t, logs.String(), `"level":"error"`)
	assert.Contains(t, logs.String(), "component pool has unexpected type")
}

func TestDestroyClearsRecord(t *testing.T) {
	scene := NewScene(WithRegistry(NewComponentRegistry()))
	e := scene.CreateEntity()
	_, err := Assign(scene, e, 1.5)
	require.NoError(t, err)

	require.NoError(t, scene.DestroyEntity(e))

	rec := scene.records[e.index]
	assert.False(t, rec.entity.IsValid())
	assert.Equal(t, e.generation+1, rec.entity.generation)
	assert.Zero(t, rec.components.Count())
	assert.Equal(t, []uint32{e.index}, scene.freeSlots)
}

func TestGenerationWrapsAround(t *testing.T) {
	scene := NewScene(WithRegistry(NewComponentRegistry()))
	e := scene.CreateEntity()
	scene.records[e.index].entity.generation = ^uint32(0)
	e = scene.records[e.index].entity

	require.NoError(t, scene.DestroyEntity(e))
	reused := scene.CreateEntity()

	assert.Equal(t, uint32(0), reused.generation)
	assert.NotEqual(t, e, reused)
	assert.False(t, scene.Alive(e))
}
