package ecs_test

import (
	"testing"

	"github.com/plus3/sparsecs/ecs"
	"github.com/stretchr/testify/assert"
)

func TestInvalidEntity(t *testing.T) {
	assert.False(t, ecs.Invalid.IsValid())
	assert.Equal(t, ecs.InvalidIndex, ecs.Invalid.Index())
	assert.Equal(t, "Entity(invalid, gen=0)", ecs.Invalid.String())
}

func TestEntityEquality(t *testing.T) {
	scene := newTestScene()

	a := scene.CreateEntity()
	b := scene.CreateEntity()
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, a)

	assert.NoError(t, scene.DestroyEntity(a))
	c := scene.CreateEntity()

	// Same slot, different generation.
	assert.Equal(t, a.Index(), c.Index())
	assert.NotEqual(t, a, c)
	assert.Equal(t, "Entity(0, gen=1)", c.String())
}
