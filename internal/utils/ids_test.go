package utils

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserIDGenerator_Generate(t *testing.T) {
	g := NewUserIDGenerator()

	first, second := g.Generate(), g.Generate()
	assert.NotEqual(t, first, second)

	id, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.Less(t, first, second)
}

func TestUserIDGenerator_FallsBackToRandom(t *testing.T) {
	g := &UserIDGenerator{newV7: func() (uuid.UUID, error) {
		return uuid.Nil, errors.New("clock unavailable")
	}}

	id, err := uuid.Parse(g.Generate())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())
}
