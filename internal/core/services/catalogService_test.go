package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/catalog"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreateComponentType(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.catalog.CreateComponentType(ctx, &domain.ComponentType{Name: "  Chain ", DefaultReplacementDistance: 3000})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Chain", created.Name)

	_, err = env.catalog.CreateComponentType(ctx, &domain.ComponentType{Name: "chain", DefaultReplacementDistance: 2000})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = env.catalog.CreateComponentType(ctx, &domain.ComponentType{Name: "Cable", DefaultReplacementDistance: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.catalog.CreateComponentType(ctx, &domain.ComponentType{DefaultReplacementDistance: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := env.catalog.GetComponentType(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Chain", got.Name)

	_, err = env.catalog.GetComponentType(ctx, "chain")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogService_ImportComponentTypes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	defaults := catalog.Default()

	created, updated, err := env.catalog.ImportComponentTypes(ctx, defaults)
	require.NoError(t, err)
	assert.Equal(t, len(defaults), created)
	assert.Zero(t, updated)

	created, updated, err = env.catalog.ImportComponentTypes(ctx, []*domain.ComponentType{
		{Name: "Chain", DefaultReplacementDistance: 3500},
		{Name: "Brake Pads", DefaultReplacementDistance: 2000},
		{Name: "Bottom Bracket", DefaultReplacementDistance: 15000},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, updated)

	chain, err := env.store.Repositories().ComponentTypes.GetComponentTypeByName(ctx, "chain")
	require.NoError(t, err)
	assert.Equal(t, 3500.0, chain.DefaultReplacementDistance)

	types, err := env.catalog.ListComponentTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, len(defaults)+1)
}

func TestCatalogService_ImportIsAllOrNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, err := env.catalog.ImportComponentTypes(ctx, []*domain.ComponentType{
		{Name: "Chain", DefaultReplacementDistance: 3000},
		{Name: "Broken", DefaultReplacementDistance: -1},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	types, err := env.catalog.ListComponentTypes(ctx)
	require.NoError(t, err)
	assert.Empty(t, types)
}
