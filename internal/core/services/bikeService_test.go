package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/adapter/memory"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBikeService_CreateBikeValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name string
		bike *domain.Bike
	}{
		{name: "missing owner", bike: &domain.Bike{BikeName: "x"}},
		{name: "negative distance", bike: &domain.Bike{UserID: uuid.New(), TotalDistance: -1}},
		{name: "unknown type", bike: &domain.Bike{UserID: uuid.New(), Type: "tandem"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.bikes.CreateBike(ctx, tt.bike)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestBikeService_GetBikeByIDUsesCache(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	bike := env.createBike(t, uuid.New(), 42)

	got, err := env.bikes.GetBikeByID(ctx, bike.BikeID.String())
	require.NoError(t, err)
	assert.Equal(t, 42.0, got.TotalDistance)

	cached, err := env.cache.Get(bikeCacheKey(bike.BikeID))
	require.NoError(t, err)
	var fromCache domain.Bike
	require.NoError(t, json.Unmarshal(cached, &fromCache))
	assert.Equal(t, bike.BikeID, fromCache.BikeID)

	_, err = env.bikes.RecordDistance(ctx, bike.BikeID.String(), 50)
	require.NoError(t, err)
	_, err = env.cache.Get(bikeCacheKey(bike.BikeID))
	assert.Error(t, err)

	got, err = env.bikes.GetBikeByID(ctx, bike.BikeID.String())
	require.NoError(t, err)
	assert.Equal(t, 50.0, got.TotalDistance)
}

func TestBikeService_GetBikeByIDErrors(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.bikes.GetBikeByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.bikes.GetBikeByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBikeService_RecordDistance(t *testing.T) {
	tests := []struct {
		name        string
		start       float64
		total       float64
		wantCurrent float64
	}{
		{name: "forward accrues", start: 1000, total: 1250, wantCurrent: 350},
		{name: "unchanged", start: 1000, total: 1000, wantCurrent: 100},
		{name: "correction subtracts", start: 1000, total: 960, wantCurrent: 60},
		{name: "large correction clamps at zero", start: 1000, total: 0, wantCurrent: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			ctx := context.Background()
			bike := env.createBike(t, uuid.New(), tt.start)
			chain := env.createType(t, "Chain", 3000)
			component, err := env.components.AddComponent(ctx, domain.AddComponentInput{
				BikeID:          bike.BikeID.String(),
				ComponentTypeID: chain.ID.String(),
				CurrentDistance: float(100),
			})
			require.NoError(t, err)

			updated, err := env.bikes.RecordDistance(ctx, bike.BikeID.String(), tt.total)
			require.NoError(t, err)
			assert.Equal(t, tt.total, updated.TotalDistance)

			got, err := env.components.GetComponentByID(ctx, component.ID.String())
			require.NoError(t, err)
			assert.InDelta(t, tt.wantCurrent, got.CurrentDistance, 1e-9)
		})
	}
}

func TestBikeService_RecordDistanceLocksBikeRow(t *testing.T) {
	mem := memory.NewStore()
	env := newTestEnvWithStore(t, mem)
	ctx := context.Background()
	bike := env.createBike(t, uuid.New(), 1200)
	chain := env.createType(t, "Chain", 3000)
	component := env.addComponent(t, bike, chain)

	tracked := &lockTrackingStore{Store: mem}
	bikes := newBikeServiceFor(t, tracked)

	// A retried sync delivers the same reading twice at once.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = bikes.RecordDistance(ctx, bike.BikeID.String(), 1500)
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	locked, plain := tracked.counts()
	assert.Equal(t, 2, locked)
	assert.Zero(t, plain)

	got, err := env.components.GetComponentByID(ctx, component.ID.String())
	require.NoError(t, err)
	assert.InDelta(t, 300, got.CurrentDistance, 1e-9)
}

func TestBikeService_RecordDistanceSkipsRetiredComponents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	bike := env.createBike(t, uuid.New(), 0)
	chain := env.createType(t, "Chain", 3000)
	component := env.addComponent(t, bike, chain)

	_, err := env.components.ReplaceComponent(ctx, domain.ReplaceComponentInput{ComponentID: component.ID.String()})
	require.NoError(t, err)

	_, err = env.bikes.RecordDistance(ctx, bike.BikeID.String(), 300)
	require.NoError(t, err)

	retired, err := env.components.GetComponentByID(ctx, component.ID.String())
	require.NoError(t, err)
	assert.Zero(t, retired.CurrentDistance)
}

func TestBikeService_RecordDistanceErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.bikes.RecordDistance(ctx, uuid.NewString(), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.bikes.RecordDistance(ctx, uuid.NewString(), 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBikeService_GetBikeWithComponents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	bike := env.createBike(t, uuid.New(), 0)

	empty, err := env.bikes.GetBikeWithComponents(ctx, bike.BikeID.String())
	require.NoError(t, err)
	assert.NotNil(t, empty.Components)
	assert.Empty(t, empty.Components)

	env.addComponent(t, bike, env.createType(t, "Chain", 3000))
	env.addComponent(t, bike, env.createType(t, "Tires", 4000))

	full, err := env.bikes.GetBikeWithComponents(ctx, bike.BikeID.String())
	require.NoError(t, err)
	assert.Len(t, full.Components, 2)
}

func TestBikeService_UpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := uuid.New()
	bike := env.createBike(t, owner, 10)
	env.addComponent(t, bike, env.createType(t, "Chain", 3000))

	bike.BikeName = "Gravel grinder"
	bike.Type = domain.Gravel
	updated, err := env.bikes.UpdateBike(ctx, bike)
	require.NoError(t, err)
	assert.Equal(t, "Gravel grinder", updated.BikeName)
	assert.Equal(t, domain.Gravel, updated.Type)

	bikes, err := env.bikes.GetBikesByUserID(ctx, owner.String())
	require.NoError(t, err)
	assert.Len(t, bikes, 1)

	require.NoError(t, env.bikes.DeleteBike(ctx, bike.BikeID.String()))
	assert.ErrorIs(t, env.bikes.DeleteBike(ctx, bike.BikeID.String()), domain.ErrNotFound)

	_, err = env.bikes.GetBikeByID(ctx, bike.BikeID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	condition, err := env.garage.GetGarageCondition(ctx, owner.String())
	require.NoError(t, err)
	assert.Zero(t, condition.Components)
}
