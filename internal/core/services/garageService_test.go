package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGarageService_EmptyGarage(t *testing.T) {
	env := newTestEnv(t)

	condition, err := env.garage.GetGarageCondition(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, 100.0, condition.Condition)
	assert.Equal(t, domain.BandCounts{}, condition.Counts)
}

func TestGarageService_AcrossBikes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := uuid.New()
	chain := env.createType(t, "Chain", 1000)
	tires := env.createType(t, "Tires", 1000)

	road := env.createBike(t, owner, 0)
	gravel := env.createBike(t, owner, 0)
	env.addComponent(t, road, chain)
	env.addComponent(t, road, tires)
	env.addComponent(t, gravel, chain)

	// Someone else's bike must not count.
	other := env.createBike(t, uuid.New(), 0)
	env.addComponent(t, other, chain)

	_, err := env.bikes.RecordDistance(ctx, road.BikeID.String(), 950)
	require.NoError(t, err)
	_, err = env.bikes.RecordDistance(ctx, gravel.BikeID.String(), 100)
	require.NoError(t, err)

	condition, err := env.garage.GetGarageCondition(ctx, owner.String())
	require.NoError(t, err)
	assert.Equal(t, 3, condition.Components)
	assert.Equal(t, domain.BandCounts{Critical: 2, Excellent: 1}, condition.Counts)
	assert.InDelta(t, (5.0+5.0+90.0)/3, condition.Condition, 1e-9)

	_, err = env.garage.GetGarageCondition(ctx, "me")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
