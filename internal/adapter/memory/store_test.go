package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, store *Store) (*domain.Bike, *domain.ComponentType) {
	t.Helper()
	ctx := context.Background()
	repos := store.Repositories()

	bike, err := repos.Bikes.CreateBike(ctx, &domain.Bike{BikeID: uuid.New(), UserID: uuid.New(), TotalDistance: 1200})
	require.NoError(t, err)
	chain, err := repos.ComponentTypes.CreateComponentType(ctx, &domain.ComponentType{ID: uuid.New(), Name: "Chain", DefaultReplacementDistance: 3000})
	require.NoError(t, err)
	return bike, chain
}

func newComponent(bike *domain.Bike, componentType *domain.ComponentType) *domain.BikeComponent {
	return &domain.BikeComponent{
		ID:                  uuid.New(),
		BikeID:              bike.BikeID,
		ComponentTypeID:     componentType.ID,
		ReplacementDistance: componentType.DefaultReplacementDistance,
		InstallDistance:     bike.TotalDistance,
		IsActive:            true,
	}
}

func TestComponentRepository_OneActivePerType(t *testing.T) {
	store := NewStore()
	bike, chain := seed(t, store)
	ctx := context.Background()
	repos := store.Repositories()

	_, err := repos.Components.CreateComponent(ctx, newComponent(bike, chain))
	require.NoError(t, err)

	_, err = repos.Components.CreateComponent(ctx, newComponent(bike, chain))
	assert.ErrorIs(t, err, domain.ErrConflict)

	inactive := newComponent(bike, chain)
	inactive.IsActive = false
	_, err = repos.Components.CreateComponent(ctx, inactive)
	assert.NoError(t, err)
}

func TestComponentRepository_DeactivateOnlyMatchesActive(t *testing.T) {
	store := NewStore()
	bike, chain := seed(t, store)
	ctx := context.Background()
	repos := store.Repositories()

	component, err := repos.Components.CreateComponent(ctx, newComponent(bike, chain))
	require.NoError(t, err)

	require.NoError(t, repos.Components.DeactivateComponent(ctx, component.ID))
	assert.ErrorIs(t, repos.Components.DeactivateComponent(ctx, component.ID), domain.ErrNotFound)
	assert.ErrorIs(t, repos.Components.DeactivateComponent(ctx, uuid.New()), domain.ErrNotFound)

	_, err = repos.Components.GetActiveComponent(ctx, bike.BikeID, chain.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestComponentRepository_AccrueDistanceClampsAtZero(t *testing.T) {
	store := NewStore()
	bike, chain := seed(t, store)
	ctx := context.Background()
	repos := store.Repositories()

	component := newComponent(bike, chain)
	component.CurrentDistance = 100
	_, err := repos.Components.CreateComponent(ctx, component)
	require.NoError(t, err)

	affected, err := repos.Components.AccrueDistance(ctx, bike.BikeID, -250)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	got, err := repos.Components.GetComponentByID(ctx, component.ID)
	require.NoError(t, err)
	assert.Zero(t, got.CurrentDistance)
	require.NotNil(t, got.ComponentType)
	assert.Equal(t, "Chain", got.ComponentType.Name)
}

func TestStore_WithinTxRollsBackOnError(t *testing.T) {
	store := NewStore()
	bike, chain := seed(t, store)
	ctx := context.Background()

	component, err := store.Repositories().Components.CreateComponent(ctx, newComponent(bike, chain))
	require.NoError(t, err)

	boom := errors.New("boom")
	err = store.WithinTx(ctx, func(repos ports.Repositories) error {
		if err := repos.Components.DeactivateComponent(ctx, component.ID); err != nil {
			return err
		}
		if _, err := repos.Bikes.SetTotalDistance(ctx, bike.BikeID, 5000); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := store.Repositories().Components.GetComponentByID(ctx, component.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)

	gotBike, err := store.Repositories().Bikes.GetBikeByID(ctx, bike.BikeID)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, gotBike.TotalDistance)
}

func TestStore_WithinTxCommits(t *testing.T) {
	store := NewStore()
	bike, _ := seed(t, store)
	ctx := context.Background()

	err := store.WithinTx(ctx, func(repos ports.Repositories) error {
		_, err := repos.Bikes.SetTotalDistance(ctx, bike.BikeID, 1500)
		return err
	})
	require.NoError(t, err)

	got, err := store.Repositories().Bikes.GetBikeByID(ctx, bike.BikeID)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, got.TotalDistance)
}

func TestComponentTypeRepository_NamesAreUnique(t *testing.T) {
	store := NewStore()
	_, _ = seed(t, store)

	_, err := store.Repositories().ComponentTypes.CreateComponentType(context.Background(),
		&domain.ComponentType{ID: uuid.New(), Name: "chain", DefaultReplacementDistance: 2500})
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := store.Repositories().ComponentTypes.GetComponentTypeByName(context.Background(), "CHAIN")
	require.NoError(t, err)
	assert.Equal(t, 3000.0, got.DefaultReplacementDistance)
}
