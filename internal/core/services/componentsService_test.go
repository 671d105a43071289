package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sm8ta/webike_wear_microservice/internal/adapter/memory"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentService_AddComponentDefaults(t *testing.T) {
	env := newTestEnv(t)
	bike := env.createBike(t, uuid.New(), 1200)
	chain := env.createType(t, "Chain", 3000)

	component := env.addComponent(t, bike, chain)

	assert.Equal(t, 3000.0, component.ReplacementDistance)
	assert.Zero(t, component.CurrentDistance)
	assert.Equal(t, 1200.0, component.InstallDistance)
	assert.True(t, component.IsActive)
	require.NotNil(t, component.ComponentType)
	assert.Equal(t, "Chain", component.ComponentType.Name)
}

func TestComponentService_AddComponentInputs(t *testing.T) {
	tests := []struct {
		name            string
		replacement     *float64
		current         *float64
		wantReplacement float64
		wantInstall     float64
		wantErr         error
	}{
		{name: "custom replacement distance", replacement: float(2500), wantReplacement: 2500, wantInstall: 1200},
		{name: "non-positive custom falls back", replacement: float(-10), wantReplacement: 3000, wantInstall: 1200},
		{name: "zero custom falls back", replacement: float(0), wantReplacement: 3000, wantInstall: 1200},
		{name: "used part", current: float(200), wantReplacement: 3000, wantInstall: 1000},
		{name: "used part beyond bike total", current: float(1500), wantReplacement: 3000, wantInstall: -300},
		{name: "negative starting distance", current: float(-1), wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			bike := env.createBike(t, uuid.New(), 1200)
			chain := env.createType(t, "Chain", 3000)

			component, err := env.components.AddComponent(context.Background(), domain.AddComponentInput{
				BikeID:              bike.BikeID.String(),
				ComponentTypeID:     chain.ID.String(),
				ReplacementDistance: tt.replacement,
				CurrentDistance:     tt.current,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantReplacement, component.ReplacementDistance)
			assert.Equal(t, tt.wantInstall, component.InstallDistance)
		})
	}
}

func TestComponentService_AddComponentErrors(t *testing.T) {
	env := newTestEnv(t)
	bike := env.createBike(t, uuid.New(), 0)
	chain := env.createType(t, "Chain", 3000)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   domain.AddComponentInput
		wantErr error
	}{
		{
			name:    "malformed bike id",
			input:   domain.AddComponentInput{BikeID: "nope", ComponentTypeID: chain.ID.String()},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "missing component type id",
			input:   domain.AddComponentInput{BikeID: bike.BikeID.String()},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "unknown bike",
			input:   domain.AddComponentInput{BikeID: uuid.NewString(), ComponentTypeID: chain.ID.String()},
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "unknown component type",
			input:   domain.AddComponentInput{BikeID: bike.BikeID.String(), ComponentTypeID: uuid.NewString()},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.components.AddComponent(ctx, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestComponentService_AddComponentConflict(t *testing.T) {
	env := newTestEnv(t)
	bike := env.createBike(t, uuid.New(), 100)
	chain := env.createType(t, "Chain", 3000)
	env.addComponent(t, bike, chain)

	_, err := env.components.AddComponent(context.Background(), domain.AddComponentInput{
		BikeID:          bike.BikeID.String(),
		ComponentTypeID: chain.ID.String(),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	active, err := env.components.GetActiveComponents(context.Background(), bike.BikeID.String())
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestComponentService_ChainLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	bike := env.createBike(t, uuid.New(), 1200)
	chain := env.createType(t, "Chain", 3000)
	component := env.addComponent(t, bike, chain)

	// 2850 km ridden on the chain.
	_, err := env.bikes.RecordDistance(ctx, bike.BikeID.String(), 4050)
	require.NoError(t, err)

	worn, err := env.components.GetComponentByID(ctx, component.ID.String())
	require.NoError(t, err)
	assert.InDelta(t, 2850, worn.CurrentDistance, 1e-9)
	assert.InDelta(t, 95, worn.UsagePercent(), 1e-9)
	assert.Equal(t, domain.SeverityCritical, worn.Severity())

	// The odometer is corrected down to 1500 before the chain is swapped.
	_, err = env.bikes.RecordDistance(ctx, bike.BikeID.String(), 1500)
	require.NoError(t, err)

	result, err := env.components.ReplaceComponent(ctx, domain.ReplaceComponentInput{
		ComponentID: component.ID.String(),
		Cost:        decimal.NewNullDecimal(decimal.RequireFromString("24.99")),
		Notes:       str("KMC X11"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ActionReplaced, result.Record.ActionType)
	assert.Equal(t, 1500.0, result.Record.DistanceAtAction)
	assert.Equal(t, component.ID, result.Record.BikeComponentID)
	assert.True(t, result.Record.Cost.Valid)
	assert.Equal(t, "24.99", result.Record.Cost.Decimal.StringFixed(2))
	assert.False(t, result.Retired.IsActive)

	assert.True(t, result.Replacement.IsActive)
	assert.Zero(t, result.Replacement.CurrentDistance)
	assert.Equal(t, 1500.0, result.Replacement.InstallDistance)
	assert.Equal(t, 3000.0, result.Replacement.ReplacementDistance)
	assert.NotEqual(t, component.ID, result.Replacement.ID)

	active, err := env.components.GetActiveComponents(ctx, bike.BikeID.String())
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, result.Replacement.ID, active[0].ID)
	assert.Zero(t, active[0].CurrentDistance)

	records, err := env.bikes.GetMaintenanceRecords(ctx, bike.BikeID.String())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, result.Record.ID, records[0].ID)

	retired, err := env.components.GetComponentByID(ctx, component.ID.String())
	require.NoError(t, err)
	assert.False(t, retired.IsActive)
}

func TestComponentService_ReplaceTwice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	bike := env.createBike(t, uuid.New(), 500)
	chain := env.createType(t, "Chain", 3000)
	component := env.addComponent(t, bike, chain)

	_, err := env.components.ReplaceComponent(ctx, domain.ReplaceComponentInput{ComponentID: component.ID.String()})
	require.NoError(t, err)

	_, err = env.components.ReplaceComponent(ctx, domain.ReplaceComponentInput{ComponentID: component.ID.String()})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	active, err := env.components.GetActiveComponents(ctx, bike.BikeID.String())
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestComponentService_ReplaceRollsBackOnFailure(t *testing.T) {
	mem := memory.NewStore()
	env := newTestEnvFor(t, mem, &failingStore{Store: mem, err: fmt.Errorf("insert record: %w", domain.ErrDependencyFailure)})
	ctx := context.Background()
	bike := env.createBike(t, uuid.New(), 800)
	chain := env.createType(t, "Chain", 3000)

	// Seed through the plain store; AddComponent does not touch maintenance.
	component := env.addComponent(t, bike, chain)

	_, err := env.components.ReplaceComponent(ctx, domain.ReplaceComponentInput{ComponentID: component.ID.String()})
	assert.ErrorIs(t, err, domain.ErrDependencyFailure)

	active, err := mem.Repositories().Components.GetActiveComponentsByBikeID(ctx, bike.BikeID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, component.ID, active[0].ID)

	records, err := mem.Repositories().Maintenance.GetRecordsByBikeID(ctx, bike.BikeID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestComponentService_ReplaceValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.components.ReplaceComponent(ctx, domain.ReplaceComponentInput{ComponentID: "bad"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.components.ReplaceComponent(ctx, domain.ReplaceComponentInput{ComponentID: uuid.NewString()})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = env.components.ReplaceComponent(ctx, domain.ReplaceComponentInput{
		ComponentID: uuid.NewString(),
		Cost:        decimal.NewNullDecimal(decimal.NewFromInt(-5)),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComponentService_UpdateComponent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	bike := env.createBike(t, uuid.New(), 0)
	tires := env.createType(t, "Tires", 4000)
	component := env.addComponent(t, bike, tires)

	updated, err := env.components.UpdateComponent(ctx, domain.UpdateComponentInput{
		ComponentID:         component.ID.String(),
		Brand:               str("Continental"),
		ReplacementDistance: float(5000),
	})
	require.NoError(t, err)
	assert.Equal(t, "Continental", updated.Brand)
	assert.Equal(t, 5000.0, updated.ReplacementDistance)
	require.NotNil(t, updated.ComponentType)
	assert.Equal(t, "Tires", updated.ComponentType.Name)

	_, err = env.components.UpdateComponent(ctx, domain.UpdateComponentInput{
		ComponentID:         component.ID.String(),
		ReplacementDistance: float(0),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.components.UpdateComponent(ctx, domain.UpdateComponentInput{ComponentID: uuid.NewString()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestComponentService_UpdateRetiredComponent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	bike := env.createBike(t, uuid.New(), 0)
	chain := env.createType(t, "Chain", 3000)
	component := env.addComponent(t, bike, chain)

	_, err := env.components.ReplaceComponent(ctx, domain.ReplaceComponentInput{ComponentID: component.ID.String()})
	require.NoError(t, err)

	_, err = env.components.UpdateComponent(ctx, domain.UpdateComponentInput{
		ComponentID:         component.ID.String(),
		Brand:               str("Shimano"),
		ReplacementDistance: float(9000),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	retired, err := env.components.GetComponentByID(ctx, component.ID.String())
	require.NoError(t, err)
	assert.False(t, retired.IsActive)
	assert.Empty(t, retired.Brand)
	assert.Equal(t, 3000.0, retired.ReplacementDistance)
}

func TestComponentService_GetComponentHistory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	bike := env.createBike(t, uuid.New(), 100)
	chain := env.createType(t, "Chain", 3000)
	pads := env.createType(t, "Brake Pads", 2000)
	first := env.addComponent(t, bike, chain)
	env.addComponent(t, bike, pads)

	replaced, err := env.components.ReplaceComponent(ctx, domain.ReplaceComponentInput{ComponentID: first.ID.String()})
	require.NoError(t, err)

	history, err := env.components.GetComponentHistory(ctx, bike.BikeID.String(), chain.ID.String())
	require.NoError(t, err)
	require.Len(t, history.Instances, 2)
	ids := []uuid.UUID{history.Instances[0].ID, history.Instances[1].ID}
	assert.ElementsMatch(t, []uuid.UUID{first.ID, replaced.Replacement.ID}, ids)
	require.Len(t, history.Records, 1)
	assert.Equal(t, first.ID, history.Records[0].BikeComponentID)

	empty, err := env.components.GetComponentHistory(ctx, bike.BikeID.String(), env.createType(t, "Cassette", 10000).ID.String())
	require.NoError(t, err)
	assert.Empty(t, empty.Instances)
	assert.Empty(t, empty.Records)

	_, err = env.components.GetComponentHistory(ctx, bike.BikeID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
