package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sm8ta/webike_wear_microservice/internal/adapter/logger"
	"github.com/sm8ta/webike_wear_microservice/internal/adapter/memcache"
	"github.com/sm8ta/webike_wear_microservice/internal/adapter/memory"
	promadapter "github.com/sm8ta/webike_wear_microservice/internal/adapter/prometheus"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	store      *memory.Store
	cache      *memcache.CacheAdapter
	bikes      *BikeService
	components *ComponentService
	catalog    *CatalogService
	garage     *GarageService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithStore(t, memory.NewStore())
}

func newTestEnvWithStore(t *testing.T, mem *memory.Store) *testEnv {
	return newTestEnvFor(t, mem, mem)
}

// newTestEnvFor lets component writes go through a different store than the
// one the test inspects.
func newTestEnvFor(t *testing.T, mem *memory.Store, store ports.Store) *testEnv {
	t.Helper()
	log := logger.NewFromZap(zap.NewNop())
	validate := validator.New()
	cache := memcache.NewCacheAdapter(time.Minute, time.Minute)
	t.Cleanup(func() { _ = cache.Close() })
	metrics := promadapter.NewPrometheusAdapter(prometheus.NewRegistry())

	return &testEnv{
		store:      mem,
		cache:      cache,
		bikes:      NewBikeService(mem, log, validate, cache, time.Minute),
		components: NewComponentService(store, log, validate, cache, metrics),
		catalog:    NewCatalogService(mem, log, validate),
		garage:     NewGarageService(mem, log),
	}
}

func (e *testEnv) createBike(t *testing.T, userID uuid.UUID, total float64) *domain.Bike {
	t.Helper()
	bike, err := e.bikes.CreateBike(context.Background(), &domain.Bike{
		UserID:        userID,
		BikeName:      "Commuter",
		Type:          domain.Road,
		TotalDistance: total,
	})
	require.NoError(t, err)
	return bike
}

func (e *testEnv) createType(t *testing.T, name string, distance float64) *domain.ComponentType {
	t.Helper()
	componentType, err := e.catalog.CreateComponentType(context.Background(), &domain.ComponentType{
		Name:                       name,
		DefaultReplacementDistance: distance,
	})
	require.NoError(t, err)
	return componentType
}

func (e *testEnv) addComponent(t *testing.T, bike *domain.Bike, componentType *domain.ComponentType) *domain.BikeComponent {
	t.Helper()
	component, err := e.components.AddComponent(context.Background(), domain.AddComponentInput{
		BikeID:          bike.BikeID.String(),
		ComponentTypeID: componentType.ID.String(),
	})
	require.NoError(t, err)
	return component
}

func float(v float64) *float64 { return &v }

func str(v string) *string { return &v }

// failingStore hands transactions a maintenance repository that always fails.
type failingStore struct {
	*memory.Store
	err error
}

func (f *failingStore) WithinTx(ctx context.Context, fn func(repos ports.Repositories) error) error {
	return f.Store.WithinTx(ctx, func(repos ports.Repositories) error {
		repos.Maintenance = failingMaintenance{err: f.err}
		return fn(repos)
	})
}

type failingMaintenance struct {
	err error
}

func (f failingMaintenance) CreateRecord(context.Context, *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error) {
	return nil, f.err
}

func (f failingMaintenance) GetRecordsByComponentIDs(context.Context, []uuid.UUID) ([]*domain.MaintenanceRecord, error) {
	return nil, f.err
}

func (f failingMaintenance) GetRecordsByBikeID(context.Context, uuid.UUID) ([]*domain.MaintenanceRecord, error) {
	return nil, f.err
}

// lockTrackingStore records how transactions read bikes.
type lockTrackingStore struct {
	*memory.Store
	mu          sync.Mutex
	lockedReads int
	plainReads  int
}

func (l *lockTrackingStore) WithinTx(ctx context.Context, fn func(repos ports.Repositories) error) error {
	return l.Store.WithinTx(ctx, func(repos ports.Repositories) error {
		repos.Bikes = &trackedBikes{BikeRepository: repos.Bikes, store: l}
		return fn(repos)
	})
}

func (l *lockTrackingStore) counts() (locked, plain int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lockedReads, l.plainReads
}

type trackedBikes struct {
	ports.BikeRepository
	store *lockTrackingStore
}

func (b *trackedBikes) GetBikeByID(ctx context.Context, bikeID uuid.UUID) (*domain.Bike, error) {
	b.store.mu.Lock()
	b.store.plainReads++
	b.store.mu.Unlock()
	return b.BikeRepository.GetBikeByID(ctx, bikeID)
}

func (b *trackedBikes) GetBikeForUpdate(ctx context.Context, bikeID uuid.UUID) (*domain.Bike, error) {
	b.store.mu.Lock()
	b.store.lockedReads++
	b.store.mu.Unlock()
	return b.BikeRepository.GetBikeForUpdate(ctx, bikeID)
}

func newBikeServiceFor(t *testing.T, store ports.Store) *BikeService {
	t.Helper()
	cache := memcache.NewCacheAdapter(time.Minute, time.Minute)
	t.Cleanup(func() { _ = cache.Close() })
	return NewBikeService(store, logger.NewFromZap(zap.NewNop()), validator.New(), cache, time.Minute)
}
