// Package memory is an in-process implementation of the storage ports. It
// backs STORAGE_DRIVER=memory and the service tests, and enforces the same
// constraints as the Postgres schema.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

type componentRow struct {
	component domain.BikeComponent
	seq       int
}

type recordRow struct {
	record domain.MaintenanceRecord
	seq    int
}

type state struct {
	bikes      map[uuid.UUID]domain.Bike
	types      map[uuid.UUID]domain.ComponentType
	components map[uuid.UUID]componentRow
	records    []recordRow
	seq        int
}

func newState() *state {
	return &state{
		bikes:      make(map[uuid.UUID]domain.Bike),
		types:      make(map[uuid.UUID]domain.ComponentType),
		components: make(map[uuid.UUID]componentRow),
	}
}

func (s *state) clone() *state {
	c := &state{
		bikes:      make(map[uuid.UUID]domain.Bike, len(s.bikes)),
		types:      make(map[uuid.UUID]domain.ComponentType, len(s.types)),
		components: make(map[uuid.UUID]componentRow, len(s.components)),
		records:    make([]recordRow, len(s.records)),
		seq:        s.seq,
	}
	for k, v := range s.bikes {
		c.bikes[k] = v
	}
	for k, v := range s.types {
		c.types[k] = v
	}
	for k, v := range s.components {
		c.components[k] = v
	}
	copy(c.records, s.records)
	return c
}

func (s *state) next() int {
	s.seq++
	return s.seq
}

// access runs fn against some state. The store locks around its live state;
// a transaction already holds the lock and works on a private copy.
type access interface {
	read(fn func(s *state))
	write(fn func(s *state) error) error
	now() time.Time
}

type Store struct {
	mu    sync.RWMutex
	data  *state
	clock func() time.Time
}

var _ ports.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		data:  newState(),
		clock: time.Now,
	}
}

// WithClock overrides the timestamp source.
func (st *Store) WithClock(clock func() time.Time) *Store {
	st.clock = clock
	return st
}

func (st *Store) read(fn func(s *state)) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	fn(st.data)
}

func (st *Store) write(fn func(s *state) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	return fn(st.data)
}

func (st *Store) now() time.Time {
	return st.clock().UTC()
}

func (st *Store) Repositories() ports.Repositories {
	return repositoriesFor(st)
}

// WithinTx serialises transactions and commits the working copy only when fn
// succeeds.
func (st *Store) WithinTx(ctx context.Context, fn func(repos ports.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	tx := &txState{data: st.data.clone(), clock: st.now}
	if err := fn(repositoriesFor(tx)); err != nil {
		return err
	}
	st.data = tx.data
	return nil
}

type txState struct {
	data  *state
	clock func() time.Time
}

func (t *txState) read(fn func(s *state)) { fn(t.data) }

func (t *txState) write(fn func(s *state) error) error { return fn(t.data) }

func (t *txState) now() time.Time { return t.clock() }

func repositoriesFor(a access) ports.Repositories {
	return ports.Repositories{
		Bikes:          &BikeRepository{a: a},
		ComponentTypes: &ComponentTypeRepository{a: a},
		Components:     &ComponentRepository{a: a},
		Maintenance:    &MaintenanceRepository{a: a},
	}
}
