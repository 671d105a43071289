package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

type BikeRepository struct {
	a access
}

func (r *BikeRepository) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	err := r.a.write(func(s *state) error {
		if _, ok := s.bikes[bike.BikeID]; ok {
			return fmt.Errorf("bike %s already exists: %w", bike.BikeID, domain.ErrConflict)
		}
		if bike.TotalDistance < 0 {
			return fmt.Errorf("total distance must not be negative: %w", domain.ErrInvalidInput)
		}
		now := r.a.now()
		bike.CreatedAt = now
		bike.UpdatedAt = now
		stored := *bike
		stored.Components = nil
		s.bikes[bike.BikeID] = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bike, nil
}

func (r *BikeRepository) GetBikeByID(ctx context.Context, bikeID uuid.UUID) (*domain.Bike, error) {
	var (
		bike domain.Bike
		ok   bool
	)
	r.a.read(func(s *state) {
		bike, ok = s.bikes[bikeID]
	})
	if !ok {
		return nil, fmt.Errorf("bike not found: %w", domain.ErrNotFound)
	}
	return &bike, nil
}

// GetBikeForUpdate is a plain read: transactions on this store already run
// one at a time.
func (r *BikeRepository) GetBikeForUpdate(ctx context.Context, bikeID uuid.UUID) (*domain.Bike, error) {
	return r.GetBikeByID(ctx, bikeID)
}

func (r *BikeRepository) GetBikesByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Bike, error) {
	var bikes []*domain.Bike
	r.a.read(func(s *state) {
		for _, b := range s.bikes {
			if b.UserID == userID {
				bike := b
				bikes = append(bikes, &bike)
			}
		}
	})
	sort.SliceStable(bikes, func(i, j int) bool {
		return bikes[i].CreatedAt.Before(bikes[j].CreatedAt)
	})
	return bikes, nil
}

func (r *BikeRepository) UpdateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	var updated domain.Bike
	err := r.a.write(func(s *state) error {
		existing, ok := s.bikes[bike.BikeID]
		if !ok {
			return fmt.Errorf("bike not found: %w", domain.ErrNotFound)
		}
		if bike.BikeName != "" {
			existing.BikeName = bike.BikeName
		}
		if bike.Type != "" {
			existing.Type = bike.Type
		}
		if bike.Model != "" {
			existing.Model = bike.Model
		}
		if bike.Year != 0 {
			existing.Year = bike.Year
		}
		existing.UpdatedAt = r.a.now()
		s.bikes[bike.BikeID] = existing
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *BikeRepository) SetTotalDistance(ctx context.Context, bikeID uuid.UUID, total float64) (*domain.Bike, error) {
	var updated domain.Bike
	err := r.a.write(func(s *state) error {
		existing, ok := s.bikes[bikeID]
		if !ok {
			return fmt.Errorf("bike not found: %w", domain.ErrNotFound)
		}
		if total < 0 {
			return fmt.Errorf("total distance must not be negative: %w", domain.ErrInvalidInput)
		}
		existing.TotalDistance = total
		existing.UpdatedAt = r.a.now()
		s.bikes[bikeID] = existing
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *BikeRepository) DeleteBike(ctx context.Context, bikeID uuid.UUID) error {
	return r.a.write(func(s *state) error {
		if _, ok := s.bikes[bikeID]; !ok {
			return fmt.Errorf("bike not found: %w", domain.ErrNotFound)
		}
		delete(s.bikes, bikeID)

		removed := make(map[uuid.UUID]bool)
		for id, row := range s.components {
			if row.component.BikeID == bikeID {
				removed[id] = true
				delete(s.components, id)
			}
		}
		kept := s.records[:0]
		for _, row := range s.records {
			if !removed[row.record.BikeComponentID] {
				kept = append(kept, row)
			}
		}
		s.records = kept
		return nil
	})
}

type ComponentTypeRepository struct {
	a access
}

func (r *ComponentTypeRepository) CreateComponentType(ctx context.Context, componentType *domain.ComponentType) (*domain.ComponentType, error) {
	err := r.a.write(func(s *state) error {
		if componentType.DefaultReplacementDistance <= 0 {
			return fmt.Errorf("default replacement distance must be positive: %w", domain.ErrInvalidInput)
		}
		for _, existing := range s.types {
			if existing.ID == componentType.ID || strings.EqualFold(existing.Name, componentType.Name) {
				return fmt.Errorf("component type %q already exists: %w", componentType.Name, domain.ErrConflict)
			}
		}
		componentType.CreatedAt = r.a.now()
		s.types[componentType.ID] = *componentType
		return nil
	})
	if err != nil {
		return nil, err
	}
	return componentType, nil
}

func (r *ComponentTypeRepository) GetComponentTypeByID(ctx context.Context, id uuid.UUID) (*domain.ComponentType, error) {
	var (
		componentType domain.ComponentType
		ok            bool
	)
	r.a.read(func(s *state) {
		componentType, ok = s.types[id]
	})
	if !ok {
		return nil, fmt.Errorf("component type not found: %w", domain.ErrNotFound)
	}
	return &componentType, nil
}

func (r *ComponentTypeRepository) GetComponentTypeByName(ctx context.Context, name string) (*domain.ComponentType, error) {
	var found *domain.ComponentType
	r.a.read(func(s *state) {
		for _, t := range s.types {
			if strings.EqualFold(t.Name, name) {
				componentType := t
				found = &componentType
				return
			}
		}
	})
	if found == nil {
		return nil, fmt.Errorf("component type %q not found: %w", name, domain.ErrNotFound)
	}
	return found, nil
}

func (r *ComponentTypeRepository) ListComponentTypes(ctx context.Context) ([]*domain.ComponentType, error) {
	var types []*domain.ComponentType
	r.a.read(func(s *state) {
		for _, t := range s.types {
			componentType := t
			types = append(types, &componentType)
		}
	})
	sort.Slice(types, func(i, j int) bool {
		return types[i].Name < types[j].Name
	})
	return types, nil
}

func (r *ComponentTypeRepository) UpdateComponentType(ctx context.Context, componentType *domain.ComponentType) (*domain.ComponentType, error) {
	var updated domain.ComponentType
	err := r.a.write(func(s *state) error {
		existing, ok := s.types[componentType.ID]
		if !ok {
			return fmt.Errorf("component type not found: %w", domain.ErrNotFound)
		}
		if componentType.DefaultReplacementDistance <= 0 {
			return fmt.Errorf("default replacement distance must be positive: %w", domain.ErrInvalidInput)
		}
		existing.Name = componentType.Name
		existing.DefaultReplacementDistance = componentType.DefaultReplacementDistance
		s.types[existing.ID] = existing
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

type ComponentRepository struct {
	a access
}

func (r *ComponentRepository) CreateComponent(ctx context.Context, component *domain.BikeComponent) (*domain.BikeComponent, error) {
	err := r.a.write(func(s *state) error {
		if _, ok := s.bikes[component.BikeID]; !ok {
			return fmt.Errorf("component references a missing bike: %w", domain.ErrNotFound)
		}
		if _, ok := s.types[component.ComponentTypeID]; !ok {
			return fmt.Errorf("component references a missing component type: %w", domain.ErrNotFound)
		}
		if component.ReplacementDistance <= 0 || component.CurrentDistance < 0 {
			return fmt.Errorf("component distances out of range: %w", domain.ErrInvalidInput)
		}
		if _, ok := s.components[component.ID]; ok {
			return fmt.Errorf("component %s already exists: %w", component.ID, domain.ErrConflict)
		}
		if component.IsActive {
			for _, row := range s.components {
				c := row.component
				if c.IsActive && c.BikeID == component.BikeID && c.ComponentTypeID == component.ComponentTypeID {
					return fmt.Errorf("component already exists (uq_bike_components_active): %w", domain.ErrConflict)
				}
			}
		}

		now := r.a.now()
		if component.InstalledAt.IsZero() {
			component.InstalledAt = now
		}
		component.CreatedAt = now
		component.UpdatedAt = now

		stored := *component
		stored.ComponentType = nil
		s.components[component.ID] = componentRow{component: stored, seq: s.next()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return component, nil
}

func (r *ComponentRepository) GetComponentByID(ctx context.Context, componentID uuid.UUID) (*domain.BikeComponent, error) {
	var found *domain.BikeComponent
	r.a.read(func(s *state) {
		if row, ok := s.components[componentID]; ok {
			found = joinType(s, row.component)
		}
	})
	if found == nil {
		return nil, fmt.Errorf("component not found: %w", domain.ErrNotFound)
	}
	return found, nil
}

func (r *ComponentRepository) GetActiveComponent(ctx context.Context, bikeID, componentTypeID uuid.UUID) (*domain.BikeComponent, error) {
	components := r.filter(func(c domain.BikeComponent) bool {
		return c.IsActive && c.BikeID == bikeID && c.ComponentTypeID == componentTypeID
	}, nil)
	if len(components) == 0 {
		return nil, fmt.Errorf("active component not found: %w", domain.ErrNotFound)
	}
	return components[0], nil
}

func (r *ComponentRepository) GetActiveComponentsByBikeID(ctx context.Context, bikeID uuid.UUID) ([]*domain.BikeComponent, error) {
	return r.filter(func(c domain.BikeComponent) bool {
		return c.IsActive && c.BikeID == bikeID
	}, byTypeName), nil
}

func (r *ComponentRepository) GetActiveComponentsByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.BikeComponent, error) {
	owned := make(map[uuid.UUID]bool)
	r.a.read(func(s *state) {
		for id, b := range s.bikes {
			if b.UserID == userID {
				owned[id] = true
			}
		}
	})
	return r.filter(func(c domain.BikeComponent) bool {
		return c.IsActive && owned[c.BikeID]
	}, byTypeName), nil
}

func (r *ComponentRepository) GetComponentHistory(ctx context.Context, bikeID, componentTypeID uuid.UUID) ([]*domain.BikeComponent, error) {
	return r.filter(func(c domain.BikeComponent) bool {
		return c.BikeID == bikeID && c.ComponentTypeID == componentTypeID
	}, newestFirst), nil
}

func (r *ComponentRepository) UpdateComponent(ctx context.Context, component *domain.BikeComponent) (*domain.BikeComponent, error) {
	err := r.a.write(func(s *state) error {
		row, ok := s.components[component.ID]
		if !ok {
			return fmt.Errorf("component not found: %w", domain.ErrNotFound)
		}
		if component.ReplacementDistance <= 0 {
			return fmt.Errorf("replacement distance must be positive: %w", domain.ErrInvalidInput)
		}
		row.component.Brand = component.Brand
		row.component.Model = component.Model
		row.component.ReplacementDistance = component.ReplacementDistance
		row.component.UpdatedAt = r.a.now()
		s.components[component.ID] = row
		component.UpdatedAt = row.component.UpdatedAt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return component, nil
}

func (r *ComponentRepository) DeactivateComponent(ctx context.Context, componentID uuid.UUID) error {
	return r.a.write(func(s *state) error {
		row, ok := s.components[componentID]
		if !ok || !row.component.IsActive {
			return fmt.Errorf("active component %s not found: %w", componentID, domain.ErrNotFound)
		}
		row.component.IsActive = false
		row.component.UpdatedAt = r.a.now()
		s.components[componentID] = row
		return nil
	})
}

func (r *ComponentRepository) AccrueDistance(ctx context.Context, bikeID uuid.UUID, delta float64) (int64, error) {
	var affected int64
	err := r.a.write(func(s *state) error {
		now := r.a.now()
		for id, row := range s.components {
			if !row.component.IsActive || row.component.BikeID != bikeID {
				continue
			}
			row.component.CurrentDistance += delta
			if row.component.CurrentDistance < 0 {
				row.component.CurrentDistance = 0
			}
			row.component.UpdatedAt = now
			s.components[id] = row
			affected++
		}
		return nil
	})
	return affected, err
}

type rowOrder func(a, b componentRow, s *state) bool

func byTypeName(a, b componentRow, s *state) bool {
	return s.types[a.component.ComponentTypeID].Name < s.types[b.component.ComponentTypeID].Name
}

func newestFirst(a, b componentRow, s *state) bool {
	if !a.component.InstalledAt.Equal(b.component.InstalledAt) {
		return a.component.InstalledAt.After(b.component.InstalledAt)
	}
	return a.seq > b.seq
}

func (r *ComponentRepository) filter(match func(c domain.BikeComponent) bool, order rowOrder) []*domain.BikeComponent {
	var components []*domain.BikeComponent
	r.a.read(func(s *state) {
		var rows []componentRow
		for _, row := range s.components {
			if match(row.component) {
				rows = append(rows, row)
			}
		}
		sort.SliceStable(rows, func(i, j int) bool {
			if order != nil {
				return order(rows[i], rows[j], s)
			}
			return rows[i].seq < rows[j].seq
		})
		for _, row := range rows {
			components = append(components, joinType(s, row.component))
		}
	})
	return components
}

func joinType(s *state, c domain.BikeComponent) *domain.BikeComponent {
	if t, ok := s.types[c.ComponentTypeID]; ok {
		componentType := t
		c.ComponentType = &componentType
	}
	return &c
}

type MaintenanceRepository struct {
	a access
}

func (r *MaintenanceRepository) CreateRecord(ctx context.Context, record *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error) {
	err := r.a.write(func(s *state) error {
		if _, ok := s.components[record.BikeComponentID]; !ok {
			return fmt.Errorf("maintenance record references a missing component: %w", domain.ErrNotFound)
		}
		if record.DistanceAtAction < 0 {
			return fmt.Errorf("distance at action must not be negative: %w", domain.ErrInvalidInput)
		}
		record.CreatedAt = r.a.now()
		s.records = append(s.records, recordRow{record: *record, seq: s.next()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *MaintenanceRepository) GetRecordsByComponentIDs(ctx context.Context, componentIDs []uuid.UUID) ([]*domain.MaintenanceRecord, error) {
	wanted := make(map[uuid.UUID]bool, len(componentIDs))
	for _, id := range componentIDs {
		wanted[id] = true
	}
	return r.filter(func(s *state, rec domain.MaintenanceRecord) bool {
		return wanted[rec.BikeComponentID]
	}), nil
}

func (r *MaintenanceRepository) GetRecordsByBikeID(ctx context.Context, bikeID uuid.UUID) ([]*domain.MaintenanceRecord, error) {
	return r.filter(func(s *state, rec domain.MaintenanceRecord) bool {
		row, ok := s.components[rec.BikeComponentID]
		return ok && row.component.BikeID == bikeID
	}), nil
}

func (r *MaintenanceRepository) filter(match func(s *state, rec domain.MaintenanceRecord) bool) []*domain.MaintenanceRecord {
	var records []*domain.MaintenanceRecord
	r.a.read(func(s *state) {
		for i := len(s.records) - 1; i >= 0; i-- {
			if match(s, s.records[i].record) {
				record := s.records[i].record
				records = append(records, &record)
			}
		}
	})
	return records
}
