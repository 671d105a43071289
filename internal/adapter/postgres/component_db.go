package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

type ComponentRepository struct {
	db DBTX
}

func NewComponentRepository(db DBTX) *ComponentRepository {
	return &ComponentRepository{db: db}
}

const componentSelect = `
	SELECT bc.id, bc.bike_id, bc.component_type_id, bc.brand, bc.model,
		bc.replacement_distance, bc.current_distance, bc.install_distance, bc.is_active,
		bc.installed_at, bc.created_at, bc.updated_at,
		ct.id, ct.name, ct.default_replacement_distance, ct.created_at
	FROM bike_components bc
	JOIN component_types ct ON ct.id = bc.component_type_id`

func (r *ComponentRepository) CreateComponent(ctx context.Context, component *domain.BikeComponent) (*domain.BikeComponent, error) {
	query := `INSERT INTO bike_components (id, bike_id, component_type_id, brand, model,
			replacement_distance, current_distance, install_distance, is_active, installed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		component.ID,
		component.BikeID,
		component.ComponentTypeID,
		component.Brand,
		component.Model,
		component.ReplacementDistance,
		component.CurrentDistance,
		component.InstallDistance,
		component.IsActive,
		component.InstalledAt,
	).Scan(
		&component.ID,
		&component.CreatedAt,
		&component.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err, "component")
	}

	return component, nil
}

func (r *ComponentRepository) GetComponentByID(ctx context.Context, componentID uuid.UUID) (*domain.BikeComponent, error) {
	query := componentSelect + ` WHERE bc.id = $1`

	component, err := scanComponent(r.db.QueryRowContext(ctx, query, componentID))
	if err != nil {
		return nil, translateError(err, "component")
	}
	return component, nil
}

func (r *ComponentRepository) GetActiveComponent(ctx context.Context, bikeID, componentTypeID uuid.UUID) (*domain.BikeComponent, error) {
	query := componentSelect + ` WHERE bc.bike_id = $1 AND bc.component_type_id = $2 AND bc.is_active`

	component, err := scanComponent(r.db.QueryRowContext(ctx, query, bikeID, componentTypeID))
	if err != nil {
		return nil, translateError(err, "active component")
	}
	return component, nil
}

func (r *ComponentRepository) GetActiveComponentsByBikeID(ctx context.Context, bikeID uuid.UUID) ([]*domain.BikeComponent, error) {
	query := componentSelect + ` WHERE bc.bike_id = $1 AND bc.is_active ORDER BY ct.name`
	return r.list(ctx, query, bikeID)
}

func (r *ComponentRepository) GetActiveComponentsByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.BikeComponent, error) {
	query := componentSelect + `
		JOIN bikes b ON b.bike_id = bc.bike_id
		WHERE b.user_id = $1 AND bc.is_active
		ORDER BY b.created_at, ct.name`
	return r.list(ctx, query, userID)
}

func (r *ComponentRepository) GetComponentHistory(ctx context.Context, bikeID, componentTypeID uuid.UUID) ([]*domain.BikeComponent, error) {
	query := componentSelect + ` WHERE bc.bike_id = $1 AND bc.component_type_id = $2
		ORDER BY bc.installed_at DESC, bc.created_at DESC`
	return r.list(ctx, query, bikeID, componentTypeID)
}

func (r *ComponentRepository) UpdateComponent(ctx context.Context, component *domain.BikeComponent) (*domain.BikeComponent, error) {
	query := `UPDATE bike_components
		SET 
			brand = $1,
			model = $2,
			replacement_distance = $3,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		component.Brand,
		component.Model,
		component.ReplacementDistance,
		component.ID,
	).Scan(&component.UpdatedAt)
	if err != nil {
		return nil, translateError(err, "component")
	}

	return component, nil
}

func (r *ComponentRepository) DeactivateComponent(ctx context.Context, componentID uuid.UUID) error {
	query := `UPDATE bike_components
		SET is_active = false, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND is_active`

	result, err := r.db.ExecContext(ctx, query, componentID)
	if err != nil {
		return translateError(err, "component")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return translateError(err, "component")
	}

	if rowsAffected == 0 {
		return fmt.Errorf("active component %s not found: %w", componentID, domain.ErrNotFound)
	}

	return nil
}

func (r *ComponentRepository) AccrueDistance(ctx context.Context, bikeID uuid.UUID, delta float64) (int64, error) {
	query := `UPDATE bike_components
		SET current_distance = GREATEST(current_distance + $1, 0), updated_at = CURRENT_TIMESTAMP
		WHERE bike_id = $2 AND is_active`

	result, err := r.db.ExecContext(ctx, query, delta, bikeID)
	if err != nil {
		return 0, translateError(err, "components")
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, translateError(err, "components")
	}
	return rowsAffected, nil
}

func (r *ComponentRepository) list(ctx context.Context, query string, args ...any) ([]*domain.BikeComponent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "components")
	}
	defer rows.Close()

	var components []*domain.BikeComponent

	for rows.Next() {
		component, err := scanComponent(rows)
		if err != nil {
			return nil, translateError(err, "components")
		}
		components = append(components, component)
	}

	if err = rows.Err(); err != nil {
		return nil, translateError(err, "components")
	}

	return components, nil
}

func scanComponent(row rowScanner) (*domain.BikeComponent, error) {
	component := &domain.BikeComponent{ComponentType: &domain.ComponentType{}}
	err := row.Scan(
		&component.ID,
		&component.BikeID,
		&component.ComponentTypeID,
		&component.Brand,
		&component.Model,
		&component.ReplacementDistance,
		&component.CurrentDistance,
		&component.InstallDistance,
		&component.IsActive,
		&component.InstalledAt,
		&component.CreatedAt,
		&component.UpdatedAt,
		&component.ComponentType.ID,
		&component.ComponentType.Name,
		&component.ComponentType.DefaultReplacementDistance,
		&component.ComponentType.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return component, nil
}
