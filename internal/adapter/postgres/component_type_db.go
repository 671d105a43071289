package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

type ComponentTypeRepository struct {
	db DBTX
}

func NewComponentTypeRepository(db DBTX) *ComponentTypeRepository {
	return &ComponentTypeRepository{db: db}
}

const componentTypeColumns = `id, name, default_replacement_distance, created_at`

func (r *ComponentTypeRepository) CreateComponentType(ctx context.Context, componentType *domain.ComponentType) (*domain.ComponentType, error) {
	query := `INSERT INTO component_types (id, name, default_replacement_distance)
		VALUES ($1, $2, $3)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		componentType.ID,
		componentType.Name,
		componentType.DefaultReplacementDistance,
	).Scan(&componentType.CreatedAt)
	if err != nil {
		return nil, translateError(err, "component type")
	}
	return componentType, nil
}

func (r *ComponentTypeRepository) GetComponentTypeByID(ctx context.Context, id uuid.UUID) (*domain.ComponentType, error) {
	query := `SELECT ` + componentTypeColumns + ` FROM component_types WHERE id = $1`

	componentType, err := scanComponentType(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err, "component type")
	}
	return componentType, nil
}

func (r *ComponentTypeRepository) GetComponentTypeByName(ctx context.Context, name string) (*domain.ComponentType, error) {
	query := `SELECT ` + componentTypeColumns + ` FROM component_types WHERE lower(name) = lower($1)`

	componentType, err := scanComponentType(r.db.QueryRowContext(ctx, query, name))
	if err != nil {
		return nil, translateError(err, "component type")
	}
	return componentType, nil
}

func (r *ComponentTypeRepository) ListComponentTypes(ctx context.Context) ([]*domain.ComponentType, error) {
	query := `SELECT ` + componentTypeColumns + ` FROM component_types ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, translateError(err, "component types")
	}
	defer rows.Close()

	var types []*domain.ComponentType
	for rows.Next() {
		componentType, err := scanComponentType(rows)
		if err != nil {
			return nil, translateError(err, "component types")
		}
		types = append(types, componentType)
	}
	if err = rows.Err(); err != nil {
		return nil, translateError(err, "component types")
	}
	return types, nil
}

func (r *ComponentTypeRepository) UpdateComponentType(ctx context.Context, componentType *domain.ComponentType) (*domain.ComponentType, error) {
	query := `UPDATE component_types
		SET name = $1, default_replacement_distance = $2
		WHERE id = $3
		RETURNING ` + componentTypeColumns

	updated, err := scanComponentType(r.db.QueryRowContext(ctx, query,
		componentType.Name,
		componentType.DefaultReplacementDistance,
		componentType.ID,
	))
	if err != nil {
		return nil, translateError(err, "component type")
	}
	return updated, nil
}

func scanComponentType(row rowScanner) (*domain.ComponentType, error) {
	componentType := &domain.ComponentType{}
	if err := row.Scan(
		&componentType.ID,
		&componentType.Name,
		&componentType.DefaultReplacementDistance,
		&componentType.CreatedAt,
	); err != nil {
		return nil, err
	}
	return componentType, nil
}
