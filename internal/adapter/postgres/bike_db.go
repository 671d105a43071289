package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

type BikeRepository struct {
	db DBTX
}

func NewBikeRepository(db DBTX) *BikeRepository {
	return &BikeRepository{
		db,
	}
}

const bikeColumns = `user_id, bike_id, bike_name, type, model, year, total_distance, created_at, updated_at`

const selectBikeForUpdate = `SELECT ` + bikeColumns + ` FROM bikes WHERE bike_id = $1 FOR UPDATE`

func (r *BikeRepository) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	query := `INSERT INTO bikes (user_id, bike_id, bike_name, type, model, year, total_distance)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING bike_id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, bike.UserID, bike.BikeID, bike.BikeName, bike.Type, bike.Model, bike.Year, bike.TotalDistance).Scan(
		&bike.BikeID,
		&bike.CreatedAt,
		&bike.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err, "bike")
	}
	return bike, nil
}

func (r *BikeRepository) GetBikeByID(ctx context.Context, bikeID uuid.UUID) (*domain.Bike, error) {
	query := `SELECT ` + bikeColumns + ` FROM bikes WHERE bike_id = $1`

	bike, err := scanBike(r.db.QueryRowContext(ctx, query, bikeID))
	if err != nil {
		return nil, translateError(err, "bike")
	}
	return bike, nil
}

// GetBikeForUpdate must run inside WithinTx; on a plain connection the lock
// is released as soon as the statement returns.
func (r *BikeRepository) GetBikeForUpdate(ctx context.Context, bikeID uuid.UUID) (*domain.Bike, error) {
	bike, err := scanBike(r.db.QueryRowContext(ctx, selectBikeForUpdate, bikeID))
	if err != nil {
		return nil, translateError(err, "bike")
	}
	return bike, nil
}

func (r *BikeRepository) GetBikesByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Bike, error) {
	query := `SELECT ` + bikeColumns + ` FROM bikes WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, translateError(err, "bikes")
	}
	defer rows.Close()

	var bikes []*domain.Bike

	for rows.Next() {
		bike, err := scanBike(rows)
		if err != nil {
			return nil, translateError(err, "bikes")
		}
		bikes = append(bikes, bike)
	}
	if err = rows.Err(); err != nil {
		return nil, translateError(err, "bikes")
	}
	return bikes, nil
}

func (r *BikeRepository) UpdateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	query := `UPDATE bikes
		SET 
			bike_name = COALESCE(NULLIF($1, ''), bike_name),
			type = COALESCE(NULLIF($2, ''), type),
			model = COALESCE(NULLIF($3, ''), model),
			year = COALESCE(NULLIF($4, 0), year),
			updated_at = CURRENT_TIMESTAMP
		WHERE bike_id = $5
		RETURNING ` + bikeColumns

	updated, err := scanBike(r.db.QueryRowContext(ctx, query,
		bike.BikeName,
		bike.Type,
		bike.Model,
		bike.Year,
		bike.BikeID,
	))
	if err != nil {
		return nil, translateError(err, "bike")
	}
	return updated, nil
}

func (r *BikeRepository) SetTotalDistance(ctx context.Context, bikeID uuid.UUID, total float64) (*domain.Bike, error) {
	query := `UPDATE bikes
		SET total_distance = $1, updated_at = CURRENT_TIMESTAMP
		WHERE bike_id = $2
		RETURNING ` + bikeColumns

	bike, err := scanBike(r.db.QueryRowContext(ctx, query, total, bikeID))
	if err != nil {
		return nil, translateError(err, "bike")
	}
	return bike, nil
}

func (r *BikeRepository) DeleteBike(ctx context.Context, bikeID uuid.UUID) error {
	query := `DELETE FROM bikes WHERE bike_id = $1`

	result, err := r.db.ExecContext(ctx, query, bikeID)
	if err != nil {
		return translateError(err, "bike")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return translateError(err, "bike")
	}

	if rowsAffected == 0 {
		return fmt.Errorf("bike not found: %w", domain.ErrNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBike(row rowScanner) (*domain.Bike, error) {
	bike := &domain.Bike{}
	err := row.Scan(
		&bike.UserID,
		&bike.BikeID,
		&bike.BikeName,
		&bike.Type,
		&bike.Model,
		&bike.Year,
		&bike.TotalDistance,
		&bike.CreatedAt,
		&bike.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return bike, nil
}
