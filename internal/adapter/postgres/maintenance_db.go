package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

type MaintenanceRepository struct {
	db DBTX
}

func NewMaintenanceRepository(db DBTX) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

const maintenanceColumns = `mr.id, mr.bike_component_id, mr.action_type, mr.distance_at_action, mr.cost, mr.notes, mr.created_at`

func (r *MaintenanceRepository) CreateRecord(ctx context.Context, record *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error) {
	query := `INSERT INTO maintenance_records (id, bike_component_id, action_type, distance_at_action, cost, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		record.ID,
		record.BikeComponentID,
		record.ActionType,
		record.DistanceAtAction,
		record.Cost,
		record.Notes,
	).Scan(&record.CreatedAt)
	if err != nil {
		return nil, translateError(err, "maintenance record")
	}
	return record, nil
}

func (r *MaintenanceRepository) GetRecordsByComponentIDs(ctx context.Context, componentIDs []uuid.UUID) ([]*domain.MaintenanceRecord, error) {
	if len(componentIDs) == 0 {
		return nil, nil
	}

	ids := make([]string, len(componentIDs))
	for i, id := range componentIDs {
		ids[i] = id.String()
	}

	query := `SELECT ` + maintenanceColumns + `
		FROM maintenance_records mr
		WHERE mr.bike_component_id = ANY($1::uuid[])
		ORDER BY mr.created_at DESC`
	return r.list(ctx, query, pq.StringArray(ids))
}

func (r *MaintenanceRepository) GetRecordsByBikeID(ctx context.Context, bikeID uuid.UUID) ([]*domain.MaintenanceRecord, error) {
	query := `SELECT ` + maintenanceColumns + `
		FROM maintenance_records mr
		JOIN bike_components bc ON bc.id = mr.bike_component_id
		WHERE bc.bike_id = $1
		ORDER BY mr.created_at DESC`
	return r.list(ctx, query, bikeID)
}

func (r *MaintenanceRepository) list(ctx context.Context, query string, args ...any) ([]*domain.MaintenanceRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "maintenance records")
	}
	defer rows.Close()

	var records []*domain.MaintenanceRecord
	for rows.Next() {
		record := &domain.MaintenanceRecord{}
		var notes sql.NullString
		if err := rows.Scan(
			&record.ID,
			&record.BikeComponentID,
			&record.ActionType,
			&record.DistanceAtAction,
			&record.Cost,
			&notes,
			&record.CreatedAt,
		); err != nil {
			return nil, translateError(err, "maintenance records")
		}
		if notes.Valid {
			record.Notes = &notes.String
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "maintenance records")
	}
	return records, nil
}
