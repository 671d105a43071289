package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so every repository can run
// inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
}

var _ ports.Store = (*Store)(nil)

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Repositories() ports.Repositories {
	return repositoriesFor(s.db)
}

func (s *Store) WithinTx(ctx context.Context, fn func(repos ports.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w: %w", domain.ErrDependencyFailure, err)
	}

	if err := fn(repositoriesFor(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w: %w", domain.ErrDependencyFailure, err)
	}
	return nil
}

func repositoriesFor(q DBTX) ports.Repositories {
	return ports.Repositories{
		Bikes:          NewBikeRepository(q),
		ComponentTypes: NewComponentTypeRepository(q),
		Components:     NewComponentRepository(q),
		Maintenance:    NewMaintenanceRepository(q),
	}
}
