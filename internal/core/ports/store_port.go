package ports

import "context"

// Repositories groups the repositories bound to one connection or transaction.
type Repositories struct {
	Bikes          BikeRepository
	ComponentTypes ComponentTypeRepository
	Components     ComponentRepository
	Maintenance    MaintenanceRepository
}

// Store hands out repositories and runs multi-step writes atomically.
// If fn returns an error nothing it wrote is kept.
type Store interface {
	Repositories() Repositories
	WithinTx(ctx context.Context, fn func(repos Repositories) error) error
}
