package equipment

import "context"

type Repository interface {
	// GetByID returns nil, nil when the equipment does not exist.
	GetByID(ctx context.Context, id uint) (*Equipment, error)
	// GetByIDForUpdate is GetByID holding a row lock until the surrounding
	// transaction ends. Read-modify-write paths use it.
	GetByIDForUpdate(ctx context.Context, id uint) (*Equipment, error)
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*Equipment, error)
	Create(ctx context.Context, e *Equipment) error
	Update(ctx context.Context, e *Equipment) error
}
