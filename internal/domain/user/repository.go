package user

import "context"

type Repository interface {
	// GetByID returns nil, nil when the user does not exist.
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*User, error)
	// ListActiveByRoles returns active users holding any of roles, ordered by ID.
	ListActiveByRoles(ctx context.Context, roles ...Role) ([]*User, error)
	Create(ctx context.Context, u *User) error
}
