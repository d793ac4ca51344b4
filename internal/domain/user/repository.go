package user

import (
	"context"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (User, error)
	// GetByIIKOID returns the first user by id carrying iikoID.
	GetByIIKOID(ctx context.Context, iikoID string) (User, error)
	GetByLogin(ctx context.Context, login string) (User, error)
}
