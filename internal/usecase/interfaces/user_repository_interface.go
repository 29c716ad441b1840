package interfaces

import (
	"context"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
// Emails are stored lower-cased; Create returns ErrConflict for a taken email.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	Update(ctx context.Context, u entities.User) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
}

// IRoleRepository abstracts DynamoDB persistence for Role.

type IRoleRepository interface {
	Create(ctx context.Context, r entities.Role) (entities.Role, error)
	GetByName(ctx context.Context, name string) (entities.Role, error)
	GetMany(ctx context.Context, names []string) ([]entities.Role, error)
	List(ctx context.Context) ([]entities.Role, error)
}
