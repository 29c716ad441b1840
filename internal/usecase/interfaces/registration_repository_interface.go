package interfaces

import (
	"context"
	"errors"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
)

var (
	// ErrConflict is returned by repositories when a uniqueness guard rejects a write.
	ErrConflict = errors.New("item already exists")
	// ErrNotFound is returned by updates targeting a missing item.
	ErrNotFound = errors.New("item not found")
	// ErrStatusChanged is returned by conditional updates when the stored status no longer matches.
	ErrStatusChanged = errors.New("item status changed")
)

// IRegistrationRepository abstracts DynamoDB persistence for Registration.
//
// Create must reject a second registration for the same user or CPF with ErrConflict.
// Lookups return a zero Registration (ID == "") when nothing matches.
// Update applies only while the stored status equals from (ErrStatusChanged otherwise).

type IRegistrationRepository interface {
	Create(ctx context.Context, r entities.Registration) (entities.Registration, error)
	GetByID(ctx context.Context, id string) (entities.Registration, error)
	GetByUserID(ctx context.Context, userID string) (entities.Registration, error)
	CPFTaken(ctx context.Context, cpf string) (bool, error)
	Update(ctx context.Context, r entities.Registration, from entities.RegistrationStatus) (entities.Registration, error)
	List(ctx context.Context) ([]entities.Registration, error)
	Count(ctx context.Context) (int, error)
}
