package interfaces

import (
	"context"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
)

// ICardPaymentRepository abstracts DynamoDB persistence for CardPayment.

type ICardPaymentRepository interface {
	Create(ctx context.Context, p entities.CardPayment) (entities.CardPayment, error)
	GetByID(ctx context.Context, id string) (entities.CardPayment, error)
	ListByRegistrationID(ctx context.Context, registrationID string) ([]entities.CardPayment, error)
}
