package response

import (
	"time"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/pricing"
)

type CardPaymentResponse struct {
	PaymentID      string    `json:"payment_id"`
	ID             string    `json:"id"`
	RegistrationID string    `json:"registration_id"`
	PaymentDate    time.Time `json:"payment_date"`
	Date           time.Time `json:"date"`
	Status         string    `json:"status"`
	ProviderStatus string    `json:"provider_status,omitempty"`
	Amount         string    `json:"amount"`
	Installments   int       `json:"installments"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromCardPayment(p entities.CardPayment) CardPaymentResponse {
	return CardPaymentResponse{
		PaymentID:      p.ID,
		ID:             p.ID,
		RegistrationID: p.RegistrationID,
		PaymentDate:    p.Date,
		Date:           p.Date,
		Status:         string(p.Status),
		ProviderStatus: p.ProviderStatus,
		Amount:         pricing.FromCents(p.AmountCents).StringFixed(2),
		Installments:   p.Installments,
		MPPayloadRaw:   string(p.MPPayloadRaw),
		MPPayload:      p.MPPayload,
	}
}
