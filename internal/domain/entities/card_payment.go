package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the card payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// CardPayment is a credit card charge made through Mercado Pago for a registration.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (registration_id-index): registration_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the provider response (JSON) for traceability/audit.
//   - MPPayload is the parsed representation, useful for querying/debugging.
type CardPayment struct {
	ID             string        `json:"id"`
	RegistrationID string        `json:"registration_id"`
	AmountCents    int64         `json:"amount_cents"`
	Installments   int           `json:"installments"`
	Date           time.Time     `json:"date"`
	Status         PaymentStatus `json:"status"`
	ProviderStatus string        `json:"provider_status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

// PaymentStatusFromProvider maps Mercado Pago statuses to ours.
func PaymentStatusFromProvider(providerStatus string) PaymentStatus {
	switch providerStatus {
	case "approved", "authorized":
		return PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusNegado
	default:
		return PaymentStatusPendente
	}
}
