package entities

import (
	"time"
)

// RegistrationStatus represents the review state of a registration.
type RegistrationStatus string

const (
	RegistrationStatusAguardando RegistrationStatus = "AGUARDANDO_CONFIRMACAO"
	RegistrationStatusConfirmada RegistrationStatus = "CONFIRMADA"
	RegistrationStatusRecusada   RegistrationStatus = "RECUSADA"
)

type PaymentType string

const (
	PaymentTypePix     PaymentType = "pix"
	PaymentTypeCredito PaymentType = "credito"
)

type Transport string

const (
	TransportOnibus Transport = "onibus"
	TransportCarro  Transport = "carro"
)

// Registration is one attendee sign-up for the event.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//   - uniques table guards user_id and cpf so each appears at most once.
type Registration struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	CPF      string `json:"cpf"`
	Phone    string `json:"phone"`
	IAPLocal string `json:"iap_local"`

	Transport     Transport   `json:"transport"`
	LotName       string      `json:"lot_name"`
	LotValueCents int64       `json:"lot_value_cents"`
	PaymentType   PaymentType `json:"payment_type"`
	Installments  int         `json:"installments"`

	Status        RegistrationStatus `json:"status"`
	StatusMessage string             `json:"status_message,omitempty"`

	ProofFilePath   string     `json:"proof_file_path,omitempty"`
	ProofUploadedAt *time.Time `json:"proof_uploaded_at,omitempty"`

	ReviewedByUserID string     `json:"reviewed_by_user_id,omitempty"`
	ReviewedAt       *time.Time `json:"reviewed_at,omitempty"`
	ReviewNote       string     `json:"review_note,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasProof reports whether a payment proof was uploaded.
func (r Registration) HasProof() bool {
	return r.ProofFilePath != ""
}

func (r Registration) IsAwaiting() bool {
	return r.Status == "" || r.Status == RegistrationStatusAguardando
}

func ValidPaymentType(p PaymentType) bool {
	return p == PaymentTypePix || p == PaymentTypeCredito
}

func ValidTransport(t Transport) bool {
	return t == TransportOnibus || t == TransportCarro
}

func ValidRegistrationStatus(s RegistrationStatus) bool {
	switch s {
	case RegistrationStatusAguardando, RegistrationStatusConfirmada, RegistrationStatusRecusada:
		return true
	}
	return false
}

// RegistrationFilter narrows the admin listing. Zero values mean "any".
type RegistrationFilter struct {
	Search      string
	Status      RegistrationStatus
	PaymentType PaymentType
	From        *time.Time
	To          *time.Time
	Page        int
}

// RegistrationExportRow is one spreadsheet line, already formatted for display.
type RegistrationExportRow struct {
	ID           string
	CreatedAt    string
	FullName     string
	CPF          string
	Phone        string
	IAPLocal     string
	Transport    string
	LotName      string
	Value        string
	PaymentType  string
	Installments int
	Status       string
	ProofURL     string
	ReviewedAt   string
	ReviewNote   string
}
