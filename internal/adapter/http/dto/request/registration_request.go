package request

import (
	"strings"
	"time"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/pkg/document"
)

// RegistrationRequest is the attendee form.
type RegistrationRequest struct {
	FullName     string `json:"full_name" binding:"required,max=200"`
	CPF          string `json:"cpf" binding:"required,cpf"`
	Phone        string `json:"phone" binding:"required,max=30"`
	IAPLocal     string `json:"iap_local" binding:"required,max=120"`
	Transport    string `json:"transport" binding:"required,oneof=onibus carro"`
	PaymentType  string `json:"payment_type" binding:"required,oneof=pix credito"`
	Installments int    `json:"installments" binding:"omitempty,min=1"`
}

func (r RegistrationRequest) ToInput() usecase.RegistrationInput {
	return usecase.RegistrationInput{
		FullName:     strings.TrimSpace(r.FullName),
		CPF:          document.OnlyDigits(r.CPF),
		Phone:        strings.TrimSpace(r.Phone),
		IAPLocal:     strings.TrimSpace(r.IAPLocal),
		Transport:    entities.Transport(r.Transport),
		PaymentType:  entities.PaymentType(r.PaymentType),
		Installments: r.Installments,
	}
}

type ReviewRequest struct {
	Note string `json:"note" binding:"max=500"`
}

// RegistrationListQuery holds the admin listing filters. Dates are YYYY-MM-DD.
type RegistrationListQuery struct {
	Search      string `form:"q"`
	Status      string `form:"status"`
	PaymentType string `form:"payment_type"`
	From        string `form:"from"`
	To          string `form:"to"`
	Page        int    `form:"page"`
}

func (q RegistrationListQuery) ToFilter(loc *time.Location) entities.RegistrationFilter {
	from, to := usecase.ParseDateRange(q.From, q.To, loc)
	page := q.Page
	if page < 1 {
		page = 1
	}
	return entities.RegistrationFilter{
		Search:      strings.TrimSpace(q.Search),
		Status:      entities.RegistrationStatus(strings.TrimSpace(q.Status)),
		PaymentType: entities.PaymentType(strings.TrimSpace(q.PaymentType)),
		From:        from,
		To:          to,
		Page:        page,
	}
}
