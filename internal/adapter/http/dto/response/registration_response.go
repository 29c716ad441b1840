package response

import (
	"time"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/pricing"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/pkg/document"
)

type RegistrationResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	FullName     string `json:"full_name"`
	CPF          string `json:"cpf"`
	Phone        string `json:"phone"`
	IAPLocal     string `json:"iap_local"`
	Transport    string `json:"transport"`
	LotName      string `json:"lot_name"`
	LotValue     string `json:"lot_value"`
	LotValueBR   string `json:"lot_value_br"`
	PaymentType  string `json:"payment_type"`
	Installments int    `json:"installments"`

	Status        string `json:"status"`
	StatusMessage string `json:"status_message,omitempty"`

	HasProof        bool       `json:"has_proof"`
	ProofURL        string     `json:"proof_url,omitempty"`
	ProofUploadedAt *time.Time `json:"proof_uploaded_at,omitempty"`

	ReviewedByUserID string     `json:"reviewed_by_user_id,omitempty"`
	ReviewedAt       *time.Time `json:"reviewed_at,omitempty"`
	ReviewNote       string     `json:"review_note,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromRegistration renders r; proofURL resolves the stored proof path.
func FromRegistration(r entities.Registration, proofURL func(string) string) RegistrationResponse {
	value := pricing.FromCents(r.LotValueCents)
	res := RegistrationResponse{
		ID:               r.ID,
		UserID:           r.UserID,
		FullName:         r.FullName,
		CPF:              document.FormatCPF(r.CPF),
		Phone:            r.Phone,
		IAPLocal:         r.IAPLocal,
		Transport:        string(r.Transport),
		LotName:          r.LotName,
		LotValue:         value.StringFixed(2),
		LotValueBR:       pricing.MoneyBR(value),
		PaymentType:      string(r.PaymentType),
		Installments:     r.Installments,
		Status:           string(r.Status),
		StatusMessage:    r.StatusMessage,
		HasProof:         r.HasProof(),
		ProofUploadedAt:  r.ProofUploadedAt,
		ReviewedByUserID: r.ReviewedByUserID,
		ReviewedAt:       r.ReviewedAt,
		ReviewNote:       r.ReviewNote,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if r.HasProof() && proofURL != nil {
		res.ProofURL = proofURL(r.ProofFilePath)
	}
	return res
}

type RegistrationPageResponse struct {
	Items      []RegistrationResponse `json:"items"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"page_size"`
	Total      int                    `json:"total"`
	TotalPages int                    `json:"total_pages"`
}

func FromRegistrationPage(p usecase.RegistrationPage, proofURL func(string) string) RegistrationPageResponse {
	items := make([]RegistrationResponse, 0, len(p.Items))
	for _, r := range p.Items {
		items = append(items, FromRegistration(r, proofURL))
	}
	return RegistrationPageResponse{
		Items:      items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}
