package response

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/config"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/pricing"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/pkg/pix"
)

func TestFromCardPayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.CardPayment{
		ID:             "pay-1",
		RegistrationID: "reg-1",
		AmountCents:    18009,
		Installments:   2,
		Date:           now,
		Status:         entities.PaymentStatusAprovado,
		ProviderStatus: "approved",
		MPPayloadRaw:   raw,
		MPPayload:      payload,
	}

	res := FromCardPayment(p)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.RegistrationID != "reg-1" || res.Status != "aprovado" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Amount != "180.09" || res.Installments != 2 {
		t.Fatalf("unexpected amount: %+v", res)
	}
	if !res.Date.Equal(now) || !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.MPPayloadRaw)
	}
	if res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.MPPayload)
	}
}

func TestFromRegistration(t *testing.T) {
	r := entities.Registration{
		ID:            "reg-1",
		CPF:           "52998224725",
		LotName:       pricing.LotOne,
		LotValueCents: 123409,
		Status:        entities.RegistrationStatusAguardando,
		ProofFilePath: "comprovantes/reg-1.pdf",
	}

	res := FromRegistration(r, func(p string) string { return "https://files/" + p })
	if res.CPF != "529.982.247-25" {
		t.Fatalf("expected formatted cpf, got %q", res.CPF)
	}
	if res.LotValue != "1234.09" || res.LotValueBR != "1.234,09" {
		t.Fatalf("unexpected value: %q %q", res.LotValue, res.LotValueBR)
	}
	if !res.HasProof || res.ProofURL != "https://files/comprovantes/reg-1.pdf" {
		t.Fatalf("unexpected proof: %+v", res)
	}

	r.ProofFilePath = ""
	res = FromRegistration(r, func(p string) string { return "https://files/" + p })
	if res.HasProof || res.ProofURL != "" {
		t.Fatalf("expected no proof, got %+v", res)
	}
}

func TestFromRegistrationPage(t *testing.T) {
	res := FromRegistrationPage(usecase.RegistrationPage{Page: 2, PageSize: 20, Total: 21, TotalPages: 2}, nil)
	if res.Items == nil || len(res.Items) != 0 {
		t.Fatalf("expected empty non-nil items, got %+v", res.Items)
	}
	if res.Page != 2 || res.TotalPages != 2 || res.Total != 21 {
		t.Fatalf("unexpected paging: %+v", res)
	}
}

func TestFromUser(t *testing.T) {
	res := FromUser(entities.User{ID: "u-1", Email: "a@b.com", IsActive: true})
	if res.Roles == nil || len(res.Roles) != 0 {
		t.Fatalf("expected empty roles, got %+v", res.Roles)
	}
	if res.ID != "u-1" || res.Email != "a@b.com" || !res.IsActive {
		t.Fatalf("unexpected user: %+v", res)
	}
}

func TestFromEvent(t *testing.T) {
	lot := pricing.Lot{Name: pricing.LotOne, Price: decimal.RequireFromString("180.09"), Remaining: 12}
	res := FromEvent(lot, config.EventConfig{Name: "Convenção"}, 3)
	if res.Price != "180.09" || res.PriceBR != "180,09" || res.Remaining != 12 {
		t.Fatalf("unexpected lot fields: %+v", res)
	}
	if res.IncludedItems == nil || res.MaxInstallments != 3 {
		t.Fatalf("unexpected event: %+v", res)
	}
}

func TestFromPixInspect(t *testing.T) {
	res := FromPixInspect(pix.Details{Key: "k"}, nil)
	if !res.Valid || res.Details == nil || res.Details.Key != "k" {
		t.Fatalf("unexpected valid response: %+v", res)
	}

	res = FromPixInspect(pix.Details{}, errors.New("boom"))
	if res.Valid || res.Error != "boom" || res.Details != nil {
		t.Fatalf("unexpected invalid response: %+v", res)
	}
}

func TestNewList(t *testing.T) {
	res := FromRoles(nil)
	if res.Items == nil || res.Total != 0 {
		t.Fatalf("unexpected list: %+v", res)
	}
}
