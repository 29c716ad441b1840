package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/config"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/pricing"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/logger"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase/interfaces"
)

const sandboxPayerEmail = "test_user_br@testuser.com"

var (
	ErrCardPaymentNotFound            = errors.New("card payment not found")
	ErrInvalidPaymentRegistrationID   = errors.New("invalid registration_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrNotCardPayment                 = errors.New("registration is not paid by credit card")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// ICardPaymentUseCase charges a registration through the card gateway.
//
// An approved charge confirms the registration right away.
type ICardPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, registrationID string, mpPayload json.RawMessage) (entities.CardPayment, error)
	GetByID(ctx context.Context, id string) (entities.CardPayment, error)
	ListByRegistrationID(ctx context.Context, registrationID string) ([]entities.CardPayment, error)
}

type CardPaymentUseCase struct {
	repo             interfaces.ICardPaymentRepository
	registrationRepo interfaces.IRegistrationRepository
	audit            interfaces.IAuditLogRepository
	gateway          interfaces.IPaymentGateway
	mp               config.MercadoPagoConfig
}

var _ ICardPaymentUseCase = (*CardPaymentUseCase)(nil)

func NewCardPaymentUseCase(
	repo interfaces.ICardPaymentRepository,
	registrationRepo interfaces.IRegistrationRepository,
	audit interfaces.IAuditLogRepository,
	gateway interfaces.IPaymentGateway,
	mp config.MercadoPagoConfig,
) *CardPaymentUseCase {
	return &CardPaymentUseCase{repo: repo, registrationRepo: registrationRepo, audit: audit, gateway: gateway, mp: mp}
}

func (u *CardPaymentUseCase) CreateAndApprove(ctx context.Context, registrationID string, mpPayload json.RawMessage) (entities.CardPayment, error) {
	log := logger.For("payment.usecase")
	mockMode := u.mp.Mock
	registrationID = strings.TrimSpace(registrationID)
	log.WithField("registration_id", registrationID).WithField("payload_len", len(mpPayload)).Debug("create-and-approve start")
	if registrationID == "" {
		return entities.CardPayment{}, ErrInvalidPaymentRegistrationID
	}
	log = log.WithField("registration_id", registrationID)

	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Warn("invalid payload")
			return entities.CardPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.CardPayment{}, errors.New("payment gateway not configured")
	}
	if u.registrationRepo == nil {
		return entities.CardPayment{}, errors.New("registration repository not configured")
	}

	reg, err := u.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		log.WithError(err).Error("failed loading registration")
		return entities.CardPayment{}, err
	}
	if reg.ID == "" {
		return entities.CardPayment{}, ErrRegistrationNotFound
	}
	if reg.PaymentType != entities.PaymentTypeCredito {
		return entities.CardPayment{}, ErrNotCardPayment
	}
	if !reg.IsAwaiting() {
		log.WithField("status", reg.Status).Warn("registration not awaiting payment")
		return entities.CardPayment{}, ErrInvalidStatusTransition
	}
	amount := pricing.FromCents(reg.LotValueCents).InexactFloat64()

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil && reqMap != nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Warn("missing payment_method_id")
			return entities.CardPayment{}, ErrInvalidMPPayload
		}
		if !mockMode {
			u.normalizeSandboxPayerFromUserID(reqMap)
			u.ensurePayerDefaults(reqMap)
		}
		if !mockMode && !hasPayer(reqMap) {
			log.Warn("missing/invalid payer")
			return entities.CardPayment{}, ErrInvalidMPPayload
		}

		// Mercado Pago uses external_reference to reconcile events.
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = registrationID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Inscricao %s", registrationID)
		}
		reqMap["installments"] = reg.Installments
		// The amount always comes from the stored lot value.
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	} else if !mockMode {
		return entities.CardPayment{}, ErrInvalidMPPayload
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.WithError(err).Error("payment gateway failed")
		return entities.CardPayment{}, mapGatewayError(err)
	}
	log = log.WithField("provider_payment_id", providerPaymentID).WithField("provider_status", providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.WithError(err).Warn("provider response unmarshal failed")
	}

	p := entities.CardPayment{
		ID:             providerPaymentID,
		RegistrationID: registrationID,
		AmountCents:    reg.LotValueCents,
		Installments:   reg.Installments,
		Date:           time.Now().UTC(),
		Status:         entities.PaymentStatusFromProvider(providerStatus),
		ProviderStatus: providerStatus,
		MPPayloadRaw:   providerResp,
		MPPayload:      parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.WithError(err).Error("payment repository create failed")
		return entities.CardPayment{}, err
	}
	recordAudit(ctx, u.audit, reg.UserID, entities.AuditCardPayment,
		fmt.Sprintf("registration=%s payment=%s status=%s", registrationID, created.ID, created.Status))

	if created.Status == entities.PaymentStatusAprovado {
		now := time.Now().UTC()
		reg.Status = entities.RegistrationStatusConfirmada
		reg.StatusMessage = msgConfirmed
		reg.ReviewedAt = &now
		reg.ReviewNote = "Pagamento aprovado no cartão"
		reg.UpdatedAt = now
		if _, err := u.registrationRepo.Update(ctx, reg, entities.RegistrationStatusAguardando); err != nil {
			log.WithError(err).WithField("payment_id", created.ID).Error("registration confirm failed")
			return entities.CardPayment{}, mapUpdateError(err)
		}
	}
	log.WithField("status", created.Status).Info("create-and-approve success")
	return created, nil
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *CardPaymentUseCase) sandbox() bool {
	return strings.HasPrefix(u.mp.AccessToken, "TEST-")
}

func (u *CardPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox either payer.id or payer.email may be used; fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if u.mp.TestPayerEmail != "" {
			payer["email"] = u.mp.TestPayerEmail
		} else if u.sandbox() {
			payer["email"] = sandboxPayerEmail
		}
	}
}

func (u *CardPaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.sandbox() {
		return
	}
	if u.mp.TestPayerUserID == "" || u.mp.TestPayerEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID != u.mp.TestPayerUserID {
		return
	}
	payer["email"] = u.mp.TestPayerEmail
	delete(payer, "id")
	logger.For("payment.usecase").Debug("mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *CardPaymentUseCase) GetByID(ctx context.Context, id string) (entities.CardPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CardPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CardPayment{}, err
	}
	if p.ID == "" {
		return entities.CardPayment{}, ErrCardPaymentNotFound
	}
	return p, nil
}

func (u *CardPaymentUseCase) ListByRegistrationID(ctx context.Context, registrationID string) ([]entities.CardPayment, error) {
	registrationID = strings.TrimSpace(registrationID)
	if registrationID == "" {
		return nil, ErrInvalidPaymentRegistrationID
	}
	return u.repo.ListByRegistrationID(ctx, registrationID)
}
