package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/pkg"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewValidationError(pkg.FieldError{Field: "email", Error: "email inválido"})
	case errors.Is(err, usecase.ErrPasswordTooShort):
		return pkg.NewValidationError(pkg.FieldError{Field: "password", Error: "senha deve ter no mínimo 6 caracteres"})
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_REGISTERED", "Email already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAccountInactive):
		return pkg.NewDomainErrorSimple("ACCOUNT_INACTIVE", "Account inactive", http.StatusForbidden)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}

func mapRegistrationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRegistrationNotFound):
		return pkg.NewDomainErrorSimple("REGISTRATION_NOT_FOUND", "Registration not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRegistrationExists):
		return pkg.NewDomainErrorSimple("REGISTRATION_EXISTS", "User already has a registration", http.StatusConflict)
	case errors.Is(err, usecase.ErrCPFAlreadyRegistered):
		return pkg.NewDomainErrorSimple("CPF_ALREADY_REGISTERED", "CPF already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCPF):
		return pkg.NewValidationError(pkg.FieldError{Field: "cpf", Error: "cpf deve ser um CPF válido"})
	case errors.Is(err, usecase.ErrInvalidInstallments):
		return pkg.NewValidationError(pkg.FieldError{Field: "installments", Error: "número de parcelas inválido"})
	case errors.Is(err, usecase.ErrInvalidRegistration):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrUnsupportedProofType):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_PROOF_TYPE", "Proof must be a PDF, JPG or PNG file", http.StatusUnsupportedMediaType)
	case errors.Is(err, usecase.ErrProofTooLarge):
		return pkg.NewDomainErrorSimple("PROOF_TOO_LARGE", "Proof file too large", http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrProofMissing):
		return pkg.NewDomainErrorSimple("PROOF_MISSING", "Payment proof missing", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Registration status does not allow this action", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotPixPayment):
		return pkg.NewDomainErrorSimple("NOT_PIX_PAYMENT", "Registration is not paid by Pix", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotCardPayment):
		return pkg.NewDomainErrorSimple("NOT_CARD_PAYMENT", "Registration is not paid by credit card", http.StatusConflict)
	case errors.Is(err, usecase.ErrPixKeyNotConfigured):
		return pkg.NewDomainErrorSimple("PIX_NOT_CONFIGURED", "Pix key not configured", http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}

func mapCardPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentRegistrationID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrCardPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return mapRegistrationError(err)
	}
}

func mapUserAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRoleName):
		return pkg.NewValidationError(pkg.FieldError{Field: "name", Error: "nome da função inválido"})
	case errors.Is(err, usecase.ErrRoleAlreadyExists):
		return pkg.NewDomainErrorSimple("ROLE_ALREADY_EXISTS", "Role already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrRoleNotFound):
		return pkg.NewDomainErrorSimple("ROLE_NOT_FOUND", "Role not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSelfLockout):
		return pkg.NewDomainErrorSimple("SELF_LOCKOUT", "Cannot remove your own super access", http.StatusConflict)
	default:
		return mapAuthError(err)
	}
}
