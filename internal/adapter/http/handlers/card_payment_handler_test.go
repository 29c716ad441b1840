package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/handlers/mocks"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

var cardRegistration = entities.Registration{ID: "reg-1", UserID: "u-1", PaymentType: entities.PaymentTypeCredito}

type cardFixture struct {
	uc    *mocks.MockICardPaymentUseCase
	regs  *mocks.MockIRegistrationUseCase
	token string
	r     *gin.Engine
}

func newCardPaymentRouter(t *testing.T, mockMode bool) cardFixture {
	ctrl := gomock.NewController(t)
	f := cardFixture{
		uc:   mocks.NewMockICardPaymentUseCase(ctrl),
		regs: mocks.NewMockIRegistrationUseCase(ctrl),
	}
	auth := newTestAuth()
	h := NewCardPaymentHandler(f.uc, f.regs, mockMode)

	f.r = newTestRouter(auth)
	f.r.POST("/v1/registrations/me/card-payment", h.Create)
	f.r.GET("/v1/registrations/me/card-payment", h.GetLatest)
	f.token = bearer(t, auth, testUser, entities.Permissions{})
	return f
}

func TestCardPaymentHandler_Create(t *testing.T) {
	t.Run("registration missing", func(t *testing.T) {
		f := newCardPaymentRouter(t, false)
		f.regs.EXPECT().GetMine(gomock.Any(), "u-1").Return(entities.Registration{}, usecase.ErrRegistrationNotFound)

		w := doRequest(f.r, http.MethodPost, "/v1/registrations/me/card-payment", jsonBody(`{}`), f.token)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		f := newCardPaymentRouter(t, false)
		f.regs.EXPECT().GetMine(gomock.Any(), "u-1").Return(cardRegistration, nil)

		w := doRequest(f.r, http.MethodPost, "/v1/registrations/me/card-payment", jsonBody("{"), f.token)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back", func(t *testing.T) {
		f := newCardPaymentRouter(t, true)
		f.regs.EXPECT().GetMine(gomock.Any(), "u-1").Return(cardRegistration, nil)
		f.uc.EXPECT().CreateAndApprove(gomock.Any(), "reg-1", json.RawMessage("{}")).Return(entities.CardPayment{ID: "pay-1", Status: entities.PaymentStatusAprovado}, nil)

		w := doRequest(f.r, http.MethodPost, "/v1/registrations/me/card-payment", jsonBody("{"), f.token)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		f := newCardPaymentRouter(t, false)
		f.regs.EXPECT().GetMine(gomock.Any(), "u-1").Return(cardRegistration, nil)
		f.uc.EXPECT().CreateAndApprove(gomock.Any(), "reg-1", gomock.Any()).Return(entities.CardPayment{}, usecase.ErrNotCardPayment)

		w := doRequest(f.r, http.MethodPost, "/v1/registrations/me/card-payment", jsonBody(`{"payment_method_id":"visa","payer":{"email":"x@test.com"}}`), f.token)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success unwraps envelope", func(t *testing.T) {
		f := newCardPaymentRouter(t, false)
		now := time.Now().UTC()
		f.regs.EXPECT().GetMine(gomock.Any(), "u-1").Return(cardRegistration, nil)
		f.uc.EXPECT().CreateAndApprove(gomock.Any(), "reg-1", json.RawMessage(`{"payment_method_id":"visa"}`)).
			Return(entities.CardPayment{ID: "pay-1", RegistrationID: "reg-1", Date: now, Status: entities.PaymentStatusAprovado, AmountCents: 18009}, nil)

		w := doRequest(f.r, http.MethodPost, "/v1/registrations/me/card-payment", jsonBody(`{"mp_payload":{"payment_method_id":"visa"}}`), f.token)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["amount"] != "180.09" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCardPaymentHandler_GetLatest(t *testing.T) {
	t.Run("list error", func(t *testing.T) {
		f := newCardPaymentRouter(t, false)
		f.regs.EXPECT().GetMine(gomock.Any(), "u-1").Return(cardRegistration, nil)
		f.uc.EXPECT().ListByRegistrationID(gomock.Any(), "reg-1").Return(nil, usecase.ErrInvalidPaymentRegistrationID)

		w := doRequest(f.r, http.MethodGet, "/v1/registrations/me/card-payment", nil, f.token)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newCardPaymentRouter(t, false)
		f.regs.EXPECT().GetMine(gomock.Any(), "u-1").Return(cardRegistration, nil)
		f.uc.EXPECT().ListByRegistrationID(gomock.Any(), "reg-1").Return([]entities.CardPayment{}, nil)

		w := doRequest(f.r, http.MethodGet, "/v1/registrations/me/card-payment", nil, f.token)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns latest", func(t *testing.T) {
		f := newCardPaymentRouter(t, false)
		old := entities.CardPayment{ID: "old", RegistrationID: "reg-1", Date: time.Now().Add(-time.Hour), Status: entities.PaymentStatusNegado}
		latest := entities.CardPayment{ID: "latest", RegistrationID: "reg-1", Date: time.Now(), Status: entities.PaymentStatusAprovado}
		f.regs.EXPECT().GetMine(gomock.Any(), "u-1").Return(cardRegistration, nil)
		f.uc.EXPECT().ListByRegistrationID(gomock.Any(), "reg-1").Return([]entities.CardPayment{old, latest}, nil)

		w := doRequest(f.r, http.MethodGet, "/v1/registrations/me/card-payment", nil, f.token)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "latest" {
			t.Fatalf("expected latest payment, got body: %s", w.Body.String())
		}
	})
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readMPPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readMPPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readMPPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	if _, err := readMPPayload(makeCtx(`{"mp_payload":null}`)); err == nil {
		t.Fatalf("expected mp_payload empty error")
	}

	payload, err = readMPPayload(makeCtx(`{"mp_payload":{"a":1}}`))
	if err != nil || string(payload) != `{"a":1}` {
		t.Fatalf("expected wrapped payload, got %s err=%v", payload, err)
	}

	payload, err = readMPPayload(makeCtx(`{"token":"tok","payment_method_id":"visa"}`))
	if err != nil || string(payload) != `{"token":"tok","payment_method_id":"visa"}` {
		t.Fatalf("expected raw body payload, got %s err=%v", payload, err)
	}

	payload, err = readMPPayload(makeCtx(`[1,2]`))
	if err != nil || string(payload) != `[1,2]` {
		t.Fatalf("expected non-object body to pass through, got %s err=%v", payload, err)
	}
}

func TestMapCardPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidPaymentRegistrationID, http.StatusBadRequest},
		{usecase.ErrInvalidMPPayload, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrRegistrationNotFound, http.StatusNotFound},
		{usecase.ErrInvalidStatusTransition, http.StatusConflict},
		{usecase.ErrCardPaymentNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapCardPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
