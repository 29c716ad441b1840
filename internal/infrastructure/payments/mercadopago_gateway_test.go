package payments

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/config"
)

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	_, err := NewMercadoPagoGateway(config.MercadoPagoConfig{})
	assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
}

func TestMercadoPagoGateway_MockApprovesAndEchoes(t *testing.T) {
	g, err := NewMercadoPagoGateway(config.MercadoPagoConfig{Mock: true})
	require.NoError(t, err)
	g.now = func() time.Time { return time.Unix(1700000000, 0) }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":200.09,"date_created":"keep"}`))
	require.NoError(t, err)
	assert.Equal(t, "1700000000000000000", id)
	assert.Equal(t, "approved", status)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, 200.09, body["transaction_amount"])
	assert.Equal(t, "keep", body["date_created"])
	assert.Equal(t, "accredited", body["status_detail"])
	assert.NotEmpty(t, body["date_approved"])
}

func TestMercadoPagoGateway_MockInvalidPayload(t *testing.T) {
	g, err := NewMercadoPagoGateway(config.MercadoPagoConfig{Mock: true})
	require.NoError(t, err)

	_, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`not json`))
	require.NoError(t, err)
	assert.Equal(t, "approved", status)
	assert.Contains(t, string(raw), `"status":"approved"`)
}
