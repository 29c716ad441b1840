package request

import "encoding/json"

// CardPaymentCreateRequest is the body of the card checkout route.
//
// `mp_payload` is forwarded as raw JSON so the Mercado Pago Bricks card form
// output can be passed through unchanged.
type CardPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
