package response

import "github.com/Vinicios-DRH/iap-convencao-amazonica/pkg/pix"

type PixVerifyResponse struct {
	Valid   bool         `json:"valid"`
	Error   string       `json:"error,omitempty"`
	Details *pix.Details `json:"details,omitempty"`
}

func FromPixInspect(d pix.Details, err error) PixVerifyResponse {
	if err != nil {
		return PixVerifyResponse{Valid: false, Error: err.Error()}
	}
	return PixVerifyResponse{Valid: true, Details: &d}
}
