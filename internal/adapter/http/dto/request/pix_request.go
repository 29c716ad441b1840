package request

type PixVerifyRequest struct {
	Payload string `json:"payload" binding:"required"`
}
