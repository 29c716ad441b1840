package interfaces

import (
	"context"
	"io"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
)

// IProofStorage keeps uploaded payment proofs (Backblaze B2 in production).
type IProofStorage interface {
	Put(ctx context.Context, path, contentType string, body io.Reader, size int64) error
	URL(path string) string
}

// IQRCodeGenerator renders text as a PNG QR code of size x size pixels.
type IQRCodeGenerator interface {
	PNG(content string, size int) ([]byte, error)
}

// IRegistrationExporter writes registration rows as a spreadsheet.
type IRegistrationExporter interface {
	Export(rows []entities.RegistrationExportRow) ([]byte, error)
}
