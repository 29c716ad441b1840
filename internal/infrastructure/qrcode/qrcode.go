// Package qrcode renders PIX payloads as PNG images.
package qrcode

import (
	"github.com/pkg/errors"
	goqrcode "github.com/skip2/go-qrcode"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase/interfaces"
)

const DefaultSize = 300

// Generator encodes with the medium (15%) recovery level.
type Generator struct {
	level goqrcode.RecoveryLevel
}

var _ interfaces.IQRCodeGenerator = (*Generator)(nil)

func NewGenerator() *Generator {
	return &Generator{level: goqrcode.Medium}
}

func (g *Generator) PNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, errors.New("qrcode: empty content")
	}
	if size <= 0 {
		size = DefaultSize
	}
	png, err := goqrcode.Encode(content, g.level, size)
	if err != nil {
		return nil, errors.Wrap(err, "qrcode encode")
	}
	return png, nil
}
