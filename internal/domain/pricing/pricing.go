// Package pricing decides the registration lot and splits totals into PIX
// installments that end with the identification cents (e.g. ",09").
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/config"
)

const (
	LotOne = "1_LOTE"
	LotTwo = "2_LOTE"
)

var hundred = decimal.NewFromInt(100)

type Lot struct {
	Name      string          `json:"lot_name"`
	Price     decimal.Decimal `json:"price"`
	Remaining int             `json:"remaining"`
}

type Calculator struct {
	cfg config.PricingConfig
}

func NewCalculator(cfg config.PricingConfig) *Calculator {
	return &Calculator{cfg: cfg}
}

// CurrentLot picks the lot from the number of registrations already taken.
func (c *Calculator) CurrentLot(totalRegistrations int) Lot {
	if totalRegistrations < c.cfg.Lot1Limit {
		return Lot{Name: LotOne, Price: c.cfg.Lot1Price, Remaining: c.cfg.Lot1Limit - totalRegistrations}
	}
	return Lot{Name: LotTwo, Price: c.cfg.Lot2Price, Remaining: 0}
}

// WithSuffix forces value to end with the configured PIX cents: 180.00 -> 180.09.
func (c *Calculator) WithSuffix(value decimal.Decimal) decimal.Decimal {
	return value.Floor().Add(c.cfg.PixSuffix)
}

// SplitInstallments divides total into n equal installments, each suffixed.
func (c *Calculator) SplitInstallments(total decimal.Decimal, n int) []decimal.Decimal {
	if n < 1 {
		n = 1
	}
	part := c.WithSuffix(total.Div(decimal.NewFromInt(int64(n))))
	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = part
	}
	return out
}

// ValidInstallments reports whether n is within 1..MaxInstallments.
func (c *Calculator) ValidInstallments(n int) bool {
	return n >= 1 && n <= c.cfg.MaxInstallments
}

func (c *Calculator) PixSuffix() decimal.Decimal {
	return c.cfg.PixSuffix
}

func (c *Calculator) Lot1Limit() int {
	return c.cfg.Lot1Limit
}

func ToCents(v decimal.Decimal) int64 {
	return v.Mul(hundred).Round(0).IntPart()
}

func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// MoneyBR formats 1234.56 as 1.234,56.
func MoneyBR(v decimal.Decimal) string {
	s := v.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := b.String() + "," + frac
	if neg {
		return "-" + out
	}
	return out
}
