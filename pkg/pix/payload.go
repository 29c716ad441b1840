// Package pix builds static PIX "copia e cola" payloads in the BR Code
// (EMV Merchant-Presented QR) format.
package pix

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

const (
	payloadFormatIndicator = "000201"
	staticInitiation       = "11"
	gui                    = "br.gov.bcb.pix"
	merchantCategoryCode   = "0000"
	currencyBRL            = "986"
	countryCode            = "BR"

	maxMerchantName = 25
	maxMerchantCity = 15
	maxTxID         = 25

	// DefaultTxID is used when no usable transaction id is given.
	DefaultTxID = "***"
)

const (
	tagInitiation      = "01"
	tagMerchantAccount = "26"
	tagCategory        = "52"
	tagCurrency        = "53"
	tagAmount          = "54"
	tagCountry         = "58"
	tagMerchantName    = "59"
	tagMerchantCity    = "60"
	tagAdditionalData  = "62"

	subTagGUI  = "00"
	subTagKey  = "01"
	subTagTxID = "05"
)

// Request holds the inputs of a static PIX payload.
type Request struct {
	Key          string
	MerchantName string
	MerchantCity string
	// Amount is optional; nil lets the payer type the value.
	Amount *decimal.Decimal
	TxID   string
	// SkipInitiationMethod leaves out tag 01 for readers that reject it.
	SkipInitiationMethod bool
}

// BuildPayload assembles the payload in the order mandated by the EMV QR
// specification and appends the CRC16 checksum. It never fails: bad optional
// inputs are omitted or replaced by defaults.
func BuildPayload(req Request) string {
	var b strings.Builder
	b.Grow(160)

	b.WriteString(payloadFormatIndicator)
	if !req.SkipInitiationMethod {
		b.WriteString(Field(tagInitiation, staticInitiation))
	}
	b.WriteString(Field(tagMerchantAccount,
		Field(subTagGUI, gui)+Field(subTagKey, SanitizeKey(req.Key))))
	b.WriteString(Field(tagCategory, merchantCategoryCode))
	b.WriteString(Field(tagCurrency, currencyBRL))
	if amount := FormatAmount(req.Amount); amount != "" {
		b.WriteString(Field(tagAmount, amount))
	}
	b.WriteString(Field(tagCountry, countryCode))
	b.WriteString(Field(tagMerchantName, strings.ToUpper(truncate(strings.TrimSpace(req.MerchantName), maxMerchantName))))
	b.WriteString(Field(tagMerchantCity, strings.ToUpper(truncate(strings.TrimSpace(req.MerchantCity), maxMerchantCity))))
	b.WriteString(Field(tagAdditionalData, Field(subTagTxID, SanitizeTxID(req.TxID))))
	b.WriteString(crcHeader)

	body := b.String()
	return body + CRC16(body)
}

// SanitizeTxID keeps ASCII letters and digits, truncated to 25 characters.
func SanitizeTxID(txid string) string {
	var b strings.Builder
	for _, r := range txid {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	s := truncate(b.String(), maxTxID)
	if s == "" {
		return DefaultTxID
	}
	return s
}

// truncate cuts s to at most n code points.
func truncate(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
