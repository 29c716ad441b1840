package pix

import "fmt"

// Details are the human-relevant fields of a payload.
type Details struct {
	Key          string `json:"key"`
	MerchantName string `json:"merchant_name"`
	MerchantCity string `json:"merchant_city"`
	Amount       string `json:"amount,omitempty"`
	TxID         string `json:"txid,omitempty"`
	CRC          string `json:"crc"`
}

// Inspect verifies the checksum of payload and extracts its details.
func Inspect(payload string) (Details, error) {
	if err := Verify(payload); err != nil {
		return Details{}, err
	}
	fields, err := Decode(payload)
	if err != nil {
		return Details{}, err
	}
	if v, _ := Lookup(fields, "00"); v != "01" {
		return Details{}, fmt.Errorf("%w: unexpected format indicator %q", ErrMalformedPayload, v)
	}

	var d Details
	d.CRC, _ = Lookup(fields, "63")
	d.MerchantName, _ = Lookup(fields, tagMerchantName)
	d.MerchantCity, _ = Lookup(fields, tagMerchantCity)
	d.Amount, _ = Lookup(fields, tagAmount)

	account, ok := Lookup(fields, tagMerchantAccount)
	if !ok {
		return Details{}, fmt.Errorf("%w: missing merchant account", ErrMalformedPayload)
	}
	sub, err := Decode(account)
	if err != nil {
		return Details{}, err
	}
	if g, _ := Lookup(sub, subTagGUI); g != gui {
		return Details{}, fmt.Errorf("%w: unexpected gui %q", ErrMalformedPayload, g)
	}
	d.Key, _ = Lookup(sub, subTagKey)

	if extra, ok := Lookup(fields, tagAdditionalData); ok {
		sub, err := Decode(extra)
		if err != nil {
			return Details{}, err
		}
		d.TxID, _ = Lookup(sub, subTagTxID)
	}
	return d, nil
}
