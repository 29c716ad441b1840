package pix

import (
	"fmt"
	"strings"
)

const (
	crcInit = 0xFFFF
	crcPoly = 0x1021

	// crcHeader is tag 63 with its fixed length, included in the checksummed content.
	crcHeader = "6304"
)

// CRC16 computes CRC-16/CCITT-FALSE over the UTF-8 bytes of payload and
// returns it as four uppercase hex digits.
func CRC16(payload string) string {
	crc := uint16(crcInit)
	for i := 0; i < len(payload); i++ {
		crc ^= uint16(payload[i]) << 8
		for b := 0; b < 8; b++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ crcPoly
			} else {
				crc <<= 1
			}
		}
	}
	return fmt.Sprintf("%04X", crc)
}

// Verify checks that payload ends with the 6304 header followed by the CRC of
// everything before the checksum digits.
func Verify(payload string) error {
	if len(payload) < len(crcHeader)+4 {
		return ErrMalformedPayload
	}
	body, sum := payload[:len(payload)-4], payload[len(payload)-4:]
	if !strings.HasSuffix(body, crcHeader) {
		return fmt.Errorf("%w: missing %s header", ErrMalformedPayload, crcHeader)
	}
	if want := CRC16(body); !strings.EqualFold(want, sum) {
		return fmt.Errorf("%w: got %s, want %s", ErrChecksumMismatch, sum, want)
	}
	return nil
}
