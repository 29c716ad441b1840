package pix

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrMalformedPayload = errors.New("pix: malformed payload")
	ErrChecksumMismatch = errors.New("pix: checksum mismatch")
)

// TLV is one top-level field of a BR Code payload.
type TLV struct {
	Tag   string
	Value string
}

// Field renders tag + two-digit byte length + value.
// The value must not exceed 99 bytes; callers truncate beforehand.
func Field(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}

// Decode splits a payload into its top-level fields, checking each declared length.
func Decode(payload string) ([]TLV, error) {
	fields := make([]TLV, 0, 12)
	for i := 0; i < len(payload); {
		if i+4 > len(payload) {
			return nil, fmt.Errorf("%w: truncated header at offset %d", ErrMalformedPayload, i)
		}
		tag := payload[i : i+2]
		n, err := strconv.Atoi(payload[i+2 : i+4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: bad length for tag %s", ErrMalformedPayload, tag)
		}
		start := i + 4
		if start+n > len(payload) {
			return nil, fmt.Errorf("%w: tag %s declares %d bytes, %d left", ErrMalformedPayload, tag, n, len(payload)-start)
		}
		fields = append(fields, TLV{Tag: tag, Value: payload[start : start+n]})
		i = start + n
	}
	return fields, nil
}

// Lookup returns the value of the first field with the given tag.
func Lookup(fields []TLV, tag string) (string, bool) {
	for _, f := range fields {
		if f.Tag == tag {
			return f.Value, true
		}
	}
	return "", false
}
