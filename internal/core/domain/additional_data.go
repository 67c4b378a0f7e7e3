package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Recognized additionalData keys. The bag is open: any other key is kept as-is.
const (
	KeyFraudManualReview = "fraudManualReview"
	KeyFraudResultType   = "fraudResultType"
	KeyHMACSignature     = "hmacSignature"
	KeyPaymentMethodType = "paymentMethodVariant"
)

// AdditionalData is the provider's flat key/value metadata bag.
type AdditionalData map[string]string

// ParseAdditionalData decodes a JSON object into a flat bag. Absent or
// malformed input yields an empty bag; nested values are dropped.
func ParseAdditionalData(raw []byte) AdditionalData {
	out := AdditionalData{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return out
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return out
	}

	for k, v := range fields {
		switch val := v.(type) {
		case string:
			out[k] = val
		case bool:
			out[k] = strconv.FormatBool(val)
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		}
	}
	return out
}

// Get returns the value for key, or "" when absent.
func (d AdditionalData) Get(key string) string {
	return d[key]
}

// Flag reports whether key holds a truthy value ("true" or "1", case-insensitive).
func (d AdditionalData) Flag(key string) bool {
	v := strings.TrimSpace(d[key])
	return strings.EqualFold(v, "true") || v == "1"
}
