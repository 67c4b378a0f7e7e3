package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"webhook-reconciler/internal/core/domain"
)

// canonicalEscaper escapes the separator inside field values.
var canonicalEscaper = strings.NewReplacer(`\`, `\\`, `:`, `\:`)

// HMACSignatureService implements ports.SignatureService using HMAC-SHA256
// over the provider's colon-separated notification fields.
type HMACSignatureService struct{}

// NewHMACSignatureService creates a new HMAC-SHA256 signature service.
func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{}
}

// Sign computes HMAC-SHA256 of payload using the hex-encoded key.
// Returns a base64-encoded signature.
func (s *HMACSignatureService) Sign(hexKey string, payload string) (string, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return "", fmt.Errorf("decode hmac key: %w", err)
	}
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// Verify checks if signature matches HMAC-SHA256(key, payload).
// Uses constant-time comparison to prevent timing attacks.
func (s *HMACSignatureService) Verify(hexKey string, payload string, signature string) bool {
	expected, err := s.Sign(hexKey, payload)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(expected), []byte(signature))
}

// BuildCanonicalString constructs the signed payload of a notification item.
// Format: pspReference:originalReference:merchantAccount:merchantReference:value:currency:eventCode:success
func (s *HMACSignatureService) BuildCanonicalString(n domain.Notification) string {
	fields := []string{
		n.PSPReference,
		n.OriginalReference,
		n.MerchantAccount,
		n.MerchantReference,
		strconv.FormatInt(n.Amount, 10),
		n.Currency,
		string(n.EventCode),
		strconv.FormatBool(n.Success),
	}
	for i, f := range fields {
		fields[i] = canonicalEscaper.Replace(f)
	}
	return strings.Join(fields, ":")
}
