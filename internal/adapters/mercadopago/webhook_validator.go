package mercadopago

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SignatureValidator checks the x-signature header Mercado Pago attaches to
// webhook notifications.
//
// The header has the form ts=<unix>,v1=<hex>. v1 is the HMAC-SHA256, keyed
// with the webhook secret, of the manifest
//
//	id:<data.id>;request-id:<x-request-id>;ts:<ts>;
//
// where parts with empty values are omitted.
type SignatureValidator struct {
	secret string
}

// NewSignatureValidator creates a validator for secret.
func NewSignatureValidator(secret string) *SignatureValidator {
	return &SignatureValidator{secret: secret}
}

// Enabled reports whether a secret is configured.
func (v *SignatureValidator) Enabled() bool {
	return v.secret != ""
}

// Validate reports whether xSignature authenticates the notification for dataID.
func (v *SignatureValidator) Validate(xSignature, xRequestID, dataID string) bool {
	if xSignature == "" || v.secret == "" {
		return false
	}

	ts, hash := parseSignatureHeader(xSignature)
	if ts == "" || hash == "" {
		return false
	}

	expected := Sign(buildManifest(dataID, xRequestID, ts), v.secret)
	return hmac.Equal([]byte(strings.ToLower(hash)), []byte(expected))
}

// parseSignatureHeader extracts ts and v1 from the x-signature header.
func parseSignatureHeader(header string) (ts, hash string) {
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "ts":
			ts = strings.TrimSpace(value)
		case "v1":
			hash = strings.TrimSpace(value)
		}
	}
	return ts, hash
}

func buildManifest(dataID, requestID, ts string) string {
	var b strings.Builder
	if dataID != "" {
		// alphanumeric ids are signed lowercased
		b.WriteString("id:" + strings.ToLower(dataID) + ";")
	}
	if requestID != "" {
		b.WriteString("request-id:" + requestID + ";")
	}
	if ts != "" {
		b.WriteString("ts:" + ts + ";")
	}
	return b.String()
}

// Sign returns the hex HMAC-SHA256 of manifest.
func Sign(manifest, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(manifest))
	return hex.EncodeToString(h.Sum(nil))
}
