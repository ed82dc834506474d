package mercadopago

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignatureValidator_Validate(t *testing.T) {
	const secret = "mp-webhook-secret"
	v := NewSignatureValidator(secret)

	validHash := Sign("id:123456;request-id:req-1;ts:1704908010;", secret)

	tests := []struct {
		name       string
		xSignature string
		xRequestID string
		dataID     string
		want       bool
	}{
		{"valid", "ts=1704908010,v1=" + validHash, "req-1", "123456", true},
		{"valid with spaces", "ts=1704908010, v1=" + validHash, "req-1", "123456", true},
		{"reordered parts", "v1=" + validHash + ",ts=1704908010", "req-1", "123456", true},
		{"wrong data id", "ts=1704908010,v1=" + validHash, "req-1", "999", false},
		{"wrong request id", "ts=1704908010,v1=" + validHash, "req-2", "123456", false},
		{"tampered ts", "ts=1704908011,v1=" + validHash, "req-1", "123456", false},
		{"missing v1", "ts=1704908010", "req-1", "123456", false},
		{"missing ts", "v1=" + validHash, "req-1", "123456", false},
		{"empty header", "", "req-1", "123456", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Validate(tt.xSignature, tt.xRequestID, tt.dataID))
		})
	}
}

func TestSignatureValidator_AlphanumericIDLowercased(t *testing.T) {
	const secret = "s"
	v := NewSignatureValidator(secret)
	hash := Sign("id:abc123;request-id:r;ts:1;", secret)

	assert.True(t, v.Validate("ts=1,v1="+hash, "r", "ABC123"))
}

func TestSignatureValidator_Disabled(t *testing.T) {
	v := NewSignatureValidator("")
	assert.False(t, v.Enabled())
	assert.False(t, v.Validate("ts=1,v1=abc", "r", "1"))
}

func TestBuildManifest(t *testing.T) {
	assert.Equal(t, "id:1;request-id:r;ts:2;", buildManifest("1", "r", "2"))
	assert.Equal(t, "request-id:r;ts:2;", buildManifest("", "r", "2"))
	assert.Equal(t, "ts:2;", buildManifest("", "", "2"))
}
