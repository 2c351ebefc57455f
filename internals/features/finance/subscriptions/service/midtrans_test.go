package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	serverKey = "SB-Mid-server-testkey"

	p := NotificationPayload{
		OrderID:     "SUB-abc-123",
		StatusCode:  "200",
		GrossAmount: "150000.00",
	}
	h := sha512.Sum512([]byte(p.OrderID + p.StatusCode + p.GrossAmount + serverKey))
	p.SignatureKey = hex.EncodeToString(h[:])

	assert.True(t, VerifySignature(p))

	p.SignatureKey = "deadbeef"
	assert.False(t, VerifySignature(p))
}
