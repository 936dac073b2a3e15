package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCertificateSerial(t *testing.T) {
	issuedAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	serial := GenerateCertificateSerial(1, 2, issuedAt)
	assert.NotEmpty(t, serial)
	assert.Len(t, serial, 64) // sha256 hex

	// Deterministic for identical inputs
	assert.Equal(t, serial, GenerateCertificateSerial(1, 2, issuedAt))

	// Distinct per learner, per course and per issuance instant
	assert.NotEqual(t, serial, GenerateCertificateSerial(3, 2, issuedAt))
	assert.NotEqual(t, serial, GenerateCertificateSerial(1, 4, issuedAt))
	assert.NotEqual(t, serial, GenerateCertificateSerial(1, 2, issuedAt.Add(time.Nanosecond)))
}
