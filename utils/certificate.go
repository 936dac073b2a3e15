package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateCertificateSerial derives the certificate serial from the learner,
// the course and the issuance instant. The serial is unique per issuance
// event, not reproducible from completion facts alone.
func GenerateCertificateSerial(userID, courseID uint, issuedAt time.Time) string {
	data := fmt.Sprintf("%d-%d-%s", userID, courseID, issuedAt.UTC().Format(time.RFC3339Nano))
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}
