package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// TrackingCodePrefix is the fixed prefix of every tracking code.
	TrackingCodePrefix = "BRK-"

	// trackingCodeLength is the number of random characters after the prefix.
	trackingCodeLength = 8

	// verificationCodeLength is the number of digits in a handoff code.
	verificationCodeLength = 4

	// trackingCodeAlphabet excludes ambiguous characters (0/O, 1/I).
	trackingCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// CredentialGenerator produces the human-facing tracking codes and the
// numeric handoff verification codes carried by high-value parcels.
//
// Tracking codes are unique with overwhelming probability, but uniqueness is
// still enforced by the store's unique index; a collision surfaces as a
// persistence error at creation. The warehouse and delivery codes are drawn
// independently; they gate different actors at different times, so an equal
// pair is harmless.
type CredentialGenerator struct{}

// NewCredentialGenerator creates a CredentialGenerator instance.
func NewCredentialGenerator() CredentialGenerator {
	return CredentialGenerator{}
}

// TrackingCode returns a fresh tracking code such as "BRK-7KQX2MNP".
func (CredentialGenerator) TrackingCode() (string, error) {
	var sb strings.Builder
	sb.WriteString(TrackingCodePrefix)

	alphabetSize := big.NewInt(int64(len(trackingCodeAlphabet)))
	for range trackingCodeLength {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("generating tracking code: %w", err)
		}
		sb.WriteByte(trackingCodeAlphabet[n.Int64()])
	}

	return sb.String(), nil
}

// VerificationCode returns a fresh 4-digit handoff code such as "0482".
func (CredentialGenerator) VerificationCode() (string, error) {
	var sb strings.Builder
	ten := big.NewInt(10)
	for range verificationCodeLength {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("generating verification code: %w", err)
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}

	return sb.String(), nil
}
