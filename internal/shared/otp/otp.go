// Package otp generates the one-time codes used by the password-reset
// flows.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	min  = 100000
	span = 900000
)

// Generate returns a uniformly random six-digit decimal code as a
// string (100000-999999, so no leading zeros to preserve).
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(span))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+min), nil
}
