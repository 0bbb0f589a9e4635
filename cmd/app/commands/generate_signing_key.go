package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// minKeyBytes matches the signing key length the server enforces at startup.
const minKeyBytes = 32

// RunGenerateSigningKey generates a random key suitable for JWT_SIGNING_KEY
// and writes it base64-encoded to the command output.
func RunGenerateSigningKey(keyBytes int, io IOTuple) error {
	if keyBytes < minKeyBytes {
		return fmt.Errorf("key length must be at least %d bytes, got %d", minKeyBytes, keyBytes)
	}

	key := make([]byte, keyBytes)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate signing key: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(key)
	if _, err := fmt.Fprintf(io.Writer, "JWT_SIGNING_KEY=%s\n", encoded); err != nil {
		return fmt.Errorf("failed to write signing key: %w", err)
	}

	return nil
}
