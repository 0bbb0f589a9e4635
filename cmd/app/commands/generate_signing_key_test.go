package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGenerateSigningKey(t *testing.T) {
	t.Run("writes a base64 key", func(t *testing.T) {
		var buf bytes.Buffer

		err := RunGenerateSigningKey(64, IOTuple{Writer: &buf})
		require.NoError(t, err)

		output := buf.String()
		assert.True(t, strings.HasPrefix(output, "JWT_SIGNING_KEY="))
		assert.True(t, strings.HasSuffix(output, "\n"))

		// 64 bytes base64-encoded is 88 characters
		encoded := strings.TrimSuffix(strings.TrimPrefix(output, "JWT_SIGNING_KEY="), "\n")
		assert.Len(t, encoded, 88)
	})

	t.Run("keys are unique", func(t *testing.T) {
		var first, second bytes.Buffer

		require.NoError(t, RunGenerateSigningKey(32, IOTuple{Writer: &first}))
		require.NoError(t, RunGenerateSigningKey(32, IOTuple{Writer: &second}))

		assert.NotEqual(t, first.String(), second.String())
	})

	t.Run("rejects short keys", func(t *testing.T) {
		var buf bytes.Buffer

		err := RunGenerateSigningKey(16, IOTuple{Writer: &buf})
		assert.Error(t, err)
		assert.Empty(t, buf.String())
	})
}
