package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashToken(t *testing.T) {
	tokenHash, err := HashToken("diary-token")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenHash)
	assert.True(t, CheckTokenHash("diary-token", tokenHash))
	assert.False(t, CheckTokenHash("other-token", tokenHash))

	assert.True(t, CheckTokenHash("sr", "$2a$14$z8cd4yJpzP40Qh2F2BhiMO.sOm4YAIaf30pmUKLOaISojD9HnXgaG"))
	assert.False(t, CheckTokenHash("sr", "not-a-hash"))
}
