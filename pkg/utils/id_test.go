package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	seen := map[string]bool{}

	for i := 0; i < 50; i++ {
		id, err := GenerateID()
		require.NoError(t, err)
		assert.Regexp(t, `^[A-Za-z0-9]{6}$`, id)
		seen[id] = true
	}

	assert.Greater(t, len(seen), 45)
}
