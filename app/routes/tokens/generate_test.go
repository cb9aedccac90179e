package tokens

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]+$`)

func TestGenerateTokenCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateTokenCode()
		assert.Len(t, code, TokenCodeLength)
		assert.Regexp(t, codePattern, code)
		seen[code] = true
	}
	// 100 draws from a 36^8 space should not collide.
	assert.Len(t, seen, 100)
}
