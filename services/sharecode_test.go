package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomShareCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		code := randomShareCode()
		assert.Len(t, code, shareCodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(shareCodeAlphabet, r), "unexpected character %q", r)
		}
		seen[code] = struct{}{}
	}
	// 31^6 possible codes; 200 draws colliding would point at a broken generator.
	assert.Len(t, seen, 200)
}
