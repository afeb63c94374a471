package seating

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{5}$`)

func TestGenerateCodes(t *testing.T) {
	existing := map[string]struct{}{"ADMIN": {}, "USHER": {}}
	exists := func(code string) bool {
		_, ok := existing[code]
		return ok
	}

	codes := GenerateCodes(50, exists)
	require.Len(t, codes, 50)

	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		assert.Regexp(t, codePattern, code)
		assert.NotContains(t, existing, code)
		_, dup := seen[code]
		assert.False(t, dup, "duplicate code %s", code)
		seen[code] = struct{}{}
	}
}

func TestGenerateCodesRedrawsOnCollision(t *testing.T) {
	// Reject the first three distinct draws; generation must keep
	// sampling rather than give up or return a rejected code.
	rejected := make(map[string]struct{})
	exists := func(code string) bool {
		if len(rejected) < 3 {
			rejected[code] = struct{}{}
			return true
		}
		_, ok := rejected[code]
		return ok
	}

	codes := GenerateCodes(2, exists)
	require.Len(t, codes, 2)
	for _, code := range codes {
		assert.NotContains(t, rejected, code)
	}
}

func TestGenerateCodesZeroCount(t *testing.T) {
	assert.Nil(t, GenerateCodes(0, nil))
	assert.Nil(t, GenerateCodes(-1, nil))
}
