package seating

import (
	"math/rand"
	"time"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// CodeLength is the fixed length of every access code.
	CodeLength = 5
)

// GenerateCodes produces count fresh access codes, each CodeLength
// characters from [A-Z0-9]. A draw colliding with the existing set or
// with an earlier draw in the same batch is thrown away and redrawn.
// The 36^5 code space makes retries rare, not impossible.
func GenerateCodes(count int, exists func(string) bool) []string {
	if count <= 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	batch := make(map[string]struct{}, count)
	codes := make([]string, 0, count)

	for len(codes) < count {
		code := drawCode(rng)
		if _, dup := batch[code]; dup {
			continue
		}
		if exists != nil && exists(code) {
			continue
		}
		batch[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes
}

func drawCode(rng *rand.Rand) string {
	b := make([]byte, CodeLength)
	for i := range b {
		b[i] = codeAlphabet[rng.Intn(len(codeAlphabet))]
	}
	return string(b)
}
