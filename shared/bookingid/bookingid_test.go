package bookingid_test

import (
	"innkeep/shared/bookingid"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomGenerator_Pattern(t *testing.T) {
	gen := bookingid.NewRandom()
	pattern := regexp.MustCompile(`^[A-Z]{2}[0-9]{5}$`)

	for range 1000 {
		code := gen.Generate()

		assert.Len(t, code, 7)
		assert.Regexp(t, pattern, code)
	}
}

func TestRandomGenerator_NotConstant(t *testing.T) {
	gen := bookingid.NewRandom()

	seen := map[string]struct{}{}
	for range 100 {
		seen[gen.Generate()] = struct{}{}
	}

	// 100 draws from a 67.6M space collapsing to one value would mean the
	// randomness source is broken.
	assert.Greater(t, len(seen), 1)
}
