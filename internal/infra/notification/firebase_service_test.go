package notification

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkTokens(t *testing.T) {
	makeTokens := func(n int) []string {
		tokens := make([]string, n)
		for i := range tokens {
			tokens[i] = "token-" + strconv.Itoa(i)
		}

		return tokens
	}

	tests := []struct {
		name      string
		count     int
		wantSizes []int
	}{
		{name: "empty", count: 0, wantSizes: nil},
		{name: "single chunk", count: 3, wantSizes: []int{3}},
		{name: "exact limit", count: maxMulticastTokens, wantSizes: []int{maxMulticastTokens}},
		{name: "overflow", count: maxMulticastTokens + 1, wantSizes: []int{maxMulticastTokens, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := makeTokens(tt.count)
			chunks := chunkTokens(tokens, maxMulticastTokens)

			var sizes []int
			var flattened []string
			for _, chunk := range chunks {
				sizes = append(sizes, len(chunk))
				flattened = append(flattened, chunk...)
			}

			assert.Equal(t, tt.wantSizes, sizes)
			if tt.count > 0 {
				assert.Equal(t, tokens, flattened)
			}
		})
	}
}
