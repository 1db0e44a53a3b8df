package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRating(t *testing.T) {
	for rating := -1; rating <= 7; rating++ {
		assert.Equalf(t, rating >= 1 && rating <= 5, IsValidRating(rating), "rating %d", rating)
	}
}

func TestIsValidReviewComment(t *testing.T) {
	assert.True(t, IsValidReviewComment(""))
	assert.True(t, IsValidReviewComment(strings.Repeat("ã", MaxReviewCommentLength)))
	assert.False(t, IsValidReviewComment(strings.Repeat("a", MaxReviewCommentLength+1)))
}
