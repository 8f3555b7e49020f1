package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenSetRatio_ExactMatch(t *testing.T) {
	assert.Equal(t, 100, TokenSetRatio("python", "python"))
}

func TestTokenSetRatio_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 100, TokenSetRatio("SQL", "sql"))
	assert.Equal(t, 100, TokenSetRatio("Python", "pYThOn"))
}

func TestTokenSetRatio_TokenOrderInvariant(t *testing.T) {
	assert.Equal(t, 100, TokenSetRatio("machine learning", "learning machine"))
	assert.Equal(t, 100, TokenSetRatio("data, analysis", "analysis data"))
}

func TestTokenSetRatio_SubsetScoresFull(t *testing.T) {
	// One side's tokens contained in the other's scores 100.
	assert.Equal(t, 100, TokenSetRatio("python", "python programming"))
	assert.Equal(t, 100, TokenSetRatio("manage databases", "databases"))
}

func TestTokenSetRatio_DuplicateTokensIgnored(t *testing.T) {
	assert.Equal(t, 100, TokenSetRatio("go go go", "go"))
}

func TestTokenSetRatio_Disjoint(t *testing.T) {
	score := TokenSetRatio("haskell", "carpentry")
	assert.Less(t, score, 70)
}

func TestTokenSetRatio_PartialOverlap(t *testing.T) {
	score := TokenSetRatio("python programming", "java programming")
	assert.Greater(t, score, 0)
	assert.Less(t, score, 100)
}

func TestTokenSetRatio_Empty(t *testing.T) {
	assert.Equal(t, 0, TokenSetRatio("", "python"))
	assert.Equal(t, 0, TokenSetRatio("python", ""))
	assert.Equal(t, 100, TokenSetRatio("", ""))
}

func TestTokenSetRatio_Punctuation(t *testing.T) {
	assert.Equal(t, 100, TokenSetRatio("c/c++ development", "development c c"))
}

func TestTokenSetRatio_RangeBounds(t *testing.T) {
	pairs := [][2]string{
		{"sql", "nosql"},
		{"web development", "app development"},
		{"a", "zzzzzzzzzz"},
		{"data science", "datascience"},
	}
	for _, p := range pairs {
		score := TokenSetRatio(p[0], p[1])
		assert.GreaterOrEqual(t, score, 0, "pair %v", p)
		assert.LessOrEqual(t, score, 100, "pair %v", p)
	}
}
