package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/major-advisor/internal/db"
)

func TestSplitAltLabels(t *testing.T) {
	assert.Empty(t, SplitAltLabels(""))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, SplitAltLabels("a\nb;c,d|e"))
	assert.Equal(t, []string{"one", "two"}, SplitAltLabels("one\t\ttwo"))
	assert.Equal(t, []string{"spaced"}, SplitAltLabels("  spaced  "))
}

func TestBuildAliasIndex_PreferredThenAlternates(t *testing.T) {
	aliasToURI, aliases := buildAliasIndex([]db.SkillRow{
		{ConceptURI: skillX, PreferredLabel: "python", AltLabels: "py;python3"},
	})

	assert.Equal(t, []string{"python", "py", "python3"}, aliases)
	assert.Equal(t, skillX, aliasToURI["python"])
	assert.Equal(t, skillX, aliasToURI["py"])
}

func TestBuildAliasIndex_FirstSeenWins(t *testing.T) {
	aliasToURI, aliases := buildAliasIndex([]db.SkillRow{
		{ConceptURI: skillX, PreferredLabel: "python"},
		{ConceptURI: skillY, PreferredLabel: "Python", AltLabels: "sql"},
	})

	// "Python" collides case-insensitively with the earlier registration.
	require.Len(t, aliases, 2)
	assert.Equal(t, skillX, aliasToURI["python"])
	assert.Equal(t, skillY, aliasToURI["sql"])
}

func TestBuildAliasIndex_SkipsMalformedURIs(t *testing.T) {
	aliasToURI, aliases := buildAliasIndex([]db.SkillRow{
		{ConceptURI: "not-a-uri", PreferredLabel: "bogus"},
		{ConceptURI: skillX, PreferredLabel: "python"},
	})

	require.Len(t, aliases, 1)
	assert.NotContains(t, aliasToURI, "bogus")
}

func TestBuildAliasIndex_SkipsEmptyLabels(t *testing.T) {
	_, aliases := buildAliasIndex([]db.SkillRow{
		{ConceptURI: skillX, PreferredLabel: "", AltLabels: ";;,,"},
	})
	assert.Empty(t, aliases)
}
