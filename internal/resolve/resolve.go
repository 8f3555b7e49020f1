// Package resolve fuzzy-matches free-text skill labels against the canonical
// alias index.
package resolve

import (
	"strings"

	"github.com/jonathan/major-advisor/internal/types"
)

// DefaultThreshold is the minimum token-set score a match must reach to be
// kept.
const DefaultThreshold = 70

// Resolver matches inputs against an immutable alias list. It holds no
// mutable state and is safe for unlimited concurrent use.
type Resolver struct {
	aliases    []string
	aliasToURI map[string]string
}

// New creates a Resolver over the given alias display list and its
// lowercased-alias-to-URI index.
func New(aliases []string, aliasToURI map[string]string) *Resolver {
	return &Resolver{aliases: aliases, aliasToURI: aliasToURI}
}

// Resolve scores every non-empty input against the full alias list and keeps
// the single best-scoring alias per input. Candidates below threshold, and
// candidates whose resolved URI is not a well-formed skill URI, are dropped
// silently. Distinct inputs may resolve to the same skill URI; merging
// weights is the caller's concern.
func (r *Resolver) Resolve(inputs []types.WeightedSkill, threshold int) []types.ResolvedSkill {
	resolved := make([]types.ResolvedSkill, 0, len(inputs))
	seen := make(map[string]struct{}, len(inputs))
	for _, in := range inputs {
		text := strings.TrimSpace(in.Key)
		if text == "" {
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}

		bestScore := -1
		bestAlias := ""
		for _, alias := range r.aliases {
			if s := TokenSetRatio(text, alias); s > bestScore {
				bestScore = s
				bestAlias = alias
				if s == 100 {
					break
				}
			}
		}
		if bestScore < threshold {
			continue
		}

		uri, ok := r.aliasToURI[strings.ToLower(bestAlias)]
		if !ok || !types.IsSkillURI(uri) {
			continue
		}

		resolved = append(resolved, types.ResolvedSkill{
			Input:        text,
			MatchedLabel: bestAlias,
			ConceptURI:   uri,
			Score:        bestScore,
		})
	}
	return resolved
}
