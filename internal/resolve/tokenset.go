package resolve

import (
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// tokenize lowercases s and splits it into unique, sorted alphanumeric tokens.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(fields))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		tokens = append(tokens, f)
	}
	sort.Strings(tokens)
	return tokens
}

// ratio scores two strings 0-100 by normalized edit distance.
func ratio(a, b string) int {
	if a == b {
		return 100
	}
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 && lb == 0 {
		return 100
	}
	longer := la
	if lb > longer {
		longer = lb
	}
	dist := levenshtein.ComputeDistance(a, b)
	score := 100 * (longer - dist) / longer
	if score < 0 {
		return 0
	}
	return score
}

// TokenSetRatio scores a and b 0-100 by token-overlap similarity: both sides
// are reduced to sorted unique token sets, and the score is the best edit
// ratio among the intersection and each side's intersection-plus-remainder.
// Identical token sets score 100 regardless of token order or punctuation.
func TokenSetRatio(a, b string) int {
	ta, tb := tokenize(a), tokenize(b)
	if len(ta) == 0 || len(tb) == 0 {
		if len(ta) == 0 && len(tb) == 0 {
			return 100
		}
		return 0
	}

	setB := make(map[string]struct{}, len(tb))
	for _, t := range tb {
		setB[t] = struct{}{}
	}
	setA := make(map[string]struct{}, len(ta))
	for _, t := range ta {
		setA[t] = struct{}{}
	}

	var common, diffA, diffB []string
	for _, t := range ta {
		if _, ok := setB[t]; ok {
			common = append(common, t)
		} else {
			diffA = append(diffA, t)
		}
	}
	for _, t := range tb {
		if _, ok := setA[t]; !ok {
			diffB = append(diffB, t)
		}
	}

	base := strings.Join(common, " ")
	left := base
	if len(diffA) > 0 {
		left = strings.TrimSpace(base + " " + strings.Join(diffA, " "))
	}
	right := base
	if len(diffB) > 0 {
		right = strings.TrimSpace(base + " " + strings.Join(diffB, " "))
	}

	// When one side's tokens are a subset of the other's, base equals that
	// side and the first comparison yields 100.
	best := ratio(base, left)
	if s := ratio(base, right); s > best {
		best = s
	}
	if s := ratio(left, right); s > best {
		best = s
	}
	return best
}
