package assets

import (
	"regexp"
	"strings"

	"github.com/jonathan/major-advisor/internal/db"
	"github.com/jonathan/major-advisor/internal/types"
)

var altLabelDelimRe = regexp.MustCompile(`[\n\r\t;,|]+`)

// SplitAltLabels splits a raw delimited alternate-label string into trimmed,
// non-empty labels.
func SplitAltLabels(value string) []string {
	if value == "" {
		return nil
	}
	parts := altLabelDelimRe.Split(value, -1)
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			labels = append(labels, p)
		}
	}
	return labels
}

// buildAliasIndex registers each skill's preferred label first, then its
// alternate labels. Alias keys are lowercased; the first registration of a
// key wins. Rows with malformed skill URIs are skipped.
func buildAliasIndex(rows []db.SkillRow) (map[string]string, []string) {
	aliasToURI := make(map[string]string)
	var aliases []string

	for _, row := range rows {
		uri := strings.TrimSpace(row.ConceptURI)
		if !types.IsSkillURI(uri) {
			continue
		}

		candidates := make([]string, 0, 4)
		if preferred := strings.TrimSpace(row.PreferredLabel); preferred != "" {
			candidates = append(candidates, preferred)
		}
		candidates = append(candidates, SplitAltLabels(row.AltLabels)...)

		for _, alias := range candidates {
			key := strings.ToLower(alias)
			if key == "" {
				continue
			}
			if _, exists := aliasToURI[key]; exists {
				continue
			}
			aliasToURI[key] = uri
			aliases = append(aliases, alias)
		}
	}
	return aliasToURI, aliases
}
