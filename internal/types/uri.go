package types

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	skillURIRe      = regexp.MustCompile(`^https?://data\.europa\.eu/esco/skill/([0-9a-fA-F-]{36})$`)
	occupationURIRe = regexp.MustCompile(`^https?://data\.europa\.eu/esco/occupation/([0-9a-fA-F-]{36})$`)
)

// IsSkillURI reports whether s is a well-formed canonical ESCO skill URI.
// The trailing segment must parse as a UUID, not merely look like one.
func IsSkillURI(s string) bool {
	m := skillURIRe.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	_, err := uuid.Parse(m[1])
	return err == nil
}

// IsOccupationURI reports whether s is a well-formed canonical ESCO occupation URI.
func IsOccupationURI(s string) bool {
	m := occupationURIRe.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	_, err := uuid.Parse(m[1])
	return err == nil
}

// LooksLikeSkillURI is a cheap prefix check used to split request keys into
// explicit URIs versus free-text labels before any validation happens.
func LooksLikeSkillURI(s string) bool {
	return strings.HasPrefix(s, "http://data.europa.eu/esco/skill/") ||
		strings.HasPrefix(s, "https://data.europa.eu/esco/skill/")
}
