package db

// SkillRow is one row of the skills reference view. AltLabels carries the raw
// delimited alternate-label string exactly as stored.
type SkillRow struct {
	ConceptURI     string
	PreferredLabel string
	AltLabels      string
}

// OccupationRow is one row of the occupations reference view.
type OccupationRow struct {
	ConceptURI     string
	PreferredLabel string
}

// MajorEdgeRow is one major↔occupation bipartite edge.
type MajorEdgeRow struct {
	MajorName     string
	OccupationURI string
}
