// Package types defines the shared domain types for the recommendation pipeline.
package types

// WeightedSkill is a single raw skill reference with its proficiency weight.
// Key is either a canonical ESCO skill URI or a free-text label.
type WeightedSkill struct {
	Key    string
	Weight float64
}

// ResolvedSkill records how one free-text input mapped onto the alias index.
type ResolvedSkill struct {
	Input        string `json:"input"`
	MatchedLabel string `json:"matchedLabel"`
	ConceptURI   string `json:"conceptUri"`
	Score        int    `json:"score"`
}

// RankedJob is one occupation prediction from the classifier.
type RankedJob struct {
	URI   string  `json:"uri"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// RankedMajor is one aggregated academic-major recommendation.
// SupportedJobs counts the distinct occupations that contributed to the score.
type RankedMajor struct {
	Name          string  `json:"name"`
	Score         float64 `json:"score"`
	SupportedJobs int     `json:"supported_jobs"`
}
