// Package assets builds and holds the immutable in-memory snapshot the
// recommendation pipeline reads: alias index, skill feature axis, occupation
// labels, the major↔occupation graph and the classifier model.
package assets

import (
	"github.com/jonathan/major-advisor/internal/classifier"
)

// Snapshot is the fully built asset set. It is constructed once per load and
// never mutated afterwards, so it may be read concurrently without locking.
type Snapshot struct {
	Model classifier.Model

	// SkillIndex maps skill URI to its feature-vector position, exactly as
	// the classifier was trained.
	SkillIndex map[string]int

	// AliasToURI maps lowercased alias to skill URI; Aliases keeps the
	// display form of every registered alias in registration order.
	AliasToURI map[string]string
	Aliases    []string

	// OccupationLabels maps occupation URI to its preferred label.
	OccupationLabels map[string]string

	// OccupationMajors maps occupation URI to the majors linked to it.
	// MajorDegree counts distinct occupations per major; it is fixed at
	// build time and never recomputed at request time.
	OccupationMajors map[string][]string
	MajorDegree      map[string]int
}
