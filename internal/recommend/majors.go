package recommend

import (
	"math"
	"sort"

	"github.com/jonathan/major-advisor/internal/assets"
	"github.com/jonathan/major-advisor/internal/types"
)

// Majors aggregates ranked occupations into up to topMajors majors. Each
// occupation contributes score/sqrt(max(1, degree(major))) to every major
// linked to it: square-root degree normalization keeps broad majors from
// dominating purely by breadth while penalizing them softer than linearly.
// Majors with no contribution are omitted entirely.
func Majors(snap *assets.Snapshot, jobs []types.RankedJob, topMajors int) []types.RankedMajor {
	scores := make(map[string]float64)
	supported := make(map[string]map[string]struct{})

	for _, job := range jobs {
		for _, major := range snap.OccupationMajors[job.URI] {
			degree := snap.MajorDegree[major]
			if degree < 1 {
				degree = 1
			}
			scores[major] += job.Score / math.Sqrt(float64(degree))
			if supported[major] == nil {
				supported[major] = make(map[string]struct{})
			}
			supported[major][job.URI] = struct{}{}
		}
	}

	ranked := make([]types.RankedMajor, 0, len(scores))
	for major, score := range scores {
		ranked = append(ranked, types.RankedMajor{
			Name:          major,
			Score:         score,
			SupportedJobs: len(supported[major]),
		})
	}
	sort.Slice(ranked, func(a, b int) bool {
		if ranked[a].Score != ranked[b].Score {
			return ranked[a].Score > ranked[b].Score
		}
		return ranked[a].Name < ranked[b].Name
	})

	if topMajors < 1 {
		topMajors = 1
	}
	if len(ranked) > topMajors {
		ranked = ranked[:topMajors]
	}
	return ranked
}
