// Package recommend runs the core pipeline: resolve free-text skills, build
// the feature vector, score occupations and aggregate majors.
package recommend

import (
	"sort"

	"github.com/jonathan/major-advisor/internal/assets"
	"github.com/jonathan/major-advisor/internal/classifier"
	"github.com/jonathan/major-advisor/internal/features"
	"github.com/jonathan/major-advisor/internal/types"
)

// Jobs scores the weighted skill map against the classifier and returns up to
// topJobs occupations sorted by descending probability. Ties keep the
// classifier's internal class order. Classes with malformed occupation URIs
// are dropped after ranking, so fewer than topJobs results are possible.
func Jobs(snap *assets.Snapshot, weights map[string]float64, topJobs int) ([]types.RankedJob, error) {
	classes := snap.Model.Classes()
	if len(classes) == 0 {
		return nil, classifier.ErrNoClasses
	}

	vector := features.Build(snap.SkillIndex, weights)
	probs, err := snap.Model.PredictProba(vector)
	if err != nil {
		return nil, err
	}

	order := make([]int, len(probs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return probs[order[a]] > probs[order[b]]
	})

	if topJobs < 1 {
		topJobs = 1
	}
	k := topJobs
	if k > len(classes) {
		k = len(classes)
	}

	jobs := make([]types.RankedJob, 0, k)
	for _, i := range order[:k] {
		uri := classes[i]
		if !types.IsOccupationURI(uri) {
			continue
		}
		label, ok := snap.OccupationLabels[uri]
		if !ok {
			label = uri
		}
		jobs = append(jobs, types.RankedJob{URI: uri, Label: label, Score: probs[i]})
	}
	return jobs, nil
}
