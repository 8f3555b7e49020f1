package recommend

import (
	"strings"

	"github.com/jonathan/major-advisor/internal/assets"
	"github.com/jonathan/major-advisor/internal/features"
	"github.com/jonathan/major-advisor/internal/resolve"
	"github.com/jonathan/major-advisor/internal/types"
)

// Input is one normalized pipeline request: free-text labels with weights,
// explicit skill URIs with weights, and result bounds.
type Input struct {
	Labels    []types.WeightedSkill
	URIs      map[string]float64
	Threshold int
	TopJobs   int
	TopMajors int
}

// Result carries the full pipeline output, including the resolution
// diagnostics for the response.
type Result struct {
	Resolved          []types.ResolvedSkill
	MatchedSkillCount int
	Jobs              []types.RankedJob
	Majors            []types.RankedMajor
}

// Run executes the single-pass pipeline against an immutable snapshot. It is
// a pure function of the snapshot and the input; no state survives the call.
func Run(snap *assets.Snapshot, in Input) (*Result, error) {
	// Zero is a valid (accept-everything) threshold; only a negative value
	// means "use the default".
	threshold := in.Threshold
	if threshold < 0 {
		threshold = resolve.DefaultThreshold
	}

	resolver := resolve.New(snap.Aliases, snap.AliasToURI)
	resolved := resolver.Resolve(in.Labels, threshold)

	// Max weight per distinct input text; the resolver returns at most one
	// match per text.
	inputWeights := make(map[string]float64, len(in.Labels))
	for _, l := range in.Labels {
		text := strings.TrimSpace(l.Key)
		if text == "" {
			continue
		}
		if l.Weight > inputWeights[text] {
			inputWeights[text] = l.Weight
		}
	}

	weights := make(map[string]float64)
	for _, r := range resolved {
		features.MergeWeight(weights, r.ConceptURI, inputWeights[r.Input])
	}
	// Explicit URIs take precedence over resolved labels.
	for uri, w := range in.URIs {
		weights[uri] = w
	}

	matched := features.CountMatched(snap.SkillIndex, weights)
	if matched == 0 {
		return nil, &ErrNoMatchedSkills{Resolved: resolved}
	}

	jobs, err := Jobs(snap, weights, in.TopJobs)
	if err != nil {
		return nil, err
	}
	majors := Majors(snap, jobs, in.TopMajors)

	return &Result{
		Resolved:          resolved,
		MatchedSkillCount: matched,
		Jobs:              jobs,
		Majors:            majors,
	}, nil
}
