package recommend

import (
	"strings"

	"github.com/jonathan/major-advisor/internal/types"
)

// WeightPolicy converts the two legacy request shapes into canonical weights.
// The exact formula is operator policy, not a pipeline invariant: one caller
// generation sent proficiency levels, another repeated keys as a weight hack.
type WeightPolicy struct {
	// LevelOffset is added to a 0-based proficiency level, so level 0 still
	// carries a positive weight.
	LevelOffset float64
	// MaxWeight caps any derived weight; it bounds the legacy
	// repetition-count scheme in particular.
	MaxWeight float64
}

// DefaultWeightPolicy mirrors the historical behavior: weight = level + 1,
// repetition counts clamped to 6.
func DefaultWeightPolicy() WeightPolicy {
	return WeightPolicy{LevelOffset: 1, MaxWeight: 6}
}

// SkillLevel is the v2 request shape: a skill key with a proficiency level.
type SkillLevel struct {
	Key   string
	Level int
}

// FromLevels derives weights from explicit proficiency levels, max-merging
// duplicate keys.
func (p WeightPolicy) FromLevels(skills []SkillLevel) map[string]float64 {
	weights := make(map[string]float64, len(skills))
	for _, s := range skills {
		key := strings.TrimSpace(s.Key)
		if key == "" {
			continue
		}
		w := float64(s.Level) + p.LevelOffset
		if p.MaxWeight > 0 && w > p.MaxWeight {
			w = p.MaxWeight
		}
		if w > weights[key] {
			weights[key] = w
		}
	}
	return weights
}

// FromKeys derives weights from the legacy shape where a key's repetition
// count is its weight, clamped to MaxWeight to stop runaway duplicates.
func (p WeightPolicy) FromKeys(keys []string) map[string]float64 {
	weights := make(map[string]float64, len(keys))
	for _, raw := range keys {
		key := strings.TrimSpace(raw)
		if key == "" {
			continue
		}
		weights[key]++
	}
	if p.MaxWeight > 0 {
		for key, w := range weights {
			if w > p.MaxWeight {
				weights[key] = p.MaxWeight
			}
		}
	}
	return weights
}

// SplitKeys partitions a weighted key map into explicit skill URIs and
// free-text labels for the resolver.
func SplitKeys(weights map[string]float64) (map[string]float64, []types.WeightedSkill) {
	uris := make(map[string]float64)
	var labels []types.WeightedSkill
	for key, w := range weights {
		if types.LooksLikeSkillURI(key) {
			if w > uris[key] {
				uris[key] = w
			}
		} else {
			labels = append(labels, types.WeightedSkill{Key: key, Weight: w})
		}
	}
	return uris, labels
}
