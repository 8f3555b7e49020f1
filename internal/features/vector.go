// Package features converts weighted skill maps into the fixed-length numeric
// vectors the classifier was trained on.
package features

// Build returns a vector of length len(skillIndex) with every position
// defaulting to 0. Each (uri, weight) pair present in both maps sets its
// position to the max of the current value and the weight, so contribution
// order never matters. URIs absent from the index are ignored.
func Build(skillIndex map[string]int, weights map[string]float64) []float64 {
	vector := make([]float64, len(skillIndex))
	for uri, weight := range weights {
		i, ok := skillIndex[uri]
		if !ok {
			continue
		}
		if weight > vector[i] {
			vector[i] = weight
		}
	}
	return vector
}

// MergeWeight folds one (uri, weight) contribution into dst, keeping the max
// weight per URI rather than summing repeated contributions.
func MergeWeight(dst map[string]float64, uri string, weight float64) {
	if weight > dst[uri] {
		dst[uri] = weight
	}
}

// CountMatched returns how many URIs in weights map into the skill index,
// i.e. how many inputs actually reached the feature space.
func CountMatched(skillIndex map[string]int, weights map[string]float64) int {
	n := 0
	for uri := range weights {
		if _, ok := skillIndex[uri]; ok {
			n++
		}
	}
	return n
}
