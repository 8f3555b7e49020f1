// Package classifier provides the pluggable occupation-scoring port and a
// native implementation backed by a JSON model artifact exported at training
// time.
package classifier

// Model is the narrow interface the pipeline depends on. Classes returns the
// output-class identifiers in the classifier's internal order; PredictProba
// returns one probability per class for a single feature vector.
type Model interface {
	Classes() []string
	PredictProba(vector []float64) ([]float64, error)
}
