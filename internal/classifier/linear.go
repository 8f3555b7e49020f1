package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// artifact is the on-disk JSON layout of an exported linear model: one weight
// row and one intercept per output class, plus the trained skill axis.
type artifact struct {
	Classes      []string    `json:"classes"`
	SkillIndex   []string    `json:"skill_index"`
	Coefficients [][]float64 `json:"coefficients"`
	Intercepts   []float64   `json:"intercepts"`
}

// LinearModel evaluates a multinomial logistic model: a linear score per
// class followed by a softmax. It is immutable after load and safe for
// concurrent use.
type LinearModel struct {
	classes      []string
	skillIndex   map[string]int
	coefficients [][]float64
	intercepts   []float64
}

// LoadLinearModel reads and validates a model artifact from path.
func LoadLinearModel(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact %s: %w", path, err)
	}

	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact %s: %w", path, err)
	}

	return NewLinearModel(art.Classes, art.SkillIndex, art.Coefficients, art.Intercepts)
}

// NewLinearModel builds a model from already-decoded artifact parts.
func NewLinearModel(classes, skillAxis []string, coefficients [][]float64, intercepts []float64) (*LinearModel, error) {
	if len(classes) == 0 {
		return nil, ErrNoClasses
	}
	if len(coefficients) != len(classes) {
		return nil, fmt.Errorf("classifier: %d coefficient rows for %d classes", len(coefficients), len(classes))
	}
	if len(intercepts) != len(classes) {
		return nil, fmt.Errorf("classifier: %d intercepts for %d classes", len(intercepts), len(classes))
	}

	dim := -1
	for i, row := range coefficients {
		if dim == -1 {
			dim = len(row)
		} else if len(row) != dim {
			return nil, fmt.Errorf("classifier: coefficient row %d has %d features, want %d", i, len(row), dim)
		}
	}
	if len(skillAxis) > 0 && dim != len(skillAxis) {
		return nil, fmt.Errorf("classifier: skill axis has %d entries but coefficient rows have %d", len(skillAxis), dim)
	}

	// A duplicate axis entry would shrink the index below the coefficient
	// width and make every prediction fail; reject the artifact at load.
	index := make(map[string]int, len(skillAxis))
	for i, uri := range skillAxis {
		if _, seen := index[uri]; seen {
			return nil, fmt.Errorf("classifier: duplicate skill axis entry %s", uri)
		}
		index[uri] = i
	}

	return &LinearModel{
		classes:      classes,
		skillIndex:   index,
		coefficients: coefficients,
		intercepts:   intercepts,
	}, nil
}

// Classes returns the output-class identifiers in training order.
func (m *LinearModel) Classes() []string {
	return m.classes
}

// SkillIndex returns the trained feature-axis positions keyed by skill URI.
func (m *LinearModel) SkillIndex() map[string]int {
	return m.skillIndex
}

// PredictProba computes softmax(Wx + b) for a single feature vector.
func (m *LinearModel) PredictProba(vector []float64) ([]float64, error) {
	dim := len(m.coefficients[0])
	if len(vector) != dim {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(vector), dim)
	}

	scores := make([]float64, len(m.classes))
	maxScore := math.Inf(-1)
	for c, row := range m.coefficients {
		s := m.intercepts[c]
		for i, w := range row {
			if vector[i] != 0 {
				s += w * vector[i]
			}
		}
		scores[c] = s
		if s > maxScore {
			maxScore = s
		}
	}

	// Shift by the max score before exponentiating to keep softmax stable.
	var sum float64
	probs := make([]float64, len(scores))
	for c, s := range scores {
		p := math.Exp(s - maxScore)
		probs[c] = p
		sum += p
	}
	for c := range probs {
		probs[c] /= sum
	}
	return probs, nil
}
