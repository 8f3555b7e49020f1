package recommend

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/major-advisor/internal/types"
)

func TestRun_FullPipeline(t *testing.T) {
	snap := testSnapshot(&stubModel{
		classes: []string{occO1, occO2},
		probs:   []float64{0.3, 0.7},
	})

	result, err := Run(snap, Input{
		Labels: []types.WeightedSkill{
			{Key: "python", Weight: 3},
			{Key: "SQL", Weight: 4},
		},
		TopJobs:   10,
		TopMajors: 10,
	})
	require.NoError(t, err)

	assert.Len(t, result.Resolved, 2)
	assert.Equal(t, 2, result.MatchedSkillCount)
	require.Len(t, result.Jobs, 2)
	assert.Equal(t, occO2, result.Jobs[0].URI)
	// Computer Science: (0.3+0.7)/sqrt(2) ≈ 0.707 beats Statistics's 0.7.
	require.Len(t, result.Majors, 2)
	assert.Equal(t, "Computer Science", result.Majors[0].Name)
	assert.Equal(t, 2, result.Majors[0].SupportedJobs)
}

func TestRun_MaxMergesDuplicateInputs(t *testing.T) {
	snap := testSnapshot(&stubModel{
		classes: []string{occO1},
		probs:   []float64{1.0},
	})

	// "python" and "py" both resolve to the same skill with weights 3 and
	// 5; the merged weight is 5, not 8.
	var captured []float64
	snap.Model = &captureModel{inner: snap.Model, vector: &captured}

	_, err := Run(snap, Input{
		Labels: []types.WeightedSkill{
			{Key: "python", Weight: 3},
			{Key: "py", Weight: 5},
		},
		TopJobs:   1,
		TopMajors: 1,
	})
	require.NoError(t, err)
	require.Len(t, captured, 2)
	assert.Equal(t, 5.0, captured[0])
}

func TestRun_ExplicitURIsTakePrecedence(t *testing.T) {
	snap := testSnapshot(&stubModel{
		classes: []string{occO1},
		probs:   []float64{1.0},
	})

	var captured []float64
	snap.Model = &captureModel{inner: snap.Model, vector: &captured}

	_, err := Run(snap, Input{
		Labels:    []types.WeightedSkill{{Key: "python", Weight: 5}},
		URIs:      map[string]float64{skillS1: 2},
		TopJobs:   1,
		TopMajors: 1,
	})
	require.NoError(t, err)
	require.Len(t, captured, 2)
	assert.Equal(t, 2.0, captured[0])
}

func TestRun_ZeroThresholdAcceptsWeakMatches(t *testing.T) {
	snap := testSnapshot(&stubModel{
		classes: []string{occO1},
		probs:   []float64{1.0},
	})

	in := Input{
		Labels:    []types.WeightedSkill{{Key: "pythno", Weight: 1}},
		TopJobs:   1,
		TopMajors: 1,
	}

	// "pythno" scores ~66 against "python", below the default threshold;
	// a negative threshold means "use the default" and nothing matches.
	in.Threshold = -1
	_, err := Run(snap, in)
	var noMatch *ErrNoMatchedSkills
	require.True(t, errors.As(err, &noMatch))

	// An explicit zero threshold is honored, not replaced by the default.
	in.Threshold = 0
	result, err := Run(snap, in)
	require.NoError(t, err)
	assert.Equal(t, 1, result.MatchedSkillCount)
}

func TestRun_NoMatchCarriesDiagnostics(t *testing.T) {
	snap := testSnapshot(&stubModel{
		classes: []string{occO1},
		probs:   []float64{1.0},
	})

	_, err := Run(snap, Input{
		Labels:    []types.WeightedSkill{{Key: "underwater basket weaving", Weight: 1}},
		TopJobs:   5,
		TopMajors: 5,
	})

	var noMatch *ErrNoMatchedSkills
	require.True(t, errors.As(err, &noMatch))
	assert.Empty(t, noMatch.Resolved)
}

func TestRun_UnknownURIsDoNotCount(t *testing.T) {
	snap := testSnapshot(&stubModel{
		classes: []string{occO1},
		probs:   []float64{1.0},
	})

	_, err := Run(snap, Input{
		URIs:      map[string]float64{"http://data.europa.eu/esco/skill/99999999-9999-9999-9999-999999999999": 3},
		TopJobs:   5,
		TopMajors: 5,
	})

	var noMatch *ErrNoMatchedSkills
	require.True(t, errors.As(err, &noMatch))
}

// captureModel records the feature vector passed to the wrapped model.
type captureModel struct {
	inner  interface {
		Classes() []string
		PredictProba([]float64) ([]float64, error)
	}
	vector *[]float64
}

func (m *captureModel) Classes() []string { return m.inner.Classes() }

func (m *captureModel) PredictProba(v []float64) ([]float64, error) {
	*m.vector = v
	return m.inner.PredictProba(v)
}
