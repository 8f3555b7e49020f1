package recommend

import (
	"github.com/jonathan/major-advisor/internal/assets"
)

const (
	skillS1 = "http://data.europa.eu/esco/skill/11111111-1111-1111-1111-111111111111"
	skillS2 = "http://data.europa.eu/esco/skill/22222222-2222-2222-2222-222222222222"

	occO1 = "http://data.europa.eu/esco/occupation/aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	occO2 = "http://data.europa.eu/esco/occupation/bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
	occO3 = "http://data.europa.eu/esco/occupation/cccccccc-cccc-cccc-cccc-cccccccccccc"
)

// stubModel returns canned probabilities regardless of the input vector.
type stubModel struct {
	classes []string
	probs   []float64
	err     error
}

func (m *stubModel) Classes() []string { return m.classes }

func (m *stubModel) PredictProba(_ []float64) ([]float64, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.probs, nil
}

func testSnapshot(model *stubModel) *assets.Snapshot {
	return &assets.Snapshot{
		Model:      model,
		SkillIndex: map[string]int{skillS1: 0, skillS2: 1},
		AliasToURI: map[string]string{
			"python": skillS1,
			"py":     skillS1,
			"sql":    skillS2,
		},
		Aliases: []string{"python", "py", "sql"},
		OccupationLabels: map[string]string{
			occO1: "Software developer",
			occO2: "Data analyst",
		},
		OccupationMajors: map[string][]string{
			occO1: {"Computer Science"},
			occO2: {"Computer Science", "Statistics"},
		},
		MajorDegree: map[string]int{
			"Computer Science": 2,
			"Statistics":       1,
		},
	}
}
