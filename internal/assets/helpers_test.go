package assets

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/major-advisor/internal/db"
)

const (
	skillX = "http://data.europa.eu/esco/skill/11111111-1111-1111-1111-111111111111"
	skillY = "http://data.europa.eu/esco/skill/22222222-2222-2222-2222-222222222222"

	occA = "http://data.europa.eu/esco/occupation/aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	occB = "http://data.europa.eu/esco/occupation/bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
)

// stubSource serves canned rows for loader tests.
type stubSource struct {
	name      string
	skills    []db.SkillRow
	skillsErr error
	occs      []db.OccupationRow
	occsErr   error
	edges     []db.MajorEdgeRow
	edgesErr  error
}

func (s *stubSource) Name() string {
	if s.name == "" {
		return "stub"
	}
	return s.name
}

func (s *stubSource) Skills(context.Context) ([]db.SkillRow, error) {
	return s.skills, s.skillsErr
}

func (s *stubSource) Occupations(context.Context) ([]db.OccupationRow, error) {
	return s.occs, s.occsErr
}

func (s *stubSource) MajorEdges(context.Context) ([]db.MajorEdgeRow, error) {
	return s.edges, s.edgesErr
}

// fullSource returns a stub source with a complete, valid dataset.
func fullSource() *stubSource {
	return &stubSource{
		skills: []db.SkillRow{
			{ConceptURI: skillX, PreferredLabel: "python", AltLabels: "py"},
			{ConceptURI: skillY, PreferredLabel: "sql"},
		},
		occs: []db.OccupationRow{
			{ConceptURI: occA, PreferredLabel: "Software developer"},
		},
		edges: []db.MajorEdgeRow{
			{MajorName: "Computer Science", OccupationURI: occA},
			{MajorName: "Computer Science", OccupationURI: occB},
			{MajorName: "Statistics", OccupationURI: occB},
		},
	}
}

// writeModelArtifact writes a small valid model artifact and returns its
// path.
func writeModelArtifact(t *testing.T) string {
	t.Helper()
	artifact := `{
		"classes": ["` + occA + `", "` + occB + `"],
		"skill_index": ["` + skillX + `", "` + skillY + `"],
		"coefficients": [[1.0, 0.0], [0.0, 1.0]],
		"intercepts": [0.0, 0.0]
	}`
	path := filepath.Join(t.TempDir(), "job_model.json")
	require.NoError(t, os.WriteFile(path, []byte(artifact), 0o644))
	return path
}
