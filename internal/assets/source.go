package assets

import (
	"context"

	"github.com/jonathan/major-advisor/internal/db"
)

// Source exposes the three reference views the loader reads. The primary
// source is the structured store; the fallback is the bundled CSV dataset.
type Source interface {
	Name() string
	Skills(ctx context.Context) ([]db.SkillRow, error)
	Occupations(ctx context.Context) ([]db.OccupationRow, error)
	MajorEdges(ctx context.Context) ([]db.MajorEdgeRow, error)
}

type dbSource struct {
	db *db.DB
}

// NewDBSource adapts a database handle into a loader Source.
func NewDBSource(database *db.DB) Source {
	return &dbSource{db: database}
}

func (s *dbSource) Name() string { return "postgres" }

func (s *dbSource) Skills(ctx context.Context) ([]db.SkillRow, error) {
	return s.db.ListSkills(ctx)
}

func (s *dbSource) Occupations(ctx context.Context) ([]db.OccupationRow, error) {
	return s.db.ListOccupations(ctx)
}

func (s *dbSource) MajorEdges(ctx context.Context) ([]db.MajorEdgeRow, error) {
	return s.db.ListMajorOccupations(ctx)
}
