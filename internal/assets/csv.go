package assets

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/major-advisor/internal/db"
)

// CSV file names inside the fallback directory, mirroring the three
// primary-store views.
const (
	skillsCSV      = "skills.csv"
	occupationsCSV = "occupations.csv"
	majorMapCSV    = "major_occupation_map.csv"
)

type csvSource struct {
	dir string
}

// NewCSVSource creates a Source reading the bundled flat-file dataset from
// dir.
func NewCSVSource(dir string) Source {
	return &csvSource{dir: dir}
}

func (s *csvSource) Name() string { return "csv:" + s.dir }

func (s *csvSource) Skills(ctx context.Context) ([]db.SkillRow, error) {
	records, err := s.read(skillsCSV)
	if err != nil {
		return nil, err
	}
	rows := make([]db.SkillRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, db.SkillRow{
			ConceptURI:     rec["conceptUri"],
			PreferredLabel: rec["preferredLabel"],
			AltLabels:      rec["altLabels"],
		})
	}
	return rows, nil
}

func (s *csvSource) Occupations(ctx context.Context) ([]db.OccupationRow, error) {
	records, err := s.read(occupationsCSV)
	if err != nil {
		return nil, err
	}
	rows := make([]db.OccupationRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, db.OccupationRow{
			ConceptURI:     rec["conceptUri"],
			PreferredLabel: rec["preferredLabel"],
		})
	}
	return rows, nil
}

func (s *csvSource) MajorEdges(ctx context.Context) ([]db.MajorEdgeRow, error) {
	records, err := s.read(majorMapCSV)
	if err != nil {
		return nil, err
	}
	rows := make([]db.MajorEdgeRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, db.MajorEdgeRow{
			MajorName:     rec["major"],
			OccupationURI: rec["occupationUri"],
		})
	}
	return rows, nil
}

// read parses one CSV file into header-keyed records.
func (s *csvSource) read(name string) ([]map[string]string, error) {
	path := filepath.Join(s.dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fallback dataset %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse fallback dataset %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
