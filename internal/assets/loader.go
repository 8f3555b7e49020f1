package assets

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/major-advisor/internal/classifier"
	"github.com/jonathan/major-advisor/internal/types"
)

// Loader builds a Snapshot from the classifier artifact and the reference
// views. The primary source is queried first; when it yields nothing the
// fallback is used, unless strict mode is on, in which case the load fails
// rather than silently serving stale bundled data.
type Loader struct {
	ModelPath string
	Primary   Source
	Fallback  Source
	Strict    bool
	Logger    *zap.Logger
}

// Load builds a complete snapshot. Any error it returns is fatal: the
// process must not become ready on a partial asset set.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	log := l.Logger
	if log == nil {
		log = zap.NewNop()
	}

	model, err := classifier.LoadLinearModel(l.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load model artifact: %w", err)
	}
	skillIndex := model.SkillIndex()
	if len(skillIndex) == 0 {
		return nil, ErrEmptySkillIndex
	}

	skillRows, err := loadRows(ctx, l, log, "skills", Source.Skills)
	if err != nil {
		return nil, err
	}
	aliasToURI, aliases := buildAliasIndex(skillRows)
	if len(aliases) == 0 {
		return nil, ErrEmptyAliasIndex
	}

	occRows, err := loadRows(ctx, l, log, "occupations", Source.Occupations)
	if err != nil {
		return nil, err
	}
	occLabels := make(map[string]string, len(occRows))
	for _, row := range occRows {
		uri := strings.TrimSpace(row.ConceptURI)
		if !types.IsOccupationURI(uri) {
			continue
		}
		if label := strings.TrimSpace(row.PreferredLabel); label != "" {
			occLabels[uri] = label
		}
	}

	edgeRows, err := loadRows(ctx, l, log, "major↔occupation mapping", Source.MajorEdges)
	if err != nil {
		return nil, err
	}
	occMajors := make(map[string][]string)
	majorOccs := make(map[string]map[string]struct{})
	for _, row := range edgeRows {
		major := strings.TrimSpace(row.MajorName)
		uri := strings.TrimSpace(row.OccupationURI)
		if major == "" || !types.IsOccupationURI(uri) {
			continue
		}
		occMajors[uri] = append(occMajors[uri], major)
		if majorOccs[major] == nil {
			majorOccs[major] = make(map[string]struct{})
		}
		majorOccs[major][uri] = struct{}{}
	}
	if len(occMajors) == 0 {
		return nil, ErrEmptyMajorMap
	}

	majorDegree := make(map[string]int, len(majorOccs))
	for major, occs := range majorOccs {
		majorDegree[major] = len(occs)
	}

	log.Info("assets loaded",
		zap.Int("aliases", len(aliases)),
		zap.Int("skill_index", len(skillIndex)),
		zap.Int("occupation_labels", len(occLabels)),
		zap.Int("majors", len(majorDegree)),
		zap.Int("classes", len(model.Classes())),
	)

	return &Snapshot{
		Model:            model,
		SkillIndex:       skillIndex,
		AliasToURI:       aliasToURI,
		Aliases:          aliases,
		OccupationLabels: occLabels,
		OccupationMajors: occMajors,
		MajorDegree:      majorDegree,
	}, nil
}

// loadRows fetches one view with primary-then-fallback precedence. A failing
// or empty primary counts as "yields nothing"; strict mode turns the fallback
// step into a fatal error instead.
func loadRows[T any](ctx context.Context, l *Loader, log *zap.Logger, view string, get func(Source, context.Context) ([]T, error)) ([]T, error) {
	var rows []T
	if l.Primary != nil {
		var err error
		rows, err = get(l.Primary, ctx)
		if err != nil {
			log.Warn("primary source query failed",
				zap.String("view", view),
				zap.String("source", l.Primary.Name()),
				zap.Error(err),
			)
			rows = nil
		}
	}
	if len(rows) > 0 {
		return rows, nil
	}

	if l.Strict {
		return nil, &ErrStrictFallback{View: view}
	}
	if l.Fallback == nil {
		return nil, nil
	}

	rows, err := get(l.Fallback, ctx)
	if err != nil {
		log.Warn("fallback source read failed",
			zap.String("view", view),
			zap.String("source", l.Fallback.Name()),
			zap.Error(err),
		)
		return nil, nil
	}
	log.Info("using fallback dataset",
		zap.String("view", view),
		zap.String("source", l.Fallback.Name()),
		zap.Int("rows", len(rows)),
	)
	return rows, nil
}
