// Package db provides PostgreSQL access to the skill, occupation and major
// reference views the asset loader reads at startup.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// ListSkills retrieves every skill record: canonical URI, preferred label and
// the raw delimited alternate-label string.
func (db *DB) ListSkills(ctx context.Context) ([]SkillRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT concept_uri, preferred_label, COALESCE(alt_labels, '')
		 FROM esco_skills`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []SkillRow
	for rows.Next() {
		var s SkillRow
		if err := rows.Scan(&s.ConceptURI, &s.PreferredLabel, &s.AltLabels); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// ListOccupations retrieves every occupation record: canonical URI and
// preferred label.
func (db *DB) ListOccupations(ctx context.Context) ([]OccupationRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT concept_uri, preferred_label FROM esco_occupations`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list occupations: %w", err)
	}
	defer rows.Close()

	var occupations []OccupationRow
	for rows.Next() {
		var o OccupationRow
		if err := rows.Scan(&o.ConceptURI, &o.PreferredLabel); err != nil {
			return nil, fmt.Errorf("failed to scan occupation: %w", err)
		}
		occupations = append(occupations, o)
	}
	return occupations, rows.Err()
}

// ListMajorOccupations retrieves the major↔occupation bipartite edges.
func (db *DB) ListMajorOccupations(ctx context.Context) ([]MajorEdgeRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT m.major_name, mm.occupation_uri
		 FROM major_occupation_map mm
		 JOIN majors m ON m.id = mm.major_id
		 WHERE mm.occupation_uri IS NOT NULL`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list major occupations: %w", err)
	}
	defer rows.Close()

	var edges []MajorEdgeRow
	for rows.Next() {
		var e MajorEdgeRow
		if err := rows.Scan(&e.MajorName, &e.OccupationURI); err != nil {
			return nil, fmt.Errorf("failed to scan major occupation: %w", err)
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}
