package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/major-advisor/internal/recommend"
	"github.com/jonathan/major-advisor/internal/types"
)

// Request bounds, mirroring what callers historically sent.
const (
	maxSkillInputs = 200
	maxTopJobs     = 50
	maxTopMajors   = 10
)

// SkillLabelWeight is one free-text skill with an explicit weight.
type SkillLabelWeight struct {
	Label  string  `json:"label" validate:"required"`
	Weight float64 `json:"weight"`
}

// RecommendRequest is the canonical request body for POST /recommend.
type RecommendRequest struct {
	Skills    []SkillLabelWeight `json:"skills" validate:"dive"`
	SkillURIs map[string]float64 `json:"skill_uris"`
	TopJobs   int                `json:"top_jobs" validate:"gte=0,lte=50"`
	TopMajors int                `json:"top_majors" validate:"gte=0,lte=10"`
}

// RecommendResponse is the response body for POST /recommend.
type RecommendResponse struct {
	Resolved          []types.ResolvedSkill `json:"resolved"`
	MatchedSkillCount int                   `json:"matched_skill_count"`
	Jobs              []types.RankedJob     `json:"jobs"`
	Majors            []types.RankedMajor   `json:"majors"`
}

// noMatchResponse is the 400 body when nothing mapped into the feature
// space. It still carries the resolution diagnostics so callers can suggest
// corrections.
type noMatchResponse struct {
	Error             string                `json:"error"`
	Resolved          []types.ResolvedSkill `json:"resolved"`
	MatchedSkillCount int                   `json:"matched_skill_count"`
	Jobs              []types.RankedJob     `json:"jobs"`
	Majors            []types.RankedMajor   `json:"majors"`
}

// handleRecommend runs the full pipeline: resolve, score, aggregate.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.validateRecommend(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.TopJobs == 0 {
		req.TopJobs = maxTopJobs
	}
	if req.TopMajors == 0 {
		req.TopMajors = maxTopMajors
	}

	labels := make([]types.WeightedSkill, 0, len(req.Skills))
	for _, sk := range req.Skills {
		weight := sk.Weight
		if weight == 0 {
			weight = 1
		}
		labels = append(labels, types.WeightedSkill{Key: sk.Label, Weight: weight})
	}

	s.runPipeline(w, recommend.Input{
		Labels:    labels,
		URIs:      req.SkillURIs,
		Threshold: s.threshold,
		TopJobs:   req.TopJobs,
		TopMajors: req.TopMajors,
	}, false)
}

// RecommendJobsRequest is the compatibility body for POST /recommend/jobs.
// Preferred shape: skills with 0-5 proficiency levels. Legacy shape:
// skill_keys, possibly with duplicates as a weight hack.
type RecommendJobsRequest struct {
	Skills    []SkillKeyLevel `json:"skills" validate:"dive"`
	SkillKeys []string        `json:"skill_keys"`
	TopJobs   int             `json:"top_jobs" validate:"gte=0,lte=50"`
}

// SkillKeyLevel is the preferred compat shape: key plus proficiency level.
type SkillKeyLevel struct {
	SkillKey string `json:"skill_key" validate:"required"`
	Level    int    `json:"level" validate:"gte=0,lte=5"`
}

// JobCompatItem is one result row of the compatibility endpoint.
type JobCompatItem struct {
	JobID  string  `json:"job_id"`
	Title  string  `json:"title"`
	Score  float64 `json:"score"`
	Source string  `json:"source"`
}

// handleRecommendJobs adapts the two legacy request shapes onto the pipeline
// and returns ranked jobs only.
func (s *Server) handleRecommendJobs(w http.ResponseWriter, r *http.Request) {
	var req RecommendJobsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var weights map[string]float64
	if len(req.Skills) > 0 {
		levels := make([]recommend.SkillLevel, 0, len(req.Skills))
		for _, sk := range req.Skills {
			levels = append(levels, recommend.SkillLevel{Key: sk.SkillKey, Level: sk.Level})
		}
		weights = s.policy.FromLevels(levels)
	} else {
		weights = s.policy.FromKeys(req.SkillKeys)
	}

	if len(weights) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "skills (preferred) or skill_keys (legacy) is required")
		return
	}
	if len(weights) > maxSkillInputs {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("skills/skill_keys exceeds max of %d", maxSkillInputs))
		return
	}

	if req.TopJobs == 0 {
		req.TopJobs = maxTopJobs
	}

	uris, labels := recommend.SplitKeys(weights)
	s.runPipeline(w, recommend.Input{
		Labels:    labels,
		URIs:      uris,
		Threshold: s.threshold,
		TopJobs:   req.TopJobs,
		TopMajors: 1,
	}, true)
}

// runPipeline executes the pipeline against the current snapshot and writes
// the response for either endpoint flavor.
func (s *Server) runPipeline(w http.ResponseWriter, in recommend.Input, jobsOnly bool) {
	snap, err := s.store.Snapshot()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "assets not loaded")
		return
	}

	result, err := recommend.Run(snap, in)
	if err != nil {
		var noMatch *recommend.ErrNoMatchedSkills
		if errors.As(err, &noMatch) {
			resolved := noMatch.Resolved
			if resolved == nil {
				resolved = []types.ResolvedSkill{}
			}
			s.jsonResponse(w, http.StatusBadRequest, noMatchResponse{
				Error:             "matched_skill_count == 0",
				Resolved:          resolved,
				MatchedSkillCount: 0,
				Jobs:              []types.RankedJob{},
				Majors:            []types.RankedMajor{},
			})
			return
		}
		s.log.Error("pipeline failed", zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if jobsOnly {
		items := make([]JobCompatItem, 0, len(result.Jobs))
		for _, j := range result.Jobs {
			items = append(items, JobCompatItem{JobID: j.URI, Title: j.Label, Score: j.Score, Source: "ml"})
		}
		s.jsonResponse(w, http.StatusOK, items)
		return
	}

	resp := RecommendResponse{
		Resolved:          result.Resolved,
		MatchedSkillCount: result.MatchedSkillCount,
		Jobs:              result.Jobs,
		Majors:            result.Majors,
	}
	if resp.Resolved == nil {
		resp.Resolved = []types.ResolvedSkill{}
	}
	if resp.Jobs == nil {
		resp.Jobs = []types.RankedJob{}
	}
	if resp.Majors == nil {
		resp.Majors = []types.RankedMajor{}
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// validateRecommend applies struct tags plus the bounds that depend on
// runtime policy (weights must be positive and at most the configured cap).
func (s *Server) validateRecommend(req *RecommendRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}
	if len(req.Skills)+len(req.SkillURIs) == 0 {
		return &ErrValidation{Field: "skills", Message: "skills or skill_uris is required"}
	}
	if len(req.Skills)+len(req.SkillURIs) > maxSkillInputs {
		return &ErrValidation{Field: "skills", Message: fmt.Sprintf("exceeds max of %d inputs", maxSkillInputs)}
	}
	for _, sk := range req.Skills {
		if err := s.checkWeight(sk.Weight); err != nil {
			return err
		}
	}
	for uri, w := range req.SkillURIs {
		if err := s.checkWeight(w); err != nil {
			return err
		}
		if w <= 0 {
			return &ErrValidation{Field: "skill_uris", Message: "weight for " + uri + " must be positive"}
		}
	}
	return nil
}

func (s *Server) checkWeight(w float64) error {
	if w < 0 {
		return &ErrValidation{Field: "weight", Message: "must not be negative"}
	}
	if max := s.policy.MaxWeight; max > 0 && w > max {
		return &ErrValidation{Field: "weight", Message: fmt.Sprintf("must be at most %g", max)}
	}
	return nil
}
