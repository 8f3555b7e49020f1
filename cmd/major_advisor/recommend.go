package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/major-advisor/internal/recommend"
	"github.com/jonathan/major-advisor/internal/types"
)

var (
	recommendSkills    []string
	recommendTopJobs   int
	recommendTopMajors int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Run the pipeline once from the command line",
	Long: `Run the full recommendation pipeline for a set of skills and print the
result as JSON. Each --skill takes either "label" or "label=weight".`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringArrayVar(&recommendSkills, "skill", nil, `Skill input, repeatable ("python" or "python=5")`)
	recommendCmd.Flags().IntVar(&recommendTopJobs, "top-jobs", 50, "Maximum occupations to return")
	recommendCmd.Flags().IntVar(&recommendTopMajors, "top-majors", 10, "Maximum majors to return")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	if len(recommendSkills) == 0 {
		return fmt.Errorf("at least one --skill is required")
	}

	labels := make([]types.WeightedSkill, 0, len(recommendSkills))
	uris := make(map[string]float64)
	for _, raw := range recommendSkills {
		key, weight, err := parseSkillFlag(raw)
		if err != nil {
			return err
		}
		if types.LooksLikeSkillURI(key) {
			uris[key] = weight
		} else {
			labels = append(labels, types.WeightedSkill{Key: key, Weight: weight})
		}
	}

	cfg, _, store, cleanup, err := bootstrap(context.Background())
	if err != nil {
		return err
	}
	defer cleanup()

	snap, err := store.Snapshot()
	if err != nil {
		return err
	}

	result, err := recommend.Run(snap, recommend.Input{
		Labels:    labels,
		URIs:      uris,
		Threshold: cfg.ResolveThreshold,
		TopJobs:   recommendTopJobs,
		TopMajors: recommendTopMajors,
	})
	if err != nil {
		var noMatch *recommend.ErrNoMatchedSkills
		if errors.As(err, &noMatch) {
			fmt.Fprintln(os.Stderr, "no input skills matched the feature space")
			for _, r := range noMatch.Resolved {
				fmt.Fprintf(os.Stderr, "  %q -> %q (score %d)\n", r.Input, r.MatchedLabel, r.Score)
			}
		}
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// parseSkillFlag splits "label=weight" into parts; a bare label gets
// weight 1.
func parseSkillFlag(raw string) (string, float64, error) {
	key, value, found := strings.Cut(raw, "=")
	key = strings.TrimSpace(key)
	if key == "" {
		return "", 0, fmt.Errorf("invalid --skill %q: empty label", raw)
	}
	if !found {
		return key, 1, nil
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || weight <= 0 {
		return "", 0, fmt.Errorf("invalid --skill %q: weight must be a positive number", raw)
	}
	return key, weight, nil
}
