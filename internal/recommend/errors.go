package recommend

import (
	"github.com/jonathan/major-advisor/internal/types"
)

// ErrNoMatchedSkills indicates no input reached the feature space. It carries
// the resolution diagnostics so callers can still surface "did you mean"
// suggestions; it is a client error, never an internal one.
type ErrNoMatchedSkills struct {
	Resolved []types.ResolvedSkill
}

func (e *ErrNoMatchedSkills) Error() string {
	return "no input skills matched the feature space"
}
