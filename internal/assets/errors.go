package assets

import (
	"errors"
	"fmt"
)

// ErrNotReady indicates no snapshot has been loaded yet; requests arriving
// before the first successful load must be rejected, not served partially.
var ErrNotReady = errors.New("assets: snapshot not loaded")

// ErrEmptyAliasIndex indicates no skill aliases survived loading.
var ErrEmptyAliasIndex = errors.New("assets: skill alias index is empty")

// ErrEmptySkillIndex indicates the classifier artifact exposes no feature axis.
var ErrEmptySkillIndex = errors.New("assets: skill index is empty; cannot run inference")

// ErrEmptyMajorMap indicates the major↔occupation mapping is empty after
// exhausting every source.
var ErrEmptyMajorMap = errors.New("assets: major↔occupation mapping is empty in primary store and fallback")

// ErrStrictFallback indicates strict mode refused the bundled fallback
// dataset when the primary store yielded nothing.
type ErrStrictFallback struct {
	View string
}

func (e *ErrStrictFallback) Error() string {
	return fmt.Sprintf("assets: strict mode is enabled: refusing to fall back to the bundled %s dataset; populate the primary store", e.View)
}
