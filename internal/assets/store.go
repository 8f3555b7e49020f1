package assets

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Store holds the current snapshot behind an atomic pointer. The snapshot is
// replaced wholesale on reload; readers always see either the previous
// complete snapshot or the new one, never a partial build.
type Store struct {
	loader *Loader
	snap   atomic.Pointer[Snapshot]
	group  singleflight.Group
}

// NewStore creates a Store that builds snapshots with loader.
func NewStore(loader *Loader) *Store {
	return &Store{loader: loader}
}

// Snapshot returns the current snapshot, or ErrNotReady before the first
// successful load.
func (s *Store) Snapshot() (*Snapshot, error) {
	snap := s.snap.Load()
	if snap == nil {
		return nil, ErrNotReady
	}
	return snap, nil
}

// Ready reports whether a snapshot has been loaded.
func (s *Store) Ready() bool {
	return s.snap.Load() != nil
}

// Reload builds a fresh snapshot and swaps it in. Overlapping calls coalesce
// into a single build; a failed build leaves the previous snapshot serving.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	v, err, _ := s.group.Do("reload", func() (any, error) {
		snap, err := s.loader.Load(ctx)
		if err != nil {
			return nil, err
		}
		s.snap.Store(snap)
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}
