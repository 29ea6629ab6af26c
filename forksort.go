package forksort

import (
	"cmp"

	"golang.org/x/sync/semaphore"

	forkerrors "github.com/tamirms/forksort/errors"
)

// Sort sorts primary ascending, in place, using scratch as merge working
// space. Both buffers must have the same length and must not alias; scratch
// may be uninitialized and its final contents are unspecified. cutoff bounds
// how many recursion levels may spawn concurrent tasks (see the package
// documentation). The sort is stable.
//
// All validation happens before any task is spawned; a nil return means the
// primary buffer holds the sorted result.
func Sort[T cmp.Ordered](primary, scratch []T, cutoff int, opts ...Option) error {
	return sortFunc(primary, scratch, cutoff, cmp.Less[T], opts...)
}

// sortFunc is the comparator-carrying implementation behind Sort. less must
// describe a strict weak ordering; equal elements keep their input order.
func sortFunc[T any](primary, scratch []T, cutoff int, less func(a, b T) bool, opts ...Option) error {
	if len(scratch) != len(primary) {
		return forkerrors.ErrScratchLength
	}
	if cutoff < 0 {
		return forkerrors.ErrNegativeCutoff
	}
	if len(primary) > 0 && &primary[0] == &scratch[0] {
		return forkerrors.ErrSharedBuffers
	}

	cfg := defaultSortConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.spawnLimit < 0 {
		return forkerrors.ErrSpawnLimit
	}

	if len(primary) <= 1 {
		return nil // Nothing to sort; no root task is built
	}

	s := &sorter[T]{
		primary: primary,
		scratch: scratch,
		cutoff:  cutoff,
		less:    less,
	}
	if cfg.limitSet {
		s.budget = semaphore.NewWeighted(int64(cfg.spawnLimit))
	}
	s.run(task{left: 0, right: len(primary) - 1, depth: 0})
	return nil
}
