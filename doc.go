// Package forksort implements a parallel merge sort whose recursive fan-out
// is bounded by a configurable depth cutoff.
//
// The sort is a classic divide-and-conquer merge sort: each call splits its
// range in half, sorts both halves, and merges them through a caller-supplied
// scratch buffer. Down to the cutoff depth the two halves are sorted by
// concurrent tasks joined before the merge; past it recursion continues
// serially on the current goroutine. cutoff=0 is a purely sequential sort,
// cutoff=k allows up to 2^k concurrently executing leaf tasks.
//
// # Basic Usage
//
//	data := []int64{9, 4, 7, 1}
//	scratch := make([]int64, len(data))
//	if err := forksort.Sort(data, scratch, 3); err != nil {
//	    log.Fatal(err)
//	}
//	// data is now sorted ascending
//
// Bounding the number of live spawned tasks (excess fan-out degrades to the
// serial algorithm instead of failing):
//
//	err := forksort.Sort(data, scratch, 6, forksort.WithSpawnLimit(2*runtime.NumCPU()))
//
// The sort is stable, mutates only the primary buffer, and leaves the scratch
// buffer's final contents unspecified. Both buffers are scoped to one call, so
// independent sorts over distinct buffers may run concurrently.
//
// # Package Structure
//
//   - Public API: forksort.go (Sort), options.go (Option, With* functions)
//   - Fork-join recursion: task.go (depth-bounded fan-out, serial fallback)
//   - Merge engine: merge.go (stable merge of adjacent sorted runs)
//   - Errors: errors/ (sentinel values shared across packages)
//   - Bench plumbing: internal/datagen, internal/datafile, cmd/bench
package forksort
