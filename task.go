package forksort

import (
	"sync"

	"golang.org/x/sync/semaphore"
)

// task describes one pending unit of recursive work: a contiguous, non-empty
// index range [left, right] (inclusive) into the shared buffers and the
// recursion depth, 0 at the root. Tasks are plain values handed to child
// goroutines, so there is no release protocol to get wrong.
type task struct {
	left, right int
	depth       int
}

// sorter carries the shared state of one sort invocation. The buffers are
// shared by all concurrent tasks but never written concurrently at
// overlapping indices: sibling tasks own disjoint ranges, and adjacent
// ranges are only touched as one range by the parent after it has joined
// both children.
type sorter[T any] struct {
	primary []T
	scratch []T
	cutoff  int
	less    func(a, b T) bool

	// budget bounds concurrently live spawned tasks. Nil means unlimited;
	// cutoff alone then caps fan-out at 2^cutoff leaves.
	budget *semaphore.Weighted
}

// run executes the state machine for one task, returning when the task's
// range is sorted.
//
// The join on both children is the only synchronization in the sort: it
// establishes the happens-before edge that makes the parent's merge of the
// two adjacent ranges safe without locks.
func (s *sorter[T]) run(t task) {
	// 0 or 1 elements: already sorted, at any depth or cutoff.
	if t.left >= t.right {
		return
	}

	// Past the cutoff no further fan-out is permitted.
	if t.depth >= s.cutoff {
		s.serial(t.left, t.right)
		return
	}

	// Never (left+right)/2: it overflows for large ranges.
	mid := t.left + (t.right-t.left)/2
	leftChild := task{left: t.left, right: mid, depth: t.depth + 1}
	rightChild := task{left: mid + 1, right: t.right, depth: t.depth + 1}

	// Reserve budget for both children atomically. If the budget cannot
	// cover the fan-out, degrade to a correct serial sort of the whole
	// range rather than failing the sort.
	if s.budget != nil && !s.budget.TryAcquire(2) {
		s.serial(t.left, t.right)
		return
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.run(leftChild)
	}()
	go func() {
		defer wg.Done()
		s.run(rightChild)
	}()
	wg.Wait()

	if s.budget != nil {
		s.budget.Release(2)
	}

	s.merge(t.left, mid, mid+1, t.right)
}

// serial is the sequential recursive merge sort used past the cutoff depth
// and by the degraded fan-out path. Same split and merge as run, minus
// concurrency.
func (s *sorter[T]) serial(left, right int) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	s.serial(left, mid)
	s.serial(mid+1, right)
	s.merge(left, mid, mid+1, right)
}
