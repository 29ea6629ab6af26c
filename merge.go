package forksort

// merge combines two adjacent, individually sorted runs of the primary
// buffer, primary[leftStart..leftEnd] and primary[rightStart..rightEnd]
// (inclusive, rightStart == leftEnd+1), into the scratch buffer and copies
// the merged span back into the primary buffer.
//
// Equal elements are taken from the left run first, which is what makes the
// whole sort stable. No index outside [leftStart, rightEnd] is read or
// written in either buffer.
func (s *sorter[T]) merge(leftStart, leftEnd, rightStart, rightEnd int) {
	i, j, k := leftStart, rightStart, leftStart

	for i <= leftEnd && j <= rightEnd {
		if s.less(s.primary[j], s.primary[i]) {
			s.scratch[k] = s.primary[j]
			j++
		} else {
			s.scratch[k] = s.primary[i]
			i++
		}
		k++
	}

	// At most one of these copies anything.
	k += copy(s.scratch[k:], s.primary[i:leftEnd+1])
	copy(s.scratch[k:], s.primary[j:rightEnd+1])

	copy(s.primary[leftStart:rightEnd+1], s.scratch[leftStart:rightEnd+1])
}
