// Package triangle has the triangular-number arithmetic that underpins the
// board geometry. Row boundaries on a triangular board are exactly the
// triangular numbers, so every row/position relationship here is derived
// rather than stored.
package triangle

// Nth returns the n-th triangular number, n(n+1)/2. Nth(0) is 0, which keeps
// row-range math uniform (row r spans (Nth(r-1), Nth(r)]).
func Nth(n int) int {
	if n < 0 {
		return 0
	}
	return n * (n + 1) / 2
}

// Sequence returns a generator for the sequence 1, 3, 6, 10, 15, ...
// Each call to the returned function yields the next term. Call Sequence
// again for a fresh, independent cursor.
func Sequence() func() int {
	n := 0
	return func() int {
		n++
		return Nth(n)
	}
}

// IsTriangular reports whether n is a triangular number. Zero counts (it is
// the conventional zeroth term).
func IsTriangular(n int) bool {
	if n < 0 {
		return false
	}
	next := Sequence()
	last := 0
	for last < n {
		last = next()
	}
	return last == n
}

// RowOf returns the 1-indexed row containing pos: one more than the count of
// triangular numbers strictly less than pos.
func RowOf(pos int) int {
	row := 1
	next := Sequence()
	for t := next(); t < pos; t = next() {
		row++
	}
	return row
}
