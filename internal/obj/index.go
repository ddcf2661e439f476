package obj

import "strconv"

// Index is a 1-based OBJ list reference. The zero value is the reserved
// slot and never resolves.
type Index int

// NoIndex marks an absent reference.
const NoIndex Index = 0

// ParseIndex reads a corner sub-token. Empty, non-numeric and
// non-positive tokens are rejected; relative (negative) indices are not
// supported.
func ParseIndex(tok string) (Index, error) {
	if tok == "" {
		return NoIndex, ErrIndexOutOfRange
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 {
		return NoIndex, ErrIndexOutOfRange
	}
	return Index(n), nil
}

// Resolve maps i onto a slice position for a list of length n.
// This is the only place that converts between the two bases.
func (i Index) Resolve(n int) (int, bool) {
	if i <= NoIndex || int(i) > n {
		return 0, false
	}
	return int(i) - 1, true
}

