package interval

// Concur computes the sub-interval during which x and y both hold, or
// false when they are disjoint. The result is keyed entirely off the
// basic relation between the pair, so it cannot drift from the relation
// predicates. The returned interval keeps the tag of the input it was
// derived from: x for o/O/s/f/d/e, y for S/F/D.
func Concur(x, y Interval) (Interval, bool, error) {
	r, err := Relation(x, y)
	if err != nil {
		return Interval{}, false, err
	}

	switch r {
	case Overlaps:
		return x.withStart(y.start), true, nil
	case OverlappedBy:
		return x.withEnd(y.end), true, nil
	case Starts, Finishes, During, Equals:
		return x, true, nil
	case StartedBy, FinishedBy, Contains:
		return y, true, nil
	default: // p, m, P, M
		return Interval{}, false, nil
	}
}
