package interval

import (
	"fmt"

	"github.com/goto/chrono/internal/errors"
)

const EntitySet = "interval_set"

// Set is an ordered sequence of intervals sorted by start and pairwise
// disjoint (consecutive members relate only by precedes or meets). The
// set operations assume this invariant on their inputs rather than
// re-checking it on every call; callers holding sequences of unknown
// provenance should check with IsOrderedDisjoint first. Passing an
// unsorted or overlapping sequence to Intersect or Subtract yields
// undefined results.
//
// Union is the exception: it restores the invariant from any inputs that
// are each individually ordered-disjoint, and its output never contains
// meeting-adjacent members.
type Set []Interval

// NewSet validates that the given intervals form an ordered-disjoint
// sequence and wraps them.
func NewSet(intervals ...Interval) (Set, error) {
	s := Set(append([]Interval(nil), intervals...))
	if !s.IsOrderedDisjoint() {
		return nil, errors.FailedPrecondition(EntitySet, "intervals must be sorted by start and pairwise disjoint")
	}
	return s, nil
}

// IsOrderedDisjoint reports whether every member is valid and each
// consecutive pair relates by precedes or meets.
func (s Set) IsOrderedDisjoint() bool {
	for i, iv := range s {
		if !iv.IsValid() {
			return false
		}
		if i == 0 {
			continue
		}
		switch classify(s[i-1], iv) {
		case Precedes, Meets:
		default:
			return false
		}
	}
	return true
}

func (s Set) String() string {
	return fmt.Sprintf("%v", []Interval(s))
}

// Union merges any number of ordered-disjoint sets into one, joining
// members that meet or concur. Inputs are never mutated. With more than
// two sets the merge reduces pairwise left to right; every pairwise pass
// restores the invariant, so the fold order does not matter.
func Union(sets ...Set) Set {
	var out Set
	for _, s := range sets {
		out = union2(out, s)
	}
	return out
}

// union2 walks the two streams by earliest-starting head. A pending
// interval is held back as long as the next head meets or concurs with
// it, widening via Join; it is emitted once the next head strictly
// precedes nothing it could merge with.
func union2(xs, ys Set) Set {
	out := make(Set, 0, len(xs)+len(ys))

	var pending Interval
	havePending := false
	for len(xs) > 0 || len(ys) > 0 {
		var head Interval
		if len(ys) == 0 || (len(xs) > 0 && !ys[0].start.Before(xs[0].start)) {
			head, xs = xs[0], xs[1:]
		} else {
			head, ys = ys[0], ys[1:]
		}

		switch {
		case !havePending:
			pending, havePending = head, true
		case classify(pending, head) == Precedes:
			out = append(out, pending)
			pending = head
		default:
			pending = Join(pending, head)
		}
	}
	if havePending {
		out = append(out, pending)
	}
	return out
}

// Intersect computes the covered time common to all given sets, reducing
// pairwise left to right (intersection is associative on
// ordered-disjoint sets). Inputs are never mutated.
func Intersect(sets ...Set) Set {
	if len(sets) == 0 {
		return nil
	}
	out := sets[0]
	for _, s := range sets[1:] {
		out = intersect2(out, s)
	}
	return out
}

// intersect2 repeatedly compares the two current heads and dispatches on
// their basic relation code. A head that is only partially consumed is
// replaced by its residual remainder before the next round, so the walk
// stays linear in the number of interval boundaries.
func intersect2(xs, ys Set) Set {
	xs = append(Set(nil), xs...)
	ys = append(Set(nil), ys...)

	var out Set
	for len(xs) > 0 && len(ys) > 0 {
		x, y := xs[0], ys[0]
		switch classify(x, y) {
		case Precedes, Meets: // x wholly before any overlap
			xs = xs[1:]
		case PrecededBy, MetBy:
			ys = ys[1:]
		case StartedBy: // x1=y1 x2>y2
			out = append(out, y)
			xs[0] = x.withStart(y.end)
			ys = ys[1:]
		case FinishedBy: // x1<y1 x2=y2
			out = append(out, y)
			xs, ys = xs[1:], ys[1:]
		case Overlaps: // x1<y1<x2<y2
			out = append(out, x.withStart(y.start))
			xs = xs[1:]
			ys[0] = y.withStart(x.end)
		case OverlappedBy: // y1<x1<y2<x2
			out = append(out, x.withEnd(y.end))
			xs[0] = x.withStart(y.end)
			ys = ys[1:]
		case Contains: // x1<y1 y2<x2
			out = append(out, y)
			xs[0] = x.withStart(y.end)
			ys = ys[1:]
		case During: // y1<x1 x2<y2
			out = append(out, x)
			xs = xs[1:]
			ys[0] = y.withStart(x.end)
		case Starts: // x1=y1 x2<y2
			out = append(out, x)
			xs = xs[1:]
			ys[0] = y.withStart(x.end)
		case Equals, Finishes:
			out = append(out, x)
			xs, ys = xs[1:], ys[1:]
		}
	}
	return out
}

// Subtract removes the time covered by b from a, splitting members of a
// around members of b where needed. Inputs are never mutated.
func Subtract(a, b Set) Set {
	xs := append(Set(nil), a...)
	ys := append(Set(nil), b...)

	var out Set
	for len(xs) > 0 && len(ys) > 0 {
		x, y := xs[0], ys[0]
		switch classify(x, y) {
		case Precedes, Meets: // nothing of y covers x
			out = append(out, x)
			xs = xs[1:]
		case PrecededBy, MetBy: // y cannot cover anything later in a
			ys = ys[1:]
		case Starts, During, Finishes, Equals: // x fully covered
			xs = xs[1:]
		case StartedBy, OverlappedBy: // leading part of x covered
			xs[0] = x.withStart(y.end)
			ys = ys[1:]
		case FinishedBy: // trailing part of x covered, y consumed with it
			out = append(out, x.withEnd(y.start))
			xs, ys = xs[1:], ys[1:]
		case Overlaps: // trailing part of x covered, y may cover more of a
			out = append(out, x.withEnd(y.start))
			xs = xs[1:]
		case Contains: // y punches a hole in x
			out = append(out, x.withEnd(y.start))
			xs[0] = x.withStart(y.end)
			ys = ys[1:]
		}
	}
	out = append(out, xs...)
	return out
}
