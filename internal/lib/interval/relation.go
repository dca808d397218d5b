package interval

import (
	"fmt"

	"github.com/goto/chrono/internal/errors"
)

const EntityRelation = "relation"

// BasicRelation is one of the thirteen primitive, mutually exclusive ways
// two intervals can relate (Allen's interval algebra).
type BasicRelation int8

const (
	Precedes BasicRelation = iota
	Meets
	Overlaps
	FinishedBy
	Contains
	Starts
	Equals
	StartedBy
	During
	Finishes
	OverlappedBy
	MetBy
	PrecededBy
)

// BasicRelations lists all thirteen in canonical evaluation order.
var BasicRelations = [...]BasicRelation{
	Precedes, Meets, Overlaps, FinishedBy, Contains, Starts, Equals,
	StartedBy, During, Finishes, OverlappedBy, MetBy, PrecededBy,
}

var relationNames = map[BasicRelation]string{
	Precedes:     "precedes",
	Meets:        "meets",
	Overlaps:     "overlaps",
	FinishedBy:   "finishedBy",
	Contains:     "contains",
	Starts:       "starts",
	Equals:       "equals",
	StartedBy:    "startedBy",
	During:       "during",
	Finishes:     "finishes",
	OverlappedBy: "overlappedBy",
	MetBy:        "metBy",
	PrecededBy:   "precededBy",
}

var relationCodes = map[BasicRelation]byte{
	Precedes:     'p',
	Meets:        'm',
	Overlaps:     'o',
	FinishedBy:   'F',
	Contains:     'D',
	Starts:       's',
	Equals:       'e',
	StartedBy:    'S',
	During:       'd',
	Finishes:     'f',
	OverlappedBy: 'O',
	MetBy:        'M',
	PrecededBy:   'P',
}

var relationConverses = map[BasicRelation]BasicRelation{
	Precedes:     PrecededBy,
	Meets:        MetBy,
	Overlaps:     OverlappedBy,
	FinishedBy:   Finishes,
	Contains:     During,
	Starts:       StartedBy,
	Equals:       Equals,
	StartedBy:    Starts,
	During:       Contains,
	Finishes:     FinishedBy,
	OverlappedBy: Overlaps,
	MetBy:        Meets,
	PrecededBy:   Precedes,
}

func (r BasicRelation) String() string {
	return relationNames[r]
}

// Code is the canonical single-character code used for dispatch in the
// set algebra: p m o F D s e S d f O M P.
func (r BasicRelation) Code() byte {
	return relationCodes[r]
}

// Converse is the relation obtained by swapping the argument order, so
// r.Holds(x, y) == r.Converse().Holds(y, x). Equals is self-converse.
func (r BasicRelation) Converse() BasicRelation {
	return relationConverses[r]
}

// Holds evaluates this relation's predicate on the ordered pair (x, y).
func (r BasicRelation) Holds(x, y Interval) bool {
	switch r {
	case Precedes:
		return x.end.Before(y.start)
	case Meets:
		return x.end.Equal(y.start)
	case Overlaps:
		return x.start.Before(y.start) && x.end.After(y.start) && x.end.Before(y.end)
	case Starts:
		return x.start.Equal(y.start) && x.end.Before(y.end)
	case Finishes:
		return x.start.After(y.start) && x.end.Equal(y.end)
	case During:
		return x.start.After(y.start) && x.end.Before(y.end)
	case Equals:
		return x.start.Equal(y.start) && x.end.Equal(y.end)
	default:
		// the six remaining relations are converses of the above
		return r.Converse().Holds(y, x)
	}
}

// Relation classifies the ordered pair (x, y) into the one basic relation
// that holds. The thirteen predicates are jointly exhaustive and pairwise
// disjoint on valid intervals, and this evaluator enforces it: all
// thirteen are checked, and anything other than exactly one match is
// reported as an error.
func Relation(x, y Interval) (BasicRelation, error) {
	if !x.IsValid() || !y.IsValid() {
		return 0, errors.InvalidArgument(EntityRelation, "relation is defined on valid intervals only")
	}

	matched := BasicRelation(-1)
	for _, r := range BasicRelations {
		if !r.Holds(x, y) {
			continue
		}
		if matched >= 0 {
			return 0, errors.InternalError(EntityRelation,
				fmt.Sprintf("relations %s and %s both hold for %s and %s", matched, r, x, y), nil)
		}
		matched = r
	}
	if matched < 0 {
		return 0, errors.InternalError(EntityRelation,
			fmt.Sprintf("no relation holds for %s and %s", x, y), nil)
	}
	return matched, nil
}

// classify is the first-match classifier used by the merge loops, which
// operate on intervals already known valid.
func classify(x, y Interval) BasicRelation {
	for _, r := range BasicRelations {
		if r.Holds(x, y) {
			return r
		}
	}
	// unreachable for valid intervals
	return Equals
}
