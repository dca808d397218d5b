package interval

import (
	"github.com/goto/chrono/internal/errors"
)

// GeneralRelation is a named subset of the thirteen basic relations.
// Evaluating it on an interval pair picks out the member that holds.
type GeneralRelation struct {
	name    string
	members []BasicRelation
}

func NewGeneralRelation(name string, members ...BasicRelation) GeneralRelation {
	return GeneralRelation{name: name, members: append([]BasicRelation(nil), members...)}
}

// Disjoint holds when two intervals share no instant.
var Disjoint = NewGeneralRelation("disjoint", Precedes, PrecededBy, Meets, MetBy)

// Concurrent is the complement of Disjoint: the two intervals share at
// least one sub-interval.
var Concurrent = Complement(Disjoint).named("concurrent")

func (g GeneralRelation) Name() string {
	return g.name
}

func (g GeneralRelation) Members() []BasicRelation {
	return append([]BasicRelation(nil), g.members...)
}

func (g GeneralRelation) Contains(r BasicRelation) bool {
	for _, m := range g.members {
		if m == r {
			return true
		}
	}
	return false
}

func (g GeneralRelation) named(name string) GeneralRelation {
	g.name = name
	return g
}

// Evaluate applies the general relation as a predicate-dispatcher on the
// pair (x, y): it returns the member relation that holds between them,
// or false when the holding basic relation is not a member.
func Evaluate(g GeneralRelation, x, y Interval) (BasicRelation, bool, error) {
	r, err := Relation(x, y)
	if err != nil {
		return 0, false, err
	}
	if g.Contains(r) {
		return r, true, nil
	}
	return 0, false, nil
}

// Converse maps every member to its converse partner. The result is
// set-equal to the mathematical converse; member order is unspecified.
func Converse(g GeneralRelation) GeneralRelation {
	members := make([]BasicRelation, len(g.members))
	for i, m := range g.members {
		members[i] = m.Converse()
	}
	return GeneralRelation{name: g.name + "-converse", members: members}
}

// Complement contains every basic relation not in g.
func Complement(g GeneralRelation) GeneralRelation {
	var members []BasicRelation
	for _, r := range BasicRelations {
		if !g.Contains(r) {
			members = append(members, r)
		}
	}
	return GeneralRelation{name: g.name + "-complement", members: members}
}

// Compose would compute the relational composition of two general
// relations. Allen's composition table is deliberately not implemented;
// callers must not get a silently wrong or partial answer.
func Compose(GeneralRelation, GeneralRelation) (GeneralRelation, error) {
	return GeneralRelation{}, errors.Unimplemented(EntityRelation, "composition of general relations is not implemented")
}

// IntersectRelations would intersect the member sets of two general
// relations. Not implemented, same contract as Compose.
func IntersectRelations(GeneralRelation, GeneralRelation) (GeneralRelation, error) {
	return GeneralRelation{}, errors.Unimplemented(EntityRelation, "intersection of general relations is not implemented")
}

// IsDisjoint reports whether x and y share no instant.
func IsDisjoint(x, y Interval) (bool, error) {
	_, ok, err := Evaluate(Disjoint, x, y)
	return ok, err
}

// IsConcurrent reports whether x and y share a sub-interval.
func IsConcurrent(x, y Interval) (bool, error) {
	_, ok, err := Evaluate(Concurrent, x, y)
	return ok, err
}
