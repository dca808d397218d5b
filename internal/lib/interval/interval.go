package interval

import (
	"fmt"
	"time"

	"github.com/goto/chrono/internal/errors"
)

const EntityInterval = "interval"

// Locality tells whether an instant is a wall-clock (civil) value or an
// absolute point on the timeline. Endpoints of one interval must agree.
type Locality int8

const (
	Absolute Locality = iota
	Civil
)

func (l Locality) String() string {
	if l == Civil {
		return "civil"
	}
	return "absolute"
}

// Instant is a totally ordered point in time.
type Instant struct {
	t   time.Time
	loc Locality
}

func NewInstant(t time.Time, loc Locality) Instant {
	return Instant{t: t, loc: loc}
}

func AbsoluteInstant(t time.Time) Instant {
	return Instant{t: t, loc: Absolute}
}

func CivilInstant(t time.Time) Instant {
	return Instant{t: t, loc: Civil}
}

func (n Instant) Time() time.Time    { return n.t }
func (n Instant) Locality() Locality { return n.loc }

func (n Instant) Before(o Instant) bool { return n.t.Before(o.t) }
func (n Instant) After(o Instant) bool  { return n.t.After(o.t) }
func (n Instant) Equal(o Instant) bool  { return n.t.Equal(o.t) }

func minInstant(a, b Instant) Instant {
	if b.Before(a) {
		return b
	}
	return a
}

func maxInstant(a, b Instant) Instant {
	if b.After(a) {
		return b
	}
	return a
}

// Interval is an immutable ordered pair of instants with strictly
// positive duration. The optional tag is opaque payload carried along
// unchanged by every operation that derives a new interval from this one.
type Interval struct {
	start Instant
	end   Instant
	tag   any
}

// New orders the two endpoints and validates the result. Equal endpoints
// are rejected, as are endpoints with differing localities.
func New(a, b Instant) (Interval, error) {
	return NewTagged(a, b, nil)
}

func NewTagged(a, b Instant, tag any) (Interval, error) {
	if a.Locality() != b.Locality() {
		return Interval{}, errors.InvalidArgument(EntityInterval,
			fmt.Sprintf("interval endpoints have mixed localities [%s, %s]", a.Locality(), b.Locality()))
	}

	start, end := minInstant(a, b), maxInstant(a, b)
	if !start.Before(end) {
		return Interval{}, errors.InvalidArgument(EntityInterval,
			"interval must have strictly positive duration, got start "+start.t.Format(time.RFC3339Nano))
	}

	return Interval{start: start, end: end, tag: tag}, nil
}

func (i Interval) Start() Instant { return i.start }
func (i Interval) End() Instant   { return i.end }
func (i Interval) Tag() any       { return i.tag }

func (i Interval) WithTag(tag any) Interval {
	i.tag = tag
	return i
}

// IsValid reports whether the interval came from a successful construction.
func (i Interval) IsValid() bool {
	return i.start.Before(i.end)
}

func (i Interval) Duration() time.Duration {
	return i.end.t.Sub(i.start.t)
}

// Equal compares endpoints only, tags are ignored.
func (i Interval) Equal(o Interval) bool {
	return i.start.Equal(o.start) && i.end.Equal(o.end)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.start.t.Format(time.RFC3339Nano), i.end.t.Format(time.RFC3339Nano))
}

// Join is the smallest interval covering both x and y. The joined
// interval keeps the tag of the earlier-starting input.
func Join(x, y Interval) Interval {
	tag := x.tag
	if y.start.Before(x.start) {
		tag = y.tag
	}
	return Interval{
		start: minInstant(x.start, y.start),
		end:   maxInstant(x.end, y.end),
		tag:   tag,
	}
}

// withStart and withEnd derive trimmed intervals during set merges. They
// keep the receiver's tag and assume the caller preserves start < end.
func (i Interval) withStart(s Instant) Interval {
	i.start = s
	return i
}

func (i Interval) withEnd(e Instant) Interval {
	i.end = e
	return i
}
