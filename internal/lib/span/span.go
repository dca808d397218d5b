package span

import (
	"regexp"
	"time"

	"github.com/goto/chrono/internal/errors"
	"github.com/goto/chrono/internal/lib/interval"
)

const EntitySpan = "span"

// Source is a bounded value that spans a canonical interval: a point on
// the timeline, a civil day, month or year, or text in one of the
// accepted layouts. The variant set is closed on purpose; conversion is
// resolved by type switch, not by open-ended extension.
type Source interface {
	Span() (interval.Interval, error)
}

// Point is an absolute instant. Its span is the narrowest representable
// interval starting at it, one nanosecond wide.
type Point time.Time

func (p Point) Span() (interval.Interval, error) {
	t := time.Time(p)
	return interval.New(
		interval.AbsoluteInstant(t),
		interval.AbsoluteInstant(t.Add(time.Nanosecond)),
	)
}

// Day is a civil calendar day.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Day) Span() (interval.Interval, error) {
	start := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	return interval.New(
		interval.CivilInstant(start),
		interval.CivilInstant(start.AddDate(0, 0, 1)),
	)
}

// Month is a civil calendar month.
type Month struct {
	Year  int
	Month time.Month
}

func (m Month) Span() (interval.Interval, error) {
	start := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	return interval.New(
		interval.CivilInstant(start),
		interval.CivilInstant(start.AddDate(0, 1, 0)),
	)
}

// Year is a civil calendar year.
type Year int

func (y Year) Span() (interval.Interval, error) {
	start := time.Date(int(y), time.January, 1, 0, 0, 0, 0, time.UTC)
	return interval.New(
		interval.CivilInstant(start),
		interval.CivilInstant(start.AddDate(1, 0, 0)),
	)
}

var (
	dayPattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
	yearPattern  = regexp.MustCompile(`^\d{4}$`)
)

// Text is a timestamp or calendar unit in textual form. Accepted
// layouts, checked in order: RFC3339 (zoned point), 2006-01-02 (civil
// day), 2006-01 (civil month), 2006 (civil year).
type Text string

func (s Text) Span() (interval.Interval, error) {
	str := string(s)
	switch {
	case dayPattern.MatchString(str):
		t, err := time.Parse("2006-01-02", str)
		if err != nil {
			return interval.Interval{}, errors.InvalidArgument(EntitySpan, "invalid day "+str)
		}
		return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}.Span()
	case monthPattern.MatchString(str):
		t, err := time.Parse("2006-01", str)
		if err != nil {
			return interval.Interval{}, errors.InvalidArgument(EntitySpan, "invalid month "+str)
		}
		return Month{Year: t.Year(), Month: t.Month()}.Span()
	case yearPattern.MatchString(str):
		t, err := time.Parse("2006", str)
		if err != nil {
			return interval.Interval{}, errors.InvalidArgument(EntitySpan, "invalid year "+str)
		}
		return Year(t.Year()).Span()
	default:
		t, err := time.Parse(time.RFC3339, str)
		if err != nil {
			return interval.Interval{}, errors.InvalidArgument(EntitySpan,
				"unable to parse "+str+", accepted layouts are [RFC3339, 2006-01-02, 2006-01, 2006]")
		}
		return Point(t).Span()
	}
}

// Of is the canonical interval covering a single source.
func Of(s Source) (interval.Interval, error) {
	return s.Span()
}

// Over is the smallest interval covering both sources: the join of their
// spans. Sources of differing localities cannot be joined.
func Over(a, b Source) (interval.Interval, error) {
	x, err := a.Span()
	if err != nil {
		return interval.Interval{}, err
	}
	y, err := b.Span()
	if err != nil {
		return interval.Interval{}, err
	}
	if x.Start().Locality() != y.Start().Locality() {
		return interval.Interval{}, errors.InvalidArgument(EntitySpan,
			"cannot span across localities ["+x.Start().Locality().String()+", "+y.Start().Locality().String()+"]")
	}
	return interval.Join(x, y), nil
}

// Begin is the starting instant of a source's span, used where a source
// denotes an interval endpoint rather than a whole covered unit.
func Begin(s Source) (interval.Instant, error) {
	iv, err := s.Span()
	if err != nil {
		return interval.Instant{}, err
	}
	return iv.Start(), nil
}
