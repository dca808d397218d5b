package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goto/chrono/internal/lib/interval"
	"github.com/goto/chrono/internal/lib/span"
)

// IntervalSpec is one member of an interval set document. Start and End
// are span sources (RFC3339 instants or civil day/month/year text); the
// endpoint taken is the beginning of the parsed span, so a day used as
// End means midnight opening that day.
type IntervalSpec struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
	Tag   string `yaml:"tag,omitempty"`
}

// SetSpec is the YAML document consumed by the set operation commands.
type SetSpec struct {
	Intervals []IntervalSpec `yaml:"intervals"`
	Path      string         `yaml:"-"`
}

func (i IntervalSpec) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Start, validation.Required, validation.By(validSpanText)),
		validation.Field(&i.End, validation.Required, validation.By(validSpanText)),
	)
}

func (s SetSpec) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Intervals, validation.Required, validation.Each(validation.By(validIntervalSpec))),
	)
}

func validSpanText(value any) error {
	str, _ := value.(string)
	_, err := span.Text(str).Span()
	return err
}

func validIntervalSpec(value any) error {
	spec, _ := value.(IntervalSpec)
	return spec.Validate()
}

// ToSet builds the validated, ordered-disjoint interval set described by
// the document.
func (s SetSpec) ToSet() (interval.Set, error) {
	intervals := make([]interval.Interval, 0, len(s.Intervals))
	for _, spec := range s.Intervals {
		start, err := span.Begin(span.Text(spec.Start))
		if err != nil {
			return nil, err
		}
		end, err := span.Begin(span.Text(spec.End))
		if err != nil {
			return nil, err
		}

		var tag any
		if spec.Tag != "" {
			tag = spec.Tag
		}
		iv, err := interval.NewTagged(start, end, tag)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}
	return interval.NewSet(intervals...)
}

// FromSet renders a set back into document form, at nanosecond instant
// granularity.
func FromSet(s interval.Set) SetSpec {
	spec := SetSpec{}
	for _, iv := range s {
		entry := IntervalSpec{
			Start: iv.Start().Time().Format(time.RFC3339),
			End:   iv.End().Time().Format(time.RFC3339),
		}
		if tag, ok := iv.Tag().(string); ok {
			entry.Tag = tag
		}
		spec.Intervals = append(spec.Intervals, entry)
	}
	return spec
}
