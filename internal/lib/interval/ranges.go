package interval

// Data pairs an interval with typed payload. It is the typed view of the
// opaque tag an Interval carries through the set operations.
type Data[V any] struct {
	In   Interval
	Data V
}

// Range is an ordered-disjoint sequence of intervals with typed payload.
type Range[V any] []Data[V]

func (r Range[V]) Values() []V {
	var vs []V
	for _, d := range r {
		vs = append(vs, d.Data)
	}
	return vs
}

// Set flattens the range into a Set, tagging each interval with its
// payload so the set operations carry it through splits and residuals.
func (r Range[V]) Set() Set {
	s := make(Set, 0, len(r))
	for _, d := range r {
		s = append(s, d.In.WithTag(d.Data))
	}
	return s
}

// CollectRange rebuilds a typed range from a set produced by the set
// operations. Members whose tag is not a V (or is absent) get the zero
// payload.
func CollectRange[V any](s Set) Range[V] {
	r := make(Range[V], 0, len(s))
	for _, iv := range s {
		d := Data[V]{In: iv}
		if v, ok := iv.Tag().(V); ok {
			d.Data = v
		}
		r = append(r, d)
	}
	return r
}

// UpdateDataFrom replaces the payload of members whose interval appears
// unchanged in r2, keeping everything else as is.
func (r Range[V]) UpdateDataFrom(r2 Range[V]) Range[V] {
	r3 := make(Range[V], 0, len(r))
	for _, d1 := range r {
		d2, ok := findByStart(d1.In.Start(), r2)
		if ok && d2.In.Equal(d1.In) {
			r3 = append(r3, d2)
			continue
		}
		r3 = append(r3, d1)
	}
	return r3
}

func findByStart[V any](start Instant, vs []Data[V]) (Data[V], bool) {
	for _, v := range vs {
		if v.In.Start().Equal(start) {
			return v, true
		}
	}
	return Data[V]{}, false
}
