package derivx

// Pattern is a fluent builder for Regex values. Each method transforms the
// value under construction and returns the builder, so patterns read left
// to right:
//
//	term := derivx.Must(derivx.Union("spam", "eggs"))
//	total, err := derivx.NewPattern(term).
//		Then(derivx.NewPattern(" ").Then(term).Star()).
//		Regex()
//
// Methods never fail individually. The first construction error is carried
// and surfaced by Regex, so a chain can be written without interleaved
// checks. Builders nest: Regexify accepts a *Pattern wherever it accepts a
// Regex. A Pattern is not safe for concurrent use.
type Pattern struct {
	re  Regex
	err error
}

// NewPattern starts a builder from any value Regexify accepts.
func NewPattern(v any) *Pattern {
	p := &Pattern{}
	p.re, p.err = Regexify(v)
	return p
}

// Then appends v, to be matched after the current value.
func (p *Pattern) Then(v any) *Pattern {
	if p.err != nil {
		return p
	}
	p.re, p.err = Concat(p.re, v)
	return p
}

// Or adds v as an alternative to the current value.
func (p *Pattern) Or(v any) *Pattern {
	if p.err != nil {
		return p
	}
	p.re, p.err = Union(p.re, v)
	return p
}

// Star wraps the current value in Kleene repetition: zero or more times.
func (p *Pattern) Star() *Pattern {
	if p.err != nil {
		return p
	}
	p.re = starOf(p.re)
	return p
}

// Plus requires the current value one or more times.
func (p *Pattern) Plus() *Pattern {
	if p.err != nil {
		return p
	}
	p.re, p.err = Concat(p.re, starOf(p.re))
	return p
}

// Maybe makes the current value optional.
func (p *Pattern) Maybe() *Pattern {
	if p.err != nil {
		return p
	}
	p.re, p.err = Union(p.re, Epsilon)
	return p
}

// Times repeats the current value exactly n times.
func (p *Pattern) Times(n int) *Pattern {
	if p.err != nil {
		return p
	}
	p.re, p.err = Repeat(p.re, n)
	return p
}

// Regex finishes the build. It returns the first error a step encountered,
// or the built value.
func (p *Pattern) Regex() (Regex, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.re, nil
}
