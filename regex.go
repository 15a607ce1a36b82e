package derivx

// Regex is an immutable regular-language value. Matching folds Derive over
// an input one symbol at a time; the value that remains describes exactly
// the suffixes that would still complete a match. Because values never
// change after construction they are safe to share across goroutines
// without synchronization.
//
// The eight variants form a closed set. New values come from Regexify and
// the combinator functions (Union, Concat, Join, Star, Repeat), never from
// variant types directly.
type Regex interface {
	// Derive returns the residual expression after consuming sym: the
	// language of all suffixes that complete a match beginning with sym.
	// Derivation is total and never fails.
	Derive(sym Symbol) Regex

	// AcceptsEmptyString reports whether the language contains the empty
	// sequence. After an input has been fully consumed by derivation this
	// is the match verdict.
	AcceptsEmptyString() bool

	// Alphabet reports the symbol domain the expression is bound to, or
	// AlphabetIndependent when it mentions no concrete symbol.
	Alphabet() Alphabet

	// Literal returns the exact symbol sequence this expression denotes
	// when it matches precisely one string, in the encoding of its domain.
	// The second result is false for expressions that match zero or many
	// strings. Consumers use this for keyword dispatch.
	Literal() (string, bool)

	// Hash returns a structural hash. Equal values hash identically; for
	// Union the hash is independent of member order. Exposed so callers
	// can memoize derivatives.
	Hash() uint64

	// String renders conventional pattern syntax for the expression. Null
	// renders as "∅", which no conventional syntax can express.
	String() string

	// isRegex closes the variant set.
	isRegex()
}

// The three sentinels are process-wide unique; identity comparison against
// them (re == Null and so on) is valid everywhere and the simplifier and
// matcher rely on it.
var (
	// Null is the empty language. It accepts nothing, not even the empty
	// sequence, and absorbs derivation and concatenation.
	Null Regex = &nullRegex{}

	// Epsilon is the language of exactly the empty sequence.
	Epsilon Regex = &epsilonRegex{}

	// AnySymbol matches exactly one symbol from either domain. It is
	// domain independent, so it combines with text and binary expressions
	// alike.
	AnySymbol Regex = &anySymbolRegex{}
)

type nullRegex struct{}

func (*nullRegex) Derive(Symbol) Regex      { return Null }
func (*nullRegex) AcceptsEmptyString() bool { return false }
func (*nullRegex) Alphabet() Alphabet       { return AlphabetIndependent }
func (*nullRegex) Literal() (string, bool)  { return "", false }
func (*nullRegex) Hash() uint64             { return hashNullValue }
func (*nullRegex) isRegex()                 {}

type epsilonRegex struct{}

func (*epsilonRegex) Derive(Symbol) Regex      { return Null }
func (*epsilonRegex) AcceptsEmptyString() bool { return true }
func (*epsilonRegex) Alphabet() Alphabet       { return AlphabetIndependent }
func (*epsilonRegex) Literal() (string, bool)  { return "", true }
func (*epsilonRegex) Hash() uint64             { return hashEpsilonValue }
func (*epsilonRegex) isRegex()                 {}

type anySymbolRegex struct{}

func (*anySymbolRegex) Derive(Symbol) Regex      { return Epsilon }
func (*anySymbolRegex) AcceptsEmptyString() bool { return false }
func (*anySymbolRegex) Alphabet() Alphabet       { return AlphabetIndependent }
func (*anySymbolRegex) Literal() (string, bool)  { return "", false }
func (*anySymbolRegex) Hash() uint64             { return hashAnySymbolValue }
func (*anySymbolRegex) isRegex()                 {}

// symbolRegex matches exactly one concrete symbol.
type symbolRegex struct {
	sym  Symbol
	hash uint64
}

func newSymbol(sym Symbol) *symbolRegex {
	return &symbolRegex{
		sym:  sym,
		hash: hashNode(tagSymbol, uint64(uint32(sym.code)), uint64(sym.alpha)),
	}
}

func (r *symbolRegex) Derive(sym Symbol) Regex {
	if sym == r.sym {
		return Epsilon
	}
	return Null
}

func (r *symbolRegex) AcceptsEmptyString() bool { return false }
func (r *symbolRegex) Alphabet() Alphabet       { return r.sym.alpha }
func (r *symbolRegex) Literal() (string, bool)  { return symbolText(r.sym), true }
func (r *symbolRegex) Hash() uint64             { return r.hash }
func (r *symbolRegex) isRegex()                 {}

// unionRegex matches any of its options. Canonical form holds at least two
// options, none of them Null, none of them unions themselves.
type unionRegex struct {
	options  *optionSet
	alpha    Alphabet
	nullable bool
	hash     uint64
}

func newUnion(set *optionSet, alpha Alphabet) *unionRegex {
	nullable := false
	var sum, xor uint64
	for _, m := range set.members {
		if m.AcceptsEmptyString() {
			nullable = true
		}
		h := m.Hash()
		sum += h
		xor ^= h
	}
	return &unionRegex{
		options:  set,
		alpha:    alpha,
		nullable: nullable,
		hash:     hashNode(tagUnion, sum, xor, uint64(set.len())),
	}
}

func (r *unionRegex) Derive(sym Symbol) Regex {
	derived := make([]Regex, 0, r.options.len())
	for _, opt := range r.options.members {
		derived = append(derived, opt.Derive(sym))
	}
	return mustUnion(derived...)
}

func (r *unionRegex) AcceptsEmptyString() bool { return r.nullable }
func (r *unionRegex) Alphabet() Alphabet       { return r.alpha }
func (r *unionRegex) Literal() (string, bool)  { return "", false }
func (r *unionRegex) Hash() uint64             { return r.hash }
func (r *unionRegex) isRegex()                 {}

// concatRegex matches its prefix followed by its suffix. Canonical form
// never holds Null or Epsilon operands.
type concatRegex struct {
	prefix   Regex
	suffix   Regex
	alpha    Alphabet
	nullable bool
	hash     uint64
}

func newConcat(prefix, suffix Regex, alpha Alphabet) *concatRegex {
	return &concatRegex{
		prefix:   prefix,
		suffix:   suffix,
		alpha:    alpha,
		nullable: prefix.AcceptsEmptyString() && suffix.AcceptsEmptyString(),
		hash:     hashNode(tagConcat, prefix.Hash(), suffix.Hash()),
	}
}

func (r *concatRegex) Derive(sym Symbol) Regex {
	left := mustConcat(r.prefix.Derive(sym), r.suffix)
	if !r.prefix.AcceptsEmptyString() {
		return left
	}
	// A nullable prefix may be skipped entirely, so the suffix derivative
	// is a second branch.
	return mustUnion(left, r.suffix.Derive(sym))
}

func (r *concatRegex) AcceptsEmptyString() bool { return r.nullable }
func (r *concatRegex) Alphabet() Alphabet       { return r.alpha }

func (r *concatRegex) Literal() (string, bool) {
	p, ok := r.prefix.Literal()
	if !ok {
		return "", false
	}
	s, ok := r.suffix.Literal()
	if !ok {
		return "", false
	}
	return p + s, true
}

func (r *concatRegex) Hash() uint64 { return r.hash }
func (r *concatRegex) isRegex()     {}

// starRegex matches zero or more repetitions of its inner expression.
// Canonical form never wraps Null, Epsilon, or another star.
type starRegex struct {
	inner Regex
	hash  uint64
}

func newStar(inner Regex) *starRegex {
	return &starRegex{inner: inner, hash: hashNode(tagStar, inner.Hash())}
}

func (r *starRegex) Derive(sym Symbol) Regex {
	return mustConcat(r.inner.Derive(sym), r)
}

func (r *starRegex) AcceptsEmptyString() bool { return true }
func (r *starRegex) Alphabet() Alphabet       { return r.inner.Alphabet() }
func (r *starRegex) Literal() (string, bool)  { return "", false }
func (r *starRegex) Hash() uint64             { return r.hash }
func (r *starRegex) isRegex()                 {}

// repeatRegex matches exactly count repetitions of its inner expression.
// Canonical form requires count >= 2; smaller counts collapse inside
// Repeat before this variant is reached.
type repeatRegex struct {
	inner Regex
	count int
	hash  uint64
}

func newRepeat(inner Regex, count int) *repeatRegex {
	if count < 2 {
		panic("derivx: repeat variant requires count >= 2")
	}
	return &repeatRegex{
		inner: inner,
		count: count,
		hash:  hashNode(tagRepeat, inner.Hash(), uint64(count)),
	}
}

func (r *repeatRegex) Derive(sym Symbol) Regex {
	return mustConcat(r.inner.Derive(sym), repeatOf(r.inner, r.count-1))
}

func (r *repeatRegex) AcceptsEmptyString() bool { return false }
func (r *repeatRegex) Alphabet() Alphabet       { return r.inner.Alphabet() }
func (r *repeatRegex) Literal() (string, bool)  { return "", false }
func (r *repeatRegex) Hash() uint64             { return r.hash }
func (r *repeatRegex) isRegex()                 {}
