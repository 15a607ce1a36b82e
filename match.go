package derivx

// Match reports whether re accepts exactly the given symbol sequence. The
// match is fully anchored: the whole input must be consumed, and a prefix
// match alone is not success. Matching rejects early once the running
// expression becomes Null, since Null absorbs all further derivation.
func Match(re Regex, symbols []Symbol) bool {
	for _, sym := range symbols {
		re = re.Derive(sym)
		if re == Null {
			return false
		}
	}
	return re.AcceptsEmptyString()
}

// MatchString folds the runes of s through re as text symbols.
func MatchString(re Regex, s string) bool {
	for _, r := range s {
		re = re.Derive(Rune(r))
		if re == Null {
			return false
		}
	}
	return re.AcceptsEmptyString()
}

// MatchBytes folds the bytes of b through re as binary symbols.
func MatchBytes(re Regex, b []byte) bool {
	for _, x := range b {
		re = re.Derive(Byte(x))
		if re == Null {
			return false
		}
	}
	return re.AcceptsEmptyString()
}

// Matcher is an incremental matching cursor. Feed advances it one symbol at
// a time, which suits tokenizers that inspect acceptance between symbols to
// decide where a token ends. A Matcher is not safe for concurrent use; the
// Regex values it exposes are.
type Matcher struct {
	start   Regex
	current Regex
}

// NewMatcher starts a cursor at re.
func NewMatcher(re Regex) *Matcher {
	return &Matcher{start: re, current: re}
}

// Feed consumes one symbol and reports whether any continuation of the
// input can still match. Once it reports false the matcher is dead and
// stays dead until Reset.
func (m *Matcher) Feed(sym Symbol) bool {
	if m.current == Null {
		return false
	}
	m.current = m.current.Derive(sym)
	return m.current != Null
}

// FeedString feeds every rune of s as a text symbol, stopping early when
// the matcher dies. It reports whether the matcher is still alive.
func (m *Matcher) FeedString(s string) bool {
	for _, r := range s {
		if !m.Feed(Rune(r)) {
			return false
		}
	}
	return m.current != Null
}

// FeedBytes feeds every byte of b as a binary symbol, stopping early when
// the matcher dies. It reports whether the matcher is still alive.
func (m *Matcher) FeedBytes(b []byte) bool {
	for _, x := range b {
		if !m.Feed(Byte(x)) {
			return false
		}
	}
	return m.current != Null
}

// Current returns the residual expression for the input consumed so far.
func (m *Matcher) Current() Regex { return m.current }

// Matched reports whether the input consumed so far is a complete match.
func (m *Matcher) Matched() bool { return m.current.AcceptsEmptyString() }

// Dead reports whether no continuation of the input can match.
func (m *Matcher) Dead() bool { return m.current == Null }

// Reset rewinds the cursor to the expression it started from.
func (m *Matcher) Reset() { m.current = m.start }
