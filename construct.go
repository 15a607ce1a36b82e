package derivx

import "fmt"

// Regexify converts a value into a Regex. It accepts an existing Regex, a
// *Pattern (finishing the build), a Symbol, a rune or byte (one symbol), a
// string (the exact text, empty string meaning Epsilon), or a []byte (the
// exact byte sequence). Anything else fails with ErrUnsupportedType.
//
// Every combinator in this package routes its operands through Regexify,
// so all of them accept the same mix of values.
func Regexify(v any) (Regex, error) {
	switch x := v.(type) {
	case Regex:
		return x, nil
	case *Pattern:
		return x.Regex()
	case Symbol:
		return newSymbol(x), nil
	case rune:
		return newSymbol(Rune(x)), nil
	case byte:
		return newSymbol(Byte(x)), nil
	case string:
		return literalText(x), nil
	case []byte:
		return literalBytes(x), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

// Text builds the regex matching exactly the text s. It is Regexify
// restricted to strings, and cannot fail.
func Text(s string) Regex {
	return literalText(s)
}

// Bytes builds the regex matching exactly the byte sequence b.
func Bytes(b []byte) Regex {
	return literalBytes(b)
}

// Must panics when err is non-nil, in the manner of regexp.MustCompile. It
// allows compact initialization of package-level patterns:
//
//	var keyword = derivx.Must(derivx.Union("spam", "eggs"))
func Must(re Regex, err error) Regex {
	if err != nil {
		panic(err)
	}
	return re
}

// Union builds the expression matching any one of the given options.
// Nested unions are flattened into a single option set, Null options are
// discarded, and duplicates collapse. An empty set yields Null and a
// single surviving option is returned unchanged. Options from conflicting
// concrete domains fail with ErrAlphabetMismatch.
func Union(options ...any) (Regex, error) {
	res := make([]Regex, len(options))
	for i, opt := range options {
		re, err := Regexify(opt)
		if err != nil {
			return nil, err
		}
		res[i] = re
	}
	return unionOf(res)
}

// Concat builds the expression matching prefix followed by suffix. Null on
// either side absorbs the whole expression and Epsilon is the identity.
func Concat(prefix, suffix any) (Regex, error) {
	p, err := Regexify(prefix)
	if err != nil {
		return nil, err
	}
	s, err := Regexify(suffix)
	if err != nil {
		return nil, err
	}
	return concatOf(p, s)
}

// Join concatenates a sequence of parts. No parts yield Epsilon and a
// single part is simply converted. Longer sequences fold right to left so
// that the result nests the way repeated Concat calls would, and the fold
// stops early once a partial result is Null, which derivation makes
// absorbing anyway.
func Join(parts ...any) (Regex, error) {
	switch len(parts) {
	case 0:
		return Epsilon, nil
	case 1:
		return Regexify(parts[0])
	}
	final, err := Regexify(parts[len(parts)-1])
	if err != nil {
		return nil, err
	}
	for i := len(parts) - 2; i >= 0; i-- {
		final, err = Concat(parts[i], final)
		if err != nil {
			return nil, err
		}
		if final == Null {
			break
		}
	}
	return final, nil
}

// Star builds the Kleene closure of v: zero or more repetitions. Epsilon
// and Null both collapse to Epsilon, and an expression that is already a
// star is returned unchanged rather than double-wrapped.
func Star(v any) (Regex, error) {
	re, err := Regexify(v)
	if err != nil {
		return nil, err
	}
	return starOf(re), nil
}

// Repeat builds the expression matching exactly count repetitions of v.
// Zero repetitions yield Epsilon and one repetition yields v itself.
// Epsilon repeated any number of times stays Epsilon and Null repeated a
// positive number of times stays Null. Negative counts fail with
// ErrRepeatCount.
func Repeat(v any, count int) (Regex, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrRepeatCount, count)
	}
	re, err := Regexify(v)
	if err != nil {
		return nil, err
	}
	return repeatOf(re, count), nil
}

// unionOf is the canonicalizing core behind Union. Operands are already
// converted; it flattens, drops Null, deduplicates, and merges domains.
func unionOf(options []Regex) (Regex, error) {
	set := newOptionSet(len(options))
	alpha := AlphabetIndependent
	for _, re := range options {
		if re == Null {
			continue
		}
		if u, ok := re.(*unionRegex); ok {
			// Members of an existing union are already canonical; splice
			// them directly.
			for _, member := range u.options.members {
				merged, err := mergeAlphabets(alpha, member.Alphabet())
				if err != nil {
					return nil, err
				}
				alpha = merged
				set.add(member)
			}
			continue
		}
		merged, err := mergeAlphabets(alpha, re.Alphabet())
		if err != nil {
			return nil, err
		}
		alpha = merged
		set.add(re)
	}
	switch set.len() {
	case 0:
		return Null, nil
	case 1:
		return set.members[0], nil
	default:
		return newUnion(set, alpha), nil
	}
}

// concatOf is the canonicalizing core behind Concat.
func concatOf(prefix, suffix Regex) (Regex, error) {
	if prefix == Null || suffix == Null {
		return Null, nil
	}
	if prefix == Epsilon {
		return suffix, nil
	}
	if suffix == Epsilon {
		return prefix, nil
	}
	alpha, err := mergeAlphabets(prefix.Alphabet(), suffix.Alphabet())
	if err != nil {
		return nil, err
	}
	return newConcat(prefix, suffix, alpha), nil
}

func starOf(re Regex) Regex {
	if re == Epsilon || re == Null {
		return Epsilon
	}
	if _, ok := re.(*starRegex); ok {
		return re
	}
	return newStar(re)
}

// repeatOf assumes count >= 0; the public Repeat rejects negatives.
func repeatOf(re Regex, count int) Regex {
	switch count {
	case 0:
		return Epsilon
	case 1:
		return re
	}
	if re == Epsilon {
		return Epsilon
	}
	if re == Null {
		return Null
	}
	return newRepeat(re, count)
}

// mustUnion and mustConcat serve derivation, which combines subexpressions
// whose domains already merged at construction. Deriving never widens a
// domain, so the error paths are unreachable.

func mustUnion(options ...Regex) Regex {
	re, err := unionOf(options)
	if err != nil {
		panic(err)
	}
	return re
}

func mustConcat(prefix, suffix Regex) Regex {
	re, err := concatOf(prefix, suffix)
	if err != nil {
		panic(err)
	}
	return re
}

// literalText folds a string into a right-nested concatenation of its rune
// symbols.
func literalText(s string) Regex {
	runes := []rune(s)
	if len(runes) == 0 {
		return Epsilon
	}
	final := Regex(newSymbol(Rune(runes[len(runes)-1])))
	for i := len(runes) - 2; i >= 0; i-- {
		final = mustConcat(newSymbol(Rune(runes[i])), final)
	}
	return final
}

// literalBytes folds a byte slice into a right-nested concatenation of its
// byte symbols.
func literalBytes(b []byte) Regex {
	if len(b) == 0 {
		return Epsilon
	}
	final := Regex(newSymbol(Byte(b[len(b)-1])))
	for i := len(b) - 2; i >= 0; i-- {
		final = mustConcat(newSymbol(Byte(b[i])), final)
	}
	return final
}
