// Package derivx is a symbolic regular-expression engine built on
// Brzozowski derivatives.
//
// A regular language is an immutable algebraic value. Matching never
// compiles to an automaton up front; instead, Derive consumes one symbol
// and returns the residual expression describing every suffix that would
// still complete a match. Folding Derive over an input and asking the
// final value AcceptsEmptyString is a total, fully anchored match.
//
// # Example Usage
//
//	term := derivx.Must(derivx.Union("spam", "eggs"))
//	total := derivx.Must(derivx.NewPattern(term).
//		Then(derivx.NewPattern(" ").Then(term).Star()).
//		Regex())
//	derivx.MatchString(total, "spam eggs spam") // true
//	derivx.MatchString(total, "eggs spam ")     // false
//
// # Incremental Matching
//
// The same derivative step powers streaming: a Matcher feeds one symbol at
// a time and reports acceptance between symbols, which is the primitive a
// tokenizer needs for longest-match scanning. Matching cost stays bounded
// because every combinator returns a canonical simplified value, so
// repeated derivation cannot inflate the expression tree.
//
// # Symbol Domains
//
// Expressions are typed by alphabet: text expressions consume runes,
// binary expressions consume raw bytes, and structural values (Null,
// Epsilon, AnySymbol) are domain independent. Mixing text and binary
// operands in one expression fails at construction, never at match time.
//
// Subpackages build on the core: lexicon loads named patterns from YAML or
// JSON definitions, and graph renders the derivative automaton of an
// expression for inspection.
package derivx
