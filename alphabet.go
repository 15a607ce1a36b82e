package derivx

import "fmt"

// Alphabet identifies the symbol domain an expression operates on. Values
// built from runes live in the text domain and values built from raw bytes
// live in the binary domain. Structural values that mention no concrete
// symbol (Null, Epsilon, AnySymbol) are domain independent and combine
// freely with either side; combining a text value with a binary value is a
// construction error.
type Alphabet uint8

const (
	// AlphabetIndependent marks values compatible with any symbol domain.
	AlphabetIndependent Alphabet = iota
	// AlphabetText marks values whose symbols are runes.
	AlphabetText
	// AlphabetBinary marks values whose symbols are raw bytes.
	AlphabetBinary
)

// String returns the domain name.
func (a Alphabet) String() string {
	switch a {
	case AlphabetIndependent:
		return "independent"
	case AlphabetText:
		return "text"
	case AlphabetBinary:
		return "binary"
	default:
		return fmt.Sprintf("alphabet(%d)", uint8(a))
	}
}

// mergeAlphabets combines the domains of two subexpressions. An independent
// side adopts the other side's domain; two concrete domains must agree.
func mergeAlphabets(a, b Alphabet) (Alphabet, error) {
	switch {
	case a == b:
		return a, nil
	case a == AlphabetIndependent:
		return b, nil
	case b == AlphabetIndependent:
		return a, nil
	default:
		return AlphabetIndependent, fmt.Errorf("%w: %s and %s", ErrAlphabetMismatch, a, b)
	}
}

// Symbol is a single atom of input: a rune in the text domain or a byte in
// the binary domain. Symbols are comparable and usable as map keys. The
// zero Symbol belongs to no concrete domain; it is consumed only by
// AnySymbol.
type Symbol struct {
	code  rune
	alpha Alphabet
}

// Rune wraps a rune as a text-domain symbol.
func Rune(r rune) Symbol {
	return Symbol{code: r, alpha: AlphabetText}
}

// Byte wraps a byte as a binary-domain symbol.
func Byte(b byte) Symbol {
	return Symbol{code: rune(b), alpha: AlphabetBinary}
}

// Alphabet reports the symbol's domain.
func (s Symbol) Alphabet() Alphabet { return s.alpha }

// Rune returns the symbol's code point. For binary symbols the value is in
// [0, 255].
func (s Symbol) Rune() rune { return s.code }

// String renders the symbol for diagnostics.
func (s Symbol) String() string {
	switch s.alpha {
	case AlphabetText:
		return fmt.Sprintf("%q", s.code)
	case AlphabetBinary:
		return fmt.Sprintf("0x%02x", byte(s.code))
	default:
		return fmt.Sprintf("symbol(%d)", s.code)
	}
}

// symbolText encodes one symbol in literal string form. Binary symbols
// contribute one raw byte; text symbols contribute their UTF-8 encoding.
func symbolText(s Symbol) string {
	if s.alpha == AlphabetBinary {
		return string([]byte{byte(s.code)})
	}
	return string(s.code)
}
