package derivx

import (
	"fmt"
	"strings"
	"unicode"
)

// Rendering precedence, loosest first. A subexpression whose own level is
// below the context's gets a non-capturing group.
const (
	precUnion = iota
	precConcat
	precPostfix
	precAtom
)

func (*nullRegex) String() string      { return "∅" }
func (*epsilonRegex) String() string   { return "(?:)" }
func (*anySymbolRegex) String() string { return "(?s:.)" }

func (r *symbolRegex) String() string {
	var b strings.Builder
	appendSymbolPattern(&b, r.sym)
	return b.String()
}

func (r *unionRegex) String() string  { return renderPattern(r) }
func (r *concatRegex) String() string { return renderPattern(r) }
func (r *starRegex) String() string   { return renderPattern(r) }
func (r *repeatRegex) String() string { return renderPattern(r) }

func renderPattern(re Regex) string {
	var b strings.Builder
	writePattern(&b, re, precUnion)
	return b.String()
}

func writePattern(b *strings.Builder, re Regex, prec int) {
	switch x := re.(type) {
	case *nullRegex:
		b.WriteString("∅")
	case *epsilonRegex:
		b.WriteString("(?:)")
	case *anySymbolRegex:
		b.WriteString("(?s:.)")
	case *symbolRegex:
		appendSymbolPattern(b, x.sym)
	case *unionRegex:
		if prec > precUnion {
			b.WriteString("(?:")
		}
		for i, m := range x.options.members {
			if i > 0 {
				b.WriteByte('|')
			}
			writePattern(b, m, precConcat)
		}
		if prec > precUnion {
			b.WriteByte(')')
		}
	case *concatRegex:
		if prec > precConcat {
			b.WriteString("(?:")
		}
		writePattern(b, x.prefix, precConcat)
		writePattern(b, x.suffix, precConcat)
		if prec > precConcat {
			b.WriteByte(')')
		}
	case *starRegex:
		if prec > precPostfix {
			b.WriteString("(?:")
		}
		writePattern(b, x.inner, precAtom)
		b.WriteByte('*')
		if prec > precPostfix {
			b.WriteByte(')')
		}
	case *repeatRegex:
		if prec > precPostfix {
			b.WriteString("(?:")
		}
		writePattern(b, x.inner, precAtom)
		fmt.Fprintf(b, "{%d}", x.count)
		if prec > precPostfix {
			b.WriteByte(')')
		}
	}
}

// appendSymbolPattern writes one symbol in pattern syntax, escaped so the
// output stays a valid expression. An escaped symbol is a single quantifiable
// atom either way, so callers never group it.
func appendSymbolPattern(b *strings.Builder, sym Symbol) {
	if sym.alpha == AlphabetBinary {
		appendEscapedByte(b, byte(sym.code))
		return
	}
	appendEscapedRune(b, sym.code)
}

func appendEscapedRune(b *strings.Builder, r rune) {
	switch r {
	case '\\', '.', '+', '*', '?', '(', ')', '|', '[', ']', '{', '}', '^', '$':
		b.WriteByte('\\')
		b.WriteRune(r)
	case '\n':
		b.WriteString(`\n`)
	case '\r':
		b.WriteString(`\r`)
	case '\t':
		b.WriteString(`\t`)
	default:
		switch {
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(b, `\x%02x`, r)
		default:
			fmt.Fprintf(b, `\x{%x}`, r)
		}
	}
}

func appendEscapedByte(b *strings.Builder, x byte) {
	switch x {
	case '\\', '.', '+', '*', '?', '(', ')', '|', '[', ']', '{', '}', '^', '$':
		b.WriteByte('\\')
		b.WriteByte(x)
	default:
		if x >= 0x20 && x < 0x7f {
			b.WriteByte(x)
		} else {
			fmt.Fprintf(b, `\x%02x`, x)
		}
	}
}
