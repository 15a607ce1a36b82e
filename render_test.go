package derivx_test

import (
	"strings"
	"testing"

	. "github.com/comalice/derivx"
)

// Test pattern rendering of the fixed shapes.
func TestStringFixedForms(t *testing.T) {
	if got := Null.String(); got != "∅" {
		t.Errorf("expected Null to render ∅, got %q", got)
	}
	if got := Epsilon.String(); got != "(?:)" {
		t.Errorf("expected Epsilon to render (?:), got %q", got)
	}
	if got := AnySymbol.String(); got != "(?s:.)" {
		t.Errorf("expected AnySymbol to render (?s:.), got %q", got)
	}
	if got := Text("abc").String(); got != "abc" {
		t.Errorf("expected plain literal rendering, got %q", got)
	}
}

// Test grouping: operands render with non-capturing groups exactly where
// precedence demands them.
func TestStringGrouping(t *testing.T) {
	star := Must(Star(Must(Union("a", "b"))))
	if got := star.String(); got != "(?:a|b)*" {
		t.Errorf("expected (?:a|b)*, got %q", got)
	}

	rep := Must(Repeat("ab", 3))
	if got := rep.String(); got != "(?:ab){3}" {
		t.Errorf("expected (?:ab){3}, got %q", got)
	}

	single := Must(Star("a"))
	if got := single.String(); got != "a*" {
		t.Errorf("expected a*, got %q", got)
	}

	// A union inside a concatenation needs its group; the concatenation
	// inside a union does not.
	mixed := Must(Concat(Must(Union("a", "b")), "c"))
	if got := mixed.String(); got != "(?:a|b)c" {
		t.Errorf("expected (?:a|b)c, got %q", got)
	}

	nested := Must(Star(Must(Repeat("a", 2))))
	if got := nested.String(); got != "(?:a{2})*" {
		t.Errorf("expected (?:a{2})*, got %q", got)
	}
}

// Test union rendering keeps all options separated.
func TestStringUnion(t *testing.T) {
	re := Must(Union("spam", "eggs"))
	got := re.String()
	// Option order inside the set follows insertion, but keep the check
	// order-agnostic like the equality semantics.
	if got != "spam|eggs" && got != "eggs|spam" {
		t.Errorf("expected spam|eggs in either order, got %q", got)
	}
}

// Test escaping: metacharacters, control characters, and non-printable
// bytes must not leak raw into the pattern.
func TestStringEscaping(t *testing.T) {
	if got := Text("a.b").String(); got != `a\.b` {
		t.Errorf("expected a\\.b, got %q", got)
	}
	if got := Text("(x)*").String(); got != `\(x\)\*` {
		t.Errorf("expected \\(x\\)\\*, got %q", got)
	}
	if got := Text("a\nb").String(); got != `a\nb` {
		t.Errorf("expected a\\nb, got %q", got)
	}

	bin := Bytes([]byte{0x00, 'a', 0xff}).String()
	if strings.ContainsAny(bin, "\x00\xff") {
		t.Errorf("expected raw bytes to be escaped, got %q", bin)
	}
	if bin != `\x00a\xff` {
		t.Errorf("expected \\x00a\\xff, got %q", bin)
	}

	// Printable non-ASCII text renders as itself.
	if got := Text("büro").String(); got != "büro" {
		t.Errorf("expected büro, got %q", got)
	}
}
