package derivx_test

import (
	"testing"

	. "github.com/comalice/derivx"
)

// Test exact literal matching: the match is fully anchored, so prefixes and
// extensions of the literal must reject.
func TestMatchLiteral(t *testing.T) {
	re := Must(Regexify("abc"))

	if !MatchString(re, "abc") {
		t.Error("expected \"abc\" to match")
	}
	if MatchString(re, "ab") {
		t.Error("expected the prefix \"ab\" to reject")
	}
	if MatchString(re, "abcd") {
		t.Error("expected the extension \"abcd\" to reject")
	}
	if MatchString(re, "") {
		t.Error("expected the empty string to reject")
	}
}

func TestMatchUnion(t *testing.T) {
	re := Must(Union(Must(Regexify("spam")), Must(Regexify("eggs"))))

	if !MatchString(re, "spam") {
		t.Error("expected \"spam\" to match")
	}
	if !MatchString(re, "eggs") {
		t.Error("expected \"eggs\" to match")
	}
	if MatchString(re, "ham") {
		t.Error("expected \"ham\" to reject")
	}
	if MatchString(re, "spameggs") {
		t.Error("expected \"spameggs\" to reject")
	}
}

// Test the separated-list pattern: one term followed by any number of
// space-prefixed terms. A trailing separator has no following term and must
// reject.
func TestMatchSeparatedList(t *testing.T) {
	term := Must(Union("spam", "eggs"))
	total := Must(Concat(term, Must(Star(Must(Concat(" ", term))))))

	for _, s := range []string{"spam", "eggs", "spam spam spam spam", "spam eggs", "eggs spam eggs"} {
		if !MatchString(total, s) {
			t.Errorf("expected %q to match", s)
		}
	}
	for _, s := range []string{"", " ", "spam ", "eggs spam ", " spam", "spameggs", "spam  eggs"} {
		if MatchString(total, s) {
			t.Errorf("expected %q to reject", s)
		}
	}
}

// Test that matching the empty input agrees with AcceptsEmptyString across
// representative shapes.
func TestMatchEmptyAgreesWithAcceptance(t *testing.T) {
	res := []Regex{
		Null,
		Epsilon,
		AnySymbol,
		Text("a"),
		Must(Union("a", Epsilon)),
		Must(Star("a")),
		Must(Repeat("a", 3)),
		Must(Concat(Must(Star("a")), Must(Star("b")))),
	}
	for _, re := range res {
		if got, want := MatchString(re, ""), re.AcceptsEmptyString(); got != want {
			t.Errorf("expected empty match of %v to be %v, got %v", re, want, got)
		}
	}
}

func TestMatchAnySymbol(t *testing.T) {
	if !MatchString(AnySymbol, "x") {
		t.Error("expected a single symbol to match AnySymbol")
	}
	if MatchString(AnySymbol, "") {
		t.Error("expected the empty string to reject AnySymbol")
	}
	if MatchString(AnySymbol, "xy") {
		t.Error("expected two symbols to reject AnySymbol")
	}
	if !MatchBytes(AnySymbol, []byte{0x00}) {
		t.Error("expected a single byte to match AnySymbol")
	}

	// AnySymbol combines with either domain.
	re := Must(Concat(AnySymbol, "x"))
	if !MatchString(re, "ax") {
		t.Error("expected \"ax\" to match .x")
	}
	if MatchString(re, "xa") {
		t.Error("expected \"xa\" to reject .x")
	}
}

// Test binary matching: byte expressions consume raw bytes, and text input
// never satisfies them even when the code points line up.
func TestMatchBinary(t *testing.T) {
	frame := []byte{0x00, 0x7f, 0xff}
	re := Bytes(frame)

	if !MatchBytes(re, frame) {
		t.Error("expected the exact byte sequence to match")
	}
	if MatchBytes(re, frame[:2]) {
		t.Error("expected a byte prefix to reject")
	}
	if MatchString(re, string(frame)) {
		t.Error("expected text input to reject a binary expression")
	}
}

func TestMatchSymbols(t *testing.T) {
	re := Must(Join(Byte(0x01), AnySymbol, Byte(0x03)))

	if !Match(re, []Symbol{Byte(0x01), Byte(0x44), Byte(0x03)}) {
		t.Error("expected framed bytes to match")
	}
	if Match(re, []Symbol{Byte(0x01), Byte(0x03)}) {
		t.Error("expected a short frame to reject")
	}
	if Match(re, nil) {
		t.Error("expected empty input to reject")
	}
}

// Matching rejects as soon as the running expression collapses to Null, so
// hostile inputs cannot force derivation past the first impossible symbol.
func TestMatchEarlyReject(t *testing.T) {
	re := Text("needle")
	long := make([]byte, 1<<16)
	for i := range long {
		long[i] = 'x'
	}
	if MatchString(re, string(long)) {
		t.Error("expected a long mismatched input to reject")
	}
}
