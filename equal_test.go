package derivx_test

import (
	"testing"

	. "github.com/comalice/derivx"
)

// Test structural equality: independently built values with the same shape
// compare equal, and different shapes do not.
func TestEqualStructural(t *testing.T) {
	if !Equal(Text("abc"), Must(Join('a', 'b', 'c'))) {
		t.Error("expected a string literal and a joined rune sequence to be equal")
	}
	if Equal(Text("abc"), Text("abd")) {
		t.Error("expected different literals to differ")
	}
	if Equal(Text("a"), Bytes([]byte{'a'})) {
		t.Error("expected text and binary literals to differ")
	}
	if Equal(Must(Star("a")), Must(Repeat("a", 2))) {
		t.Error("expected star and repeat variants to differ")
	}
	if Equal(Must(Repeat("a", 2)), Must(Repeat("a", 3))) {
		t.Error("expected repeats with different counts to differ")
	}
	if Equal(Epsilon, Null) {
		t.Error("expected Epsilon and Null to differ")
	}
	if !Equal(nil, nil) {
		t.Error("expected two nil expressions to be equal")
	}
	if Equal(Null, nil) {
		t.Error("expected Null and nil to differ")
	}
}

// Test union order independence: the option set compares and hashes as a
// set, not a list.
func TestEqualUnionOrderIndependent(t *testing.T) {
	ab := Must(Union("a", "b", "c"))
	ba := Must(Union("c", "b", "a"))

	if !Equal(ab, ba) {
		t.Errorf("expected %v and %v to be equal", ab, ba)
	}
	if ab.Hash() != ba.Hash() {
		t.Error("expected reordered unions to hash identically")
	}

	other := Must(Union("a", "b", "d"))
	if Equal(ab, other) {
		t.Errorf("expected %v and %v to differ", ab, other)
	}
}

// Equal values must hash equal across every way of building the same
// shape; hashing feeds derivative memoization downstream.
func TestHashAgreesWithEqual(t *testing.T) {
	pairs := [][2]Regex{
		{Text("abc"), Must(Join('a', "bc"))},
		{Must(Union("x", "y")), Must(Union("y", "x"))},
		{Must(Star(Must(Union("a", "b")))), Must(Star(Must(Union("b", "a"))))},
		{Must(Repeat("ab", 4)), Must(Repeat(Text("ab"), 4))},
	}
	for _, pair := range pairs {
		if !Equal(pair[0], pair[1]) {
			t.Errorf("expected %v and %v to be equal", pair[0], pair[1])
			continue
		}
		if pair[0].Hash() != pair[1].Hash() {
			t.Errorf("expected %v and %v to hash identically", pair[0], pair[1])
		}
	}
}

// Derivation reuses canonical pieces, so structurally equal derivatives of
// the same value are also safe to use as memoization keys.
func TestHashStableAcrossDerivation(t *testing.T) {
	re := Must(Star(Must(Union("ab", "ba"))))

	first := re.Derive(Rune('a'))
	second := re.Derive(Rune('a'))
	if first.Hash() != second.Hash() {
		t.Error("expected repeated derivation to produce identical hashes")
	}
	if !Equal(first, second) {
		t.Error("expected repeated derivation to produce equal values")
	}
}
