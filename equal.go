package derivx

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Variant tags feed the structural hash; each variant gets its own.
const (
	tagNull byte = iota + 1
	tagEpsilon
	tagSymbol
	tagAnySymbol
	tagUnion
	tagConcat
	tagStar
	tagRepeat
)

var (
	hashNullValue      = hashNode(tagNull)
	hashEpsilonValue   = hashNode(tagEpsilon)
	hashAnySymbolValue = hashNode(tagAnySymbol)
)

// hashNode mixes a variant tag with its field values. Composite variants
// pass child hashes as fields, so the result is a full structural digest.
// Union passes an order-independent combination of member hashes instead of
// the members themselves, keeping set equality and hash equality aligned.
func hashNode(tag byte, fields ...uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	buf[0] = tag
	_, _ = d.Write(buf[:1])
	for _, f := range fields {
		binary.LittleEndian.PutUint64(buf[:], f)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// Equal reports structural equality: same variant, equal immediate fields,
// with Union comparing its option set regardless of member order. The hash
// check in front makes the common unequal case cheap; equal hashes are
// verified structurally, so collisions cannot produce a false positive.
func Equal(a, b Regex) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Hash() != b.Hash() {
		return false
	}
	return structuralEqual(a, b)
}

func structuralEqual(a, b Regex) bool {
	switch x := a.(type) {
	case *nullRegex, *epsilonRegex, *anySymbolRegex:
		// Sentinels are unique; anything not caught by the identity check
		// in Equal differs.
		return a == b
	case *symbolRegex:
		y, ok := b.(*symbolRegex)
		return ok && x.sym == y.sym
	case *unionRegex:
		y, ok := b.(*unionRegex)
		return ok && x.options.equalSet(y.options)
	case *concatRegex:
		y, ok := b.(*concatRegex)
		return ok && Equal(x.prefix, y.prefix) && Equal(x.suffix, y.suffix)
	case *starRegex:
		y, ok := b.(*starRegex)
		return ok && Equal(x.inner, y.inner)
	case *repeatRegex:
		y, ok := b.(*repeatRegex)
		return ok && x.count == y.count && Equal(x.inner, y.inner)
	default:
		return false
	}
}

// optionSet is a content-addressed set of expressions with stable insertion
// order. The index maps structural hashes to member positions; equal hashes
// fall into one bucket and are told apart structurally.
type optionSet struct {
	members []Regex
	index   map[uint64][]int
}

func newOptionSet(capacity int) *optionSet {
	return &optionSet{
		members: make([]Regex, 0, capacity),
		index:   make(map[uint64][]int, capacity),
	}
}

func (s *optionSet) len() int { return len(s.members) }

// add inserts re unless a structurally equal member is already present.
func (s *optionSet) add(re Regex) {
	h := re.Hash()
	for _, i := range s.index[h] {
		if Equal(s.members[i], re) {
			return
		}
	}
	s.index[h] = append(s.index[h], len(s.members))
	s.members = append(s.members, re)
}

// contains reports whether a structurally equal member is present.
func (s *optionSet) contains(re Regex) bool {
	for _, i := range s.index[re.Hash()] {
		if Equal(s.members[i], re) {
			return true
		}
	}
	return false
}

// equalSet reports order-independent set equality. Members are deduplicated
// on insertion, so equal lengths plus one-sided containment suffice.
func (s *optionSet) equalSet(o *optionSet) bool {
	if len(s.members) != len(o.members) {
		return false
	}
	for _, m := range s.members {
		if !o.contains(m) {
			return false
		}
	}
	return true
}
