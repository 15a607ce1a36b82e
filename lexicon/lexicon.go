// Package lexicon loads named pattern definitions from YAML or JSON and
// compiles them into derivx expressions.
//
// A lexicon maps pattern names to nodes; each node takes exactly one form
// (literal, bytes, any, union, concat, star, plus, maybe, repeat, ref).
// Refs point at other named patterns, so shared fragments are defined once.
// Validation checks shape before compilation; compilation resolves refs in
// dependency order and rejects reference cycles.
package lexicon

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cast"

	"github.com/comalice/derivx"
)

// ErrCycle reports a reference cycle between named patterns.
var ErrCycle = errors.New("pattern reference cycle")

// Lexicon is a named collection of pattern definitions.
type Lexicon struct {
	Version  string           `json:"version,omitempty" yaml:"version,omitempty"`
	Patterns map[string]*Node `json:"patterns" yaml:"patterns"`
}

// Node is one pattern definition. Exactly one field group must be set.
type Node struct {
	// Literal matches the exact text. A pointer distinguishes the empty
	// literal (matching the empty string) from an absent field.
	Literal *string `json:"literal,omitempty" yaml:"literal,omitempty"`
	// BytesHex matches the exact byte sequence, written in hex.
	BytesHex *string `json:"bytes,omitempty" yaml:"bytes,omitempty"`
	// Any matches one symbol of either domain.
	Any bool `json:"any,omitempty" yaml:"any,omitempty"`

	Union  []*Node     `json:"union,omitempty" yaml:"union,omitempty"`
	Concat []*Node     `json:"concat,omitempty" yaml:"concat,omitempty"`
	Star   *Node       `json:"star,omitempty" yaml:"star,omitempty"`
	Plus   *Node       `json:"plus,omitempty" yaml:"plus,omitempty"`
	Maybe  *Node       `json:"maybe,omitempty" yaml:"maybe,omitempty"`
	Repeat *RepeatNode `json:"repeat,omitempty" yaml:"repeat,omitempty"`

	// Ref names another pattern in the same lexicon.
	Ref string `json:"ref,omitempty" yaml:"ref,omitempty"`
}

// RepeatNode repeats a node an exact number of times. Count is lenient the
// way configuration values are: integers, floats with integral value, and
// numeric strings all coerce.
type RepeatNode struct {
	Of    *Node `json:"of" yaml:"of"`
	Count any   `json:"count" yaml:"count"`
}

// NewLexicon creates an empty lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{Patterns: make(map[string]*Node)}
}

// Add registers a named pattern and returns the lexicon for chaining.
func (l *Lexicon) Add(name string, node *Node) *Lexicon {
	if l.Patterns == nil {
		l.Patterns = make(map[string]*Node)
	}
	l.Patterns[name] = node
	return l
}

// Node constructors for building definitions in code; the declarative
// YAML/JSON forms decode into the same shapes.

// Lit defines a node matching the exact text s.
func Lit(s string) *Node { return &Node{Literal: &s} }

// Hex defines a node matching the byte sequence written in hex.
func Hex(h string) *Node { return &Node{BytesHex: &h} }

// Any defines a node matching one symbol of either domain.
func Any() *Node { return &Node{Any: true} }

// Ref defines a node referring to another named pattern.
func Ref(name string) *Node { return &Node{Ref: name} }

// UnionOf defines a node matching any one of the options.
func UnionOf(options ...*Node) *Node { return &Node{Union: options} }

// ConcatOf defines a node matching the parts in sequence.
func ConcatOf(parts ...*Node) *Node { return &Node{Concat: parts} }

// StarOf defines a node matching zero or more repetitions of n.
func StarOf(n *Node) *Node { return &Node{Star: n} }

// PlusOf defines a node matching one or more repetitions of n.
func PlusOf(n *Node) *Node { return &Node{Plus: n} }

// MaybeOf defines a node matching n or nothing.
func MaybeOf(n *Node) *Node { return &Node{Maybe: n} }

// RepeatOf defines a node matching exactly count repetitions of n.
func RepeatOf(n *Node, count int) *Node {
	return &Node{Repeat: &RepeatNode{Of: n, Count: count}}
}

// Validate validates the whole lexicon:
// - Patterns map present and non-empty
// - Every node takes exactly one form (recursive)
// - Hex byte sequences decode
// - Repeat counts coerce to a non-negative integer
// - Refs name existing patterns
func (l *Lexicon) Validate() error {
	if len(l.Patterns) == 0 {
		return errors.New("patterns map is required and cannot be empty")
	}
	for name, node := range l.Patterns {
		if node == nil {
			return fmt.Errorf("pattern %q is empty", name)
		}
		if err := l.validateNode(node); err != nil {
			return fmt.Errorf("pattern %q validation failed: %w", name, err)
		}
	}
	return nil
}

func (l *Lexicon) validateNode(n *Node) error {
	forms := 0
	if n.Literal != nil {
		forms++
	}
	if n.BytesHex != nil {
		forms++
	}
	if n.Any {
		forms++
	}
	if n.Union != nil {
		forms++
	}
	if n.Concat != nil {
		forms++
	}
	if n.Star != nil {
		forms++
	}
	if n.Plus != nil {
		forms++
	}
	if n.Maybe != nil {
		forms++
	}
	if n.Repeat != nil {
		forms++
	}
	if n.Ref != "" {
		forms++
	}
	if forms == 0 {
		return errors.New("node specifies no form")
	}
	if forms > 1 {
		return fmt.Errorf("node specifies %d forms, want exactly one", forms)
	}

	switch {
	case n.BytesHex != nil:
		if _, err := hex.DecodeString(*n.BytesHex); err != nil {
			return fmt.Errorf("bytes %q: %w", *n.BytesHex, err)
		}
	case n.Union != nil:
		if len(n.Union) == 0 {
			return errors.New("union requires at least one option")
		}
		for i, opt := range n.Union {
			if opt == nil {
				return fmt.Errorf("union option %d is empty", i)
			}
			if err := l.validateNode(opt); err != nil {
				return fmt.Errorf("union option %d: %w", i, err)
			}
		}
	case n.Concat != nil:
		if len(n.Concat) == 0 {
			return errors.New("concat requires at least one part")
		}
		for i, part := range n.Concat {
			if part == nil {
				return fmt.Errorf("concat part %d is empty", i)
			}
			if err := l.validateNode(part); err != nil {
				return fmt.Errorf("concat part %d: %w", i, err)
			}
		}
	case n.Star != nil:
		if err := l.validateNode(n.Star); err != nil {
			return fmt.Errorf("star operand: %w", err)
		}
	case n.Plus != nil:
		if err := l.validateNode(n.Plus); err != nil {
			return fmt.Errorf("plus operand: %w", err)
		}
	case n.Maybe != nil:
		if err := l.validateNode(n.Maybe); err != nil {
			return fmt.Errorf("maybe operand: %w", err)
		}
	case n.Repeat != nil:
		if n.Repeat.Of == nil {
			return errors.New("repeat requires an operand")
		}
		count, err := cast.ToIntE(n.Repeat.Count)
		if err != nil {
			return fmt.Errorf("repeat count %v: %w", n.Repeat.Count, err)
		}
		if count < 0 {
			return fmt.Errorf("repeat count %d is negative", count)
		}
		if err := l.validateNode(n.Repeat.Of); err != nil {
			return fmt.Errorf("repeat operand: %w", err)
		}
	case n.Ref != "":
		if _, ok := l.Patterns[n.Ref]; !ok {
			return fmt.Errorf("ref %q not found in patterns", n.Ref)
		}
	}
	return nil
}

// Compile validates the lexicon and builds every named pattern, resolving
// refs in dependency order. Domain conflicts and other construction errors
// surface from the derivx constructors with the pattern name attached.
func (l *Lexicon) Compile() (map[string]derivx.Regex, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	c := &compiler{
		lex:      l,
		built:    make(map[string]derivx.Regex, len(l.Patterns)),
		building: make(map[string]bool),
	}
	for name := range l.Patterns {
		if _, err := c.pattern(name); err != nil {
			return nil, err
		}
	}
	return c.built, nil
}

// CompilePattern compiles a single named pattern along with everything it
// references.
func (l *Lexicon) CompilePattern(name string) (derivx.Regex, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if _, ok := l.Patterns[name]; !ok {
		return nil, fmt.Errorf("pattern %q not found", name)
	}
	c := &compiler{
		lex:      l,
		built:    make(map[string]derivx.Regex),
		building: make(map[string]bool),
	}
	return c.pattern(name)
}

type compiler struct {
	lex      *Lexicon
	built    map[string]derivx.Regex
	building map[string]bool
}

func (c *compiler) pattern(name string) (derivx.Regex, error) {
	if re, ok := c.built[name]; ok {
		return re, nil
	}
	if c.building[name] {
		return nil, fmt.Errorf("%w: pattern %q refers back to itself", ErrCycle, name)
	}
	c.building[name] = true
	re, err := c.node(c.lex.Patterns[name])
	c.building[name] = false
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", name, err)
	}
	c.built[name] = re
	return re, nil
}

func (c *compiler) node(n *Node) (derivx.Regex, error) {
	switch {
	case n.Literal != nil:
		return derivx.Text(*n.Literal), nil
	case n.BytesHex != nil:
		raw, err := hex.DecodeString(*n.BytesHex)
		if err != nil {
			return nil, fmt.Errorf("bytes %q: %w", *n.BytesHex, err)
		}
		return derivx.Bytes(raw), nil
	case n.Any:
		return derivx.AnySymbol, nil
	case n.Union != nil:
		options := make([]any, len(n.Union))
		for i, opt := range n.Union {
			re, err := c.node(opt)
			if err != nil {
				return nil, err
			}
			options[i] = re
		}
		return derivx.Union(options...)
	case n.Concat != nil:
		parts := make([]any, len(n.Concat))
		for i, part := range n.Concat {
			re, err := c.node(part)
			if err != nil {
				return nil, err
			}
			parts[i] = re
		}
		return derivx.Join(parts...)
	case n.Star != nil:
		inner, err := c.node(n.Star)
		if err != nil {
			return nil, err
		}
		return derivx.Star(inner)
	case n.Plus != nil:
		inner, err := c.node(n.Plus)
		if err != nil {
			return nil, err
		}
		return derivx.NewPattern(inner).Plus().Regex()
	case n.Maybe != nil:
		inner, err := c.node(n.Maybe)
		if err != nil {
			return nil, err
		}
		return derivx.NewPattern(inner).Maybe().Regex()
	case n.Repeat != nil:
		inner, err := c.node(n.Repeat.Of)
		if err != nil {
			return nil, err
		}
		count, err := cast.ToIntE(n.Repeat.Count)
		if err != nil {
			return nil, fmt.Errorf("repeat count %v: %w", n.Repeat.Count, err)
		}
		return derivx.Repeat(inner, count)
	case n.Ref != "":
		return c.pattern(n.Ref)
	default:
		return nil, errors.New("node specifies no form")
	}
}
