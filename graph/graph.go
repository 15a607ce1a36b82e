// Package graph explores the derivative automaton of an expression and
// renders it for inspection.
//
// Repeated derivation visits finitely many distinct residual expressions
// once values are canonical. Each residual is a state, consuming a symbol
// is an edge, and residuals accepting the empty string are accepting
// states. Edges into the dead state are omitted: a missing edge means the
// symbol rejects.
package graph

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/comalice/derivx"
	"github.com/comalice/derivx/internal/json"
)

// DefaultLimit bounds exploration when the caller passes no limit.
const DefaultLimit = 256

// ErrLimit reports an exploration that exceeded its state limit.
var ErrLimit = errors.New("state limit exceeded")

// State is one distinct derivative.
type State struct {
	ID        int    `json:"id"`
	Pattern   string `json:"pattern"`
	Accepting bool   `json:"accepting"`
}

// Edge is one symbol consumption between states.
type Edge struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Label string `json:"label"`
}

// Graph is the explored automaton. State zero is always the start
// expression; Start is carried explicitly for serialized consumers.
type Graph struct {
	Start  int     `json:"start"`
	States []State `json:"states"`
	Edges  []Edge  `json:"edges"`
}

// Explore derives re repeatedly until no new residuals appear, visiting
// every symbol the expression mentions plus, when the expression contains
// the wildcard, one representative symbol outside that set (all outside
// symbols derive identically, so one edge stands for the rest). A limit
// of zero or less means DefaultLimit; exceeding the limit fails with
// ErrLimit.
func Explore(re derivx.Regex, limit int) (*Graph, error) {
	if re == nil {
		return nil, errors.New("nil expression")
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	symbols := derivx.Symbols(re)
	wildcard := derivx.UsesAnySymbol(re)

	e := &explorer{limit: limit, index: make(map[uint64][]int)}
	start, _, err := e.intern(re)
	if err != nil {
		return nil, err
	}

	queue := []int{start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		val := e.values[id]

		for _, sym := range symbols {
			next := val.Derive(sym)
			if next == derivx.Null {
				continue
			}
			nid, isNew, err := e.intern(next)
			if err != nil {
				return nil, err
			}
			e.edges = append(e.edges, Edge{From: id, To: nid, Label: symbolLabel(sym)})
			if isNew {
				queue = append(queue, nid)
			}
		}

		if wildcard {
			next := val.Derive(derivx.Symbol{})
			if next != derivx.Null {
				nid, isNew, err := e.intern(next)
				if err != nil {
					return nil, err
				}
				e.edges = append(e.edges, Edge{From: id, To: nid, Label: "other"})
				if isNew {
					queue = append(queue, nid)
				}
			}
		}
	}

	return &Graph{Start: start, States: e.states, Edges: e.edges}, nil
}

type explorer struct {
	limit  int
	values []derivx.Regex
	states []State
	edges  []Edge
	index  map[uint64][]int
}

// intern returns the state for re, creating it when unseen. Distinct
// values sharing a hash fall into one index bucket and are told apart
// structurally.
func (e *explorer) intern(re derivx.Regex) (int, bool, error) {
	h := re.Hash()
	for _, id := range e.index[h] {
		if derivx.Equal(e.values[id], re) {
			return id, false, nil
		}
	}
	if len(e.values) >= e.limit {
		return 0, false, fmt.Errorf("%w: more than %d distinct derivatives", ErrLimit, e.limit)
	}
	id := len(e.values)
	e.values = append(e.values, re)
	e.index[h] = append(e.index[h], id)
	e.states = append(e.states, State{
		ID:        id,
		Pattern:   re.String(),
		Accepting: re.AcceptsEmptyString(),
	})
	return id, true, nil
}

// DOT generates Graphviz DOT source for the automaton. Accepting states
// render as double circles and an arrow from a point marks the start.
func (g *Graph) DOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph Derivatives {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle, fontsize=10];\n")
	buf.WriteString("  edge [fontsize=9];\n")
	buf.WriteString("  start [shape=point];\n")
	fmt.Fprintf(&buf, "  start -> s%d;\n", g.Start)

	for _, st := range g.States {
		shape := "circle"
		if st.Accepting {
			shape = "doublecircle"
		}
		fmt.Fprintf(&buf, "  s%d [shape=%s, label=\"%s\"];\n", st.ID, shape, dotEscape(st.Pattern))
	}
	for _, edge := range g.Edges {
		fmt.Fprintf(&buf, "  s%d -> s%d [label=\"%s\"];\n", edge.From, edge.To, dotEscape(edge.Label))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// JSON serializes the automaton.
func (g *Graph) JSON() ([]byte, error) {
	return json.MarshalIndent(g, "", "  ")
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func dotEscape(s string) string {
	return dotEscaper.Replace(s)
}

// symbolLabel renders an edge label: bare text for printable runes, hex
// for bytes and control characters.
func symbolLabel(sym derivx.Symbol) string {
	switch sym.Alphabet() {
	case derivx.AlphabetBinary:
		return fmt.Sprintf("0x%02x", sym.Rune())
	case derivx.AlphabetText:
		if unicode.IsPrint(sym.Rune()) {
			return string(sym.Rune())
		}
		return fmt.Sprintf("U+%04X", sym.Rune())
	default:
		return "other"
	}
}
