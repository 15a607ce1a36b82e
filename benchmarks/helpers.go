// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/comalice/derivx"
	"github.com/comalice/derivx/lexicon"
)

// GenLiteralText returns n characters cycling through the lowercase alphabet.
func GenLiteralText(n int) string {
	if n < 1 {
		n = 1
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = 'a' + byte(i%26)
	}
	return string(buf)
}

// GenLiteral builds a literal expression of n symbols.
func GenLiteral(n int) derivx.Regex {
	return derivx.Text(GenLiteralText(n))
}

// GenWords returns n distinct lowercase words sharing a first symbol, so
// deriving that symbol touches every word.
func GenWords(n int) []string {
	if n < 1 {
		n = 1
	}
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	return words
}

// GenAlternatives builds a union over n generated words.
func GenAlternatives(n int) derivx.Regex {
	words := GenWords(n)
	operands := make([]any, len(words))
	for i, w := range words {
		operands[i] = w
	}
	re, err := derivx.Union(operands...)
	if err != nil {
		panic(err)
	}
	return re
}

// GenNested builds depth alternating layers of star and concat-with-union
// around a seed literal, so each derivative rewrites structure at every level.
func GenNested(depth int) derivx.Regex {
	if depth < 1 {
		depth = 1
	}
	re := derivx.Text("ab")
	for i := 0; i < depth; i++ {
		if i%2 == 0 {
			re = derivx.Must(derivx.Star(re))
		} else {
			re = derivx.Must(derivx.Concat(re, derivx.Must(derivx.Union('a', re))))
		}
	}
	return re
}

// GenInput returns n characters alternating between a and b.
func GenInput(n int) string {
	if n < 1 {
		n = 1
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = 'a' + byte(i%2)
	}
	return string(buf)
}

// GenLexicon builds n literal patterns plus a union pattern referring to all
// of them.
func GenLexicon(n int) *lexicon.Lexicon {
	if n < 1 {
		n = 1
	}
	lex := lexicon.NewLexicon()
	refs := make([]*lexicon.Node, 0, n)
	for i, w := range GenWords(n) {
		name := fmt.Sprintf("word%d", i)
		lex.Add(name, lexicon.Lit(w))
		refs = append(refs, lexicon.Ref(name))
	}
	lex.Add("any_word", lexicon.UnionOf(refs...))
	return lex
}

// GenLexiconYAML renders a generated lexicon to YAML bytes.
func GenLexiconYAML(n int) []byte {
	data, err := yaml.Marshal(GenLexicon(n))
	if err != nil {
		panic(err)
	}
	return data
}
