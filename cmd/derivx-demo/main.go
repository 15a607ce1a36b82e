package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/comalice/derivx"
	"github.com/comalice/derivx/graph"
	"github.com/comalice/derivx/lexicon"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-lexicon FILE] [-pattern NAME] [-dot] [-limit N] [INPUT...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  -lexicon FILE lexicon file to load (YAML or JSON)\n")
		fmt.Fprintf(os.Stderr, "  -pattern NAME pattern to use from the lexicon\n")
		fmt.Fprintf(os.Stderr, "  -dot          print the derivative automaton as Graphviz DOT and exit\n")
		fmt.Fprintf(os.Stderr, "  -limit N      state limit for automaton exploration (default %d)\n", graph.DefaultLimit)
		fmt.Fprintf(os.Stderr, "\nWithout INPUT arguments, lines from stdin are matched.\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s \"spam, eggs\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -lexicon words.yaml -pattern phrase -dot\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  cat inputs.txt | %s -lexicon words.yaml -pattern phrase\n", os.Args[0])
	}
	lexPath := flag.String("lexicon", "", "lexicon file to load (YAML or JSON)")
	patName := flag.String("pattern", "", "pattern to use from the lexicon")
	dotOut := flag.Bool("dot", false, "print the derivative automaton as Graphviz DOT and exit")
	limit := flag.Int("limit", graph.DefaultLimit, "state limit for automaton exploration")
	flag.Parse()

	re, label, err := resolvePattern(*lexPath, *patName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resolve pattern: %v\n", err)
		os.Exit(1)
	}

	if *dotOut {
		g, err := graph.Explore(re, *limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to explore automaton: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(g.DOT())
		return
	}

	if args := flag.Args(); len(args) > 0 {
		for _, input := range args {
			fmt.Printf("%q => %v\n", input, derivx.MatchString(re, input))
		}
		return
	}

	fmt.Printf("Matching lines against %s\n", label)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		fmt.Printf("%q => %v\n", line, derivx.MatchString(re, line))
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read stdin: %v\n", err)
		os.Exit(1)
	}
}

// resolvePattern loads the requested pattern, falling back to a built-in
// demonstration pattern when no lexicon is given.
func resolvePattern(path, name string) (derivx.Regex, string, error) {
	if path == "" {
		term := derivx.Must(derivx.Union("spam", "eggs"))
		rest := derivx.Must(derivx.Star(derivx.Must(derivx.Concat(", ", term))))
		re := derivx.Must(derivx.Concat(term, rest))
		return re, fmt.Sprintf("built-in pattern %s", re), nil
	}

	lex, err := lexicon.LoadFile(path)
	if err != nil {
		return nil, "", err
	}
	if name == "" {
		if len(lex.Patterns) != 1 {
			return nil, "", fmt.Errorf("the lexicon defines %d patterns, pick one with -pattern", len(lex.Patterns))
		}
		for n := range lex.Patterns {
			name = n
		}
	}
	re, err := lex.CompilePattern(name)
	if err != nil {
		return nil, "", err
	}
	return re, fmt.Sprintf("pattern %q from %s", name, path), nil
}
