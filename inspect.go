package derivx

// Symbols returns the distinct concrete symbols mentioned anywhere in re,
// in first-encounter order of a left-to-right walk. Together with
// UsesAnySymbol it tells a consumer which inputs can possibly advance a
// match, which is what drives the edge set of a derivative automaton.
func Symbols(re Regex) []Symbol {
	var out []Symbol
	seen := make(map[Symbol]struct{})
	walkSymbols(re, func(sym Symbol) {
		if _, ok := seen[sym]; ok {
			return
		}
		seen[sym] = struct{}{}
		out = append(out, sym)
	})
	return out
}

func walkSymbols(re Regex, visit func(Symbol)) {
	switch x := re.(type) {
	case *symbolRegex:
		visit(x.sym)
	case *unionRegex:
		for _, m := range x.options.members {
			walkSymbols(m, visit)
		}
	case *concatRegex:
		walkSymbols(x.prefix, visit)
		walkSymbols(x.suffix, visit)
	case *starRegex:
		walkSymbols(x.inner, visit)
	case *repeatRegex:
		walkSymbols(x.inner, visit)
	}
}

// UsesAnySymbol reports whether re contains the AnySymbol wildcard. When it
// does, symbols outside Symbols(re) can advance a match too, and they all
// advance it identically.
func UsesAnySymbol(re Regex) bool {
	switch x := re.(type) {
	case *anySymbolRegex:
		return true
	case *unionRegex:
		for _, m := range x.options.members {
			if UsesAnySymbol(m) {
				return true
			}
		}
	case *concatRegex:
		return UsesAnySymbol(x.prefix) || UsesAnySymbol(x.suffix)
	case *starRegex:
		return UsesAnySymbol(x.inner)
	case *repeatRegex:
		return UsesAnySymbol(x.inner)
	}
	return false
}
