package lexicon

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/comalice/derivx/internal/json"
)

// ComputeVersion returns a version stamp for a lexicon. A caller provided
// Version wins; otherwise the serialized pattern definitions are hashed,
// so two documents defining the same patterns stamp identically.
func ComputeVersion(lex *Lexicon) string {
	if lex.Version != "" {
		return lex.Version
	}
	data, err := json.Marshal(lex.Patterns)
	if err != nil {
		// Unreachable for definition trees, which hold only plain data.
		return fmt.Sprintf("invalid-%d", time.Now().Unix())
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
