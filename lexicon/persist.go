package lexicon

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/derivx/internal/json"
)

// Parse decodes a YAML lexicon. The result is not yet validated; callers
// that skip LoadFile run Validate themselves or rely on Compile doing it.
func Parse(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return &lex, nil
}

// ParseJSON decodes a JSON lexicon.
func ParseJSON(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := json.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return &lex, nil
}

// LoadFile reads and validates a lexicon, choosing the format by extension:
// .json decodes as JSON, everything else as YAML.
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var lex *Lexicon
	if strings.EqualFold(filepath.Ext(path), ".json") {
		lex, err = ParseJSON(data)
	} else {
		lex, err = Parse(data)
	}
	if err != nil {
		return nil, err
	}

	if err := lex.Validate(); err != nil {
		return nil, fmt.Errorf("validation after load: %w", err)
	}
	return lex, nil
}

// SaveFile writes the lexicon, choosing the format by extension the same
// way LoadFile does. A missing Version is stamped from the content first.
func (l *Lexicon) SaveFile(path string) error {
	out := *l
	if out.Version == "" {
		out.Version = ComputeVersion(l)
	}

	var data []byte
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(&out, "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
	} else {
		data, err = yaml.Marshal(&out)
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
