package input

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

func decodeTOML(r io.Reader) ([]any, error) {
	var v map[string]any
	if err := toml.NewDecoder(r).Decode(&v); err != nil {
		return nil, fmt.Errorf("toml: %w", err)
	}
	return []any{v}, nil
}
