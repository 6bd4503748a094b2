package input

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func decodeYAML(r io.Reader) ([]any, error) {
	dec := yaml.NewDecoder(r)
	var docs []any
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
		docs = append(docs, v)
	}
}
