package datatables

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML options document from r and builds a TableConfig from
// it. Keys are applied in document order. An empty document yields the
// defaults.
func Load(r io.Reader) (*TableConfig, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return NewTableConfig(), nil
		}
		return nil, fmt.Errorf("decode options: %w", err)
	}
	return Build(&doc)
}

// LoadFile is Load for the file at path.
func LoadFile(path string) (*TableConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open options file: %w", err)
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// nodePairs flattens a YAML mapping node into pairs, keeping document order.
// Values are decoded into plain Go values.
func nodePairs(n *yaml.Node) ([]Pair, error) {
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil, nil
		}
		n = n.Content[0]
	}
	if n.Kind != yaml.MappingNode {
		return nil, &InvalidInputError{Got: "yaml " + nodeKindName(n.Kind)}
	}

	pairs := make([]Pair, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		var key string
		if err := n.Content[i].Decode(&key); err != nil {
			return nil, &InvalidInputError{Got: "yaml key", Err: err}
		}
		var value any
		if err := n.Content[i+1].Decode(&value); err != nil {
			return nil, &InvalidInputError{Key: key, Got: "yaml " + nodeKindName(n.Content[i+1].Kind), Err: err}
		}
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	return pairs, nil
}

func nodeKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "node"
}
