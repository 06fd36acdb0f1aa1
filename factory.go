package datatables

import (
	"iter"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Pair is a single key/value entry of an ordered options source.
type Pair struct {
	Key   string
	Value any
}

// Pairs is an ordered options source. Entries are applied in slice order.
type Pairs []Pair

// Mapping is an unordered options source. Entries are applied in the order
// returned by OptionKeys.
type Mapping map[string]any

// Build returns a TableConfig populated from src.
//
// src must be one of:
//   - map[string]any or Mapping
//   - []Pair or Pairs
//   - iter.Seq2[string, any] (or a func with the same signature)
//   - *yaml.Node holding a mapping, or a document whose root is a mapping
//
// Any other shape fails with an *InvalidInputError. A key without a matching
// option fails with an *UnknownOptionError, and a value that cannot be
// converted to its option's type with an *InvalidInputError naming the key.
// Build never returns a partially populated configuration.
func Build(src any) (*TableConfig, error) {
	pairs, err := normalize(src)
	if err != nil {
		return nil, err
	}

	cfg := NewTableConfig()
	for _, p := range pairs {
		if err := cfg.Set(p.Key, p.Value); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// MustBuild is like Build but panics if src cannot be applied.
func MustBuild(src any) *TableConfig {
	cfg, err := Build(src)
	if err != nil {
		panic(err)
	}
	return cfg
}

// normalize turns every accepted input shape into an ordered list of pairs.
func normalize(src any) ([]Pair, error) {
	switch v := src.(type) {
	case map[string]any:
		return mappingPairs(v), nil
	case Mapping:
		return mappingPairs(v), nil
	case []Pair:
		return v, nil
	case Pairs:
		return v, nil
	case iter.Seq2[string, any]:
		return seqPairs(v), nil
	case func(func(string, any) bool):
		return seqPairs(v), nil
	case *yaml.Node:
		if v == nil {
			break
		}
		return nodePairs(v)
	case yaml.Node:
		return nodePairs(&v)
	}
	return nil, &InvalidInputError{Got: typeName(src)}
}

// mappingPairs orders m by the option table. Keys without an option are
// appended in sorted order so the reported unknown key is stable.
func mappingPairs(m map[string]any) []Pair {
	pairs := make([]Pair, 0, len(m))
	for _, o := range optionTable {
		if v, ok := m[o.key]; ok {
			pairs = append(pairs, Pair{Key: o.key, Value: v})
		}
	}
	if len(pairs) == len(m) {
		return pairs
	}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if _, ok := optionIndex[k]; !ok {
			pairs = append(pairs, Pair{Key: k, Value: m[k]})
		}
	}
	return pairs
}

func seqPairs(seq iter.Seq2[string, any]) []Pair {
	var pairs []Pair
	for k, v := range seq {
		pairs = append(pairs, Pair{Key: k, Value: v})
	}
	return pairs
}
