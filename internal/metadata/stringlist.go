package metadata

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/insectengine/search.quarkus.io/internal/util/sets"
)

// StringList decodes a multi-valued YAML field that historically appears
// either as a comma-separated scalar ("web, rest") or as a proper sequence.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var raw string
		if err := node.Decode(&raw); err != nil {
			return err
		}
		*l = sets.SortedStrings(sets.FromCommaList(raw))
		return nil
	case yaml.SequenceNode:
		var vals []string
		if err := node.Decode(&vals); err != nil {
			return err
		}
		out := sets.Set[string]{}
		for _, v := range vals {
			for m := range sets.FromCommaList(v) {
				out.Add(m)
			}
		}
		*l = sets.SortedStrings(out)
		return nil
	default:
		return fmt.Errorf("line %d: cannot decode %v into a string list", node.Line, node.Kind)
	}
}

// ToSet converts the list into a set.
func (l StringList) ToSet() sets.Set[string] {
	return sets.New(l...)
}
