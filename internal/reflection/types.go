package reflection

// #region imports
import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// #endregion

// #region trait-effect

// TraitEffect is a single-key trait assignment carried by a rule outcome.
// Serialized in YAML as a one-entry mapping, e.g. `- curiosity: rising`.
type TraitEffect struct {
	Trait string
	Value string
}

// MarshalYAML renders the effect as a single-key mapping.
func (e TraitEffect) MarshalYAML() (interface{}, error) {
	return map[string]string{e.Trait: e.Value}, nil
}

// UnmarshalYAML reads a single-key mapping.
func (e *TraitEffect) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("trait effect must be a single-key mapping (line %d)", node.Line)
	}
	e.Trait = node.Content[0].Value
	e.Value = node.Content[1].Value
	return nil
}

// #endregion trait-effect

// #region rule

// Rule maps a literal substring pattern to a response and a set of trait
// effects. Rules are ordered; the first structural match wins.
type Rule struct {
	Pattern  string        `yaml:"contains"`
	Response string        `yaml:"response"`
	Effects  []TraitEffect `yaml:"traits_influenced"`
}

// Fallback is the pattern-less rule used when nothing matches.
type Fallback struct {
	Response string        `yaml:"response"`
	Effects  []TraitEffect `yaml:"traits_influenced"`
}

// RuleSet is an ordered rule list plus its explicit fallback.
type RuleSet struct {
	Rules    []Rule   `yaml:"triggers"`
	Fallback Fallback `yaml:"fallback"`
}

// #endregion rule

// #region outcome

// Outcome is what reflection returns for one input. The engine never
// mutates trait state itself; callers apply Effects.
type Outcome struct {
	Response string
	Effects  []TraitEffect
	Matched  bool   // false when the fallback fired
	Pattern  string // the winning pattern, empty for fallback
}

// #endregion outcome
