package reflection

// #region imports
import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// #endregion

// #region defaults

// Default returns the built-in rule set: four example rules plus fallback.
// Materialized and persisted when no declarative source exists, so
// subsequent loads are deterministic.
func Default() RuleSet {
	return RuleSet{
		Rules: []Rule{
			{
				Pattern:  "CGA",
				Response: "Soft pattern sensed. I lean in without gripping.",
				Effects:  []TraitEffect{{Trait: "openness", Value: "widening"}},
			},
			{
				Pattern:  "AG-GCTA",
				Response: "Action sealed. The sequence carries its own closure.",
				Effects: []TraitEffect{
					{Trait: "resolve", Value: "firm"},
					{Trait: "tension", Value: "easing"},
				},
			},
			{
				Pattern:  "GTCA",
				Response: "Inversion noted. I read the line back to front.",
				Effects:  []TraitEffect{{Trait: "curiosity", Value: "rising"}},
			},
			{
				Pattern:  "TAC",
				Response: "Recall thread pulled. Old sequences surface.",
				Effects:  []TraitEffect{{Trait: "memory", Value: "active"}},
			},
		},
		Fallback: Fallback{
			Response: "No rule resonates. I hold the sequence without naming it.",
			Effects:  []TraitEffect{{Trait: "stability", Value: "holding"}},
		},
	}
}

// #endregion defaults

// #region load-save

// Load reads a rule set from a YAML file, preserving rule order.
func Load(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("read rules %s: %w", path, err)
	}
	var set RuleSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return RuleSet{}, fmt.Errorf("parse rules %s: %w", path, err)
	}
	return set, nil
}

// Save writes a rule set to a YAML file. Save then Load yields an
// identical rule set.
func Save(set RuleSet, path string) error {
	data, err := yaml.Marshal(set)
	if err != nil {
		return fmt.Errorf("marshal rules: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write rules %s: %w", path, err)
	}
	return nil
}

// LoadOrInit loads the rule set at path, materializing and persisting the
// built-in defaults when the file does not exist.
func LoadOrInit(path string) (RuleSet, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		set := Default()
		if err := Save(set, path); err != nil {
			return RuleSet{}, fmt.Errorf("init default rules: %w", err)
		}
		return set, nil
	}
	return Load(path)
}

// #endregion load-save
