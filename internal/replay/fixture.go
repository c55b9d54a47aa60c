package replay

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rferris/geneline/go-engine/internal/mutation"
	"github.com/rferris/geneline/go-engine/internal/registry"
	"github.com/rferris/geneline/go-engine/internal/sequence"
)

// #endregion

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a starting
// working set plus scripted mutation steps and expected outcomes.
type Fixture struct {
	Description string            `json:"description"`
	Seed        int64             `json:"seed"`
	Sequences   []FixtureSequence `json:"sequences"`
	Steps       []FixtureStep     `json:"steps"`
	Expected    []string          `json:"expected,omitempty"` // action per step
}

// FixtureSequence is one named starting sequence.
type FixtureSequence struct {
	Name  string   `json:"name"`
	Codes []string `json:"codes"`
}

// FixtureStep is one scripted mutation attempt.
type FixtureStep struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToSequence converts a fixture sequence to its domain form.
func (fs *FixtureSequence) ToSequence() sequence.Sequence {
	out := make(sequence.Sequence, len(fs.Codes))
	for i, c := range fs.Codes {
		out[i] = registry.Code(c)
	}
	return out
}

// ToKind converts a fixture step kind string to a mutation kind.
func (fs *FixtureStep) ToKind() mutation.Kind {
	return mutation.Kind(fs.Kind)
}

// #endregion fixture-loader
