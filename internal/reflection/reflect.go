package reflection

import "strings"

// #region reflect

// Reflect matches input against the rule set in order. A rule matches when
// its pattern is a literal substring of the input: no regex, no
// tokenization. The first match short-circuits; overlapping later rules
// are unreachable by design. When nothing matches, the fallback fires.
func Reflect(input string, set RuleSet) Outcome {
	for _, r := range set.Rules {
		if strings.Contains(input, r.Pattern) {
			return Outcome{
				Response: r.Response,
				Effects:  r.Effects,
				Matched:  true,
				Pattern:  r.Pattern,
			}
		}
	}
	return Outcome{
		Response: set.Fallback.Response,
		Effects:  set.Fallback.Effects,
	}
}

// #endregion reflect
