package reflection

import "testing"

func twoRuleSet() RuleSet {
	return RuleSet{
		Rules: []Rule{
			{Pattern: "CGA", Response: "first", Effects: []TraitEffect{{Trait: "a", Value: "1"}}},
			{Pattern: "AG-GCTA", Response: "second", Effects: []TraitEffect{{Trait: "b", Value: "2"}}},
		},
		Fallback: Fallback{Response: "fallback", Effects: []TraitEffect{{Trait: "c", Value: "3"}}},
	}
}

func TestReflectSubstringMatch(t *testing.T) {
	// "AG-GCTA-GAC" does not contain "CGA"; the second rule is the first
	// whose pattern is a substring.
	out := Reflect("AG-GCTA-GAC", twoRuleSet())
	if !out.Matched {
		t.Fatal("expected a rule match")
	}
	if out.Pattern != "AG-GCTA" || out.Response != "second" {
		t.Fatalf("matched %q (%q), want AG-GCTA", out.Pattern, out.Response)
	}
}

func TestReflectFirstMatchWins(t *testing.T) {
	// Both patterns are present; the earlier rule must win.
	out := Reflect("CGA-AG-GCTA", twoRuleSet())
	if out.Pattern != "CGA" || out.Response != "first" {
		t.Fatalf("matched %q, want CGA (order-sensitive)", out.Pattern)
	}
}

func TestReflectFallback(t *testing.T) {
	out := Reflect("GC-ACT", twoRuleSet())
	if out.Matched {
		t.Fatal("expected fallback, got a match")
	}
	if out.Response != "fallback" || out.Pattern != "" {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if len(out.Effects) != 1 || out.Effects[0].Trait != "c" {
		t.Fatalf("fallback effects = %+v", out.Effects)
	}
}

func TestReflectEffectOrderPreserved(t *testing.T) {
	set := RuleSet{
		Rules: []Rule{{
			Pattern:  "X",
			Response: "r",
			Effects: []TraitEffect{
				{Trait: "mood", Value: "low"},
				{Trait: "mood", Value: "high"},
			},
		}},
	}
	out := Reflect("X", set)
	if out.Effects[0].Value != "low" || out.Effects[1].Value != "high" {
		t.Fatal("effect order must follow the rule definition")
	}
}

func TestReflectEmptyRules(t *testing.T) {
	set := RuleSet{Fallback: Fallback{Response: "only"}}
	out := Reflect("anything", set)
	if out.Matched || out.Response != "only" {
		t.Fatalf("unexpected outcome %+v", out)
	}
}
