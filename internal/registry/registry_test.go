package registry

import "testing"

func TestDescribeRegistered(t *testing.T) {
	d, ok := Describe(CodeCommit)
	if !ok {
		t.Fatal("expected commit code to be registered")
	}
	if d == "" {
		t.Fatal("expected non-empty description")
	}
}

func TestDescribeUnregistered(t *testing.T) {
	_, ok := Describe(Code("XYZ"))
	if ok {
		t.Fatal("expected unregistered code to report absence")
	}
}

func TestIsRegistered(t *testing.T) {
	for _, c := range All() {
		if !IsRegistered(c) {
			t.Fatalf("code %s missing from registry", c)
		}
	}
	if IsRegistered(Code("")) {
		t.Fatal("empty code must not be registered")
	}
}

func TestAllStableOrder(t *testing.T) {
	a := All()
	b := All()
	if len(a) != 8 {
		t.Fatalf("expected 8 codes, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("order differs at %d: %s vs %s", i, a[i], b[i])
		}
	}

	// All must return a copy, not the backing slice.
	a[0] = Code("MUTATED")
	if All()[0] == Code("MUTATED") {
		t.Fatal("All leaked internal slice")
	}
}
