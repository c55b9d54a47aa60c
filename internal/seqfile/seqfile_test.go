package seqfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rferris/geneline/go-engine/internal/registry"
)

const sampleFile = `# author: rferris
# tags: demo, baseline
# tone: patient

sequence seq1:
CGA-AG-GCTA

sequence seq2:
TAC-AG-GCTA-ACT

branch GC -> seq1 | seq2
`

func TestParseSample(t *testing.T) {
	f, err := Parse(strings.NewReader(sampleFile))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if f.Meta["author"] != "rferris" || f.Meta["tone"] != "patient" {
		t.Fatalf("metadata = %v", f.Meta)
	}
	if len(f.Sequences) != 2 {
		t.Fatalf("sequences = %d, want 2", len(f.Sequences))
	}
	if f.Sequences[0].Name != "seq1" || f.Sequences[0].Codes.Join() != "CGA-AG-GCTA" {
		t.Fatalf("seq1 = %+v", f.Sequences[0])
	}
	if f.Sequences[1].Codes.Join() != "TAC-AG-GCTA-ACT" {
		t.Fatalf("seq2 code order lost: %s", f.Sequences[1].Codes.Join())
	}
	if len(f.Branches) != 1 {
		t.Fatalf("branches = %d, want 1", len(f.Branches))
	}
	b := f.Branches[0]
	if b.Code != registry.CodeBranch || b.WhenPresent != "seq1" || b.Otherwise != "seq2" {
		t.Fatalf("branch = %+v", b)
	}
}

func TestParsePreservesDeclarationOrder(t *testing.T) {
	doc := "sequence z:\nGCTA\n\nsequence a:\nAG-GCTA\n"
	f, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Sequences[0].Name != "z" || f.Sequences[1].Name != "a" {
		t.Fatalf("declaration order lost: %+v", f.Sequences)
	}
}

func TestParseKeepsUnknownCodes(t *testing.T) {
	// Validity is the store's concern, not the parser's.
	f, err := Parse(strings.NewReader("sequence odd:\nCGA-ZZZ-GCTA\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Sequences[0].Codes.Join() != "CGA-ZZZ-GCTA" {
		t.Fatalf("codes = %s", f.Sequences[0].Codes.Join())
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"missing body", "sequence seq1:\n"},
		{"body interrupted by branch", "sequence seq1:\nbranch GC -> a | b\n"},
		{"stray line", "CGA-AG\n"},
		{"bad metadata", "# justakey\n"},
		{"branch missing arrow", "branch GC seq1 | seq2\n"},
		{"branch missing pipe", "branch GC -> seq1 seq2\n"},
		{"empty name", "sequence :\nGCTA\n"},
	}
	for _, tc := range cases {
		if _, err := Parse(strings.NewReader(tc.doc)); err == nil {
			t.Errorf("%s: expected parse error", tc.name)
		}
	}
}

func TestWriteParseRoundTrip(t *testing.T) {
	f, err := Parse(strings.NewReader(sampleFile))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	back, err := Parse(&buf)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if len(back.Sequences) != len(f.Sequences) {
		t.Fatalf("sequences = %d, want %d", len(back.Sequences), len(f.Sequences))
	}
	for i := range f.Sequences {
		if back.Sequences[i].Name != f.Sequences[i].Name ||
			back.Sequences[i].Codes.Join() != f.Sequences[i].Codes.Join() {
			t.Fatalf("sequence %d differs: %+v vs %+v", i, back.Sequences[i], f.Sequences[i])
		}
	}
	if len(back.Branches) != 1 || back.Branches[0] != f.Branches[0] {
		t.Fatalf("branches differ: %+v", back.Branches)
	}
	if back.Meta["author"] != "rferris" {
		t.Fatalf("metadata lost: %v", back.Meta)
	}
}
