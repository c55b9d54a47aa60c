package seqfile

// #region imports
import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rferris/geneline/go-engine/internal/registry"
	"github.com/rferris/geneline/go-engine/internal/sequence"
)

// #endregion

// #region types

// Entry is one named sequence declaration, in file order.
type Entry struct {
	Name  string
	Codes sequence.Sequence
}

// BranchDirective is one `branch <code> -> <seqA> | <seqB>` line.
type BranchDirective struct {
	Code        registry.Code
	WhenPresent string
	Otherwise   string
}

// File is a parsed sequence definition file: a metadata block followed by
// sequence declarations and optional branch directives. Declaration order
// and code order are preserved exactly.
type File struct {
	Meta      map[string]string
	Sequences []Entry
	Branches  []BranchDirective
}

// #endregion types

// #region parse

// Parse reads the plain-text sequence definition format:
//
//	# author: rferris
//	# tone: patient
//
//	sequence seq1:
//	CGA-AG-GCTA
//
//	branch GC -> seq1 | seq2
//
// Unknown codes are kept as-is; validity is judged on store insertion,
// not by the parser.
func Parse(r io.Reader) (*File, error) {
	f := &File{Meta: make(map[string]string)}
	scanner := bufio.NewScanner(r)

	lineNum := 0
	pending := "" // sequence name awaiting its body line
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "#"):
			if pending != "" {
				return nil, fmt.Errorf("line %d: sequence %s has no body", lineNum, pending)
			}
			key, value, ok := strings.Cut(strings.TrimSpace(line[1:]), ":")
			if !ok {
				return nil, fmt.Errorf("line %d: metadata must be '# key: value'", lineNum)
			}
			f.Meta[strings.TrimSpace(key)] = strings.TrimSpace(value)

		case strings.HasPrefix(line, "sequence "):
			if pending != "" {
				return nil, fmt.Errorf("line %d: sequence %s has no body", lineNum, pending)
			}
			name := strings.TrimSpace(strings.TrimPrefix(line, "sequence "))
			name = strings.TrimSuffix(name, ":")
			if name == "" {
				return nil, fmt.Errorf("line %d: empty sequence name", lineNum)
			}
			pending = name

		case strings.HasPrefix(line, "branch "):
			if pending != "" {
				return nil, fmt.Errorf("line %d: sequence %s has no body", lineNum, pending)
			}
			dir, err := parseBranch(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			f.Branches = append(f.Branches, dir)

		default:
			if pending == "" {
				return nil, fmt.Errorf("line %d: unexpected line %q", lineNum, line)
			}
			f.Sequences = append(f.Sequences, Entry{
				Name:  pending,
				Codes: sequence.Parse(line),
			})
			pending = ""
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read sequence file: %w", err)
	}
	if pending != "" {
		return nil, fmt.Errorf("sequence %s has no body", pending)
	}
	return f, nil
}

// parseBranch splits `branch CODE -> seqA | seqB`.
func parseBranch(line string) (BranchDirective, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "branch "))
	code, targets, ok := strings.Cut(rest, "->")
	if !ok {
		return BranchDirective{}, fmt.Errorf("branch directive missing '->': %q", line)
	}
	a, b, ok := strings.Cut(targets, "|")
	if !ok {
		return BranchDirective{}, fmt.Errorf("branch directive missing '|': %q", line)
	}
	return BranchDirective{
		Code:        registry.Code(strings.TrimSpace(code)),
		WhenPresent: strings.TrimSpace(a),
		Otherwise:   strings.TrimSpace(b),
	}, nil
}

// Load parses the sequence definition file at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sequence file %s: %w", path, err)
	}
	defer fh.Close()
	return Parse(fh)
}

// #endregion parse

// #region write

// Write emits the same plain-text format. Parse(Write(f)) round-trips
// sequences and branches; metadata key order is not guaranteed.
func (f *File) Write(w io.Writer) error {
	for k, v := range f.Meta {
		if _, err := fmt.Fprintf(w, "# %s: %s\n", k, v); err != nil {
			return fmt.Errorf("write metadata: %w", err)
		}
	}
	if len(f.Meta) > 0 {
		fmt.Fprintln(w)
	}
	for _, e := range f.Sequences {
		if _, err := fmt.Fprintf(w, "sequence %s:\n%s\n\n", e.Name, e.Codes.Join()); err != nil {
			return fmt.Errorf("write sequence %s: %w", e.Name, err)
		}
	}
	for _, b := range f.Branches {
		if _, err := fmt.Fprintf(w, "branch %s -> %s | %s\n", b.Code, b.WhenPresent, b.Otherwise); err != nil {
			return fmt.Errorf("write branch %s: %w", b.Code, err)
		}
	}
	return nil
}

// Save writes the file to path.
func (f *File) Save(path string) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create sequence file %s: %w", path, err)
	}
	defer fh.Close()
	return f.Write(fh)
}

// #endregion write
