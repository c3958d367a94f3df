package labelset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/heliolabs/texlabel/pkg/label"
)

// =============================================================================
// Rendered - One Compiled Label
// =============================================================================

// Rendered is the wire form of one compiled label.
type Rendered struct {
	// Name is an optional caller-chosen identifier (e.g. the manifest key).
	Name string `json:"name,omitempty"`

	// Key is the canonical "m,c,s" form of the primary triple.
	Key string `json:"key"`

	// PerKey is the denominator triple for ratio labels, empty otherwise.
	PerKey string `json:"per_key,omitempty"`

	Tex       string `json:"tex"`
	Units     string `json:"units"`
	Path      string `json:"path"`
	WithUnits string `json:"with_units"`

	Description string `json:"description,omitempty"`
	Axnorm      string `json:"axnorm,omitempty"`
}

// FromLabel captures a compiled label into its wire form.
func FromLabel(name string, l *label.Label) Rendered {
	primary, per := l.MCS()
	r := Rendered{
		Name:        name,
		Key:         primary.String(),
		Tex:         l.Tex(),
		Units:       l.Units(),
		Path:        l.Path(),
		WithUnits:   l.WithUnits(),
		Description: l.Description(),
		Axnorm:      string(l.Axnorm()),
	}
	if per != nil {
		r.PerKey = per.String()
	}
	return r
}

// =============================================================================
// Set - Ordered Collection
// =============================================================================

// Set is an ordered collection of rendered labels.
type Set struct {
	Labels []Rendered `json:"labels"`
}

// Add appends a rendered label to the set.
func (s *Set) Add(r Rendered) {
	s.Labels = append(s.Labels, r)
}

// sorted returns a copy of the set with labels ordered by name, then path,
// then display form, for deterministic output.
func (s Set) sorted() Set {
	out := Set{Labels: slices.Clone(s.Labels)}
	slices.SortFunc(out.Labels, func(a, b Rendered) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		if c := strings.Compare(a.Path, b.Path); c != 0 {
			return c
		}
		return strings.Compare(a.WithUnits, b.WithUnits)
	})
	return out
}

// =============================================================================
// Serialization API
// =============================================================================

// Marshal converts a Set to JSON bytes with deterministic ordering.
func Marshal(s Set) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(s, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes JSON bytes into a Set.
func Unmarshal(data []byte) (Set, error) {
	return readFrom(bytes.NewReader(data))
}

// Write writes a Set as indented JSON to an io.Writer.
func Write(s Set, w io.Writer) error {
	return writeTo(s, w)
}

// WriteFile writes a Set to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(s Set, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(s, f)
}

// Read decodes a JSON Set from an io.Reader.
func Read(r io.Reader) (Set, error) {
	return readFrom(r)
}

// ReadFile reads a JSON file and returns the decoded Set.
func ReadFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return Set{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readFrom(f)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeTo(s Set, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.sorted()); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readFrom(r io.Reader) (Set, error) {
	var s Set
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Set{}, fmt.Errorf("decode: %w", err)
	}
	return s, nil
}
