// Package manifest loads TOML batch manifests for label rendering.
//
// A manifest names a collection of labels to compile, plus optional
// dictionary extensions consulted before the built-in tables:
//
//	[labels.vx]
//	m = "v"
//	c = "x"
//	s = "p"
//	description = "Proton bulk velocity"
//
//	[labels.vx_per_n]
//	m = "v"
//	c = "x"
//	s = "p"
//	per = "n,,p"
//
//	[species]
//	d = '\mathrm{D}'
//
//	[units]
//	zeta = '\mathrm{zu}'
//
// Extensions never mutate the built-in dictionaries: they are carried as an
// immutable label.Overrides value attached to the labels built from the
// manifest.
package manifest

import (
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/heliolabs/texlabel/pkg/errors"
	"github.com/heliolabs/texlabel/pkg/label"
	"github.com/heliolabs/texlabel/pkg/labelset"
)

// Entry describes one label to compile.
type Entry struct {
	M string `toml:"m"`
	C string `toml:"c"`
	S string `toml:"s"`

	// Per is the optional denominator as a "m,c,s" key; the label renders
	// as a ratio when set.
	Per string `toml:"per"`

	Axnorm      string `toml:"axnorm"`
	Description string `toml:"description"`
	Multiline   bool   `toml:"multiline"`
}

// Manifest is the decoded form of a batch manifest file.
type Manifest struct {
	Labels map[string]Entry `toml:"labels"`

	// Dictionary extensions, keyed like the built-in tables.
	Measurements map[string]string `toml:"measurements"`
	Components   map[string]string `toml:"components"`
	Species      map[string]string `toml:"species"`
	Units        map[string]string `toml:"units"`
	Templates    map[string]string `toml:"templates"`
}

// Load reads and decodes a manifest file.
func Load(path string) (*Manifest, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "manifest %s does not exist", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "cannot stat %s", path)
	}

	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "cannot decode %s", path)
	}
	if len(m.Labels) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "manifest %s defines no labels", path)
	}
	return &m, nil
}

// Overrides returns the manifest's dictionary extensions as an immutable
// overrides value for label construction.
func (m *Manifest) Overrides() label.Overrides {
	return label.Overrides{
		Measurements: m.Measurements,
		Components:   m.Components,
		Species:      m.Species,
		Units:        m.Units,
		Templates:    m.Templates,
	}
}

// Build compiles one entry with the manifest's extensions applied.
func (m *Manifest) Build(name string) (*label.Label, error) {
	e, ok := m.Labels[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "manifest has no label %q", name)
	}
	return e.build(name, m.Overrides())
}

// BuildAll compiles every entry into a labelset, ordered by entry name.
// The first invalid entry aborts the batch.
func (m *Manifest) BuildAll() (labelset.Set, error) {
	var s labelset.Set
	ov := m.Overrides()
	for _, name := range sortedNames(m.Labels) {
		l, err := m.Labels[name].build(name, ov)
		if err != nil {
			return labelset.Set{}, err
		}
		s.Add(labelset.FromLabel(name, l))
	}
	return s, nil
}

func sortedNames(labels map[string]Entry) []string {
	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (e Entry) build(name string, ov label.Overrides) (*label.Label, error) {
	primary, err := label.NewMCS(e.M, e.C, e.S)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "label %q", name)
	}

	opts := label.Options{
		Axnorm:          e.Axnorm,
		Description:     e.Description,
		NewLineForUnits: e.Multiline,
		Overrides:       ov,
	}
	if e.Per != "" {
		per, err := label.ParseMCS(e.Per)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "label %q denominator", name)
		}
		opts.Per = &per
	}

	l, err := label.Build(primary, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "label %q", name)
	}
	return l, nil
}
