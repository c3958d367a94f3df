package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/heliolabs/texlabel/pkg/errors"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labels.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

const validManifest = `
[labels.vx]
m = "v"
c = "x"
s = "p"
description = "Proton bulk velocity"

[labels.vx_per_n]
m = "v"
c = "x"
s = "p"
per = "n,,p"

[labels.zeta]
m = "zeta"
s = "p"

[units]
zeta = '\mathrm{zu}'

[measurements]
zeta = '\zeta'
`

func TestLoad(t *testing.T) {
	m, err := Load(writeManifest(t, validManifest))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(m.Labels) != 3 {
		t.Errorf("Labels = %d entries, want 3", len(m.Labels))
	}
	if m.Units["zeta"] != `\mathrm{zu}` {
		t.Errorf("Units[zeta] = %q", m.Units["zeta"])
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeManifest(t, "[labels.vx\nm ="))
	if !errors.Is(err, errors.ErrCodeInvalidManifest) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidManifest)
	}
}

func TestLoadEmpty(t *testing.T) {
	_, err := Load(writeManifest(t, `[units]`+"\n"+`x = "y"`))
	if !errors.Is(err, errors.ErrCodeInvalidManifest) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidManifest)
	}
}

func TestBuildAll(t *testing.T) {
	m, err := Load(writeManifest(t, validManifest))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	s, err := m.BuildAll()
	if err != nil {
		t.Fatalf("BuildAll failed: %v", err)
	}
	if len(s.Labels) != 3 {
		t.Fatalf("BuildAll produced %d labels, want 3", len(s.Labels))
	}

	// Entries come out ordered by name: vx, vx_per_n, zeta.
	if s.Labels[0].Name != "vx" || s.Labels[1].Name != "vx_per_n" || s.Labels[2].Name != "zeta" {
		t.Errorf("unexpected order: %q, %q, %q", s.Labels[0].Name, s.Labels[1].Name, s.Labels[2].Name)
	}

	if s.Labels[0].Tex != `{v}_{{X};{p}}` {
		t.Errorf("vx tex = %q", s.Labels[0].Tex)
	}
	if s.Labels[1].Path != "v_x_p-OV-n_p" {
		t.Errorf("vx_per_n path = %q", s.Labels[1].Path)
	}
	// The manifest's dictionary extensions apply to its labels.
	if s.Labels[2].Tex != `{\zeta}_{{p}}` {
		t.Errorf("zeta tex = %q", s.Labels[2].Tex)
	}
	if s.Labels[2].Units != `\mathrm{zu}` {
		t.Errorf("zeta units = %q", s.Labels[2].Units)
	}
}

func TestBuildOne(t *testing.T) {
	m, err := Load(writeManifest(t, validManifest))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	l, err := m.Build("vx")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if l.Path() != "v_x_p" {
		t.Errorf("Path = %q", l.Path())
	}

	if _, err := m.Build("absent"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeNotFound)
	}
}

func TestBuildAllInvalidEntry(t *testing.T) {
	m, err := Load(writeManifest(t, `
[labels.bad]
m = "v"
axnorm = "bogus"
`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if _, err := m.BuildAll(); !errors.Is(err, errors.ErrCodeInvalidManifest) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidManifest)
	}
}
