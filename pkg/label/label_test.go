package label

import (
	"strings"
	"testing"

	"github.com/heliolabs/texlabel/pkg/errors"
)

func mustBuild(t *testing.T, primary MCS, opts Options) *Label {
	t.Helper()
	l, err := Build(primary, opts)
	if err != nil {
		t.Fatalf("Build(%v) failed: %v", primary, err)
	}
	return l
}

func TestBuildVelocityComponent(t *testing.T) {
	l := mustBuild(t, MCS{Measurement: "v", Component: "x", Species: "p"}, Options{})

	if got, want := l.Tex(), `{v}_{{X};{p}}`; got != want {
		t.Errorf("Tex() = %q, want %q", got, want)
	}
	if got, want := l.Units(), `\mathrm{km \; s^{-1}}`; got != want {
		t.Errorf("Units() = %q, want %q", got, want)
	}
	if got, want := l.Path(), "v_x_p"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestBuildRatio(t *testing.T) {
	den := MCS{Measurement: "n", Species: "p"}
	l := mustBuild(t, MCS{Measurement: "v", Component: "x", Species: "p"}, Options{Per: &den})

	if got, want := l.Tex(), `{v}_{{X};{p}}/n_{p}`; got != want {
		t.Errorf("Tex() = %q, want %q", got, want)
	}
	if got, want := l.Units(), `\mathrm{km \; s^{-1}}/\mathrm{cm}^{-3}`; got != want {
		t.Errorf("Units() = %q, want %q", got, want)
	}
	if got, want := l.Path(), "v_x_p-OV-n_p"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestBuildRatioUnitCollapse(t *testing.T) {
	tests := []struct {
		name      string
		num, den  MCS
		wantUnits string
	}{
		{
			name:      "same units collapse to dimensionless",
			num:       MCS{Measurement: "v", Component: "x", Species: "p"},
			den:       MCS{Measurement: "v", Component: "y", Species: "p"},
			wantUnits: `\#`,
		},
		{
			name:      "different measurements same units still collapse",
			num:       MCS{Measurement: "v", Component: "x", Species: "p"},
			den:       MCS{Measurement: "w", Component: "par", Species: "p"},
			wantUnits: `\#`,
		},
		{
			name:      "different units render as quotient",
			num:       MCS{Measurement: "v", Component: "x", Species: "p"},
			den:       MCS{Measurement: "b", Component: "x"},
			wantUnits: `\mathrm{km \; s^{-1}}/\mathrm{nT}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := mustBuild(t, tt.num, Options{Per: &tt.den})
			if got := l.Units(); got != tt.wantUnits {
				t.Errorf("Units() = %q, want %q", got, tt.wantUnits)
			}
		})
	}
}

func TestBuildErrorMeasurement(t *testing.T) {
	l := mustBuild(t, MCS{Measurement: "v_err", Component: "x", Species: "p"}, Options{})

	if !strings.Contains(l.Tex(), `\sigma(`) {
		t.Errorf("Tex() = %q, want \\sigma(...) wrapper", l.Tex())
	}
	if !strings.Contains(l.Tex(), `{v}_{{X};{p}}`) {
		t.Errorf("Tex() = %q, want wrapped base label", l.Tex())
	}
	// Uncertainty carries the base quantity's units.
	if got, want := l.Units(), `\mathrm{km \; s^{-1}}`; got != want {
		t.Errorf("Units() = %q, want %q", got, want)
	}
	// The path keeps the suffix: sigma(v) must not collide with v on disk.
	if got, want := l.Path(), "v_err_x_p"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestBuildUnknownMeasurement(t *testing.T) {
	l := mustBuild(t, MCS{Measurement: "zeta", Component: "x", Species: "p"}, Options{})

	// Unknown measurement codes pass through verbatim.
	if got, want := l.Tex(), `{zeta}_{{X};{p}}`; got != want {
		t.Errorf("Tex() = %q, want %q", got, want)
	}
	// Unknown units resolve to the sentinel, never a silent blank.
	if got := l.Units(); got != UnitsUnknown {
		t.Errorf("Units() = %q, want %q", got, UnitsUnknown)
	}
}

func TestBuildEmptyFieldCleanup(t *testing.T) {
	tests := []struct {
		name string
		mcs  MCS
	}{
		{"no species", MCS{Measurement: "b", Component: "x"}},
		{"no component", MCS{Measurement: "T", Species: "p"}},
		{"measurement only", MCS{Measurement: "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := mustBuild(t, tt.mcs, Options{})
			for _, artifact := range []string{`{}`, `()`, `\;()`} {
				if strings.Contains(l.Tex(), artifact) {
					t.Errorf("Tex() = %q contains artifact %q", l.Tex(), artifact)
				}
			}
		})
	}
}

func TestBuildAxnorm(t *testing.T) {
	l := mustBuild(t, MCS{Measurement: "v", Component: "x", Species: "p"},
		Options{Axnorm: "C"})

	if l.Axnorm() != AxnormColumn {
		t.Errorf("Axnorm() = %q, want %q (case-insensitive)", l.Axnorm(), AxnormColumn)
	}
	if !strings.HasPrefix(l.Tex(), `\mathrm{Col. \; Norm}`) {
		t.Errorf("Tex() = %q, want normalization prefix", l.Tex())
	}
	if got := l.Units(); got != UnitsDimensionless {
		t.Errorf("Units() = %q, want %q", got, UnitsDimensionless)
	}
}

func TestBuildInvalidAxnorm(t *testing.T) {
	_, err := Build(MCS{Measurement: "v"}, Options{Axnorm: "invalid"})
	if err == nil {
		t.Fatal("Build with invalid axnorm did not fail")
	}
	if !errors.Is(err, errors.ErrCodeInvalidAxnorm) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidAxnorm)
	}
}

func TestBuildEmptyMeasurement(t *testing.T) {
	_, err := Build(MCS{Component: "x", Species: "p"}, Options{})
	if err == nil {
		t.Fatal("Build with empty measurement did not fail")
	}
	if !errors.Is(err, errors.ErrCodeInvalidTriple) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidTriple)
	}
}

func TestWithUnits(t *testing.T) {
	l := mustBuild(t, MCS{Measurement: "v", Component: "x", Species: "p"}, Options{})
	want := `${v}_{{X};{p}} \; [\mathrm{km \; s^{-1}}]$`
	if got := l.WithUnits(); got != want {
		t.Errorf("WithUnits() = %q, want %q", got, want)
	}
	if l.String() != l.WithUnits() {
		t.Error("String() differs from WithUnits()")
	}
}

func TestWithUnitsNewLine(t *testing.T) {
	l := mustBuild(t, MCS{Measurement: "v", Component: "x", Species: "p"},
		Options{NewLineForUnits: true})
	want := "${v}_{{X};{p}}$\n$[\\mathrm{km \\; s^{-1}}]$"
	if got := l.WithUnits(); got != want {
		t.Errorf("WithUnits() = %q, want %q", got, want)
	}
}

func TestWithUnitsDescription(t *testing.T) {
	l := mustBuild(t, MCS{Measurement: "v", Component: "x", Species: "p"},
		Options{Description: "Proton bulk velocity"})

	if !strings.HasPrefix(l.WithUnits(), "Proton bulk velocity\n") {
		t.Errorf("WithUnits() = %q, want description prefix", l.WithUnits())
	}

	l.SetDescription("")
	if strings.Contains(l.WithUnits(), "Proton") {
		t.Errorf("WithUnits() = %q, description not removed", l.WithUnits())
	}
}

func TestMutatorsRerender(t *testing.T) {
	l := mustBuild(t, MCS{Measurement: "v", Component: "x", Species: "p"}, Options{})
	before := l.WithUnits()

	den := MCS{Measurement: "n", Species: "p"}
	if err := l.SetMCS(l.mcs0, &den); err != nil {
		t.Fatalf("SetMCS failed: %v", err)
	}
	if l.WithUnits() == before {
		t.Error("SetMCS did not re-render")
	}
	if got, want := l.Path(), "v_x_p-OV-n_p"; got != want {
		t.Errorf("Path() after SetMCS = %q, want %q", got, want)
	}

	if err := l.SetAxnorm("r"); err != nil {
		t.Fatalf("SetAxnorm failed: %v", err)
	}
	if l.Units() != UnitsDimensionless {
		t.Error("SetAxnorm did not re-render units")
	}

	if err := l.SetAxnorm("bogus"); err == nil {
		t.Fatal("SetAxnorm accepted an unregistered value")
	}
	// A failed mutation leaves the previous state intact.
	if l.Axnorm() != AxnormRow {
		t.Errorf("Axnorm() after failed SetAxnorm = %q, want %q", l.Axnorm(), AxnormRow)
	}

	l.SetNewLineForUnits(true)
	if !strings.Contains(l.WithUnits(), "\n$[") {
		t.Errorf("WithUnits() = %q, want units on their own line", l.WithUnits())
	}
}

func TestRenderIdempotence(t *testing.T) {
	den := MCS{Measurement: "b", Component: "x"}
	l := mustBuild(t, MCS{Measurement: "v_err", Component: "x", Species: "a+p1"},
		Options{Per: &den, Axnorm: "t", Description: "test", NewLineForUnits: true})

	tex, units, path, withUnits := l.Tex(), l.Units(), l.Path(), l.WithUnits()
	l.render()
	if l.Tex() != tex || l.Units() != units || l.Path() != path || l.WithUnits() != withUnits {
		t.Error("re-render of unchanged state produced different output")
	}
}

func TestEqualityOnRenderedOutput(t *testing.T) {
	// Distinct internal states that render identically are equal.
	a := mustBuild(t, MCS{Measurement: "b", Component: "x", Species: ""}, Options{})
	b := mustBuild(t, MCS{Measurement: "b", Component: "x", Species: ""}, Options{})
	c := mustBuild(t, MCS{Measurement: "b", Component: "y", Species: ""}, Options{})

	if !a.Equal(b) {
		t.Error("identically rendered labels are not Equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal labels have different hashes")
	}
	if a.Equal(c) {
		t.Error("differently rendered labels are Equal")
	}
	if a.Equal(nil) {
		t.Error("Equal(nil) = true")
	}

	if (a.Compare(b) == 0) != (a.String() == b.String()) {
		t.Error("Compare inconsistent with rendered equality")
	}
	if a.Less(c) != (a.String() < c.String()) {
		t.Error("Less inconsistent with lexicographic rendered ordering")
	}
}

func TestOverridesDoNotMutateTables(t *testing.T) {
	ov := Overrides{
		Measurements: map[string]string{"zeta": `\zeta`},
		Units:        map[string]string{"zeta": `\mathrm{zu}`},
		Templates:    map[string]string{"zeta": `$M^{$S}`},
	}
	l := mustBuild(t, MCS{Measurement: "zeta", Species: "p"}, Options{Overrides: ov})

	if got, want := l.Tex(), `\zeta^{p}`; got != want {
		t.Errorf("Tex() = %q, want %q", got, want)
	}
	if got, want := l.Units(), `\mathrm{zu}`; got != want {
		t.Errorf("Units() = %q, want %q", got, want)
	}

	// A fresh label without overrides must not see the extension entries.
	plain := mustBuild(t, MCS{Measurement: "zeta", Species: "p"}, Options{})
	if plain.Units() != UnitsUnknown {
		t.Errorf("built-in units table leaked an override: %q", plain.Units())
	}
}

func TestParseMCS(t *testing.T) {
	tests := []struct {
		in      string
		want    MCS
		wantErr bool
	}{
		{"v,x,p", MCS{Measurement: "v", Component: "x", Species: "p"}, false},
		{"b,x,", MCS{Measurement: "b", Component: "x"}, false},
		{"n,,p", MCS{Measurement: "n", Species: "p"}, false},
		{"v,x", MCS{}, true},
		{"v,x,p,extra", MCS{}, true},
		{",x,p", MCS{}, true},
	}

	for _, tt := range tests {
		got, err := ParseMCS(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMCS(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseMCS(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPathEncoding(t *testing.T) {
	tests := []struct {
		name string
		mcs  MCS
		want string
	}{
		{"plain", MCS{Measurement: "v", Component: "x", Species: "p"}, "v_x_p"},
		{"empty fields dropped", MCS{Measurement: "b", Component: "x"}, "b_x"},
		{"periods stripped", MCS{Measurement: "v.mean", Species: "p"}, "vmean_p"},
		{"slash replaced", MCS{Measurement: "1/n", Species: "p"}, "1-OV-n_p"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encodePathToken(tt.mcs); got != tt.want {
				t.Errorf("encodePathToken(%v) = %q, want %q", tt.mcs, got, tt.want)
			}
		})
	}
}
