package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/heliolabs/texlabel/pkg/label"
)

// Cycled option sets for the interactive builder.
var (
	tuiComponents = []string{"", "x", "y", "z", "r", "t", "n", "per", "par"}
	tuiSpecies    = []string{"", "p", "p1", "p2", "a", "e", "a+p1", "he"}
	tuiAxnorms    = []string{"", "c", "r", "t", "d"}
)

// tuiCommand creates the tui command for interactively composing labels.
func (c *CLI) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactively browse measurements and compose a label",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := newBuilderModel(label.Measurements())
			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(builderModel); ok && m.accepted {
				fmt.Println(m.preview().WithUnits())
			}
			return nil
		},
	}
}

// builderModel is the bubbletea model for the interactive label builder.
// The measurement list scrolls under a cursor; component, species, and
// axnorm cycle through preset values while a live preview tracks the
// current selection.
type builderModel struct {
	measurements []label.CatalogEntry
	cursor       int
	offset       int
	height       int

	componentIdx int
	speciesIdx   int
	axnormIdx    int

	accepted bool
}

func newBuilderModel(measurements []label.CatalogEntry) builderModel {
	return builderModel{
		measurements: measurements,
		height:       12,
	}
}

func (m builderModel) Init() tea.Cmd {
	return nil
}

func (m builderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.measurements)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "c":
			m.componentIdx = (m.componentIdx + 1) % len(tuiComponents)
		case "s":
			m.speciesIdx = (m.speciesIdx + 1) % len(tuiSpecies)
		case "n":
			m.axnormIdx = (m.axnormIdx + 1) % len(tuiAxnorms)
		case "enter":
			m.accepted = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 10
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

// preview compiles the label for the current selection. The option sets are
// all registered values, so compilation cannot fail; a nil return only
// happens with an empty measurement catalog.
func (m builderModel) preview() *label.Label {
	if len(m.measurements) == 0 {
		return nil
	}
	l, err := label.Build(label.MCS{
		Measurement: m.measurements[m.cursor].Code,
		Component:   tuiComponents[m.componentIdx],
		Species:     tuiSpecies[m.speciesIdx],
	}, label.Options{Axnorm: tuiAxnorms[m.axnormIdx]})
	if err != nil {
		return nil
	}
	return l
}

func (m builderModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Compose Label"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("↑/↓ measurement  c component  s species  n axnorm  ⏎ accept  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.measurements) {
		end = len(m.measurements)
	}
	for i := m.offset; i < end; i++ {
		entry := m.measurements[i]
		line := fmt.Sprintf("%-8s %s", entry.Code, entry.TeX)
		if i == m.cursor {
			b.WriteString(styleHighlight.Render("> " + line))
		} else {
			b.WriteString(styleValue.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleFieldName.Render("component: "))
	b.WriteString(styleValue.Render(orNone(tuiComponents[m.componentIdx])))
	b.WriteString(styleFieldName.Render("  species: "))
	b.WriteString(styleValue.Render(orNone(tuiSpecies[m.speciesIdx])))
	b.WriteString(styleFieldName.Render("  axnorm: "))
	b.WriteString(styleValue.Render(orNone(tuiAxnorms[m.axnormIdx])))
	b.WriteString("\n\n")

	if l := m.preview(); l != nil {
		b.WriteString(styleFieldName.Render("tex:   "))
		b.WriteString(styleSuccess.Render(l.Tex()))
		b.WriteString("\n")
		b.WriteString(styleFieldName.Render("units: "))
		b.WriteString(styleValue.Render(l.Units()))
		b.WriteString("\n")
		b.WriteString(styleFieldName.Render("path:  "))
		b.WriteString(styleValue.Render(l.Path()))
		b.WriteString("\n")
	}

	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
