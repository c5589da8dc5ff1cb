package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/spf13/cobra"

	"github.com/tilekit/tilekit/internal/tile"
	"github.com/tilekit/tilekit/internal/tileset"
)

var listCheck bool

const previewWidth = 40

var (
	listNameStyle = lipgloss.NewStyle().Bold(true)
	listDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	listErrStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

var listCmd = &cobra.Command{
	Use:   "list <tileset.yaml>",
	Short: "List the tiles a tileset document defines",
	Long: `List loads a tileset document, expands its templates, and prints each
resulting tile's name, dimensions, and the first line of its content.

With --check, every @{name} reference in the document is verified against
the defined names and the command fails if any are missing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := tileset.Load(args[0])
		if err != nil {
			return err
		}

		if listCheck {
			if missing := missingReferences(set); len(missing) > 0 {
				for _, m := range missing {
					fmt.Fprintln(cmd.ErrOrStderr(), listErrStyle.Render(m))
				}
				return fmt.Errorf("%d unresolved reference(s) in %s", len(missing), args[0])
			}
		}

		reg := tile.NewRegistry()
		if err := set.Apply(reg); err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), formatTileList(reg))
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listCheck, "check", false,
		"verify that every @{name} reference resolves before listing")
	rootCmd.AddCommand(listCmd)
}

// formatTileList renders one line per registered tile: name, WxH, and a
// truncated first-line preview.
func formatTileList(reg *tile.Registry) string {
	nameWidth := 0
	for _, name := range reg.Names() {
		if len(name) > nameWidth {
			nameWidth = len(name)
		}
	}

	var b strings.Builder
	for _, name := range reg.Names() {
		t, _ := reg.Lookup(name)
		w, h := t.Dimensions()

		preview := ""
		if lines := t.Lines(); len(lines) > 0 {
			preview = truncate.StringWithTail(lines[0], previewWidth, "…")
		}

		fmt.Fprintf(&b, "%s  %s  %s\n",
			listNameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
			listDimStyle.Render(fmt.Sprintf("%3dx%-3d", w, h)),
			preview)
	}
	return b.String()
}

// missingReferences returns a problem description for every @{name} in the
// document's templates that no tile or template defines.
func missingReferences(set *tileset.Set) []string {
	defined := make(map[string]bool, len(set.Tiles)+len(set.Templates))
	for name := range set.Tiles {
		defined[name] = true
	}
	for _, tpl := range set.Templates {
		defined[tpl.Name] = true
	}

	var problems []string
	for _, tpl := range set.Templates {
		for _, ref := range tile.References(tpl.Body) {
			if !defined[ref] {
				problems = append(problems,
					fmt.Sprintf("template %q references undefined name %q", tpl.Name, ref))
			}
		}
	}
	return problems
}
