package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check <level-file>",
	Short: "Validate a level file and print a preview",
	Long: `Load a level file, report its size and contents and print a colored
preview. Exits with status 1 when the level cannot be loaded.

Examples:
  sokoban check levels/plansza.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

// Preview styles per cell kind
var (
	styleWall   = color.Style{color.FgGray, color.OpBold}
	styleFloor  = color.Style{color.FgGray}
	styleBox    = color.Style{color.FgYellow, color.OpBold}
	styleTarget = color.Style{color.FgGreen, color.OpBold}
	stylePlayer = color.Style{color.FgBlue, color.OpBold}
	styleWarn   = color.Style{color.FgYellow}
	styleOK     = color.Style{color.FgGreen, color.OpBold}
)

func runCheck(cmd *cobra.Command, args []string) {
	cfg, _ := mustSetup()

	def, err := levels.LoadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	writeReport(os.Stdout, def, cfg.TUI.Glyphs)
}

// writeReport prints the summary, warnings and preview of a level.
func writeReport(w io.Writer, def levels.Definition, glyphs config.Glyphs) {
	st := def.Stats()
	fmt.Fprintf(w, "%s (%s)\n", def.Name, def.Path)
	fmt.Fprintf(w, "  size:    %dx%d\n", st.Width, st.Height)
	fmt.Fprintf(w, "  boxes:   %d\n", st.Boxes)
	fmt.Fprintf(w, "  targets: %d\n", st.Targets)
	fmt.Fprintf(w, "  walls:   %d\n", st.Walls)
	fmt.Fprintf(w, "  floor:   %d\n", st.Floor)
	fmt.Fprintln(w)

	fmt.Fprint(w, Preview(def, glyphs))
	fmt.Fprintln(w)

	warnings := def.Warnings()
	if len(warnings) == 0 {
		fmt.Fprintln(w, styleOK.Sprint("OK"))
		return
	}
	for _, msg := range warnings {
		fmt.Fprintln(w, styleWarn.Sprint("warning: "+msg))
	}
}

// Preview draws the level one character per cell using the configured glyphs.
func Preview(def levels.Definition, glyphs config.Glyphs) string {
	var sb strings.Builder
	for y := 0; y < def.Height; y++ {
		for x := 0; x < def.Width; x++ {
			sb.WriteString(previewCell(def.Grid.Get(core.C(x, y)), glyphs))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func previewCell(kind core.CellKind, g config.Glyphs) string {
	switch kind {
	case core.CellWall:
		return styleWall.Sprint(g.Wall)
	case core.CellFloor:
		return styleFloor.Sprint(g.Floor)
	case core.CellBox:
		return styleBox.Sprint(g.Box)
	case core.CellTarget:
		return styleTarget.Sprint(g.Target)
	case core.CellPlayer:
		return stylePlayer.Sprint(g.Player)
	default:
		return g.Empty
	}
}
