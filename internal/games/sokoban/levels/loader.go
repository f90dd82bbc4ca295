// Package levels loads Sokoban level files into level definitions.
// This package depends on core but core does not depend on levels.
package levels

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// logger receives load diagnostics. Defaults to the charmbracelet default logger.
var logger = log.Default()

// SetLogger replaces the logger used for load diagnostics.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// ErrLevelNotFound is returned when a level file is missing or unreadable.
var ErrLevelNotFound = errors.New("level file not found")

// Definition is a parsed level, ready to be instantiated as play state.
type Definition struct {
	ID      string // File name without extension
	Name    string // Human-readable name
	Path    string // Source file, empty for parsed readers
	Width   int
	Height  int
	Grid    *core.Grid
	Player  core.Coord
	Targets []core.Coord // In reading order
	Boxes   int
}

// NewLevel creates fresh level state from the definition.
// Each call returns an independent level.
func (d Definition) NewLevel() (*core.Level, error) {
	return core.NewLevel(d.Grid, d.Player, d.Targets)
}

// Stats summarizes the contents of a level definition.
type Stats struct {
	Width   int
	Height  int
	Boxes   int
	Targets int
	Walls   int
	Floor   int
}

// Stats returns cell counts for the definition.
func (d Definition) Stats() Stats {
	s := Stats{
		Width:   d.Width,
		Height:  d.Height,
		Boxes:   d.Boxes,
		Targets: len(d.Targets),
	}
	if d.Grid != nil {
		s.Walls = d.Grid.Count(core.CellWall)
		s.Floor = d.Grid.Count(core.CellFloor) + d.Grid.Count(core.CellTarget) + d.Grid.Count(core.CellPlayer)
	}
	return s
}

// Warnings returns non-fatal problems that make the level unwinnable or odd.
func (d Definition) Warnings() []string {
	var warnings []string
	if len(d.Targets) == 0 {
		warnings = append(warnings, "level has no targets and is won immediately")
	}
	if d.Boxes < len(d.Targets) {
		warnings = append(warnings,
			fmt.Sprintf("%d boxes for %d targets, level cannot be won", d.Boxes, len(d.Targets)))
	}
	return warnings
}

// cellForChar maps a level file character to a cell kind.
func cellForChar(ch rune) core.CellKind {
	switch ch {
	case 'X':
		return core.CellWall
	case '*':
		return core.CellEmpty
	case ' ':
		return core.CellFloor
	case 'B':
		return core.CellBox
	case 'P':
		return core.CellTarget
	case 'S':
		return core.CellPlayer
	default:
		return core.CellEmpty
	}
}

// maxRowBytes bounds a single level row.
const maxRowBytes = 1 << 20

// Parse reads a level in the text format: one line per row, one character
// per column. Rows shorter than the widest row are padded with Empty cells
// and trailing blank lines are ignored.
func Parse(r io.Reader) (Definition, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxRowBytes)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return Definition{}, fmt.Errorf("%w: row longer than %d bytes", core.ErrInvalidLevel, maxRowBytes)
		}
		return Definition{}, fmt.Errorf("levels: reading level: %w", err)
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return Definition{}, fmt.Errorf("%w: level is empty", core.ErrInvalidLevel)
	}

	rows := make([][]core.CellKind, len(lines))
	var targets []core.Coord
	var players []core.Coord
	boxes := 0

	for y, line := range lines {
		row := make([]core.CellKind, 0, len(line))
		for x, ch := range []rune(line) {
			kind := cellForChar(ch)
			switch kind {
			case core.CellTarget:
				targets = append(targets, core.C(x, y))
			case core.CellPlayer:
				players = append(players, core.C(x, y))
			case core.CellBox:
				boxes++
			}
			row = append(row, kind)
		}
		rows[y] = row
	}

	grid := core.GridFromRows(rows)
	if grid.IsEmpty() {
		return Definition{}, fmt.Errorf("%w: level has no cells", core.ErrInvalidLevel)
	}

	switch len(players) {
	case 0:
		return Definition{}, fmt.Errorf("%w: no player start (S)", core.ErrInvalidLevel)
	case 1:
	default:
		return Definition{}, fmt.Errorf("%w: %d player starts, expected 1", core.ErrInvalidLevel, len(players))
	}

	return Definition{
		Width:   grid.W,
		Height:  grid.H,
		Grid:    grid,
		Player:  players[0],
		Targets: targets,
		Boxes:   boxes,
	}, nil
}

// LoadFile loads a single level file.
func LoadFile(path string) (Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		logger.Debug("level open failed", "path", path, "error", err)
		return Definition{}, fmt.Errorf("levels: %s: %w", path, errors.Join(ErrLevelNotFound, err))
	}
	defer f.Close()

	def, err := Parse(f)
	if err != nil {
		if !errors.Is(err, core.ErrInvalidLevel) {
			err = errors.Join(ErrLevelNotFound, err)
		}
		logger.Debug("level parse failed", "path", path, "error", err)
		return Definition{}, fmt.Errorf("levels: %s: %w", path, err)
	}

	def.Path = path
	def.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	def.Name = displayName(def.ID)
	logger.Debug("level loaded", "id", def.ID, "size", fmt.Sprintf("%dx%d", def.Width, def.Height),
		"boxes", def.Boxes, "targets", len(def.Targets))
	return def, nil
}

// displayName turns a file stem like "first_steps" into "First Steps".
func displayName(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(first)) + w[size:]
	}
	if len(words) == 0 {
		return id
	}
	return strings.Join(words, " ")
}
