package server

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zucenko/platformd/model"
)

// Level files are plain text grids of tile symbols. '1' and '2' mark the
// starting positions and read as empty cells in the layout.
const (
	markStart1 = '1'
	markStart2 = '2'
)

// defaultLevelData ships a playable level: press the button on the ground
// floor, climb the ladder, cross the lowered bridge, reach the terminal.
const defaultLevelData = `............
.....|.....C
....#|##ZZ##
.....|......
.....|......
.....|......
.1...|..B...
############`

func DefaultLevel() *model.Level {
	level, err := read(strings.NewReader(defaultLevelData))
	if err != nil {
		// the embedded level is a constant; a parse failure is a build bug
		panic(err)
	}
	level.Name = "default"
	return level
}

// Load reads a level from a text file.
func Load(path string) (*model.Level, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	level, err := read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	level.Name = path
	return level, nil
}

func read(reader io.Reader) (*model.Level, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)

	layout := make([]string, 0)
	var start *model.Position
	var start2 *model.Position

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		row := []rune(line)
		for x, char := range row {
			switch char {
			case markStart1:
				start = &model.Position{X: x, Y: len(layout)}
				row[x] = model.SymbolEmpty
			case markStart2:
				start2 = &model.Position{X: x, Y: len(layout)}
				row[x] = model.SymbolEmpty
			}
		}
		layout = append(layout, string(row))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if start == nil {
		return nil, fmt.Errorf("level has no starting position marker %q", markStart1)
	}

	level := model.NewLevel("", layout, *start, start2)
	if err := ValidateLevel(level); err != nil {
		return nil, err
	}
	return level, nil
}

// ValidateLevel checks the structural invariants a level must satisfy before
// it may replace the current one.
func ValidateLevel(level *model.Level) error {
	if err := validate.Struct(level); err != nil {
		return err
	}
	if len(level.Layout) != level.Size.Height {
		return fmt.Errorf("layout has %d rows, size says %d", len(level.Layout), level.Size.Height)
	}
	for y, row := range level.Layout {
		if len(row) != level.Size.Width {
			return fmt.Errorf("layout row %d has %d cells, size says %d", y, len(row), level.Size.Width)
		}
	}
	if !level.InBounds(level.StartingPosition) {
		return fmt.Errorf("starting position %v is out of bounds", level.StartingPosition)
	}
	if level.StartingPosition2 != nil && !level.InBounds(*level.StartingPosition2) {
		return fmt.Errorf("second starting position %v is out of bounds", *level.StartingPosition2)
	}
	return nil
}
