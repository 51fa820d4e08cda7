package scenario

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/questgrid/grid"
	"github.com/katalvlaran/questgrid/mission"
)

// Load parses all three inputs and returns the assembled graph and
// mission sequence, with the starting position prepended as mission 0.
func Load(landPath, travelPath, missionPath string) (*grid.Graph, []mission.Mission, error) {
	g, err := LoadLand(landPath)
	if err != nil {
		return nil, nil, err
	}
	if err = LoadTravel(travelPath, g); err != nil {
		return nil, nil, err
	}
	missions, err := LoadMissions(missionPath)
	if err != nil {
		return nil, nil, err
	}

	return g, missions, nil
}

// LoadLand reads the grid dimensions and per-cell terrain types.
func LoadLand(path string) (*grid.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadLand, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return nil, fmt.Errorf("%w: missing dimensions header", ErrBadLand)
	}
	dims := strings.Fields(sc.Text())
	if len(dims) != 2 {
		return nil, fmt.Errorf("%w: dimensions header %q", ErrBadLand, sc.Text())
	}
	width, err := strconv.Atoi(dims[0])
	if err != nil {
		return nil, fmt.Errorf("%w: width %q", ErrBadLand, dims[0])
	}
	height, err := strconv.Atoi(dims[1])
	if err != nil {
		return nil, fmt.Errorf("%w: height %q", ErrBadLand, dims[1])
	}
	g, err := grid.NewGraph(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadLand, err)
	}

	line := 1
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadLand, line, text)
		}
		x, y, typ, err := atoi3(fields[0], fields[1], fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadLand, line, err)
		}
		g.AddNode(x, y, typ)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadLand, err)
	}

	return g, nil
}

// LoadTravel reads weighted edges into g. Each record connects two
// cells written as "x1-y1,x2-y2" followed by a non-negative weight.
// Edges touching a baseline-blocked endpoint enter the original
// snapshot only.
func LoadTravel(path string, g *grid.Graph) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadTravel, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return fmt.Errorf("%w: line %d: %q", ErrBadTravel, line, text)
		}
		ends := strings.Split(fields[0], ",")
		if len(ends) != 2 {
			return fmt.Errorf("%w: line %d: endpoints %q", ErrBadTravel, line, fields[0])
		}
		x1, y1, err := parseCoord(ends[0])
		if err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrBadTravel, line, err)
		}
		x2, y2, err := parseCoord(ends[1])
		if err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrBadTravel, line, err)
		}
		weight, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || weight < 0 {
			return fmt.Errorf("%w: line %d: weight %q", ErrBadTravel, line, fields[1])
		}

		g.AddEdge(x1, y1, x2, y2, weight)
		if g.NodeAt(x1, y1).BaselineType() == grid.TypeBlocked ||
			g.NodeAt(x2, y2).BaselineType() == grid.TypeBlocked {
			g.MarkImpassableEdge(x1, y1, x2, y2)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrBadTravel, err)
	}

	return nil
}

// LoadMissions reads the shared visibility radius, the starting
// coordinate, and the ordered objectives. The start is returned as
// missions[0] with no target semantics of its own.
func LoadMissions(path string) ([]mission.Mission, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMissions, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return nil, fmt.Errorf("%w: missing radius header", ErrBadMissions)
	}
	radius, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || radius < 0 {
		return nil, fmt.Errorf("%w: radius %q", ErrBadMissions, sc.Text())
	}

	if !sc.Scan() {
		return nil, fmt.Errorf("%w: missing starting position", ErrBadMissions)
	}
	start := strings.Fields(sc.Text())
	if len(start) != 2 {
		return nil, fmt.Errorf("%w: starting position %q", ErrBadMissions, sc.Text())
	}
	startX, err := strconv.Atoi(start[0])
	if err != nil {
		return nil, fmt.Errorf("%w: starting position %q", ErrBadMissions, sc.Text())
	}
	startY, err := strconv.Atoi(start[1])
	if err != nil {
		return nil, fmt.Errorf("%w: starting position %q", ErrBadMissions, sc.Text())
	}

	missions := []mission.Mission{{X: startX, Y: startY, Radius: radius}}

	line := 2
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadMissions, line, text)
		}
		x, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadMissions, line, fields[0])
		}
		y, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadMissions, line, fields[1])
		}

		var options []int
		for _, field := range fields[2:] {
			code, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: option %q", ErrBadMissions, line, field)
			}
			options = append(options, code)
		}

		missions = append(missions, mission.Mission{X: x, Y: y, Radius: radius, WizardOptions: options})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMissions, err)
	}

	return missions, nil
}

// parseCoord splits "x-y" into its two integers.
func parseCoord(s string) (x, y int, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("coordinate %q", s)
	}
	if x, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("coordinate %q", s)
	}
	if y, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("coordinate %q", s)
	}

	return x, y, nil
}

// atoi3 converts three decimal fields at once.
func atoi3(a, b, c string) (int, int, int, error) {
	av, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("field %q", a)
	}
	bv, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("field %q", b)
	}
	cv, err := strconv.Atoi(c)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("field %q", c)
	}

	return av, bv, cv, nil
}
