package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/sweepgridgo/pkg/sweep"
	"gopkg.in/yaml.v3"
)

// parseByExtension picks a parser by file extension. Unknown extensions fall
// back to the whitespace-separated text format, which is the most common way
// grids get published.
func parseByExtension(ext string, data []byte) (sweep.Grid, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return parseJSON(data)
	case ".yaml", ".yml":
		return parseYAML(data)
	default:
		return parseText(data)
	}
}

// parseText reads one grid row per line of whitespace-separated integers.
// Blank lines and lines starting with '#' are ignored.
func parseText(data []byte) (sweep.Grid, error) {
	var grid sweep.Grid

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		row := make([]int, 0, len(fields))
		for _, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q is not an integer", lineNo, field)
			}
			row = append(row, v)
		}
		grid = append(grid, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan grid text: %w", err)
	}

	return grid, nil
}

// parseJSON reads a grid as a JSON array of arrays of integers.
func parseJSON(data []byte) (sweep.Grid, error) {
	var cells [][]int
	if err := json.Unmarshal(data, &cells); err != nil {
		return nil, fmt.Errorf("failed to parse JSON grid: %w", err)
	}
	return sweep.Grid(cells), nil
}

// parseYAML reads a grid as a YAML sequence of sequences of integers.
func parseYAML(data []byte) (sweep.Grid, error) {
	var cells [][]int
	if err := yaml.Unmarshal(data, &cells); err != nil {
		return nil, fmt.Errorf("failed to parse YAML grid: %w", err)
	}
	return sweep.Grid(cells), nil
}
