// Package report renders completed scan results to the application's output
// writer, either as aligned text or as JSON keyed by scan address.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/vk/sweepgridgo/internal/executor"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Renderer writes a set of scan results, in the order given, to w.
type Renderer interface {
	Render(w io.Writer, results []executor.Result) error
}

// NewRenderer returns the renderer for the given format, "text" or "json".
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case "text":
		return &TextRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q: must be 'text' or 'json'", format)
	}
}

// TextRenderer writes one aligned row per scan.
type TextRenderer struct{}

// Render implements Renderer.
func (r *TextRenderer) Render(w io.Writer, results []executor.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, res := range results {
		fmt.Fprintf(tw, "scan %s\tgrid %s (%dx%d)\t%s\t%s\n",
			res.Scan.ID(),
			res.Scan.GridName, res.Grid.Rows(), res.Grid.Cols(),
			formatOutput(res.Output),
			res.Duration.Round(time.Microsecond),
		)
	}
	return tw.Flush()
}

// formatOutput flattens a cty object into "key=value" pairs with sorted
// keys; non-object outputs are printed verbatim.
func formatOutput(val cty.Value) string {
	if val.IsNull() || !val.Type().IsObjectType() {
		return fmt.Sprintf("%v", val)
	}

	m := val.AsValueMap()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := ""
	for i, k := range keys {
		if i > 0 {
			out += " "
		}
		out += k + "=" + formatScalar(m[k])
	}
	return out
}

func formatScalar(val cty.Value) string {
	switch {
	case val.Type().Equals(cty.Number):
		return val.AsBigFloat().Text('f', -1)
	case val.Type().Equals(cty.String):
		return val.AsString()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// JSONRenderer writes the results as one JSON object keyed by scan address.
type JSONRenderer struct{}

type jsonEntry struct {
	Grid       string          `json:"grid"`
	Rows       int             `json:"rows"`
	Cols       int             `json:"cols"`
	Output     json.RawMessage `json:"output"`
	DurationMS float64         `json:"duration_ms"`
}

// Render implements Renderer.
func (r *JSONRenderer) Render(w io.Writer, results []executor.Result) error {
	doc := make(map[string]jsonEntry, len(results))
	for _, res := range results {
		raw, err := ctyjson.Marshal(res.Output, res.Output.Type())
		if err != nil {
			return fmt.Errorf("failed to marshal output of scan '%s': %w", res.Scan.ID(), err)
		}
		doc[res.Scan.ID()] = jsonEntry{
			Grid:       res.Scan.GridName,
			Rows:       res.Grid.Rows(),
			Cols:       res.Grid.Cols(),
			Output:     raw,
			DurationMS: float64(res.Duration.Microseconds()) / 1000,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
