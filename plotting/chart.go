// Package plotting renders benchmark reports as charts.
package plotting

import (
	"path/filepath"
	"strings"

	"github.com/YuminosukeSato/decompbench/decomposition"
	"github.com/YuminosukeSato/decompbench/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var supportedFormats = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".svg": true,
	".pdf": true, ".eps": true, ".tif": true, ".tiff": true,
}

// NewBarChart builds a bar chart of the per-method average times.
// A failed timing is drawn as an empty bar.
func NewBarChart(r decomposition.Report) (*plot.Plot, error) {
	timings := []decomposition.Timing{r.QR, r.LU, r.Cholesky}

	values := make(plotter.Values, len(timings))
	names := make([]string, len(timings))
	for i, t := range timings {
		names[i] = t.Method.String()
		if t.Err != nil {
			continue
		}
		values[i] = t.Milliseconds() / float64(r.Iterations)
	}

	p := plot.New()
	p.Title.Text = "Average decomposition time"
	p.X.Label.Text = "method"
	p.Y.Label.Text = "milliseconds"

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return nil, errors.Wrap(err, "building bar chart")
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = plotutil.Color(0)

	p.Add(bars)
	p.NominalX(names...)
	return p, nil
}

// SaveBarChart writes the bar chart to path; the extension picks the format.
func SaveBarChart(r decomposition.Report, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedFormats[ext] {
		return errors.NewValidationError("plot_path", "unsupported image format", path)
	}

	p, err := NewBarChart(r)
	if err != nil {
		return err
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "saving chart to %s", path)
	}
	return nil
}
