package decomposition

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/decompbench/pkg/errors"
	"github.com/YuminosukeSato/decompbench/pkg/log"
)

// Report is one benchmark run over a single matrix.
type Report struct {
	Size       int
	Iterations int
	QR         Timing
	LU         Timing
	Cholesky   Timing
}

// Ratios returns QR and LU time relative to Cholesky.
//
// The division is done even when Cholesky failed or took no measurable time,
// so the values may be negative, infinite or NaN. In the failure case err
// carries the Cholesky error.
func (r Report) Ratios() (qr, lu float64, err error) {
	chol := r.Cholesky.Milliseconds()
	qr = r.QR.Milliseconds() / chol
	lu = r.LU.Milliseconds() / chol
	if r.Cholesky.Err != nil {
		err = errors.Wrap(r.Cholesky.Err, "ratios relative to Cholesky are undefined")
	}
	return qr, lu, err
}

// WriteTo prints the seven-line report.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	qr, lu, _ := r.Ratios()
	warnUndefined("qr_to_cholesky", qr)
	warnUndefined("lu_to_cholesky", lu)

	var b strings.Builder
	fmt.Fprintf(&b, "Matrix Size: %dx%d\n", r.Size, r.Size)
	fmt.Fprintf(&b, "Number of Iterations: %d\n", r.Iterations)
	fmt.Fprintf(&b, "Average Time taken for QR decomposition: %s milliseconds\n", formatFloat(r.average(r.QR)))
	fmt.Fprintf(&b, "Average Time taken for LU decomposition: %s milliseconds\n", formatFloat(r.average(r.LU)))
	fmt.Fprintf(&b, "Average Time taken for Cholesky decomposition: %s milliseconds\n", formatFloat(r.average(r.Cholesky)))
	b.WriteString("Average Ratios of time taken:\n")
	fmt.Fprintf(&b, "QR to LU to Cholesky: %s : %s : 1.0\n", formatFloat(qr), formatFloat(lu))

	log.GetLoggerWithName("decomposition.report").Debug("Report written",
		log.RowsKey, r.Size,
		log.ColsKey, r.Size,
		log.IterationsKey, r.Iterations,
		log.RatioKey, []float64{qr, lu},
	)

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// average divides by the report's iteration count, like the printed figures.
func (r Report) average(t Timing) float64 {
	return t.Milliseconds() / float64(r.Iterations)
}

func warnUndefined(metric string, v float64) {
	if err := errors.CheckScalar(metric, v, 0); err != nil {
		condition := "a zero Cholesky time"
		if math.IsNaN(v) {
			condition = "zero QR/LU and Cholesky times"
		}
		errors.Warn(errors.NewUndefinedMetricWarning(metric, condition, v))
	}
}

// formatFloat renders like a default C++ ostream: six significant digits,
// shortest of fixed or exponent form.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
