package decomposition

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/YuminosukeSato/decompbench/pkg/errors"
	"github.com/YuminosukeSato/decompbench/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timingOf(m Method, total time.Duration) Timing {
	return Timing{Method: m, Iterations: 5, Total: total}
}

func TestReportWriteTo(t *testing.T) {
	report := Report{
		Size:       60,
		Iterations: 5,
		QR:         timingOf(QR, 10*time.Millisecond),
		LU:         timingOf(LU, 5*time.Millisecond),
		Cholesky:   timingOf(Cholesky, 2500*time.Microsecond),
	}

	var out bytes.Buffer
	n, err := report.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(out.Len()), n)

	want := "Matrix Size: 60x60\n" +
		"Number of Iterations: 5\n" +
		"Average Time taken for QR decomposition: 2 milliseconds\n" +
		"Average Time taken for LU decomposition: 1 milliseconds\n" +
		"Average Time taken for Cholesky decomposition: 0.5 milliseconds\n" +
		"Average Ratios of time taken:\n" +
		"QR to LU to Cholesky: 4 : 2 : 1.0\n"
	assert.Equal(t, want, out.String())
}

func TestReportLogsRatios(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelDebug)
	prev := log.SetLogger(logger)
	defer log.SetLogger(prev)

	report := Report{
		Size:       60,
		Iterations: 5,
		QR:         timingOf(QR, 10*time.Millisecond),
		LU:         timingOf(LU, 5*time.Millisecond),
		Cholesky:   timingOf(Cholesky, 2500*time.Microsecond),
	}
	_, err := report.WriteTo(&bytes.Buffer{})
	require.NoError(t, err)

	entries, err := logger.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Report written", entries[0]["message"])
	assert.Equal(t, "decomposition.report", entries[0][log.ComponentKey])
	assert.Equal(t, []interface{}{4.0, 2.0}, entries[0][log.RatioKey])
}

func TestReportCholeskyFailure(t *testing.T) {
	silenceWarnings(t)
	failed := Timing{
		Method:     Cholesky,
		Iterations: 5,
		Err:        errors.NewDecompositionError("Cholesky", errors.KindNotPositiveDefinite, 0, errors.ErrNotPositiveDefinite),
	}
	report := Report{
		Size:       3,
		Iterations: 5,
		QR:         timingOf(QR, 10*time.Millisecond),
		LU:         timingOf(LU, 5*time.Millisecond),
		Cholesky:   failed,
	}

	qr, lu, err := report.Ratios()
	assert.Equal(t, -10.0, qr)
	assert.Equal(t, -5.0, lu)
	var decErr *errors.DecompositionError
	require.True(t, errors.As(err, &decErr))

	var out bytes.Buffer
	_, err = report.WriteTo(&out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Average Time taken for Cholesky decomposition: -0.2 milliseconds\n")
	assert.Contains(t, out.String(), "QR to LU to Cholesky: -10 : -5 : 1.0\n")
}

func TestReportZeroCholeskyTime(t *testing.T) {
	var warnings []error
	errors.SetZerologWarnFunc(func(w error) { warnings = append(warnings, w) })
	defer errors.SetZerologWarnFunc(nil)

	tests := []struct {
		name     string
		qr, lu   time.Duration
		wantLine string
	}{
		{"positive over zero", 10 * time.Millisecond, 5 * time.Millisecond, "QR to LU to Cholesky: inf : inf : 1.0\n"},
		{"zero over zero", 0, 0, "QR to LU to Cholesky: nan : nan : 1.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings = nil
			report := Report{
				Size:       2,
				Iterations: 5,
				QR:         timingOf(QR, tt.qr),
				LU:         timingOf(LU, tt.lu),
				Cholesky:   timingOf(Cholesky, 0),
			}

			qr, lu, err := report.Ratios()
			assert.NoError(t, err)
			assert.False(t, isFinite(qr))
			assert.False(t, isFinite(lu))

			var out bytes.Buffer
			_, err = report.WriteTo(&out)
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(out.String(), tt.wantLine), out.String())

			require.Len(t, warnings, 2)
			var warning *errors.UndefinedMetricWarning
			require.True(t, errors.As(warnings[0], &warning))
			assert.Equal(t, "qr_to_cholesky", warning.Metric)
		})
	}
}

func TestReportLineLabels(t *testing.T) {
	report := NewHarness(WithDiagnostics(&failWriter{t: t})).RunAll(testMatrix(t, 60), 5)

	var out bytes.Buffer
	_, err := report.WriteTo(&out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "Matrix Size: 60x60", lines[0])
	assert.Equal(t, "Number of Iterations: 5", lines[1])

	prefixes := []string{
		"Average Time taken for QR decomposition: ",
		"Average Time taken for LU decomposition: ",
		"Average Time taken for Cholesky decomposition: ",
	}
	for i, prefix := range prefixes {
		line := lines[2+i]
		require.True(t, strings.HasPrefix(line, prefix), line)
		require.True(t, strings.HasSuffix(line, " milliseconds"), line)
		value := strings.TrimSuffix(strings.TrimPrefix(line, prefix), " milliseconds")
		ms, err := strconv.ParseFloat(value, 64)
		require.NoError(t, err, value)
		assert.GreaterOrEqual(t, ms, 0.0)
	}

	assert.Equal(t, "Average Ratios of time taken:", lines[5])
	require.True(t, strings.HasPrefix(lines[6], "QR to LU to Cholesky: "))
	fields := strings.Split(strings.TrimPrefix(lines[6], "QR to LU to Cholesky: "), " : ")
	require.Len(t, fields, 3)
	assert.Equal(t, "1.0", fields[2])
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{0.5, "0.5"},
		{12, "12"},
		{100, "100"},
		{-0.2, "-0.2"},
		{1.0 / 3.0, "0.333333"},
		{1234567, "1.23457e+06"},
		{0.00001234, "1.234e-05"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatFloat(tt.in), "formatFloat(%v)", tt.in)
	}
}

func silenceWarnings(t *testing.T) {
	t.Helper()
	errors.SetZerologWarnFunc(func(error) {})
	t.Cleanup(func() { errors.SetZerologWarnFunc(nil) })
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
