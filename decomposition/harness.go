package decomposition

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/YuminosukeSato/decompbench/pkg/errors"
	"github.com/YuminosukeSato/decompbench/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// FailureSentinel is what Milliseconds reports for a failed timing.
const FailureSentinel = -1.0

// Decomposer factorizes a once and reports whether the factorization succeeded.
// The result is discarded.
type Decomposer func(a mat.Matrix) bool

// Timing is the outcome of timing one method.
type Timing struct {
	Method     Method
	Iterations int
	Total      time.Duration
	Err        error
}

// Milliseconds returns the total elapsed time in milliseconds, or
// FailureSentinel when the run failed.
func (t Timing) Milliseconds() float64 {
	if t.Err != nil {
		return FailureSentinel
	}
	return float64(t.Total) / float64(time.Millisecond)
}

// AverageMilliseconds is Milliseconds divided by the iteration count.
// The sentinel is divided too, matching the printed report.
func (t Timing) AverageMilliseconds() float64 {
	return t.Milliseconds() / float64(t.Iterations)
}

// Harness times factorizations. It is not safe for concurrent use.
type Harness struct {
	diagnostics io.Writer
	logger      log.Logger
	now         func() time.Time
	decomposers map[Method]Decomposer
}

// NewHarness returns a Harness timing gonum's factorizations.
func NewHarness(opts ...Option) *Harness {
	h := &Harness{
		diagnostics: os.Stderr,
		logger:      log.GetLoggerWithName("decomposition.harness"),
		now:         time.Now,
		decomposers: map[Method]Decomposer{
			LU:       factorizeLU,
			QR:       factorizeQR,
			Cholesky: factorizeCholesky,
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run factorizes a iterations times with m and returns the elapsed time.
//
// The first failed attempt aborts the loop: a false success flag or a panic
// inside the factorization is written to the diagnostics writer and returned
// as a *errors.DecompositionError in Timing.Err.
func (h *Harness) Run(a mat.Matrix, m Method, iterations int) Timing {
	timing := Timing{Method: m, Iterations: iterations}
	logger := h.logger.With(log.MethodKey, m.String(), log.IterationsKey, iterations)

	if iterations < 1 {
		timing.Err = errors.NewValidationError("iterations", "must be at least 1", iterations)
		logger.Error("Timing run rejected", timing.Err)
		return timing
	}
	decompose, ok := h.decomposers[m]
	if !ok {
		timing.Err = errors.NewValidationError("method", "unknown decomposition", m.String())
		logger.Error("Timing run rejected", timing.Err)
		return timing
	}

	start := h.now()
	for i := 0; i < iterations; i++ {
		if err := h.attempt(decompose, a, m, i); err != nil {
			timing.Err = err
			logger.Error("Decomposition failed", err, log.ErrorTypeKey, "DecompositionError")
			return timing
		}
	}
	timing.Total = h.now().Sub(start)

	logger.Debug("Decomposition timed",
		log.DurationMsKey, timing.Milliseconds(),
		log.AverageMsKey, timing.AverageMilliseconds(),
	)
	return timing
}

// RunAll times QR, LU and Cholesky in that order on a.
func (h *Harness) RunAll(a mat.Matrix, iterations int) Report {
	size, _ := a.Dims()
	return Report{
		Size:       size,
		Iterations: iterations,
		QR:         h.Run(a, QR, iterations),
		LU:         h.Run(a, LU, iterations),
		Cholesky:   h.Run(a, Cholesky, iterations),
	}
}

// attempt runs one factorization, normalizing both failure channels into a
// DecompositionError.
func (h *Harness) attempt(decompose Decomposer, a mat.Matrix, m Method, iteration int) error {
	var succeeded bool
	fault := errors.SafeExecute(m.String()+".Factorize", func() error {
		succeeded = decompose(a)
		return nil
	})
	if fault != nil {
		msg := fault.Error()
		var panicErr *errors.PanicError
		if errors.As(fault, &panicErr) {
			msg = panicErr.Message()
		}
		fmt.Fprintf(h.diagnostics, "Exception caught: %s\n", msg)
		return errors.NewDecompositionError(m.String(), errors.KindFault, iteration, fault)
	}
	if !succeeded {
		fmt.Fprintf(h.diagnostics, "%s decomposition failed for the given matrix.\n", m)
		return errors.NewDecompositionError(m.String(), errors.KindNotPositiveDefinite, iteration, errors.ErrNotPositiveDefinite)
	}
	return nil
}

// PerformLU returns the total milliseconds of iterations LU factorizations of a.
func PerformLU(a mat.Matrix, iterations int) float64 {
	return NewHarness().Run(a, LU, iterations).Milliseconds()
}

// PerformQR returns the total milliseconds of iterations QR factorizations of a.
func PerformQR(a mat.Matrix, iterations int) float64 {
	return NewHarness().Run(a, QR, iterations).Milliseconds()
}

// PerformCholesky returns the total milliseconds of iterations Cholesky
// factorizations of a, or exactly -1.0 if any attempt fails.
func PerformCholesky(a mat.Matrix, iterations int) float64 {
	return NewHarness().Run(a, Cholesky, iterations).Milliseconds()
}

func factorizeLU(a mat.Matrix) bool {
	var lu mat.LU
	lu.Factorize(a)
	return true
}

func factorizeQR(a mat.Matrix) bool {
	var qr mat.QR
	qr.Factorize(a)
	return true
}

func factorizeCholesky(a mat.Matrix) bool {
	var chol mat.Cholesky
	return chol.Factorize(lowerSymmetric(a))
}

// lowerSymmetric views a as symmetric, reading only its lower triangle.
func lowerSymmetric(a mat.Matrix) mat.Symmetric {
	if s, ok := a.(mat.Symmetric); ok {
		return s
	}
	r, c := a.Dims()
	if r != c {
		panic(mat.ErrSquare)
	}
	s := mat.NewSymDense(r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j <= i; j++ {
			s.SetSym(i, j, a.At(i, j))
		}
	}
	return s
}
