// Package decomposition times gonum's LU, QR and Cholesky factorizations on a
// symmetric positive-definite matrix and reports their average cost.
//
// The pipeline is straight-line and single-threaded:
//
//	a, err := decomposition.GeneratePositiveDefinite(60, rand.NewPCG(42, 42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report := decomposition.NewHarness().RunAll(a, 5)
//	report.WriteTo(os.Stdout)
//
// A Cholesky factorization that reports failure, or a fault raised while
// factorizing, aborts that method's loop. The failure is written to the
// diagnostics writer and returned as a *errors.DecompositionError on the
// Timing; Milliseconds then reports the -1 sentinel.
package decomposition
