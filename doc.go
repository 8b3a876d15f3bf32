// Package decompbench benchmarks gonum's dense matrix factorizations.
//
// It generates one random symmetric positive-definite matrix, times LU,
// Householder QR and Cholesky on it a fixed number of times, and prints the
// average time per method together with the QR : LU : Cholesky ratios.
//
// # Quick Start
//
//	go run ./examples/decomposition_benchmark
//
// prints
//
//	Matrix Size: 60x60
//	Number of Iterations: 5
//	Average Time taken for QR decomposition: 0.0912 milliseconds
//	Average Time taken for LU decomposition: 0.0531 milliseconds
//	Average Time taken for Cholesky decomposition: 0.0264 milliseconds
//	Average Ratios of time taken:
//	QR to LU to Cholesky: 3.45455 : 2.01136 : 1.0
//
// # Packages
//
//   - decomposition: matrix generator, timing harness and report
//   - plotting: bar chart export of a report
//   - pkg/config: run parameters and environment overrides
//   - pkg/errors: structured errors on top of cockroachdb/errors
//   - pkg/log: zerolog-backed structured logging
//
// # Environment
//
//	DECOMPBENCH_SEED=42          fix the random matrix
//	DECOMPBENCH_LOG_LEVEL=debug  JSON logs on stderr
//	DECOMPBENCH_PLOT=out.png     write a bar chart
package decompbench
