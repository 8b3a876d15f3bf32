// Package log defines standard attribute keys for benchmark operations.
//
// The keys follow a hierarchical naming convention (e.g. "perf.duration_ms",
// "data.rows") so log records can be filtered by category.

package log

// Operation Context
const (
	// ComponentKey identifies which component is logging.
	// Examples: "decomposition.harness", "decomposition.report"
	ComponentKey = "component"

	// MethodKey names the decomposition being measured: "LU", "QR", "Cholesky".
	MethodKey = "decomp.method"

	// IterationsKey records the configured iteration count of a timing run.
	IterationsKey = "decomp.iterations"
)

// Data Shape and Characteristics
const (
	// RowsKey indicates the number of rows of the benchmarked matrix.
	RowsKey = "data.rows"

	// ColsKey indicates the number of columns of the benchmarked matrix.
	ColsKey = "data.cols"

	// DataSizeKey indicates the memory size of the data in bytes.
	DataSizeKey = "data.size_bytes"

	// DataSizeHumanKey is DataSizeKey rendered for humans, e.g. "29 kB".
	DataSizeHumanKey = "data.size"
)

// Performance Metrics
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// AverageMsKey records the per-iteration average in milliseconds.
	AverageMsKey = "perf.average_ms"

	// RatioKey records the QR and LU times relative to Cholesky, in that order.
	RatioKey = "perf.ratio"
)

// Error and Configuration Context
const (
	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"

	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"

	// PlotPathKey records where a timing chart was written.
	PlotPathKey = "config.plot_path"
)
