package decomposition

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/decompbench/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// GeneratePositiveDefinite returns a random symmetric positive-definite size×size matrix.
//
// Entries are drawn uniformly from [-1, 1), symmetrized as (A + Aᵀ)/2 and
// shifted by size·I. By Gershgorin every eigenvalue of the symmetrized matrix
// is at least -size, so the shift makes them positive.
//
// A nil src draws from an unseeded PCG; pass rand.NewPCG(seed, seed) for a
// reproducible matrix.
func GeneratePositiveDefinite(size int, src rand.Source) (*mat.Dense, error) {
	if size <= 0 {
		return nil, errors.NewValidationError("size", "must be positive", size)
	}
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	rng := rand.New(src)

	a := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			a.Set(i, j, rng.Float64()*2.0-1.0)
		}
	}

	// (A + Aᵀ)/2 is exactly symmetric since float addition commutes.
	var sym mat.Dense
	sym.Add(a, a.T())
	sym.Scale(0.5, &sym)

	shift := float64(size)
	for i := 0; i < size; i++ {
		sym.Set(i, i, sym.At(i, i)+shift)
	}

	if err := errors.CheckMatrix("GeneratePositiveDefinite", &sym, size, size, 0); err != nil {
		return nil, err
	}
	return &sym, nil
}
