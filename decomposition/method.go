package decomposition

import (
	"strconv"
	"strings"

	"github.com/YuminosukeSato/decompbench/pkg/errors"
)

// Method selects a factorization.
type Method int

const (
	// LU is gonum's partially pivoted LU.
	LU Method = iota
	// QR is gonum's Householder QR.
	QR
	// Cholesky is the LLᵀ factorization of a symmetric positive-definite matrix.
	Cholesky
)

// Methods lists the factorizations in report order.
var Methods = []Method{QR, LU, Cholesky}

func (m Method) String() string {
	switch m {
	case LU:
		return "LU"
	case QR:
		return "QR"
	case Cholesky:
		return "Cholesky"
	default:
		return "Method(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMethod accepts a method name case-insensitively.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lu":
		return LU, nil
	case "qr":
		return QR, nil
	case "cholesky", "llt":
		return Cholesky, nil
	}
	return 0, errors.NewValidationError("method", "unknown decomposition", name)
}
