package errors

import (
	"fmt"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// gonumの次元チェックが投げるpanicをPanicErrorとして回収する
func TestSafeExecuteRecoversGonumPanic(t *testing.T) {
	err := SafeExecute("LU.Factorize", func() error {
		var lu mat.LU
		lu.Factorize(mat.NewDense(2, 3, nil))
		return nil
	})
	if err == nil {
		t.Fatal("expected an error from the non-square factorization")
	}

	var panicErr *PanicError
	if !As(err, &panicErr) {
		t.Fatalf("expected *PanicError, got %T", err)
	}
	if panicErr.Operation != "LU.Factorize" {
		t.Errorf("Operation = %q, want LU.Factorize", panicErr.Operation)
	}
	if panicErr.Message() != "mat: expect square matrix" {
		t.Errorf("Message() = %q, want %q", panicErr.Message(), "mat: expect square matrix")
	}
	if !strings.Contains(panicErr.StackTrace, "gonum.org/v1/gonum/mat") {
		t.Error("stack trace should point into gonum")
	}
}

func TestPanicErrorUnwrapsPanicError(t *testing.T) {
	err := SafeExecute("Cholesky.Factorize", func() error {
		panic(mat.ErrSquare)
	})

	var panicErr *PanicError
	if !As(err, &panicErr) {
		t.Fatalf("expected *PanicError, got %T", err)
	}
	if panicErr.Unwrap() != mat.ErrSquare {
		t.Errorf("Unwrap() = %v, want mat.ErrSquare", panicErr.Unwrap())
	}
	if !Is(err, mat.ErrSquare) {
		t.Error("Is(err, mat.ErrSquare) should hold through Unwrap")
	}

	want := "panic in Cholesky.Factorize: mat: expect square matrix"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestPanicErrorWithStringValue(t *testing.T) {
	panicErr := NewPanicError("QR.Factorize", "householder reflection overflow")

	if panicErr.Unwrap() != nil {
		t.Errorf("Unwrap() = %v, want nil for a string panic", panicErr.Unwrap())
	}
	if panicErr.Message() != "householder reflection overflow" {
		t.Errorf("Message() = %q", panicErr.Message())
	}

	str := panicErr.String()
	if !strings.HasPrefix(str, "panic in QR.Factorize: householder reflection overflow\n") {
		t.Errorf("String() = %q", str)
	}
	if !strings.Contains(str, "Stack trace:") {
		t.Error("String() should include the stack trace")
	}
}

// 既にエラーが設定されている場合はpanic情報でラップする
func TestRecoverWrapsExistingError(t *testing.T) {
	factorize := func() (err error) {
		defer Recover(&err, "Cholesky.Factorize")
		err = ErrNotPositiveDefinite
		panic(mat.ErrSquare)
	}

	err := factorize()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !Is(err, ErrNotPositiveDefinite) {
		t.Error("wrapped error should still match ErrNotPositiveDefinite")
	}

	var panicErr *PanicError
	if As(err, &panicErr) {
		t.Error("an existing error should be wrapped, not replaced by *PanicError")
	}

	want := "panic in Cholesky.Factorize: mat: expect square matrix: matrix is not positive definite"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestRecoverWithoutPanic(t *testing.T) {
	factorize := func() (err error) {
		defer Recover(&err, "Cholesky.Factorize")
		return nil
	}

	if err := factorize(); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestSafeExecutePassesThroughResult(t *testing.T) {
	if err := SafeExecute("LU.Factorize", func() error { return nil }); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	err := SafeExecute("Cholesky.Factorize", func() error { return ErrNotPositiveDefinite })
	if err != ErrNotPositiveDefinite {
		t.Errorf("expected the returned error unchanged, got %v", err)
	}
}

func TestRecoverPanicValueTypes(t *testing.T) {
	testCases := []struct {
		name        string
		panicValue  interface{}
		wantMessage string
		wantUnwrap  bool
	}{
		{"string", "index out of range", "index out of range", false},
		{"int", 42, "42", false},
		{"gonum error", mat.ErrShape, "mat: dimension mismatch", true},
		{"wrapped error", fmt.Errorf("qr: %w", mat.ErrZeroLength), "qr: mat: zero length in matrix dimension", true},
		{"nil", nil, "panic called with nil argument", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := SafeExecute("QR.Factorize", func() error {
				panic(tc.panicValue)
			})

			var panicErr *PanicError
			if !As(err, &panicErr) {
				t.Fatalf("expected *PanicError, got %T", err)
			}
			if !strings.HasPrefix(panicErr.Message(), tc.wantMessage) {
				t.Errorf("Message() = %q, want prefix %q", panicErr.Message(), tc.wantMessage)
			}
			if (panicErr.Unwrap() != nil) != tc.wantUnwrap {
				t.Errorf("Unwrap() = %v, want non-nil %v", panicErr.Unwrap(), tc.wantUnwrap)
			}
		})
	}
}

func BenchmarkSafeExecute(b *testing.B) {
	a := mat.NewDense(3, 3, []float64{4, 1, 0, 1, 3, 1, 0, 1, 2})
	var lu mat.LU
	for i := 0; i < b.N; i++ {
		_ = SafeExecute("LU.Factorize", func() error {
			lu.Factorize(a)
			return nil
		})
	}
}

func BenchmarkSafeExecuteRecovered(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = SafeExecute("Cholesky.Factorize", func() error {
			panic(mat.ErrSquare)
		})
	}
}
