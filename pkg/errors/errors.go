// Package errors はdecompbench全体のエラーハンドリングと警告システムを提供します。
// cockroachdb/errorsをベースに、スタックトレース付きの構造化エラーを提供します。
package errors

import (
	"fmt"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex sync.Mutex
	// デフォルトでは警告を捨てる（標準エラー出力は分解の診断専用）
	warningHandler func(w error)
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler は警告ハンドラを設定します。
// 既定のハンドラはnilで、警告は何も出力されません。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
// nilを渡すと従来のハンドラに戻ります。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが設定されている場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// UndefinedMetricWarning は指標が有限の値にならない場合の警告です。
// 例えば、Choleskyの計測時間が0または失敗を示す-1の場合の比率など。
type UndefinedMetricWarning struct {
	Metric    string
	Condition string
	Result    float64 // この条件で返される値
}

func (w *UndefinedMetricWarning) Error() string {
	return fmt.Sprintf("'%s' is ill-defined and being set to %v due to %s.", w.Metric, w.Result, w.Condition)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *UndefinedMetricWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("metric", w.Metric).
		Str("condition", w.Condition).
		Float64("result", w.Result).
		Str("type", "UndefinedMetricWarning")
}

// NewUndefinedMetricWarning は新しいUndefinedMetricWarningを作成します。
func NewUndefinedMetricWarning(metric, condition string, result float64) *UndefinedMetricWarning {
	return &UndefinedMetricWarning{Metric: metric, Condition: condition, Result: result}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("decompbench: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// 分解失敗の種類
const (
	// KindNotPositiveDefinite は成功フラグで検出された非正定値行列です。
	KindNotPositiveDefinite = "not_positive_definite"
	// KindFault は分解中に発生したpanicです。
	KindFault = "fault"
)

// DecompositionError は行列分解が失敗した場合のエラーです。
// 成功フラグによる失敗とpanicによる失敗の両方をこの型に正規化します。
type DecompositionError struct {
	Method    string
	Kind      string
	Iteration int   // 失敗した反復（0始まり）
	Err       error // panic由来の場合は *PanicError
}

func (e *DecompositionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decompbench: %s decomposition failed (%s) at iteration %d: %v", e.Method, e.Kind, e.Iteration, e.Err)
	}
	return fmt.Sprintf("decompbench: %s decomposition failed (%s) at iteration %d", e.Method, e.Kind, e.Iteration)
}

func (e *DecompositionError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DecompositionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("method", e.Method).
		Str("kind", e.Kind).
		Int("iteration", e.Iteration).
		Str("type", "DecompositionError")
	if e.Err != nil {
		event.Str("cause", e.Err.Error())
	}
}

// NewDecompositionError は新しいDecompositionErrorを作成し、スタックトレースを付与します。
func NewDecompositionError(method, kind string, iteration int, cause error) error {
	err := &DecompositionError{Method: method, Kind: kind, Iteration: iteration, Err: cause}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// StackTrace はcockroachdb/errorsが記録したスタックトレースを文字列で返します。
// 記録がない場合は空文字列です。
func StackTrace(err error) string {
	if err == nil {
		return ""
	}
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrNotPositiveDefinite はCholesky分解が成功フラグで失敗を報告した場合のエラーです。
	ErrNotPositiveDefinite = New("matrix is not positive definite")
)
