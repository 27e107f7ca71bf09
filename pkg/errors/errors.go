// Package errors provides error handling and the warning system for the
// whole project. Fatal validation faults are structured, stack-traced
// error types; the single non-fatal diagnostic path is routed through a
// configurable warning handler instead of being raised as an error.
package errors

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// Default handler logs to standard error.
		log.Printf("caretEnsemble-Warning: %v\n", w)
	}
	// zerolog sink, lazily wired to avoid an import cycle with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the library-wide warning handler, controlling
// how non-fatal diagnostics such as WeightLengthWarning are reported.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // drop warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a zerolog-backed warning sink. It takes
// precedence over the plain handler when set.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a non-fatal warning through the configured sink.
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
//	Warning types
//
// ===========================================================================

// WeightLengthWarning reports that a weight vector did not match the
// length of its value vector and was recycled element-by-element.
// This is the only warn-not-fail path in the library.
type WeightLengthWarning struct {
	ValuesLen  int
	WeightsLen int
}

func (w *WeightLengthWarning) Error() string {
	return fmt.Sprintf("length of weights (%d) does not match length of values (%d); weights will be recycled",
		w.WeightsLen, w.ValuesLen)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *WeightLengthWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Int("values_len", w.ValuesLen).
		Int("weights_len", w.WeightsLen).
		Str("type", "WeightLengthWarning")
}

// NewWeightLengthWarning creates a new WeightLengthWarning.
func NewWeightLengthWarning(valuesLen, weightsLen int) *WeightLengthWarning {
	return &WeightLengthWarning{ValuesLen: valuesLen, WeightsLen: weightsLen}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// ModelTypeError reports that an element of a model list is not a
// well-formed trained-model record.
type ModelTypeError struct {
	Name   string
	Reason string
}

func (e *ModelTypeError) Error() string {
	return fmt.Sprintf("caretEnsemble: element %q is not a valid trained model: %s", e.Name, e.Reason)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ModelTypeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.Name).
		Str("reason", e.Reason).
		Str("type", "ModelTypeError")
}

// NewModelTypeError creates a new ModelTypeError with a stack trace.
func NewModelTypeError(name, reason string) error {
	err := &ModelTypeError{Name: name, Reason: reason}
	return errors.WithStack(err)
}

// TaskMismatchError reports that the models in a list do not all declare
// the same task type.
type TaskMismatchError struct {
	Tasks []string
}

func (e *TaskMismatchError) Error() string {
	return fmt.Sprintf("caretEnsemble: models must all be of the same task type, got: %s", strings.Join(e.Tasks, ", "))
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *TaskMismatchError) MarshalZerologObject(event *zerolog.Event) {
	event.Strs("tasks", e.Tasks).
		Str("type", "TaskMismatchError")
}

// NewTaskMismatchError creates a new TaskMismatchError with a stack trace.
func NewTaskMismatchError(tasks []string) error {
	err := &TaskMismatchError{Tasks: tasks}
	return errors.WithStack(err)
}

// UnsupportedTaskError reports a task type other than classification or
// regression.
type UnsupportedTaskError struct {
	Task string
}

func (e *UnsupportedTaskError) Error() string {
	return fmt.Sprintf("caretEnsemble: unsupported task type %q, must be Classification or Regression", e.Task)
}

// NewUnsupportedTaskError creates a new UnsupportedTaskError with a stack trace.
func NewUnsupportedTaskError(task string) error {
	err := &UnsupportedTaskError{Task: task}
	return errors.WithStack(err)
}

// MissingPredictionsError reports that a model retained no out-of-fold
// predictions, which makes ensembling impossible.
type MissingPredictionsError struct {
	Name string
}

func (e *MissingPredictionsError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("caretEnsemble: model %q has no retained out-of-fold predictions; re-train with predictions saved", e.Name)
	}
	return "caretEnsemble: no retained out-of-fold predictions; re-train with predictions saved"
}

// NewMissingPredictionsError creates a new MissingPredictionsError with a stack trace.
func NewMissingPredictionsError(name string) error {
	err := &MissingPredictionsError{Name: name}
	return errors.WithStack(err)
}

// MulticlassError reports an attempt to ensemble a classification task
// with more than two observed classes.
type MulticlassError struct {
	Classes []string
}

func (e *MulticlassError) Error() string {
	return fmt.Sprintf("caretEnsemble: classification ensembles support exactly 2 classes, got %d (%s)",
		len(e.Classes), strings.Join(e.Classes, ", "))
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *MulticlassError) MarshalZerologObject(event *zerolog.Event) {
	event.Strs("classes", e.Classes).
		Int("n_classes", len(e.Classes)).
		Str("type", "MulticlassError")
}

// NewMulticlassError creates a new MulticlassError with a stack trace.
func NewMulticlassError(classes []string) error {
	err := &MulticlassError{Classes: classes}
	return errors.WithStack(err)
}

// CapabilityError reports models that cannot, or were not configured to,
// produce class probabilities.
type CapabilityError struct {
	Models []string
	Reason string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("caretEnsemble: models [%s] %s", strings.Join(e.Models, ", "), e.Reason)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *CapabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Strs("models", e.Models).
		Str("reason", e.Reason).
		Str("type", "CapabilityError")
}

// NewCapabilityError creates a new CapabilityError with a stack trace.
func NewCapabilityError(models []string, reason string) error {
	err := &CapabilityError{Models: models, Reason: reason}
	return errors.WithStack(err)
}

// AlignmentError reports a cross-model mismatch in the extracted
// best-tune predictions: resampling folds, row indexes, observed values
// or prediction payload kinds.
type AlignmentError struct {
	Field  string
	Detail string
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("caretEnsemble: models do not align on %s: %s", e.Field, e.Detail)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *AlignmentError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("field", e.Field).
		Str("detail", e.Detail).
		Str("type", "AlignmentError")
}

// NewAlignmentError creates a new AlignmentError with a stack trace.
func NewAlignmentError(field, detail string) error {
	err := &AlignmentError{Field: field, Detail: detail}
	return errors.WithStack(err)
}

// ValueError reports an invalid or inappropriate argument value.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("caretEnsemble: %s: %s", e.Op, e.Message)
}

// NewValueError creates a new ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// DimensionError reports input data whose dimensions differ from what
// an operation expects.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("caretEnsemble: %s: dimension mismatch. Expected %d, got %d", e.Op, e.Expected, e.Got)
}

// NewDimensionError creates a new DimensionError with a stack trace.
func NewDimensionError(op string, expected, got int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain matching target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates an error with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrEmptyData indicates an empty input collection.
	ErrEmptyData = New("empty data")

	// ErrEmptyModelList indicates a model list with no entries.
	ErrEmptyModelList = New("empty model list")
)
