// Package result provides the tri-state outcome type used between the
// repository layer and its callers. Operations either succeed with a value,
// fail with a human-readable message, or are still pending. Absence of data is
// modeled as the pending state, never as a nil value.
package result

type state int

const (
	statePending state = iota
	stateSuccess
	stateFailure
)

// Result holds exactly one of: a pending marker, a success value, or a
// failure message. The zero value is pending.
type Result[T any] struct {
	state   state
	value   T
	message string
}

// Pending returns a Result representing an operation that has not completed.
func Pending[T any]() Result[T] {
	return Result[T]{state: statePending}
}

// Success wraps a completed operation's value.
func Success[T any](value T) Result[T] {
	return Result[T]{state: stateSuccess, value: value}
}

// Failure wraps a failed operation's message.
func Failure[T any](message string) Result[T] {
	return Result[T]{state: stateFailure, message: message}
}

func (r Result[T]) IsPending() bool {
	return r.state == statePending
}

func (r Result[T]) IsSuccess() bool {
	return r.state == stateSuccess
}

func (r Result[T]) IsFailure() bool {
	return r.state == stateFailure
}

// Value returns the success value. The second return is false unless the
// result is a success.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.state == stateSuccess
}

// Message returns the failure message. The second return is false unless the
// result is a failure.
func (r Result[T]) Message() (string, bool) {
	return r.message, r.state == stateFailure
}
