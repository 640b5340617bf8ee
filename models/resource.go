package models

// ResourceState enumerates the mutually exclusive states of a Resource.
type ResourceState int

const (
	StateLoading ResourceState = iota
	StateSuccess
	StateError
)

// Resource is the tri-state wrapper carried by watch streams and folded into
// calendar state: exactly one of Loading, Success(value) or Error(message)
// is active at a time.
type Resource[T any] struct {
	State   ResourceState
	Value   T
	Message string
	Err     error
}

func Loading[T any]() Resource[T] {
	return Resource[T]{State: StateLoading}
}

func Success[T any](value T) Resource[T] {
	return Resource[T]{State: StateSuccess, Value: value}
}

// Failure builds an error resource. The message is the user-facing string;
// the underlying cause is kept so callers can still distinguish not-found
// from decode or transport errors.
func Failure[T any](message string, err error) Resource[T] {
	return Resource[T]{State: StateError, Message: message, Err: err}
}

func (r Resource[T]) IsLoading() bool { return r.State == StateLoading }
func (r Resource[T]) IsSuccess() bool { return r.State == StateSuccess }
func (r Resource[T]) IsError() bool   { return r.State == StateError }

// DecodeFailure reports a single document that could not be decoded while
// mapping a list query. Failed documents are surfaced alongside the decoded
// items instead of being silently dropped.
type DecodeFailure struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}
