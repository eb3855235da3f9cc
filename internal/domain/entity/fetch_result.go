package entity

// FetchResult is the uniform outcome of a catalog fetch: failures are carried as
// Success=false with a Message instead of an error.
type FetchResult[T any] struct {
	Data    T
	Success bool
	Message string
}

// OK wraps data in a successful result.
func OK[T any](data T) FetchResult[T] {
	return FetchResult[T]{Data: data, Success: true}
}

// Failed builds a failed result carrying the zero value.
func Failed[T any](message string) FetchResult[T] {
	return FetchResult[T]{Message: message}
}
