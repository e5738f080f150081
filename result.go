// ©The iex Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iex

// Result represents a settled outcome that is either Ok (success)
// carrying T or Err (failure) carrying E.

// Ok creates a success Result.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{ok: true, val: v}
}

// Err creates a failure Result.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{ok: false, err: err}
}

// Result is the strict half of [Outcome]: the discriminant is stored
// and every observation branches on it. Use [Thunk] when the failure
// should instead travel as a deferred unwind.
type Result[T, E any] struct {
	ok  bool
	val T
	err E
}

// IsOk reports whether this is a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether this is a failure value.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Get returns the success value and true, or zero and false.
func (r Result[T, E]) Get() (T, bool) {
	if r.ok {
		return r.val, true
	}
	var zero T
	return zero, false
}

// GetErr returns the failure value and true, or zero and false.
func (r Result[T, E]) GetErr() (E, bool) {
	if !r.ok {
		return r.err, true
	}
	var zero E
	return zero, false
}

// GetValueOrPanic returns the success value, or raises the stored
// failure into the boundary witnessed by m.
func (r Result[T, E]) GetValueOrPanic(m Marker[E]) T {
	if r.ok {
		return r.val
	}
	return Raise[T](m, r.err)
}

// IntoResult returns the Result unchanged.
func (r Result[T, E]) IntoResult() Result[T, E] {
	return r
}

// MatchResult pattern matches on the Result, calling onOk or onErr.
func MatchResult[T, E, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	if r.ok {
		return onOk(r.val)
	}
	return onErr(r.err)
}

// MapResult applies a function to the success value.
func MapResult[T, E, U any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](f(r.val))
	}
	return Err[U, E](r.err)
}

// FlatMapResult sequences two settled computations.
func FlatMapResult[T, E, U any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return f(r.val)
	}
	return Err[U, E](r.err)
}

// MapErrResult applies a function to the failure value.
func MapErrResult[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.val)
	}
	return Err[T, F](f(r.err))
}
