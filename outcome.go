// ©The iex Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iex

import "reflect"

// Outcome is a computation that produces T or fails with E.
//
// The two implementations differ in when the failure is represented:
// [Result] is strict (already settled, discriminant stored) while
// [Thunk] is deferred (the failure travels as an unwind and is only
// reified on demand). Code written against Outcome composes with both.
type Outcome[T, E any] interface {
	// GetValueOrPanic returns the computation's value, or raises its
	// failure into the boundary witnessed by m.
	GetValueOrPanic(m Marker[E]) T

	// IntoResult settles the computation into a discriminated value.
	IntoResult() Result[T, E]
}

// Thunk is a deferred computation producing T, raising E through the
// given marker on failure. Its success path returns T directly, with
// no discriminant to store and no branch to take.
type Thunk[T, E any] func(Marker[E]) T

// Func adapts a function literal to a Thunk.
// This is the primitive constructor for computations that need direct
// access to the marker.
func Func[T, E any](f func(Marker[E]) T) Thunk[T, E] {
	return f
}

// GetValueOrPanic runs the thunk against the boundary witnessed by m.
func (f Thunk[T, E]) GetValueOrPanic(m Marker[E]) T {
	return f(m)
}

// IntoResult settles the thunk by running it inside a fresh boundary.
func (f Thunk[T, E]) IntoResult() Result[T, E] {
	return Catch(f)
}

// claimScope is the deferred boundary handler for Catch.
// Named generic function produces a static funcval per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
//
// The cell decides everything:
//   - empty cell: nothing was raised for this boundary. Either f
//     returned normally, or a foreign panic (or another boundary's
//     unwind, carried in its own cell) is in flight and propagates
//     with no recover call.
//   - staged cell: this boundary's unwind arrived. Claim it and
//     settle res to Err.
func claimScope[T, E any](ex *exception, res *Result[T, E]) {
	if ex.empty() {
		releaseException(ex)
		return
	}
	r := recover()
	if r == nil {
		protocolViolation("staged failure outlived its unwind")
	}
	if r != any(ex) {
		protocolViolation("staged failure superseded by another panic")
	}
	payload, ok := ex.read(reflect.TypeOf((*E)(nil)).Elem())
	if !ok {
		protocolViolation("unwind payload does not match the boundary error type")
	}
	releaseException(ex)
	// The tag match proved the payload type. The comma-ok form is for
	// interface-typed E: a staged nil has no dynamic type to assert and
	// settles as the zero E.
	v, _ := payload.(E)
	*res = Err[T, E](v)
}

// Catch opens a boundary for error type E, runs f with the boundary's
// marker, and settles the outcome into a [Result].
//
// A failure raised through the marker (directly or via forwarding from
// any call depth) unwinds back here and becomes Err; a normal return
// becomes Ok. Panics that were not raised through this boundary's
// marker propagate untouched.
func Catch[T, E any](f func(Marker[E]) T) (res Result[T, E]) {
	ex := acquireException()
	defer claimScope(ex, &res)
	res = Ok[T, E](f(newMarker[E](ex)))
	return res
}
