// ©The iex Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iex

// Combinators for deferred computations.
//
// Minimal definition: Pure (unit) and Bind are necessary and sufficient.
// Map, Then, MapErr, and InspectErr are derived operations kept as
// optimizations to avoid settling intermediate Results.

// Pure lifts a value into a deferred computation that cannot fail.
func Pure[T, E any](v T) Thunk[T, E] {
	return func(Marker[E]) T {
		return v
	}
}

// Fail lifts an error into a deferred computation that raises it
// immediately.
func Fail[T, E any](err E) Thunk[T, E] {
	return func(m Marker[E]) T {
		return Raise[T](m, err)
	}
}

// Bind sequences two computations (monadic bind).
// It runs o, then passes the value to f to get the next computation.
// A failure in either stage forwards unchanged.
func Bind[T, U, E any](o Outcome[T, E], f func(T) Thunk[U, E]) Thunk[U, E] {
	return func(m Marker[E]) U {
		return f(o.GetValueOrPanic(m))(m)
	}
}

// Map applies a pure function to the value of a computation.
// Failures forward unchanged.
//
// Allocation note: Map is equivalent to Bind(o, compose(Pure, f)) but
// avoids the intermediate Pure closure, making it the preferred choice
// when the transformation cannot fail.
func Map[T, U, E any](o Outcome[T, E], f func(T) U) Thunk[U, E] {
	return func(m Marker[E]) U {
		return f(o.GetValueOrPanic(m))
	}
}

// Then sequences two computations, discarding the first value.
//
// Allocation note: Then avoids the closure capture of a transformation
// function that would occur with Bind(o, func(T) Thunk[U, E]).
func Then[T, U, E any](o Outcome[T, E], next Thunk[U, E]) Thunk[U, E] {
	return func(m Marker[E]) U {
		o.GetValueOrPanic(m)
		return next(m)
	}
}

// MapErr converts the failure of a computation through an arbitrary
// function. The value path is untouched. Unlike [ForwardMap], the
// conversion applies to every failure, even when R and E share one
// runtime type: conv is a transformation, not a type adapter, so there
// is no identity case to skip.
func MapErr[T, R, E any](o Outcome[T, R], conv func(R) E) Thunk[T, E] {
	return func(m Marker[E]) T {
		g := NewExceptionMapper(m, conv, applyConv[R, E])
		defer g.Fire()
		v := o.GetValueOrPanic(g.InMarker())
		g.Swallow()
		return v
	}
}

// inspectConv lets an inspector observe and mutate a payload in place.
// Named generic function produces a static funcval per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func inspectConv[E any](inspect func(*E), err E) E {
	inspect(&err)
	return err
}

// InspectErr runs inspect on the failure payload as it crosses this
// frame, leaving the payload type and the value path unchanged.
func InspectErr[T, E any](o Outcome[T, E], inspect func(*E)) Thunk[T, E] {
	return func(m Marker[E]) T {
		g := NewExceptionMapper(m, inspect, inspectConv[E])
		defer g.Fire()
		v := o.GetValueOrPanic(g.InMarker())
		g.Swallow()
		return v
	}
}
