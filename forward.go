// ©The iex Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iex

import "reflect"

// Forwarding adapters: propagate a callee's failure into the caller's
// boundary without settling it into a Result in between.

// Forward evaluates o, propagating its failure unchanged into the
// caller's boundary. With the error types already equal the callee
// raises directly against the caller's cell; forwarding adds no
// control structure and no slot traffic on either path.
func Forward[T, E any](o Outcome[T, E], m Marker[E]) T {
	return o.GetValueOrPanic(m)
}

// applyConv applies a stateless conversion carried as guard state.
// Named generic function produces a static funcval per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func applyConv[R, E any](conv func(R) E, err R) E {
	return conv(err)
}

// ForwardMap evaluates o, converting a raised failure from R to E on
// its way into the caller's boundary.
//
// When R and E share one runtime type the callee raises directly
// against the caller's cell and conv is provably never invoked: the
// staged payload already has the claimed type, so no guard is armed
// and a failure crosses this frame with zero conversion work.
// Otherwise a conversion guard is armed for the duration of the call.
func ForwardMap[T, R, E any](o Outcome[T, R], m Marker[E], conv func(R) E) T {
	if reflect.TypeOf((*R)(nil)).Elem() == reflect.TypeOf((*E)(nil)).Elem() {
		return o.GetValueOrPanic(newMarker[R](m.ex))
	}
	g := NewExceptionMapper(m, conv, applyConv[R, E])
	defer g.Fire()
	v := o.GetValueOrPanic(g.InMarker())
	g.Swallow()
	return v
}
