// ©The iex Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iex

import "reflect"

// ExceptionMapper converts failures of type T into type U as an unwind
// crosses a frame. It is installed around a call and fired from a
// defer, so the conversion happens mid-unwind without recovering; the
// unwind keeps going on its own.
//
// A mapper is armed on construction and releases its owned state and
// conversion exactly once: [ExceptionMapper.Swallow] disarms it on the
// success path, and [ExceptionMapper.Fire] releases it on the deferred
// path. Fire on a disarmed mapper is a no-op; Swallow on a released
// mapper is a protocol violation. The intended shape:
//
//	g := iex.NewExceptionMapper(m, state, conv)
//	defer g.Fire()
//	v := callee(g.InMarker())
//	g.Swallow()
//	return v
type ExceptionMapper[S, T, U any] struct {
	ex       *exception
	state    S
	conv     func(S, T) U
	released bool
}

// NewExceptionMapper arms a conversion guard on the boundary witnessed
// by m. The guard owns state until release and passes it to conv
// together with the payload when it fires.
func NewExceptionMapper[S, T, U any](m Marker[U], state S, conv func(S, T) U) *ExceptionMapper[S, T, U] {
	if m.ex == nil {
		protocolViolation("marker used outside a boundary")
	}
	return &ExceptionMapper[S, T, U]{ex: m.ex, state: state, conv: conv}
}

// InMarker returns the marker to hand to the guarded call: failures of
// type T raised through it stage in the same cell and are converted to
// U by this guard on the way out.
func (g *ExceptionMapper[S, T, U]) InMarker() Marker[T] {
	return newMarker[T](g.ex)
}

// State returns the guard's owned state for in-place inspection or
// mutation while the guard is armed. The pointed-to value is zeroed
// once the guard releases.
func (g *ExceptionMapper[S, T, U]) State() *S {
	return &g.state
}

// Swallow disarms the guard on the success path, dropping its state
// and conversion without touching the cell.
func (g *ExceptionMapper[S, T, U]) Swallow() {
	if g.released {
		protocolViolation("exception mapper released twice")
	}
	g.drop()
}

// drop releases owned state and conversion.
func (g *ExceptionMapper[S, T, U]) drop() {
	var zero S
	g.state = zero
	g.conv = nil
	g.released = true
}

// Fire runs the guard from its defer. An armed guard releases state
// and conversion exactly once; if the cell stages a payload of type T
// the payload is converted and restaged as U. Anything else in flight
// passes untouched: a foreign panic stages nothing, and another
// boundary's unwind stages its own cell, so the read misses in both
// cases. Fire never recovers.
func (g *ExceptionMapper[S, T, U]) Fire() {
	if g.released {
		return
	}
	payload, ok := g.ex.read(reflect.TypeOf((*T)(nil)).Elem())
	if !ok {
		g.drop()
		return
	}
	state, conv := g.state, g.conv
	g.drop()
	// A staged nil under an interface-typed T has no dynamic type to
	// assert; the comma-ok form hands it to conv as the zero T.
	v, _ := payload.(T)
	// The cell is consumed before conv runs and restaged only after it
	// returns: conv may itself run guarded calls or open boundaries, so
	// the cell must not be held open across the call.
	g.ex.write(reflect.TypeOf((*U)(nil)).Elem(), conv(state, v))
}
