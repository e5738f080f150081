// ©The iex Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iex

import "reflect"

// Marker is the capability token for raising errors of type E.
// Markers are only handed out by [Catch] and by the adapters derived
// from its boundary ([ForwardMap], [ExceptionMapper.InMarker]), so
// holding a Marker[E] witnesses that an enclosing boundary claims
// unwinds carrying E.
//
// A Marker is one word and freely copyable; every copy refers to the
// same boundary. The zero Marker witnesses nothing and raising through
// it is a protocol violation.
type Marker[E any] struct {
	ex *exception
}

// newMarker reinterprets a cell as a token for error type E.
// Callers must guarantee that the boundary owning the cell claims E:
// either the boundary was opened for E, or a guard installed between
// here and the boundary converts E into the claimed type.
func newMarker[E any](ex *exception) Marker[E] {
	return Marker[E]{ex: ex}
}

// Raise stages err in the boundary's cell and starts the unwind.
// It never returns; the declared result type T lets call sites keep it
// in return position:
//
//	return iex.Raise[int](m, err)
//
// The unwind travels as a panic whose value is the boundary's cell, so
// intervening frames can tell this boundary's failure from foreign
// panics and from other boundaries' failures by pointer identity.
func Raise[T, E any](m Marker[E], err E) T {
	if m.ex == nil {
		protocolViolation("marker used outside a boundary")
	}
	m.ex.write(reflect.TypeOf((*E)(nil)).Elem(), err)
	panic(m.ex)
}
