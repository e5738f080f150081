// ©The iex Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iex

import "reflect"

// Exception cells: the staging slot for one in-flight failure payload.
// Each boundary owns exactly one cell; raising stages the payload in
// the cell and unwinds with the cell pointer as the panic value, so
// guards and boundaries recognize their own unwind by pointer identity.

// protocolViolation panics with a descriptive message for protocol misuse.
// Extracted as a noinline function so that cell operations remain inlineable.
//
//go:noinline
func protocolViolation(msg string) {
	panic("iex: " + msg)
}

// exception is the type-erased staging cell of a single boundary.
// A cell is empty when tag is nil. The payload and its runtime type
// travel together; reads succeed only on exact type identity, never on
// interface satisfaction.
type exception struct {
	tag reflect.Type
	val any
}

// empty reports whether no payload is staged.
func (e *exception) empty() bool { return e.tag == nil }

// write stages a payload under the given type tag.
// Writing over a staged payload is a protocol violation: at most one
// failure may be in flight per boundary.
func (e *exception) write(tag reflect.Type, val any) {
	if e.tag != nil {
		protocolViolation("exception cell already occupied")
	}
	e.tag = tag
	e.val = val
}

// read consumes the staged payload if its tag is exactly tag.
// On mismatch the cell is left untouched, so a reader expecting a
// different type never steals a payload that is not addressed to it.
func (e *exception) read(tag reflect.Type) (any, bool) {
	if e.tag != tag {
		return nil, false
	}
	val := e.val
	e.tag = nil
	e.val = nil
	return val, true
}
