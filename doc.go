// ©The iex Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package iex provides deferred error propagation over panic-based
// unwinding in Go.
//
// The core type [Outcome] represents a computation that produces a
// value or fails with a typed error. Instead of settling every call
// into a discriminated value, a failure is staged in a per-boundary
// cell and travels as an unwind; only a single top-level [Catch]
// reifies it back into a [Result]. Success paths carry the plain value
// with no discriminant to store and no branch per call frame.
//
// # Design Philosophy
//
// iex provides:
//   - Typed error propagation without per-frame discriminant branching
//   - Capability tokens ([Marker]) that tie every raise to the boundary
//     entitled to claim it
//   - Mid-unwind error conversion without recovering, via destructor-style
//     guards ([ExceptionMapper])
//
// Failure payloads and their runtime types travel together through one
// type-erased cell per boundary. All reads are guarded by exact runtime
// type identity, so a payload is only ever claimed by the frame it is
// addressed to; everything else passes it along untouched.
//
// # Protocol
//
// Four operations cover the failure path:
//
//   - [Raise]: Stage a payload and start the unwind
//   - [Forward]: Propagate a callee failure into the caller's boundary
//   - [ForwardMap]: Propagate, converting the error type on the way out
//   - [Catch]: Open a boundary and settle the outcome into a [Result]
//
// An unwind travels as a panic whose value is the boundary's cell
// pointer. Guards and boundaries recognize their own unwind by pointer
// identity; foreign panics and other boundaries' unwinds pass through
// untouched.
//
// # Markers
//
// [Marker] is a one-word capability token pinned to an error type E.
// Markers are only handed out by [Catch] and by adapters derived from
// its boundary, so holding a Marker[E] witnesses that an enclosing
// boundary claims unwinds carrying E:
//
//   - [Catch]: Mints the boundary's marker
//   - [ExceptionMapper.InMarker]: Derives a marker for the guarded error type
//   - [Raise]: Consumes a marker to raise; declared to return the
//     success type so call sites keep it in return position
//
// # Outcomes
//
// [Outcome] has a strict and a deferred implementation:
//
//   - [Result]: Settled value, discriminant stored, observation branches
//   - [Thunk]: Deferred computation, failure travels as an unwind
//   - [Func]: Primitive Thunk constructor from a function literal
//   - [Outcome.GetValueOrPanic]: Value, or raise into a witnessed boundary
//   - [Outcome.IntoResult]: Settle into a discriminated value
//
// # Result Type
//
// [Result] represents success (Ok) or failure (Err):
//
//   - [Ok], [Err]: Constructors
//   - [Result.IsOk], [Result.IsErr]: Predicates
//   - [Result.Get], [Result.GetErr]: Accessors
//   - [MatchResult]: Pattern matching
//   - [MapResult]: Functor map over the success value
//   - [FlatMapResult]: Monadic bind
//   - [MapErrResult]: Transform the failure value
//
// # Forwarding
//
// [Forward] and [ForwardMap] move a failure across one call frame.
// When the callee and caller error types share one runtime type,
// ForwardMap lets the callee raise directly against the caller's cell:
// no guard is armed and the conversion is provably never invoked. Only
// a genuine type change arms an [ExceptionMapper] for the call.
//
// # Exception Mappers
//
// [ExceptionMapper] converts failures of type T to type U mid-unwind,
// without recovering. It is armed before a guarded call and fired from
// a defer; the unwind continues on its own:
//
//   - [NewExceptionMapper]: Arm a guard with owned state and a conversion
//   - [ExceptionMapper.InMarker]: Marker for the guarded call
//   - [ExceptionMapper.State]: Owned state, mutable while armed
//   - [ExceptionMapper.Swallow]: Disarm on the success path (panics on reuse)
//   - [ExceptionMapper.Fire]: Deferred release; converts a staged T, passes
//     everything else untouched, no-op once disarmed
//
// State and conversion are released exactly once on every path. The
// cell is consumed before the conversion runs and restaged after it
// returns, so a conversion may itself run guarded calls or open
// boundaries.
//
// # Combinators
//
// Deferred computations compose without settling intermediates:
//
//   - [Pure]: Lift a value (unit)
//   - [Fail]: Lift an error
//   - [Bind]: Sequence two computations
//   - [Map]: Apply a pure function to the value
//   - [Then]: Sequence, discarding the first value
//   - [MapErr]: Convert the failure through an arbitrary function
//   - [InspectErr]: Observe the payload in flight, type unchanged
//
// # Protocol Violations
//
// Misuse that would corrupt the failure path panics with an "iex: "
// prefixed message rather than degrading silently: raising through the
// zero [Marker], staging over an in-flight payload, recovering a
// boundary's unwind without claiming it, settling an unwind whose
// payload type does not match the boundary, and disarming a released
// [ExceptionMapper]. These panics are not part of the protocol; they
// indicate a bug in the calling code.
//
// # Concurrency
//
// A boundary and every marker derived from it are confined to one
// goroutine: the unwind mechanism is the goroutine's own panic
// machinery, so markers must not cross goroutine bounds. Distinct
// goroutines (and distinct boundaries on one goroutine) are fully
// independent; cells are pooled and never shared while in use, and no
// operation takes a lock.
//
// # Example
//
//	func checkedDivide(a, b int, m iex.Marker[string]) int {
//		if b == 0 {
//			return iex.Raise[int](m, "division by zero")
//		}
//		return a / b
//	}
//
//	res := iex.Catch(func(m iex.Marker[string]) int {
//		return checkedDivide(5, 0, m) + 1
//	})
//	// res == iex.Err[int, string]("division by zero")
package iex
