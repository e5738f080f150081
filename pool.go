// ©The iex Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iex

import "sync"

// Cell pool for boundaries. Catch acquires a cell per boundary and
// releases it once the boundary settles, so nested and concurrent
// boundaries never share a cell. read zeroes both fields on
// consumption, so an empty cell is always safe to pool.

var exceptionPool = sync.Pool{
	New: func() any { return new(exception) },
}

func acquireException() *exception {
	return exceptionPool.Get().(*exception)
}

// releaseException returns an empty cell to the pool.
// A cell abandoned mid-violation is still staged; pooling it would
// leak a stale payload into an unrelated boundary, so it is dropped
// for the collector instead.
func releaseException(e *exception) {
	if !e.empty() {
		return
	}
	exceptionPool.Put(e)
}
