// ©The iex Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iex_test

import (
	"testing"

	"github.com/Licenser/iex"
)

func TestPure(t *testing.T) {
	res := iex.Pure[int, string](42).IntoResult()

	val, ok := res.Get()
	if !ok || val != 42 {
		t.Fatalf("got %d, want 42", val)
	}
}

func TestFail(t *testing.T) {
	res := iex.Fail[int, string]("immediate").IntoResult()

	err, ok := res.GetErr()
	if !ok || err != "immediate" {
		t.Fatalf("got error %q, want %q", err, "immediate")
	}
}

func TestBindSequences(t *testing.T) {
	th := iex.Bind(iex.Pure[int, string](20), func(x int) iex.Thunk[int, string] {
		return iex.Pure[int, string](x + 22)
	})

	res := th.IntoResult()
	val, ok := res.Get()
	if !ok || val != 42 {
		t.Fatalf("got %d, want 42", val)
	}
}

func TestBindShortCircuits(t *testing.T) {
	// A failure in the first stage skips the rest of the chain.
	reached := false
	th := iex.Bind(iex.Fail[int, string]("abort"), func(x int) iex.Thunk[int, string] {
		reached = true
		return iex.Pure[int, string](x)
	})

	res := th.IntoResult()
	err, ok := res.GetErr()
	if !ok || err != "abort" {
		t.Fatalf("got error %q, want %q", err, "abort")
	}
	if reached {
		t.Fatal("continuation should not run after a failure")
	}
}

func TestBindFailureInSecondStage(t *testing.T) {
	th := iex.Bind(iex.Pure[int, string](1), func(x int) iex.Thunk[int, string] {
		return iex.Fail[int, string]("second stage")
	})

	res := th.IntoResult()
	err, ok := res.GetErr()
	if !ok || err != "second stage" {
		t.Fatalf("got error %q, want %q", err, "second stage")
	}
}

func TestMapTransforms(t *testing.T) {
	th := iex.Map(iex.Pure[int, string](21), func(x int) int { return x * 2 })

	res := th.IntoResult()
	val, ok := res.Get()
	if !ok || val != 42 {
		t.Fatalf("got %d, want 42", val)
	}
}

func TestMapSkippedOnFailure(t *testing.T) {
	applied := false
	th := iex.Map(iex.Fail[int, string]("before map"), func(x int) int {
		applied = true
		return x
	})

	res := th.IntoResult()
	err, ok := res.GetErr()
	if !ok || err != "before map" {
		t.Fatalf("got error %q, want %q", err, "before map")
	}
	if applied {
		t.Fatal("transformation should not run after a failure")
	}
}

func TestMapValueTypeChange(t *testing.T) {
	th := iex.Map(iex.Pure[int, string](42), func(x int) string {
		if x == 42 {
			return "answer"
		}
		return "question"
	})

	res := th.IntoResult()
	val, ok := res.Get()
	if !ok || val != "answer" {
		t.Fatalf("got %q, want %q", val, "answer")
	}
}

func TestThenDiscardsFirstValue(t *testing.T) {
	th := iex.Then(iex.Pure[string, string]("ignored"), iex.Pure[int, string](42))

	res := th.IntoResult()
	val, ok := res.Get()
	if !ok || val != 42 {
		t.Fatalf("got %d, want 42", val)
	}
}

func TestThenPropagatesFirstFailure(t *testing.T) {
	th := iex.Then(iex.Fail[string, string]("first"), iex.Pure[int, string](42))

	res := th.IntoResult()
	err, ok := res.GetErr()
	if !ok || err != "first" {
		t.Fatalf("got error %q, want %q", err, "first")
	}
}

func TestMapErrConverts(t *testing.T) {
	th := iex.MapErr(iex.Fail[int, unitError](unitError{Code: 9}), func(e unitError) string {
		return "code 9"
	})

	res := th.IntoResult()
	err, ok := res.GetErr()
	if !ok || err != "code 9" {
		t.Fatalf("got error %q, want %q", err, "code 9")
	}
}

func TestMapErrSkippedOnSuccess(t *testing.T) {
	converted := false
	th := iex.MapErr(iex.Pure[int, unitError](42), func(e unitError) string {
		converted = true
		return ""
	})

	res := th.IntoResult()
	val, ok := res.Get()
	if !ok || val != 42 {
		t.Fatalf("got %d, want 42", val)
	}
	if converted {
		t.Fatal("conversion should not run on success")
	}
}

func TestMapErrSameTypeApplies(t *testing.T) {
	// The conversion is a transformation, not a type adapter: it runs
	// even when both error types are string.
	conversions := 0
	th := iex.MapErr(iex.Fail[int, string]("cause"), func(e string) string {
		conversions++
		return "wrapped: " + e
	})

	res := th.IntoResult()
	err, ok := res.GetErr()
	if !ok || err != "wrapped: cause" {
		t.Fatalf("got error %q, want %q", err, "wrapped: cause")
	}
	if conversions != 1 {
		t.Fatalf("conversions = %d, want 1", conversions)
	}
}

func TestCombinatorChain(t *testing.T) {
	// A chain mixing Map, Bind, and MapErr settles in one pass.
	th := iex.MapErr(
		iex.Bind(
			iex.Map(iex.Pure[int, unitError](10), func(x int) int { return x + 1 }),
			func(x int) iex.Thunk[int, unitError] {
				if x > 100 {
					return iex.Fail[int, unitError](unitError{Code: x})
				}
				return iex.Pure[int, unitError](x * 2)
			},
		),
		func(e unitError) string { return "overflow" },
	)

	res := th.IntoResult()
	val, ok := res.Get()
	if !ok || val != 22 {
		t.Fatalf("got %d, want 22", val)
	}
}

func TestCombinatorChainFailure(t *testing.T) {
	th := iex.MapErr(
		iex.Bind(
			iex.Map(iex.Pure[int, unitError](200), func(x int) int { return x + 1 }),
			func(x int) iex.Thunk[int, unitError] {
				if x > 100 {
					return iex.Fail[int, unitError](unitError{Code: x})
				}
				return iex.Pure[int, unitError](x * 2)
			},
		),
		func(e unitError) string { return "overflow" },
	)

	res := th.IntoResult()
	err, ok := res.GetErr()
	if !ok || err != "overflow" {
		t.Fatalf("got error %q, want %q", err, "overflow")
	}
}
