// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut_test

import (
	"testing"
	"time"
)

// mustResolveWithin runs get on its own goroutine and fails the test if
// it does not produce a value within d. Used by blocking tests to bound
// waits that would otherwise hang the suite.
func mustResolveWithin[T any](t *testing.T, get func() T, d time.Duration) T {
	t.Helper()
	done := make(chan T, 1)
	go func() { done <- get() }()
	select {
	case v := <-done:
		return v
	case <-time.After(d):
		t.Fatal("blocked past the test deadline")
		panic("unreachable")
	}
}
