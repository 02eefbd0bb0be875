// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Lock flag values for sharedState.lock.
const (
	unlocked uint32 = iota
	locked
)

// Connection status of a sharedState. Transitions Connected → NoFuture or
// Connected → NoPromise at most once, driven by whichever side disconnects
// first. Guarded by the spinlock; an explicit tri-state rather than two
// flags so concurrent drops of both sides cannot observe an ambiguous mix.
const (
	statusConnected uint32 = iota
	statusNoFuture
	statusNoPromise
)

// sharedState is the cell shared by exactly one Future and one Promise.
// Everything below the lock flag is guarded by it.
//
// Contention on the lock is bounded to the two handles and critical
// sections are a handful of loads and stores, so a CAS spinlock with
// adaptive backoff is used instead of a full mutex.
type sharedState[T any] struct {
	lock atomix.Uint32

	status   uint32
	value    T
	hasValue bool

	// parked records a getter suspended in Get or GetUntil; wake carries
	// its wakeup token. The token slot is buffered: a set that lands
	// between the getter releasing the lock and parking leaves the token
	// behind instead of losing the wakeup.
	parked bool
	wake   chan struct{}
}

// acquire spins until the lock flag flips unlocked → locked.
// The backoff yields the CPU on repeated failure; the scheduler, not this
// loop, is responsible for anything spinning unreasonably long.
func (s *sharedState[T]) acquire() {
	var bo iox.Backoff
	for !s.lock.CompareAndSwap(unlocked, locked) {
		bo.Wait()
	}
}

// release flips the lock flag back to unlocked.
func (s *sharedState[T]) release() {
	s.lock.CompareAndSwap(locked, unlocked)
}

// take moves the value out of the cell. Caller holds the lock.
func (s *sharedState[T]) take() T {
	v := s.value
	var zero T
	s.value = zero
	s.hasValue = false
	return v
}

// disconnect reports one side gone, if the other has not reported first.
// Caller holds the lock.
func (s *sharedState[T]) disconnect(to uint32) {
	if s.status == statusConnected {
		s.status = to
	}
}
