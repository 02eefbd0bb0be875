// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

import (
	"code.hybscloud.com/kont"
)

// Promise is the single-use write handle of a pair created by New.
// Affine like its Future: Set consumes it, a second Set panics.
type Promise[T any] struct {
	state *sharedState[T]
	done  bool
}

// Set resolves the future with value. Right reports delivery. Left hands
// the value back when the read side already disconnected (dropped, or
// timed out in GetUntil); the value is never silently discarded.
// Never blocks. Consumes the promise.
func (p *Promise[T]) Set(value T) kont.Either[T, struct{}] {
	if p.done {
		panic("fut: promise already consumed")
	}
	p.done = true
	s := p.state
	s.acquire()
	if s.status == statusNoFuture {
		s.release()
		return kont.Left[T, struct{}](value)
	}
	s.value = value
	s.hasValue = true
	wake := s.parked
	s.parked = false
	s.release()
	if wake {
		// At most one token ever: a promise resolves once. The send
		// cannot block on the buffered slot.
		s.wake <- struct{}{}
	}
	return kont.Right[T](struct{}{})
}

// Drop disconnects the write side without resolving. Idempotent, and a
// no-op after Set. A getter already parked in Get stays parked forever;
// only GetUntil bounds that wait.
func (p *Promise[T]) Drop() {
	if p.done {
		return
	}
	p.done = true
	s := p.state
	s.acquire()
	s.disconnect(statusNoPromise)
	s.release()
}
