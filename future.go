// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

import (
	"time"

	"code.hybscloud.com/kont"
)

// Future is the single-use read handle of a pair created by New.
// A Future is affine: Get, a Right-returning TryGet, or a GetUntil
// consume it, and any use after consumption panics. A handle must stay
// with one goroutine; the cross-goroutine hop happens through the shared
// cell, not through the handle.
type Future[T any] struct {
	state *sharedState[T]
	done  bool
}

// pair holds the cell and both handles in a single allocation.
// Only the wake channel is a separate heap object.
type pair[T any] struct {
	state   sharedState[T]
	future  Future[T]
	promise Promise[T]
}

// New creates a connected Future/Promise pair sharing one state cell.
// The cell starts Connected with no value and no parked getter.
func New[T any]() (*Future[T], *Promise[T]) {
	p := &pair[T]{}
	p.state.wake = make(chan struct{}, 1)
	p.future = Future[T]{state: &p.state}
	p.promise = Promise[T]{state: &p.state}
	return &p.future, &p.promise
}

// Get blocks until the matching Promise supplies a value and returns it.
// Consumes the future.
//
// If the promise is dropped without resolving, Get never returns. No
// deadlock detection is performed; bounding the wait is what GetUntil
// is for.
func (f *Future[T]) Get() T {
	f.consume()
	s := f.state
	for {
		s.acquire()
		if s.hasValue {
			v := s.take()
			s.release()
			return v
		}
		s.parked = true
		s.release()
		<-s.wake
	}
}

// GetUntil blocks like Get but gives up once deadline passes, returning
// (zero, false). Consumes the future on every outcome, including timeout:
// a timed-out future has disconnected and must not be reused.
//
// The timeout path disconnects first and re-checks the value after. A set
// racing the deadline therefore either observed NoFuture and kept its
// value, or stored the value this call is about to return; neither side
// drops it.
func (f *Future[T]) GetUntil(deadline time.Time) (T, bool) {
	f.consume()
	s := f.state

	timer := time.NewTimer(time.Until(deadline))
	defer timer.Stop()

	for {
		s.acquire()
		if s.hasValue {
			v := s.take()
			s.release()
			return v, true
		}
		s.parked = true
		s.release()

		select {
		case <-s.wake:
		case <-timer.C:
			return f.expire()
		}
	}
}

// expire runs the timeout arm of GetUntil: disconnect while still
// Connected, then take any value that beat the disconnect to the lock.
func (f *Future[T]) expire() (T, bool) {
	s := f.state
	s.acquire()
	s.parked = false
	s.disconnect(statusNoFuture)
	if s.hasValue {
		v := s.take()
		s.release()
		return v, true
	}
	s.release()
	var zero T
	return zero, false
}

// TryGet makes a single non-blocking pass over the cell. Right carries
// the value and consumes the future; Left returns the handle untouched
// and still connected.
func (f *Future[T]) TryGet() kont.Either[*Future[T], T] {
	if f.done {
		panic("fut: future already consumed")
	}
	s := f.state
	s.acquire()
	if !s.hasValue {
		s.release()
		return kont.Left[*Future[T], T](f)
	}
	v := s.take()
	s.release()
	f.done = true
	return kont.Right[*Future[T]](v)
}

// Drop disconnects the read side without waiting. Idempotent, and a
// no-op on a consumed future, so defer f.Drop() is safe on every path.
// Cleanup of the cell falls to whichever side reports last.
func (f *Future[T]) Drop() {
	if f.done {
		return
	}
	f.done = true
	s := f.state
	s.acquire()
	s.disconnect(statusNoFuture)
	s.release()
}

func (f *Future[T]) consume() {
	if f.done {
		panic("fut: future already consumed")
	}
	f.done = true
}
