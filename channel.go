// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

import (
	"time"

	"github.com/Arceliar/phony"
	"github.com/gammazero/deque"
)

// chanState owns the queues of one channel. It embeds a phony.Inbox:
// every mutation runs as an inbox message, one at a time, so the queues
// need no lock. Outside a transient dead-promise resolution, at most one
// of the two queues is non-empty.
type chanState[T any] struct {
	phony.Inbox
	buffered deque.Deque[T]
	pending  deque.Deque[*Promise[T]]
}

// push pairs a sent value with the oldest pending receiver, falling back
// to the value buffer. A dead promise (receiver dropped or timed out)
// hands the value back and the next receiver is tried, so the value is
// never lost. A value retried this way may overtake values already
// buffered; ordering across that race is not FIFO.
func (cs *chanState[T]) push(v T) {
	for cs.pending.Len() > 0 {
		p := cs.pending.PopFront()
		back, rejected := p.Set(v).GetLeft()
		if !rejected {
			return
		}
		v = back
	}
	cs.buffered.PushBack(v)
}

// pull pairs a receiver's promise with the oldest buffered value, falling
// back to the pending queue. A value refused by a dead promise goes back
// to the front of the buffer, keeping delivery order for the next
// receiver.
func (cs *chanState[T]) pull(p *Promise[T]) {
	if cs.buffered.Len() == 0 {
		cs.pending.PushBack(p)
		return
	}
	v := cs.buffered.PopFront()
	if back, rejected := p.Set(v).GetLeft(); rejected {
		cs.buffered.PushFront(back)
	}
}

// Channel is a handle to one actor-owned pair of queues. Handles are
// small values; Clone makes the aliasing explicit. The zero Channel is
// not usable — create one with NewChannel.
type Channel[T any] struct {
	state  *chanState[T]
	serial Serial
}

// NewChannel creates an unbounded multi-producer multi-consumer channel
// and assigns it the next serial.
func NewChannel[T any]() Channel[T] {
	return Channel[T]{state: &chanState[T]{}, serial: nextSerial()}
}

// Send hands value to the channel's actor, fire and forget. Never blocks
// the caller and never fails; buffering is unbounded.
func (c Channel[T]) Send(value T) {
	cs := c.state
	cs.Act(nil, func() { cs.push(value) })
}

// Receive blocks until a value is available and returns it. Each value
// sent on the channel is delivered to exactly one receiver.
func (c Channel[T]) Receive() T {
	f, p := New[T]()
	cs := c.state
	cs.Act(nil, func() { cs.pull(p) })
	return f.Get()
}

// ReceiveUntil blocks like Receive but gives up once deadline passes,
// returning (zero, false). The abandoned receiver slot disconnects; a
// value matched to it afterwards is handed back inside the actor and
// re-delivered, never lost.
func (c Channel[T]) ReceiveUntil(deadline time.Time) (T, bool) {
	f, p := New[T]()
	cs := c.state
	cs.Act(nil, func() { cs.pull(p) })
	return f.GetUntil(deadline)
}

// TryReceive pops a buffered value without blocking, via a synchronous
// round-trip through the actor. Sends still queued in front of it are
// observed; a send dispatched after TryReceive entered the inbox is not.
func (c Channel[T]) TryReceive() (value T, ok bool) {
	cs := c.state
	phony.Block(cs, func() {
		if cs.buffered.Len() > 0 {
			value = cs.buffered.PopFront()
			ok = true
		}
	})
	return value, ok
}

// Clone returns a new handle aliasing the same queues and serial.
// A value sent through one handle is delivered to a receiver on any
// aliasing handle.
func (c Channel[T]) Clone() Channel[T] {
	return Channel[T]{state: c.state, serial: c.serial}
}

// Serial returns the identity of the underlying channel state, shared by
// all clones.
func (c Channel[T]) Serial() Serial {
	return c.serial
}
