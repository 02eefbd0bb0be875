// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fut provides single-resolution value handoff between goroutines:
// an affine [Future]/[Promise] pair and an unbounded multi-producer
// multi-consumer [Channel] built on top of it.
//
// # Architecture
//
//   - State cell: each pair shares one cell guarded by a CAS spinlock
//     ([code.hybscloud.com/atomix] lock flag, [code.hybscloud.com/iox.Backoff]
//     spin-wait). Contention is bounded to the two handles and critical
//     sections are a handful of loads and stores.
//   - Suspension: a blocked getter parks on a buffered wake token; the token
//     survives a set that races the park, so no wakeup is lost.
//   - Disconnection: outcomes are values, never errors. [Promise.Set] on a
//     disconnected future hands the value back as the Left branch of a
//     [code.hybscloud.com/kont.Either]; a value is never silently dropped.
//   - Channel: an actor ([github.com/Arceliar/phony] inbox) owning two
//     [github.com/gammazero/deque] queues — buffered values and pending
//     receivers. Messages run one at a time, so the queues need no lock.
//
// # API
//
//   - Pairs: [New] creates a connected [Future]/[Promise] pair.
//   - Reading: [Future.Get], [Future.GetUntil], [Future.TryGet]. Handles are
//     affine: consumed on resolution, reuse panics.
//   - Writing: [Promise.Set] resolves exactly once and never blocks.
//   - Disconnecting: [Future.Drop] and [Promise.Drop] run the cleanup
//     protocol on all exit paths; both are idempotent and defer-friendly.
//   - Channels: [NewChannel], [Channel.Send], [Channel.Receive],
//     [Channel.ReceiveUntil], [Channel.TryReceive], [Channel.Clone].
//
// # Ordering
//
// Buffered values and pending receivers are each FIFO on their own. A value
// handed back by a disconnected receiver is retried against the next pending
// receiver and may overtake values already buffered; delivery is exactly-once
// and loss-free, but not strictly FIFO across that race.
//
// # Example
//
//	c := fut.NewChannel[int]()
//	go func() { c.Send(42) }()
//	v := c.Receive() // 42
package fut
