// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut_test

import (
	"testing"
	"time"

	"code.hybscloud.com/fut"
)

func BenchmarkPairResolve(b *testing.B) {
	for i := 0; i < b.N; i++ {
		f, p := fut.New[int]()
		p.Set(i)
		f.Get()
	}
}

func BenchmarkTryGetMiss(b *testing.B) {
	f, p := fut.New[int]()
	defer p.Drop()
	defer f.Drop()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.TryGet()
	}
}

func BenchmarkChannelRoundTrip(b *testing.B) {
	c := fut.NewChannel[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Send(i)
		c.Receive()
	}
}

func BenchmarkChannelReceiveUntilHit(b *testing.B) {
	c := fut.NewChannel[int]()
	deadline := time.Now().Add(time.Hour)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Send(i)
		c.ReceiveUntil(deadline)
	}
}
