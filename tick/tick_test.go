// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tick_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/registryd/tick"
)

func TestNext(t *testing.T) {

	clock := new(tick.Clock)

	if 0 != clock.Current() {
		t.Fatalf("clock did not start at zero: %d", clock.Current())
	}

	for i := uint64(1); i <= 5; i += 1 {
		if n := clock.Next(); i != n {
			t.Fatalf("tick: %d  expected: %d", n, i)
		}
	}
}

func TestSeed(t *testing.T) {

	clock := new(tick.Clock)
	clock.Seed(100)

	if 101 != clock.Next() {
		t.Fatalf("seeded clock continued incorrectly: %d", clock.Current())
	}

	// a lower seed must not move the clock backwards
	clock.Seed(50)
	if 102 != clock.Next() {
		t.Fatalf("clock ran backwards: %d", clock.Current())
	}
}

// ticks must stay unique and increasing under concurrent use
func TestConcurrentNext(t *testing.T) {

	clock := new(tick.Clock)

	const goroutines = 8
	const perGoroutine = 1000

	seen := make([]map[uint64]struct{}, goroutines)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g += 1 {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			m := make(map[uint64]struct{}, perGoroutine)
			for i := 0; i < perGoroutine; i += 1 {
				m[clock.Next()] = struct{}{}
			}
			seen[g] = m
		}(g)
	}
	wg.Wait()

	all := make(map[uint64]struct{})
	for _, m := range seen {
		for v := range m {
			if _, ok := all[v]; ok {
				t.Fatalf("duplicate tick: %d", v)
			}
			all[v] = struct{}{}
		}
	}

	if goroutines*perGoroutine != len(all) {
		t.Fatalf("tick count: %d  expected: %d", len(all), goroutines*perGoroutine)
	}
	if uint64(goroutines*perGoroutine) != clock.Current() {
		t.Fatalf("final tick: %d  expected: %d", clock.Current(), goroutines*perGoroutine)
	}
}
