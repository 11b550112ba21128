// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tick - the logical clock
//
// a monotonically non-decreasing counter used only to stamp records at
// creation and to compute their age, never wall time
package tick

import (
	"sync"
)

// Clock - a logical clock instance
type Clock struct {
	sync.Mutex
	value uint64
}

// Seed - move the clock forward to at least value
//
// used on startup to restore the last persisted tick so the clock
// never runs backwards across restarts, a lower seed is ignored
func (c *Clock) Seed(value uint64) {
	c.Lock()
	if value > c.value {
		c.value = value
	}
	c.Unlock()
}

// Next - advance the clock and return the new tick
func (c *Clock) Next() uint64 {
	c.Lock()
	c.value += 1
	value := c.value
	c.Unlock()
	return value
}

// Current - return the latest tick without advancing
func (c *Clock) Current() uint64 {
	c.Lock()
	value := c.value
	c.Unlock()
	return value
}
