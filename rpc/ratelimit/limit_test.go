// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"golang.org/x/time/rate"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(200, 100)
	err := ratelimit.Limit(limiter)
	assert.Nil(t, err, "wrong limit")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(200, 100)

	err := ratelimit.LimitN(limiter, 10, 100)
	assert.Nil(t, err, "wrong limit")

	err = ratelimit.LimitN(limiter, 0, 100)
	assert.Equal(t, fault.InvalidCount, err, "wrong zero count error")

	err = ratelimit.LimitN(limiter, 101, 100)
	assert.Equal(t, fault.InvalidCount, err, "wrong excess count error")
}
