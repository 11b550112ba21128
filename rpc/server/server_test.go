// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/counter"
	"github.com/bitmark-inc/registryd/rpc/fixtures"
	"github.com/bitmark-inc/registryd/rpc/server"
)

func TestCreate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	var count counter.Counter
	s := server.Create(logger.New(fixtures.LogCategory), "1.0.0", &count)
	assert.NotNil(t, s, "wrong server")
}
