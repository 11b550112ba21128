// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/counter"
	"github.com/bitmark-inc/registryd/mode"
	"github.com/bitmark-inc/registryd/registry"
	"github.com/bitmark-inc/registryd/rpc/fixtures"
	"github.com/bitmark-inc/registryd/rpc/node"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := fixtures.SetupTestRegistry()
	assert.Nil(t, err, "wrong registry setup")
	defer fixtures.TeardownTestRegistry()

	err = mode.Initialise()
	assert.Nil(t, err, "wrong mode initialise")
	defer mode.Finalise()
	mode.Set(mode.Normal)

	_, err = registry.CreateAsset(fixtures.Owner, "Doc-A", 1000, "desc", []string{"L1"})
	assert.Nil(t, err, "wrong create")

	var connections counter.Counter
	connections.Increment()

	n := node.New(
		logger.New(fixtures.LogCategory),
		time.Now().Add(-time.Minute),
		"1.0.0",
		&connections,
	)

	arg := node.InfoArguments{}
	var reply node.InfoReply
	err = n.Info(&arg, &reply)
	assert.Nil(t, err, "wrong info")
	assert.Equal(t, "Normal", reply.Mode, "wrong mode")
	assert.Equal(t, uint64(1), reply.Assets, "wrong assets")
	assert.Equal(t, fixtures.Overseer, reply.Overseer, "wrong overseer")
	assert.Equal(t, uint64(1), reply.RPCs, "wrong rpcs")
	assert.Equal(t, "1.0.0", reply.Version, "wrong version")
	assert.NotEmpty(t, reply.Uptime, "wrong uptime")
}
