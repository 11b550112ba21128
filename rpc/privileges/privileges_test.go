// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package privileges_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/mode"
	"github.com/bitmark-inc/registryd/registry"
	"github.com/bitmark-inc/registryd/rpc/fixtures"
	"github.com/bitmark-inc/registryd/rpc/privileges"
)

func TestPrivilegesGrantCheckRevoke(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := fixtures.SetupTestRegistry()
	assert.Nil(t, err, "wrong registry setup")
	defer fixtures.TeardownTestRegistry()

	assetKey, err := registry.CreateAsset(fixtures.Owner, "Doc-A", 1000, "desc", []string{"L1"})
	assert.Nil(t, err, "wrong create")

	p := privileges.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
	)

	grantArg := privileges.GrantArguments{
		Caller:   fixtures.Owner,
		AssetKey: assetKey,
		Observer: fixtures.Observer,
	}
	var grantReply privileges.GrantReply
	err = p.Grant(&grantArg, &grantReply)
	assert.Nil(t, err, "wrong grant")

	checkArg := privileges.CheckArguments{
		AssetKey: assetKey,
		Observer: fixtures.Observer,
	}
	var checkReply privileges.CheckReply
	err = p.Check(&checkArg, &checkReply)
	assert.Nil(t, err, "wrong check")
	assert.True(t, checkReply.Granted, "wrong granted")

	revokeArg := privileges.RevokeArguments{
		Caller:   fixtures.Owner,
		AssetKey: assetKey,
		Observer: fixtures.Observer,
	}
	var revokeReply privileges.RevokeReply
	err = p.Revoke(&revokeArg, &revokeReply)
	assert.Nil(t, err, "wrong revoke")

	err = p.Check(&checkArg, &checkReply)
	assert.Nil(t, err, "wrong check")
	assert.False(t, checkReply.Granted, "wrong granted")

	// non-owners have no say in the access table
	grantArg.Caller = fixtures.Stranger
	err = p.Grant(&grantArg, &grantReply)
	assert.Equal(t, fault.NotAssetOwner, err, "wrong grant error")

	// nor may the owner revoke their own entry
	revokeArg.Observer = fixtures.Owner
	err = p.Revoke(&revokeArg, &revokeReply)
	assert.Equal(t, fault.SelfRevokeNotPermitted, err, "wrong self revoke error")
}

func TestPrivilegesMissingAsset(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := fixtures.SetupTestRegistry()
	assert.Nil(t, err, "wrong registry setup")
	defer fixtures.TeardownTestRegistry()

	p := privileges.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
	)

	checkArg := privileges.CheckArguments{
		AssetKey: 42,
		Observer: fixtures.Observer,
	}
	var checkReply privileges.CheckReply
	err = p.Check(&checkArg, &checkReply)
	assert.Equal(t, fault.AssetNotFound, err, "wrong check error")
}

func TestPrivilegesStoppedMode(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	p := privileges.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return false },
	)

	grantArg := privileges.GrantArguments{
		Caller:   fixtures.Owner,
		AssetKey: 1,
		Observer: fixtures.Observer,
	}
	var grantReply privileges.GrantReply
	err := p.Grant(&grantArg, &grantReply)
	assert.Equal(t, fault.NotAvailableWhenStopped, err, "wrong stopped error")
}
