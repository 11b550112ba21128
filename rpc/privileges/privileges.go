// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package privileges

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/identity"
	"github.com/bitmark-inc/registryd/mode"
	"github.com/bitmark-inc/registryd/registry"
	"github.com/bitmark-inc/registryd/rpc/ratelimit"
)

// Privileges - type for the RPC
type Privileges struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
}

const (
	rateLimitPrivileges = 200
	rateBurstPrivileges = 100
)

func New(log *logger.L, isNormalMode func(mode.Mode) bool) *Privileges {
	return &Privileges{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitPrivileges, rateBurstPrivileges),
		IsNormalMode: isNormalMode,
	}
}

// ---

// GrantArguments - arguments for RPC request
type GrantArguments struct {
	Caller   identity.Identity `json:"caller"`
	AssetKey uint64            `json:"assetKey,string"`
	Observer identity.Identity `json:"observer"`
}

// GrantReply - results from grant RPC request
type GrantReply struct {
	AssetKey uint64            `json:"assetKey,string"`
	Observer identity.Identity `json:"observer"`
}

// Grant - RPC to allow an observer to view an asset
func (privileges *Privileges) Grant(arguments *GrantArguments, reply *GrantReply) error {

	if err := ratelimit.Limit(privileges.Limiter); nil != err {
		return err
	}

	if !privileges.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhenStopped
	}

	privileges.Log.Infof("Privileges.Grant: %d  %s grants %s", arguments.AssetKey, arguments.Caller, arguments.Observer)

	err := registry.GrantPrivilege(arguments.Caller, arguments.AssetKey, arguments.Observer)
	if nil != err {
		return err
	}

	reply.AssetKey = arguments.AssetKey
	reply.Observer = arguments.Observer

	return nil
}

// ---

// RevokeArguments - arguments for RPC request
type RevokeArguments struct {
	Caller   identity.Identity `json:"caller"`
	AssetKey uint64            `json:"assetKey,string"`
	Observer identity.Identity `json:"observer"`
}

// RevokeReply - results from revoke RPC request
type RevokeReply struct {
	AssetKey uint64            `json:"assetKey,string"`
	Observer identity.Identity `json:"observer"`
}

// Revoke - RPC to withdraw an observer's view access
func (privileges *Privileges) Revoke(arguments *RevokeArguments, reply *RevokeReply) error {

	if err := ratelimit.Limit(privileges.Limiter); nil != err {
		return err
	}

	if !privileges.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhenStopped
	}

	privileges.Log.Infof("Privileges.Revoke: %d  %s revokes %s", arguments.AssetKey, arguments.Caller, arguments.Observer)

	err := registry.RevokePrivilege(arguments.Caller, arguments.AssetKey, arguments.Observer)
	if nil != err {
		return err
	}

	reply.AssetKey = arguments.AssetKey
	reply.Observer = arguments.Observer

	return nil
}

// ---

// CheckArguments - arguments for RPC request
type CheckArguments struct {
	AssetKey uint64            `json:"assetKey,string"`
	Observer identity.Identity `json:"observer"`
}

// CheckReply - results from check RPC request
type CheckReply struct {
	AssetKey uint64            `json:"assetKey,string"`
	Observer identity.Identity `json:"observer"`
	Granted  bool              `json:"granted"`
}

// Check - RPC to probe the access table
func (privileges *Privileges) Check(arguments *CheckArguments, reply *CheckReply) error {

	if err := ratelimit.Limit(privileges.Limiter); nil != err {
		return err
	}

	if !privileges.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhenStopped
	}

	granted, err := registry.CheckPrivilege(arguments.AssetKey, arguments.Observer)
	if nil != err {
		return err
	}

	reply.AssetKey = arguments.AssetKey
	reply.Observer = arguments.Observer
	reply.Granted = granted

	return nil
}
