// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/identity"
	"github.com/bitmark-inc/registryd/mode"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/registry"
	"github.com/bitmark-inc/registryd/rpc/ratelimit"
)

// Assets - type for the RPC
type Assets struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
}

const (
	rateLimitAssets = 200
	rateBurstAssets = 100
)

func New(log *logger.L, isNormalMode func(mode.Mode) bool) *Assets {
	return &Assets{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitAssets, rateBurstAssets),
		IsNormalMode: isNormalMode,
	}
}

// ---

// CreateArguments - arguments for RPC request
type CreateArguments struct {
	Caller      identity.Identity `json:"caller"`
	Identifier  string            `json:"identifier"`
	PayloadSize uint64            `json:"payloadSize,string"`
	Description string            `json:"description"`
	Labels      []string          `json:"labels"`
}

// CreateReply - results from create RPC request
type CreateReply struct {
	AssetKey uint64 `json:"assetKey,string"`
}

// Create - RPC to register a new asset
func (assets *Assets) Create(arguments *CreateArguments, reply *CreateReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	if !assets.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhenStopped
	}

	assets.Log.Infof("Assets.Create: %q by %s", arguments.Identifier, arguments.Caller)

	assetKey, err := registry.CreateAsset(
		arguments.Caller,
		arguments.Identifier,
		arguments.PayloadSize,
		arguments.Description,
		arguments.Labels,
	)
	if nil != err {
		return err
	}

	reply.AssetKey = assetKey

	return nil
}

// ---

// ReadArguments - arguments for RPC request
type ReadArguments struct {
	Caller   identity.Identity `json:"caller"`
	AssetKey uint64            `json:"assetKey,string"`
}

// ReadReply - results from read RPC request
type ReadReply struct {
	AssetKey uint64              `json:"assetKey,string"`
	Asset    *record.AssetRecord `json:"asset"`
}

// Read - RPC to fetch an asset record
func (assets *Assets) Read(arguments *ReadArguments, reply *ReadReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	if !assets.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhenStopped
	}

	asset, err := registry.ReadAsset(arguments.Caller, arguments.AssetKey)
	if nil != err {
		return err
	}

	reply.AssetKey = arguments.AssetKey
	reply.Asset = asset

	return nil
}

// ---

// UpdateArguments - arguments for RPC request
type UpdateArguments struct {
	Caller      identity.Identity `json:"caller"`
	AssetKey    uint64            `json:"assetKey,string"`
	Identifier  string            `json:"identifier"`
	PayloadSize uint64            `json:"payloadSize,string"`
	Description string            `json:"description"`
	Labels      []string          `json:"labels"`
}

// UpdateReply - results from update RPC request
type UpdateReply struct {
	AssetKey uint64 `json:"assetKey,string"`
}

// Update - RPC to replace the mutable fields of an asset
func (assets *Assets) Update(arguments *UpdateArguments, reply *UpdateReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	if !assets.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhenStopped
	}

	assets.Log.Infof("Assets.Update: %d by %s", arguments.AssetKey, arguments.Caller)

	err := registry.UpdateAsset(
		arguments.Caller,
		arguments.AssetKey,
		arguments.Identifier,
		arguments.PayloadSize,
		arguments.Description,
		arguments.Labels,
	)
	if nil != err {
		return err
	}

	reply.AssetKey = arguments.AssetKey

	return nil
}

// ---

// TransferArguments - arguments for RPC request
type TransferArguments struct {
	Caller   identity.Identity `json:"caller"`
	AssetKey uint64            `json:"assetKey,string"`
	NewOwner identity.Identity `json:"newOwner"`
}

// TransferReply - results from transfer RPC request
type TransferReply struct {
	AssetKey uint64            `json:"assetKey,string"`
	NewOwner identity.Identity `json:"newOwner"`
}

// Transfer - RPC to reassign ownership of an asset
func (assets *Assets) Transfer(arguments *TransferArguments, reply *TransferReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	if !assets.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhenStopped
	}

	assets.Log.Infof("Assets.Transfer: %d  %s to %s", arguments.AssetKey, arguments.Caller, arguments.NewOwner)

	err := registry.TransferAsset(arguments.Caller, arguments.AssetKey, arguments.NewOwner)
	if nil != err {
		return err
	}

	reply.AssetKey = arguments.AssetKey
	reply.NewOwner = arguments.NewOwner

	return nil
}

// ---

// DeleteArguments - arguments for RPC request
type DeleteArguments struct {
	Caller   identity.Identity `json:"caller"`
	AssetKey uint64            `json:"assetKey,string"`
}

// DeleteReply - results from delete RPC request
type DeleteReply struct {
	AssetKey uint64 `json:"assetKey,string"`
}

// Delete - RPC to remove an asset record
func (assets *Assets) Delete(arguments *DeleteArguments, reply *DeleteReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	if !assets.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhenStopped
	}

	assets.Log.Infof("Assets.Delete: %d by %s", arguments.AssetKey, arguments.Caller)

	err := registry.DeleteAsset(arguments.Caller, arguments.AssetKey)
	if nil != err {
		return err
	}

	reply.AssetKey = arguments.AssetKey

	return nil
}

// ---

// ExtendLabelsArguments - arguments for RPC request
type ExtendLabelsArguments struct {
	Caller   identity.Identity `json:"caller"`
	AssetKey uint64            `json:"assetKey,string"`
	Labels   []string          `json:"labels"`
}

// ExtendLabelsReply - results from extend labels RPC request
type ExtendLabelsReply struct {
	AssetKey uint64   `json:"assetKey,string"`
	Labels   []string `json:"labels"`
}

// ExtendLabels - RPC to append labels to an asset
func (assets *Assets) ExtendLabels(arguments *ExtendLabelsArguments, reply *ExtendLabelsReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	if !assets.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhenStopped
	}

	merged, err := registry.ExtendLabels(arguments.Caller, arguments.AssetKey, arguments.Labels)
	if nil != err {
		return err
	}

	reply.AssetKey = arguments.AssetKey
	reply.Labels = merged

	return nil
}

// ---

// ReviseDescriptionArguments - arguments for RPC request
type ReviseDescriptionArguments struct {
	Caller      identity.Identity `json:"caller"`
	AssetKey    uint64            `json:"assetKey,string"`
	Description string            `json:"description"`
}

// ReviseDescriptionReply - results from revise description RPC request
type ReviseDescriptionReply struct {
	AssetKey uint64 `json:"assetKey,string"`
}

// ReviseDescription - RPC to replace the description of an asset
func (assets *Assets) ReviseDescription(arguments *ReviseDescriptionArguments, reply *ReviseDescriptionReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	if !assets.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhenStopped
	}

	err := registry.ReviseDescription(arguments.Caller, arguments.AssetKey, arguments.Description)
	if nil != err {
		return err
	}

	reply.AssetKey = arguments.AssetKey

	return nil
}

// ---

// AuthenticateArguments - arguments for RPC request
type AuthenticateArguments struct {
	Caller       identity.Identity `json:"caller"`
	AssetKey     uint64            `json:"assetKey,string"`
	ClaimedOwner identity.Identity `json:"claimedOwner"`
}

// AuthenticateReply - results from authenticate RPC request
type AuthenticateReply struct {
	AssetKey uint64                         `json:"assetKey,string"`
	Result   *registry.AuthenticationResult `json:"result"`
}

// Authenticate - RPC to check an ownership claim against the record
func (assets *Assets) Authenticate(arguments *AuthenticateArguments, reply *AuthenticateReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	if !assets.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhenStopped
	}

	result, err := registry.Authenticate(arguments.Caller, arguments.AssetKey, arguments.ClaimedOwner)
	if nil != err {
		return err
	}

	reply.AssetKey = arguments.AssetKey
	reply.Result = result

	return nil
}

// ---

// LockdownArguments - arguments for RPC request
type LockdownArguments struct {
	Caller   identity.Identity `json:"caller"`
	AssetKey uint64            `json:"assetKey,string"`
}

// LockdownReply - results from lockdown RPC request
type LockdownReply struct {
	AssetKey uint64 `json:"assetKey,string"`
	Locked   bool   `json:"locked"`
}

// Lockdown - RPC to freeze an asset
func (assets *Assets) Lockdown(arguments *LockdownArguments, reply *LockdownReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	if !assets.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhenStopped
	}

	assets.Log.Warnf("Assets.Lockdown: %d by %s", arguments.AssetKey, arguments.Caller)

	err := registry.EmergencyLockdown(arguments.Caller, arguments.AssetKey)
	if nil != err {
		return err
	}

	reply.AssetKey = arguments.AssetKey
	reply.Locked = true

	return nil
}

// LiftLockdown - RPC to unfreeze an asset
func (assets *Assets) LiftLockdown(arguments *LockdownArguments, reply *LockdownReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	if !assets.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhenStopped
	}

	assets.Log.Warnf("Assets.LiftLockdown: %d by %s", arguments.AssetKey, arguments.Caller)

	err := registry.LiftLockdown(arguments.Caller, arguments.AssetKey)
	if nil != err {
		return err
	}

	reply.AssetKey = arguments.AssetKey
	reply.Locked = false

	return nil
}
