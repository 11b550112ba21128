// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/identity"
	"github.com/bitmark-inc/registryd/record"
)

// AuthenticationResult - outcome of an ownership authentication
//
// an ownership mismatch is reported as data, never as an error
type AuthenticationResult struct {
	Valid    bool   `json:"valid"`
	Now      uint64 `json:"now,string"`
	Age      uint64 `json:"age,string"`
	Verified bool   `json:"verified"`
}

// ReadAsset - return the full record of a viewable asset
func ReadAsset(caller identity.Identity, assetKey uint64) (*record.AssetRecord, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	asset, err := fetchAsset(assetKey)
	if nil != err {
		return nil, err
	}

	if !mayView(asset, assetKey, caller) {
		return nil, fault.ViewNotPermitted
	}

	return asset.Copy(), nil
}

// Authenticate - verify a claimed ownership of a viewable asset
func Authenticate(caller identity.Identity, assetKey uint64, claimedOwner identity.Identity) (*AuthenticationResult, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	asset, err := fetchAsset(assetKey)
	if nil != err {
		return nil, err
	}

	if !mayView(asset, assetKey, caller) {
		return nil, fault.ViewNotPermitted
	}

	now := globalData.clock.Next()
	verified := asset.Owner == claimedOwner

	return &AuthenticationResult{
		Valid:    verified,
		Now:      now,
		Age:      now - asset.CreatedAt,
		Verified: verified,
	}, nil
}

// TotalCount - the current sequence counter value
//
// counts every asset ever created, including deleted ones, and is
// readable by anyone
func TotalCount() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0
	}

	n, _ := globalData.registry.GetN(sequenceKey)
	return n
}
