// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/identity"
)

// EmergencyLockdown - freeze an asset
//
// only the owner or the overseer may lock, this is the sole write path
// the overseer has over arbitrary assets
//
// while locked every owner-gated mutation is refused and privilege
// grants are suspended, idempotent on an already locked asset
func EmergencyLockdown(caller identity.Identity, assetKey uint64) error {
	return setLockdown(caller, assetKey, true, "lockdown")
}

// LiftLockdown - release a frozen asset, same authority as the lock
func LiftLockdown(caller identity.Identity, assetKey uint64) error {
	return setLockdown(caller, assetKey, false, "lift lockdown")
}

func setLockdown(caller identity.Identity, assetKey uint64, locked bool, action string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	asset, err := fetchAsset(assetKey)
	if nil != err {
		return err
	}

	if caller != asset.Owner && caller != globalData.overseer {
		return fault.NotAssetOwner
	}

	if asset.Locked == locked {
		return nil
	}

	updated := asset.Copy()
	updated.Locked = locked

	err = commitAsset(assetKey, updated)
	if nil != err {
		return err
	}

	globalData.log.Warnf("%s: %d  by: %s", action, assetKey, caller)
	return nil
}
