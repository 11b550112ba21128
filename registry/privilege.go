// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/identity"
	"github.com/bitmark-inc/registryd/storage"
)

// GrantPrivilege - allow an observer to view an owned asset
//
// an entry in the privilege table is the only grant signal, a missing
// entry always reads as no access
func GrantPrivilege(caller identity.Identity, assetKey uint64, observer identity.Identity) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if observer.IsZero() {
		return fault.InvalidIdentity
	}

	_, err := fetchOwnedAsset(assetKey, caller)
	if nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	trx.Put(globalData.privileges, privilegeKey(assetKey, observer), []byte{0x01})
	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("grant: %d  observer: %s", assetKey, observer)
	return nil
}

// CheckPrivilege - report whether an observer holds a grant
//
// readable by anyone, but the asset must still exist: a deleted key
// reports absence before the privilege table is ever consulted
func CheckPrivilege(assetKey uint64, observer identity.Identity) (bool, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return false, fault.NotInitialised
	}

	_, err := fetchAsset(assetKey)
	if nil != err {
		return false, err
	}

	return globalData.privileges.Has(privilegeKey(assetKey, observer)), nil
}

// RevokePrivilege - remove an observer's grant
//
// an owner cannot revoke their own implicit access through this path
func RevokePrivilege(caller identity.Identity, assetKey uint64, observer identity.Identity) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	_, err := fetchOwnedAsset(assetKey, caller)
	if nil != err {
		return err
	}

	if observer == caller {
		return fault.SelfRevokeNotPermitted
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	trx.Delete(globalData.privileges, privilegeKey(assetKey, observer))
	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("revoke: %d  observer: %s", assetKey, observer)
	return nil
}
