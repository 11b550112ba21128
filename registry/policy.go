// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/registryd/identity"
	"github.com/bitmark-inc/registryd/record"
)

// the view decision combines three independent conditions: ownership,
// an explicit privilege grant and the overseer identity
//
// the owner is checked directly rather than through the privilege
// table so a stale or missing entry can never lock an owner out
//
// a locked asset suspends privilege grants: only the owner and the
// overseer can still view it
//
// must be called with the global lock held
func mayView(asset *record.AssetRecord, assetKey uint64, caller identity.Identity) bool {
	if caller == asset.Owner || caller == globalData.overseer {
		return true
	}
	if asset.Locked {
		return false
	}
	return globalData.privileges.Has(privilegeKey(assetKey, caller))
}
