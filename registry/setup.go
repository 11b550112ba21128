// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/identity"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/storage"
	"github.com/bitmark-inc/registryd/tick"
)

// Handles - the storage pools used by the engine
type Handles struct {
	Assets     storage.Handle
	Privileges storage.Handle
	Registry   storage.Handle
}

// cells of the registry pool
var (
	sequenceKey = []byte("sequence")
	clockKey    = []byte("clock")
	overseerKey = []byte("overseer")
)

// globals
type globalDataType struct {
	sync.RWMutex
	log        *logger.L
	assets     storage.Handle
	privileges storage.Handle
	registry   storage.Handle
	overseer   identity.Identity
	clock      tick.Clock

	// set once during initialise
	initialised bool
}

// global data
var globalData globalDataType

// Initialise - set up the registry engine
//
// the overseer identity is captured into the registry pool on the very
// first start and never changes afterwards; later starts may pass the
// zero identity to simply reload the stored one
func Initialise(handles Handles, overseer identity.Identity) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("registry")
	globalData.log.Info("starting…")

	globalData.assets = handles.Assets
	globalData.privileges = handles.Privileges
	globalData.registry = handles.Registry

	// overseer bootstrap
	stored := globalData.registry.Get(overseerKey)
	if nil == stored {
		if overseer.IsZero() {
			return fault.InvalidIdentity
		}
		globalData.registry.Put(overseerKey, overseer.Bytes())
		globalData.overseer = overseer
		globalData.log.Infof("overseer: %s", overseer)
	} else {
		id, err := identity.FromBytes(stored)
		if nil != err {
			return err
		}
		if !overseer.IsZero() && id != overseer {
			return fault.WrongOverseerIdentity
		}
		globalData.overseer = id
	}

	// restore the logical clock
	if n, ok := globalData.registry.GetN(clockKey); ok {
		globalData.clock.Seed(n)
	}

	cacheInitialise()

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shut down the registry engine
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.initialised = false
	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Overseer - the bootstrap identity
func Overseer() identity.Identity {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.overseer
}

// AssetKeyBytes - big endian storage key for an asset key
func AssetKeyBytes(assetKey uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, assetKey)
	return buffer
}

// storage key of a privilege entry
func privilegeKey(assetKey uint64, observer identity.Identity) []byte {
	return append(AssetKeyBytes(assetKey), observer.Bytes()...)
}

// resolve an asset record, the cache fronts the store
//
// the returned record is shared: callers must copy before mutating
// or returning it across the package boundary
func fetchAsset(assetKey uint64) (*record.AssetRecord, error) {
	if asset, ok := cacheFetch(assetKey); ok {
		return asset, nil
	}

	packed := globalData.assets.Get(AssetKeyBytes(assetKey))
	if nil == packed {
		return nil, fault.AssetNotFound
	}

	asset, err := record.Packed(packed).Unpack()
	if nil != err {
		globalData.log.Criticalf("corrupt asset record: %d  error: %s", assetKey, err)
		return nil, err
	}

	cacheStore(assetKey, asset)
	return asset, nil
}

// resolve an asset and require the caller to be its owner
//
// order of checks: existence, ownership, lockdown
func fetchOwnedAsset(assetKey uint64, caller identity.Identity) (*record.AssetRecord, error) {
	asset, err := fetchAsset(assetKey)
	if nil != err {
		return nil, err
	}
	if asset.Owner != caller {
		return nil, fault.NotAssetOwner
	}
	if asset.Locked {
		return nil, fault.AssetLocked
	}
	return asset, nil
}
