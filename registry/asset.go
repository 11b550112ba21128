// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/identity"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/storage"
)

// CreateAsset - register a new asset owned by the caller
//
// assigns the next asset key, stamps the creation tick and seeds the
// owner's own privilege entry; the sequence cell only advances when
// the whole creation commits
func CreateAsset(caller identity.Identity, identifier string, payloadSize uint64, description string, labels []string) (uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}
	if caller.IsZero() {
		return 0, fault.InvalidIdentity
	}

	now := globalData.clock.Next()

	asset := &record.AssetRecord{
		Identifier:  identifier,
		Owner:       caller,
		PayloadSize: payloadSize,
		CreatedAt:   now,
		Description: description,
		Labels:      append([]string{}, labels...),
	}

	// all field validation happens during the pack
	packed, err := asset.Pack()
	if nil != err {
		return 0, err
	}

	sequence, _ := globalData.registry.GetN(sequenceKey)
	assetKey := sequence + 1

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}
	trx.Put(globalData.assets, AssetKeyBytes(assetKey), packed)
	trx.Put(globalData.privileges, privilegeKey(assetKey, caller), []byte{0x01})
	trx.PutN(globalData.registry, sequenceKey, assetKey)
	trx.PutN(globalData.registry, clockKey, now)
	err = trx.Commit()
	if nil != err {
		return 0, err
	}

	cacheStore(assetKey, asset)
	globalData.log.Infof("create: %d  owner: %s", assetKey, caller)
	return assetKey, nil
}

// UpdateAsset - replace all mutable fields of an owned asset
//
// the asset key, owner and creation tick are untouched
func UpdateAsset(caller identity.Identity, assetKey uint64, identifier string, payloadSize uint64, description string, labels []string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	asset, err := fetchOwnedAsset(assetKey, caller)
	if nil != err {
		return err
	}

	updated := asset.Copy()
	updated.Identifier = identifier
	updated.PayloadSize = payloadSize
	updated.Description = description
	updated.Labels = append([]string{}, labels...)

	return commitAsset(assetKey, updated)
}

// TransferAsset - pass exclusive ownership to another identity
//
// no validation of the new owner beyond being a well formed identity
func TransferAsset(caller identity.Identity, assetKey uint64, newOwner identity.Identity) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if newOwner.IsZero() {
		return fault.InvalidIdentity
	}

	asset, err := fetchOwnedAsset(assetKey, caller)
	if nil != err {
		return err
	}

	updated := asset.Copy()
	updated.Owner = newOwner

	err = commitAsset(assetKey, updated)
	if nil != err {
		return err
	}
	globalData.log.Infof("transfer: %d  owner: %s to %s", assetKey, caller, newOwner)
	return nil
}

// DeleteAsset - remove an owned asset record entirely
//
// the asset key is never reassigned; privilege entries for the key are
// left behind and swept later, a lookup always reports absence first
func DeleteAsset(caller identity.Identity, assetKey uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	_, err := fetchOwnedAsset(assetKey, caller)
	if nil != err {
		return err
	}

	now := globalData.clock.Next()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	trx.Delete(globalData.assets, AssetKeyBytes(assetKey))
	trx.PutN(globalData.registry, clockKey, now)
	err = trx.Commit()
	if nil != err {
		return err
	}

	cacheRemove(assetKey)
	globalData.log.Infof("delete: %d", assetKey)
	return nil
}

// ExtendLabels - append extra labels after the existing ones
//
// order is preserved and the merge must stay within the label limit,
// returns the resulting merged label sequence
func ExtendLabels(caller identity.Identity, assetKey uint64, extraLabels []string) ([]string, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	asset, err := fetchOwnedAsset(assetKey, caller)
	if nil != err {
		return nil, err
	}

	if len(extraLabels) < record.MinLabelCount || len(extraLabels) > record.MaxLabelCount {
		return nil, fault.InvalidLabelCount
	}
	for _, label := range extraLabels {
		if !record.IsValidLabel(label) {
			return nil, fault.InvalidLabelLength
		}
	}
	if len(asset.Labels)+len(extraLabels) > record.MaxLabelCount {
		return nil, fault.LabelLimitExceeded
	}

	updated := asset.Copy()
	updated.Labels = append(updated.Labels, extraLabels...)

	err = commitAsset(assetKey, updated)
	if nil != err {
		return nil, err
	}

	merged := make([]string, len(updated.Labels))
	copy(merged, updated.Labels)
	return merged, nil
}

// ReviseDescription - replace only the description field
func ReviseDescription(caller identity.Identity, assetKey uint64, newDescription string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	asset, err := fetchOwnedAsset(assetKey, caller)
	if nil != err {
		return err
	}

	if !record.IsValidDescription(newDescription) {
		return fault.InvalidDescriptionLength
	}

	updated := asset.Copy()
	updated.Description = newDescription

	return commitAsset(assetKey, updated)
}

// pack a revised record and commit it as one batch
//
// must be called with the global lock held
func commitAsset(assetKey uint64, asset *record.AssetRecord) error {
	packed, err := asset.Pack()
	if nil != err {
		return err
	}

	now := globalData.clock.Next()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	trx.Put(globalData.assets, AssetKeyBytes(assetKey), packed)
	trx.PutN(globalData.registry, clockKey, now)
	err = trx.Commit()
	if nil != err {
		return err
	}

	cacheStore(assetKey, asset)
	return nil
}
