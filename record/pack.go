// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/util"
)

// Pack - pack an asset record
//
// Pack Varint64(tag) followed by fields in order as the struct above
//
// all field bounds are checked here so an invalid record can never
// reach the store
func (asset *AssetRecord) Pack() (Packed, error) {
	if !IsValidIdentifier(asset.Identifier) {
		return nil, fault.InvalidIdentifierLength
	}
	if asset.Owner.IsZero() {
		return nil, fault.InvalidIdentity
	}
	if !IsValidPayloadSize(asset.PayloadSize) {
		return nil, fault.InvalidPayloadSize
	}
	if !IsValidDescription(asset.Description) {
		return nil, fault.InvalidDescriptionLength
	}
	if len(asset.Labels) < MinLabelCount || len(asset.Labels) > MaxLabelCount {
		return nil, fault.InvalidLabelCount
	}
	for _, label := range asset.Labels {
		if !IsValidLabel(label) {
			return nil, fault.InvalidLabelLength
		}
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(AssetRecordTag))
	message = appendString(message, asset.Identifier)
	message = append(message, asset.Owner.Bytes()...)
	message = appendUint64(message, asset.PayloadSize)
	message = appendUint64(message, asset.CreatedAt)
	message = appendString(message, asset.Description)
	message = appendUint64(message, uint64(len(asset.Labels)))
	for _, label := range asset.Labels {
		message = appendString(message, label)
	}
	if asset.Locked {
		message = append(message, 0x01)
	} else {
		message = append(message, 0x00)
	}

	return message, nil
}

// append a single field to a buffer
//
// the field is prefixed by its length
func appendString(buffer Packed, s string) Packed {
	buffer = append(buffer, util.ToVarint64(uint64(len(s)))...)
	return append(buffer, s...)
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	return append(buffer, util.ToVarint64(value)...)
}
