// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/identity"
	"github.com/bitmark-inc/registryd/util"
)

// Unpack - turn a packed byte stream into an asset record
//
// the store only ever holds records produced by Pack so any
// structural failure here indicates database corruption
func (packed Packed) Unpack() (*AssetRecord, error) {

	buffer := []byte(packed)

	tag, n := util.FromVarint64(buffer)
	if 0 == n || AssetRecordTag != TagType(tag) {
		return nil, fault.DataInconsistent
	}
	buffer = buffer[n:]

	identifier, buffer, err := unpackString(buffer)
	if nil != err {
		return nil, err
	}

	if len(buffer) < identity.Size {
		return nil, fault.DataInconsistent
	}
	owner, err := identity.FromBytes(buffer[:identity.Size])
	if nil != err {
		return nil, err
	}
	buffer = buffer[identity.Size:]

	payloadSize, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.DataInconsistent
	}
	buffer = buffer[n:]

	createdAt, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.DataInconsistent
	}
	buffer = buffer[n:]

	description, buffer, err := unpackString(buffer)
	if nil != err {
		return nil, err
	}

	labelCount, n := util.FromVarint64(buffer)
	if 0 == n || labelCount > MaxLabelCount {
		return nil, fault.DataInconsistent
	}
	buffer = buffer[n:]

	labels := make([]string, labelCount)
	for i := uint64(0); i < labelCount; i += 1 {
		labels[i], buffer, err = unpackString(buffer)
		if nil != err {
			return nil, err
		}
	}

	if 1 != len(buffer) || buffer[0] > 0x01 {
		return nil, fault.DataInconsistent
	}
	locked := 0x01 == buffer[0]

	return &AssetRecord{
		Identifier:  identifier,
		Owner:       owner,
		PayloadSize: payloadSize,
		CreatedAt:   createdAt,
		Description: description,
		Labels:      labels,
		Locked:      locked,
	}, nil
}

// read a length prefixed field, returning the remaining buffer
func unpackString(buffer []byte) (string, []byte, error) {
	length, n := util.FromVarint64(buffer)
	if 0 == n {
		return "", nil, fault.DataInconsistent
	}
	buffer = buffer[n:]
	if length > uint64(len(buffer)) {
		return "", nil, fault.DataInconsistent
	}
	return string(buffer[:length]), buffer[length:], nil
}
