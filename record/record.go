// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the asset record and its packed form
//
// an asset record keeps its asset key and creation tick immutable
// forever, every other field is mutable only by the current owner
package record

import (
	"github.com/bitmark-inc/registryd/identity"
)

// TagType - type code for packed records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	AssetRecordTag = TagType(iota)

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// field bounds
const (
	MinIdentifierLength  = 1
	MaxIdentifierLength  = 64
	MinDescriptionLength = 1
	MaxDescriptionLength = 128
	MinLabelLength       = 1
	MaxLabelLength       = 32
	MinLabelCount        = 1
	MaxLabelCount        = 10

	// payload size bounds are exclusive: 0 < size < 1_000_000_000
	MaxPayloadSize = 1000000000
)

// AssetRecord - the unpacked asset record structure
type AssetRecord struct {
	Identifier  string            `json:"identifier"`         // utf-8
	Owner       identity.Identity `json:"owner"`              // base58
	PayloadSize uint64            `json:"payloadSize,string"` // unsigned 1..999999999
	CreatedAt   uint64            `json:"createdAt,string"`   // logical clock tick
	Description string            `json:"description"`        // utf-8
	Labels      []string          `json:"labels"`             // utf-8, ordered
	Locked      bool              `json:"locked"`             // emergency lockdown flag
}

// Copy - an independent copy of the record
//
// the labels slice is shared between the store and its cache so
// callers always receive their own backing array
func (asset *AssetRecord) Copy() *AssetRecord {
	result := *asset
	result.Labels = make([]string, len(asset.Labels))
	copy(result.Labels, asset.Labels)
	return &result
}
