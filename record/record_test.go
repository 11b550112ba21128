// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/identity"
	"github.com/bitmark-inc/registryd/record"
)

func makeIdentity(fill byte) identity.Identity {
	buffer := make([]byte, identity.Size)
	for i := range buffer {
		buffer[i] = fill
	}
	id, _ := identity.FromBytes(buffer)
	return id
}

func makeAsset() *record.AssetRecord {
	return &record.AssetRecord{
		Identifier:  "Doc-A",
		Owner:       makeIdentity(0x11),
		PayloadSize: 1000,
		CreatedAt:   5,
		Description: "a test document",
		Labels:      []string{"L1", "L2"},
	}
}

func TestPackUnpack(t *testing.T) {
	asset := makeAsset()

	packed, err := asset.Pack()
	assert.Nil(t, err, "wrong pack")

	unpacked, err := packed.Unpack()
	assert.Nil(t, err, "wrong unpack")
	assert.Equal(t, asset, unpacked, "wrong unpacked record")
}

func TestPackUnpackLocked(t *testing.T) {
	asset := makeAsset()
	asset.Locked = true

	packed, err := asset.Pack()
	assert.Nil(t, err, "wrong pack")

	unpacked, err := packed.Unpack()
	assert.Nil(t, err, "wrong unpack")
	assert.True(t, unpacked.Locked, "wrong locked flag")
}

func TestPackBoundaries(t *testing.T) {
	// longest acceptable values of everything
	asset := &record.AssetRecord{
		Identifier:  strings.Repeat("n", record.MaxIdentifierLength),
		Owner:       makeIdentity(0x11),
		PayloadSize: record.MaxPayloadSize - 1,
		CreatedAt:   0,
		Description: strings.Repeat("d", record.MaxDescriptionLength),
		Labels:      make([]string, record.MaxLabelCount),
	}
	for i := range asset.Labels {
		asset.Labels[i] = strings.Repeat("l", record.MaxLabelLength)
	}

	packed, err := asset.Pack()
	assert.Nil(t, err, "wrong pack")

	unpacked, err := packed.Unpack()
	assert.Nil(t, err, "wrong unpack")
	assert.Equal(t, asset, unpacked, "wrong unpacked record")
}

func TestPackValidation(t *testing.T) {
	testCases := []struct {
		modify func(*record.AssetRecord)
		err    error
	}{
		{func(a *record.AssetRecord) { a.Identifier = "" }, fault.InvalidIdentifierLength},
		{func(a *record.AssetRecord) { a.Identifier = strings.Repeat("n", 65) }, fault.InvalidIdentifierLength},
		{func(a *record.AssetRecord) { a.Owner = identity.Nobody }, fault.InvalidIdentity},
		{func(a *record.AssetRecord) { a.PayloadSize = 0 }, fault.InvalidPayloadSize},
		{func(a *record.AssetRecord) { a.PayloadSize = record.MaxPayloadSize }, fault.InvalidPayloadSize},
		{func(a *record.AssetRecord) { a.Description = "" }, fault.InvalidDescriptionLength},
		{func(a *record.AssetRecord) { a.Description = strings.Repeat("d", 129) }, fault.InvalidDescriptionLength},
		{func(a *record.AssetRecord) { a.Labels = nil }, fault.InvalidLabelCount},
		{func(a *record.AssetRecord) { a.Labels = make([]string, 11) }, fault.InvalidLabelCount},
		{func(a *record.AssetRecord) { a.Labels = []string{""} }, fault.InvalidLabelLength},
		{func(a *record.AssetRecord) { a.Labels = []string{strings.Repeat("l", 33)} }, fault.InvalidLabelLength},
	}

	for i, item := range testCases {
		asset := makeAsset()
		item.modify(asset)
		_, err := asset.Pack()
		assert.Equal(t, item.err, err, "%d: wrong error", i)
	}
}

func TestValidationPredicates(t *testing.T) {
	assert.True(t, record.IsValidIdentifier("x"), "single rune identifier")
	assert.True(t, record.IsValidIdentifier(strings.Repeat("á", 64)), "64 rune identifier")
	assert.False(t, record.IsValidIdentifier(""), "empty identifier")
	assert.False(t, record.IsValidIdentifier(strings.Repeat("á", 65)), "65 rune identifier")

	assert.True(t, record.IsValidPayloadSize(1), "minimum payload")
	assert.True(t, record.IsValidPayloadSize(999999999), "maximum payload")
	assert.False(t, record.IsValidPayloadSize(0), "zero payload")
	assert.False(t, record.IsValidPayloadSize(1000000000), "overlarge payload")

	assert.True(t, record.IsValidLabelSet([]string{"one"}), "single label")
	assert.False(t, record.IsValidLabelSet([]string{}), "empty label set")
	assert.False(t, record.IsValidLabelSet([]string{"ok", ""}), "label set with empty label")
}

func TestUnpackTruncated(t *testing.T) {
	asset := makeAsset()

	packed, err := asset.Pack()
	assert.Nil(t, err, "wrong pack")

	for _, n := range []int{0, 1, 3, len(packed) / 2, len(packed) - 1} {
		_, err := packed[:n].Unpack()
		assert.NotNil(t, err, "unpack of %d bytes did not fail", n)
	}
}

func TestUnpackWrongTag(t *testing.T) {
	asset := makeAsset()

	packed, err := asset.Pack()
	assert.Nil(t, err, "wrong pack")

	packed[0] = byte(record.InvalidTag)
	_, err = packed.Unpack()
	assert.Equal(t, fault.DataInconsistent, err, "wrong tag error")
}

func TestCopy(t *testing.T) {
	asset := makeAsset()

	duplicate := asset.Copy()
	assert.Equal(t, asset, duplicate, "wrong copy")

	duplicate.Labels[0] = "changed"
	assert.Equal(t, "L1", asset.Labels[0], "copy shares label storage")
}
