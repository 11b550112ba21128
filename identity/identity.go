// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identity - the caller identity primitive
//
// An identity is an opaque fixed size value supplied by the host
// environment with every operation.  The registry never authenticates
// an identity itself, it only compares identities for equality.  The
// textual form is base58 to match normal account display conventions.
package identity

import (
	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/registryd/fault"
)

// Size - number of bytes in an identity value
const Size = 32

// Identity - an opaque caller identity
type Identity [Size]byte

// Nobody - the zero identity, never a valid caller
var Nobody Identity

// FromBytes - convert a byte slice to an identity
func FromBytes(buffer []byte) (Identity, error) {
	var id Identity
	if Size != len(buffer) {
		return Nobody, fault.InvalidIdentity
	}
	copy(id[:], buffer)
	return id, nil
}

// FromBase58 - convert a base58 encoded string to an identity
func FromBase58(s string) (Identity, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Nobody, fault.InvalidIdentity
	}
	return FromBytes(buffer)
}

// Bytes - the identity value as a byte slice
func (id Identity) Bytes() []byte {
	return id[:]
}

// IsZero - check for the zero identity
func (id Identity) IsZero() bool {
	return id == Nobody
}

// String - base58 encoding of the identity
func (id Identity) String() string {
	return base58.Encode(id[:])
}

// MarshalText - encode identity for JSON purposes
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(base58.Encode(id[:])), nil
}

// UnmarshalText - decode identity from JSON
func (id *Identity) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*id = decoded
	return nil
}
