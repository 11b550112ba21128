// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a LevelDB database split into a series of tables
//
// data access is either through a table handle or through a
// transaction that batches writes from several tables into a single
// atomic commit
//
// Both tables are prefixed by a single byte to identify the table and
// following data is everything after the prefix byte:
//
// Assets:
//
//	key:   big endian asset key
//	value: packed asset record
//
// Privileges:
//
//	key:   big endian asset key ++ observer identity
//	value: single 0x01 byte
//
// Registry:
//
//	key:   ASCII name of a registry cell
//	value: big endian uint64 or raw identity bytes
package storage
