// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/registryd/fault"
)

// Transaction - all writes of one operation staged into a single
// all-or-nothing database batch
type Transaction interface {
	Begin() error
	Put(h Handle, key []byte, value []byte)
	PutN(h Handle, key []byte, value uint64)
	Delete(h Handle, key []byte)
	Commit() error
	Abort()
}

type transactionData struct {
	sync.Mutex
	db    *leveldb.DB
	batch *leveldb.Batch
	inUse bool
}

func newTransaction(db *leveldb.DB) Transaction {
	return &transactionData{
		db:    db,
		batch: new(leveldb.Batch),
	}
}

// Begin - mark the transaction as in use
func (t *transactionData) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionInUse
	}
	t.inUse = true
	t.batch.Reset()
	return nil
}

// Put - stage a key/value pair for the commit
func (t *transactionData) Put(h Handle, key []byte, value []byte) {
	t.Lock()
	defer t.Unlock()
	t.batch.Put(h.prefixKey(key), value)
}

// PutN - stage a big endian uint64 value for the commit
func (t *transactionData) PutN(h Handle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(h, key, buffer)
}

// Delete - stage a removal for the commit
func (t *transactionData) Delete(h Handle, key []byte) {
	t.Lock()
	defer t.Unlock()
	t.batch.Delete(h.prefixKey(key))
}

// Commit - write all staged changes as one atomic batch
func (t *transactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	err := t.db.Write(t.batch, nil)
	t.batch.Reset()
	t.inUse = false
	return err
}

// Abort - discard all staged changes
func (t *transactionData) Abort() {
	t.Lock()
	defer t.Unlock()

	t.batch.Reset()
	t.inUse = false
}
