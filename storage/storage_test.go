// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/registryd/storage"
)

// test database file
const (
	databaseFileName = "test.leveldb"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()
	err := storage.Initialise(databaseFileName)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	removeFiles()
}

// main test
func TestPutGetDelete(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.Assets

	key := []byte("some-key")
	value := []byte("some-data")

	if p.Has(key) {
		t.Fatalf("unexpected key")
	}

	p.Put(key, value)

	if !p.Has(key) {
		t.Fatalf("missing key")
	}

	data := p.Get(key)
	if !bytes.Equal(value, data) {
		t.Fatalf("Get returned: %q  expected: %q", data, value)
	}

	p.Delete(key)

	if p.Has(key) {
		t.Fatalf("key was not deleted")
	}
	if nil != p.Get(key) {
		t.Fatalf("Get returned data for a deleted key")
	}
}

// pools with the same keys must not interfere
func TestPoolIsolation(t *testing.T) {
	setup(t)
	defer teardown(t)

	key := []byte("shared-key")

	storage.Pool.Assets.Put(key, []byte("assets"))
	storage.Pool.Privileges.Put(key, []byte("privileges"))

	if !bytes.Equal([]byte("assets"), storage.Pool.Assets.Get(key)) {
		t.Fatalf("assets pool data is wrong")
	}
	if !bytes.Equal([]byte("privileges"), storage.Pool.Privileges.Get(key)) {
		t.Fatalf("privileges pool data is wrong")
	}

	storage.Pool.Assets.Delete(key)

	if storage.Pool.Assets.Has(key) {
		t.Fatalf("assets key was not deleted")
	}
	if !storage.Pool.Privileges.Has(key) {
		t.Fatalf("privileges key was deleted")
	}
}

func TestGetN(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.Registry

	if _, ok := p.GetN([]byte("counter")); ok {
		t.Fatalf("unexpected counter record")
	}

	p.PutN([]byte("counter"), 42)

	n, ok := p.GetN([]byte("counter"))
	if !ok {
		t.Fatalf("missing counter record")
	}
	if 42 != n {
		t.Fatalf("GetN returned: %d  expected: %d", n, 42)
	}
}

func TestLastElement(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.Assets

	if _, found := p.LastElement(); found {
		t.Fatalf("unexpected element in empty pool")
	}

	for i := uint64(1); i <= 10; i += 1 {
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, i)
		p.Put(key, []byte(fmt.Sprintf("data-%d", i)))
	}

	element, found := p.LastElement()
	if !found {
		t.Fatalf("missing last element")
	}
	if 10 != binary.BigEndian.Uint64(element.Key) {
		t.Fatalf("last element key: %x  expected: 10", element.Key)
	}
	if !bytes.Equal([]byte("data-10"), element.Value) {
		t.Fatalf("last element value: %q  expected: %q", element.Value, "data-10")
	}
}

func TestFetchCursor(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.Privileges

	for i := 0; i < 7; i += 1 {
		p.Put([]byte{byte(i)}, []byte{0x01})
	}

	cursor := p.NewFetchCursor()

	first, err := cursor.Fetch(3)
	if nil != err {
		t.Fatalf("fetch error: %s", err)
	}
	if 3 != len(first) {
		t.Fatalf("fetched: %d elements  expected: 3", len(first))
	}

	rest, err := cursor.Fetch(100)
	if nil != err {
		t.Fatalf("fetch error: %s", err)
	}
	if 4 != len(rest) {
		t.Fatalf("fetched: %d elements  expected: 4", len(rest))
	}

	// keys must come back in order with no repeats
	all := append(first, rest...)
	for i, e := range all {
		if 1 != len(e.Key) || byte(i) != e.Key[0] {
			t.Fatalf("%d: key: %x  expected: %x", i, e.Key, []byte{byte(i)})
		}
	}
}
