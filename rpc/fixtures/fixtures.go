// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/identity"
	"github.com/bitmark-inc/registryd/registry"
	"github.com/bitmark-inc/registryd/storage"
)

const (
	dir         = "testing"
	LogCategory = "testing"

	databaseFileName = dir + "/test.leveldb"
)

var (
	Overseer identity.Identity
	Owner    identity.Identity
	Observer identity.Identity
	Stranger identity.Identity
)

func init() {
	Overseer = makeIdentity(0x01)
	Owner = makeIdentity(0xaa)
	Observer = makeIdentity(0xbb)
	Stranger = makeIdentity(0xcc)
}

func makeIdentity(fill byte) identity.Identity {
	buffer := make([]byte, identity.Size)
	for i := range buffer {
		buffer[i] = fill
	}
	id, _ := identity.FromBytes(buffer)
	return id
}

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// SetupTestRegistry - a real store under the testing directory
//
// call SetupTestLogger first
func SetupTestRegistry() error {
	err := storage.Initialise(databaseFileName)
	if nil != err {
		return err
	}
	return registry.Initialise(registry.Handles{
		Assets:     storage.Pool.Assets,
		Privileges: storage.Pool.Privileges,
		Registry:   storage.Pool.Registry,
	}, Overseer)
}

func TeardownTestRegistry() {
	_ = registry.Finalise()
	storage.Finalise()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
