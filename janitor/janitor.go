// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package janitor - periodic cleanup of stale access entries
//
// deleting an asset does not touch its access table rows, so a
// background sweep removes any row whose asset no longer exists
package janitor

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/background"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/storage"
)

const (
	sweepCycle     = 10 * time.Minute
	fetchBatchSize = 100
)

// globals
type globalDataType struct {
	sync.RWMutex
	log        *logger.L
	assets     storage.Handle
	privileges storage.Handle

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData globalDataType

// Initialise - start the background sweeper
func Initialise(assets storage.Handle, privileges storage.Handle) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("janitor")
	globalData.log.Info("starting…")

	globalData.assets = assets
	globalData.privileges = privileges

	// all data initialised
	globalData.initialised = true

	processes := background.Processes{
		&sweeper{log: globalData.log},
	}
	globalData.background = background.Start(processes, nil)

	return nil
}

// Finalise - stop the background sweeper
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.background.Stop()

	globalData.initialised = false
	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

type sweeper struct {
	log *logger.L
}

func (s *sweeper) Run(args interface{}, shutdown <-chan struct{}) {
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(sweepCycle):
			removed, err := Sweep()
			if nil != err {
				s.log.Errorf("sweep error: %s", err)
				continue loop
			}
			if removed > 0 {
				s.log.Infof("removed stale entries: %d", removed)
			}
		}
	}
}

// Sweep - remove access entries for assets that no longer exist
//
// returns the number of entries removed
func Sweep() (int, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}

	removed := 0
	cursor := globalData.privileges.NewFetchCursor()
	for {
		elements, err := cursor.Fetch(fetchBatchSize)
		if nil != err {
			return removed, err
		}
		if 0 == len(elements) {
			break
		}

		for _, element := range elements {
			if len(element.Key) <= 8 {
				globalData.log.Criticalf("malformed access key: %x", element.Key)
				continue
			}
			assetKeyBytes := element.Key[:8]
			if globalData.assets.Has(assetKeyBytes) {
				continue
			}
			assetKey := binary.BigEndian.Uint64(assetKeyBytes)
			globalData.log.Debugf("stale entry for asset: %d", assetKey)
			globalData.privileges.Delete(element.Key)
			removed += 1
		}

		if len(elements) < fetchBatchSize {
			break
		}
	}

	return removed, nil
}
