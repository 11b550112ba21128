// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/registryd/record"
)

// unpacked records are kept for repeated reads, every mutation of a
// key replaces or drops its entry before the commit returns
const (
	cacheExpiry  = 1 * time.Minute
	cacheCleanup = 5 * time.Minute
	cacheKeyBase = 10
)

var assetCache *gocache.Cache

func cacheInitialise() {
	assetCache = gocache.New(cacheExpiry, cacheCleanup)
}

func cacheKey(assetKey uint64) string {
	return strconv.FormatUint(assetKey, cacheKeyBase)
}

func cacheStore(assetKey uint64, asset *record.AssetRecord) {
	assetCache.Set(cacheKey(assetKey), asset, gocache.DefaultExpiration)
}

func cacheFetch(assetKey uint64) (*record.AssetRecord, bool) {
	item, ok := assetCache.Get(cacheKey(assetKey))
	if !ok {
		return nil, false
	}
	return item.(*record.AssetRecord), true
}

func cacheRemove(assetKey uint64) {
	assetCache.Delete(cacheKey(assetKey))
}
