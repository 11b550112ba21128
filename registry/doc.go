// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the asset registry engine
//
// associates caller-verified ownership with opaque assets and layers a
// discretionary privilege table on top of that ownership
//
// every operation runs as one all-or-nothing storage transaction: the
// target record is resolved first, input fields are validated, the
// authority of the caller is checked, and only then is any state
// written - a failure at any point leaves every table untouched
//
// authority model:
//
//	write operations require the caller to be the asset owner
//	read operations require owner, granted observer or the overseer
//	the overseer gains write access only for the lockdown path
package registry
