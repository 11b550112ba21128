// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"unicode/utf8"
)

// pure predicates checking field bounds, no field is ever partially
// applied: callers abort the whole operation on the first failure

// IsValidIdentifier - check identifier length bounds
func IsValidIdentifier(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= MinIdentifierLength && n <= MaxIdentifierLength
}

// IsValidDescription - check description length bounds
func IsValidDescription(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= MinDescriptionLength && n <= MaxDescriptionLength
}

// IsValidPayloadSize - check payload size bounds, both exclusive
func IsValidPayloadSize(n uint64) bool {
	return n > 0 && n < MaxPayloadSize
}

// IsValidLabel - check a single label length bounds
func IsValidLabel(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= MinLabelLength && n <= MaxLabelLength
}

// IsValidLabelSet - check label count bounds and every label
func IsValidLabelSet(labels []string) bool {
	if len(labels) < MinLabelCount || len(labels) > MaxLabelCount {
		return false
	}
	for _, label := range labels {
		if !IsValidLabel(label) {
			return false
		}
	}
	return true
}
