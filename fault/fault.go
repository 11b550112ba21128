// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type AuthorizationError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type OverflowError GenericError
type ProcessError GenericError
type RestrictedError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ProcessError("already initialised")
	AssetLocked                  = RestrictedError("asset is locked")
	AssetNotFound                = NotFoundError("asset not found")
	CertificateFileAlreadyExists = ProcessError("certificate file already exists")
	DataInconsistent             = ProcessError("data inconsistent")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidDescriptionLength     = InvalidError("description length is invalid")
	InvalidIdentifierLength      = InvalidError("identifier length is invalid")
	InvalidIdentity              = InvalidError("identity is invalid")
	InvalidIpAddress             = InvalidError("invalid IP Address")
	InvalidLabelCount            = InvalidError("label count is invalid")
	InvalidLabelLength           = InvalidError("label length is invalid")
	InvalidPayloadSize           = InvalidError("payload size is invalid")
	KeyFileAlreadyExists         = ProcessError("key file already exists")
	LabelLimitExceeded           = OverflowError("label limit exceeded")
	MissingParameters            = ProcessError("missing parameters")
	NotAssetOwner                = AuthorizationError("not asset owner")
	NotAvailableWhenStopped      = ProcessError("not available when stopped")
	NotInitialised               = ProcessError("not initialised")
	RateLimiting                 = ProcessError("rate limiting")
	SelfRevokeNotPermitted       = RestrictedError("owner cannot revoke own access")
	TransactionInUse             = ProcessError("transaction already in use")
	ViewNotPermitted             = AuthorizationError("view not permitted")
	WrongOverseerIdentity        = ProcessError("wrong overseer identity")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorizationError) Error() string { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e OverflowError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RestrictedError) Error() string    { return string(e) }

// determine the class of an error
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrOverflow(e error) bool      { _, ok := e.(OverflowError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRestricted(e error) bool    { _, ok := e.(RestrictedError); return ok }
