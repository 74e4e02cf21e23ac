// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Low-level database operation errors. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query or statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a new
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a Perform block
	// fails. The block is rolled back and nothing is announced.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingValue is returned when a geometry or properties bag cannot
	// be encoded for storage.
	ErrEncodingValue = errors.New("failed to encode value")
)

// errRecordNotFound signals a dangling key inside the package. Public read
// methods turn it into a silent "not found".
var errRecordNotFound = errors.New("record not found")

// ErrInvalidKey is returned by mutators handed a key of another entity.
var ErrInvalidKey = errors.New("key does not identify a record of this entity")
