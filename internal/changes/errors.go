// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package changes

import "errors"

var (
	// ErrQueryFailed terminates a subscription whose live query could not be
	// executed. Other subscriptions and the store are unaffected.
	ErrQueryFailed = errors.New("live query failed")

	// ErrDiffOutOfRange is returned by [Diff.Apply] when the diff was not
	// computed against the collection it is applied to.
	ErrDiffOutOfRange = errors.New("diff offset out of range")
)
