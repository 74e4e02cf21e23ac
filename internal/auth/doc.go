// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth implements the authentication modules a MAGE server
// advertises in its descriptor. Only the local username/password module
// is built in; other strategies are listed but cannot sign in.
package auth
