// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package viewmodel projects repository streams into display state and
// forwards user actions to the repositories. View models hold no business
// rules beyond ordering for display.
package viewmodel
