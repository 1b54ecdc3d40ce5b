// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

//go:build multiarray_boundscheck

package ndarray

// boundsChecking enables the validation of every index on element access.
const boundsChecking = true
