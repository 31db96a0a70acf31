// Copyright 2025 The Axon Authors. SPDX-License-Identifier: Apache-2.0

// Package _default links in the default set of backends, namely the host
// CPU one, plus CUDA when built with the "cuda" tag.
//
// To use it simply include:
//
//	import _ "github.com/axonml/axon/backends/default"
package _default

import (
	_ "github.com/axonml/axon/backends/cpu"
)
