//go:build cuda

package _default

import _ "github.com/axonml/axon/backends/cuda"
