// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package grammar

import "go.yaml.in/grammar/internal/core"

// Option configures a parse operation.
// Re-exported from internal/core.
type Option = core.Option

// Re-export option functions from internal/core.
var (
	WithSingleDocument   = core.WithSingleDocument
	WithMaxDepth         = core.WithMaxDepth
	WithImplicitKeyLimit = core.WithImplicitKeyLimit
)
