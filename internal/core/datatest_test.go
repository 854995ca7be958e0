// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Data-driven tests: the fixture files under testdata hold input
// streams and the expected compact rendering of their token trees.

package core

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.yaml.in/grammar/internal/testutil/datatest"
)

func TestDataScalars(t *testing.T) {
	runDataFile(t, filepath.Join("testdata", "scalars.yaml"))
}

func TestDataCollections(t *testing.T) {
	runDataFile(t, filepath.Join("testdata", "collections.yaml"))
}

func runDataFile(t *testing.T, path string) {
	t.Helper()
	datatest.Run(t, path, func(t *testing.T, tc datatest.Case) {
		stream, err := ParseString(tc.YAML)
		if tc.Fail {
			require.Error(t, err, "input:\n%s", tc.YAML)
			if tc.Error != "" {
				assert.Contains(t, err.Error(), tc.Error)
			}
			return
		}
		require.NoError(t, err, "input:\n%s", tc.YAML)
		require.Len(t, stream.Documents, 1)
		assert.Equal(t, tc.Want, renderNode(stream.Documents[0].Root))
	})
}
