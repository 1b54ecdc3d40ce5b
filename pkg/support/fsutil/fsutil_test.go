// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package fsutil

import (
	"os"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	usr, err := user.Current()
	require.NoError(t, err)

	got, err := ExpandHome("~/images")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(usr.HomeDir, "images"), got)

	got, err = ExpandHome("~")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(usr.HomeDir), got)

	got, err = ExpandHome("/tmp/x")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x", got)

	_, err = ExpandHome("~no_such_user_for_multiarray/x")
	require.Error(t, err)
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	got, err := EnsureDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Existing directories are fine.
	_, err = EnsureDir(dir)
	require.NoError(t, err)
}

func TestWithSuffix(t *testing.T) {
	assert.Equal(t, "/data/cat_smooth.png", WithSuffix("/data/cat.png", "", "_smooth"))
	assert.Equal(t, "/out/cat_smooth.png", WithSuffix("/data/cat.png", "/out", "_smooth"))
	assert.Equal(t, "noext_x", WithSuffix("noext", "", "_x"))
}
