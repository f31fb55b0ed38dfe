// SPDX-License-Identifier: Unlicense OR MIT

package bind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvrsdk/native/bind"
	"github.com/pvrsdk/native/bind/bindtest"
)

func TestSharedOpensOnce(t *testing.T) {
	lib, _ := newLib()
	sh := bind.NewShared(lib.Opener())
	a := newTable(sh.Open)
	b := newTable(sh.Open)

	_, err := a.Load()
	require.NoError(t, err)
	_, err = b.Load()
	require.NoError(t, err)
	_, err = a.Reset()
	require.NoError(t, err)
	assert.Equal(t, 1, lib.Opens())

	require.NoError(t, sh.Close())
	assert.True(t, lib.Closed())
	_, err = b.Reset()
	require.NoError(t, err)
	assert.Equal(t, 2, lib.Opens())
}

func TestSharedRemembersFailure(t *testing.T) {
	calls := 0
	missing := bindtest.Missing("libnothere.so")
	sh := bind.NewShared(func() (bind.Source, error) {
		calls++
		return missing()
	})
	_, err := sh.Open()
	require.ErrorIs(t, err, bindtest.ErrNoLibrary)
	_, err = sh.Open()
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	require.NoError(t, sh.Close())
	_, _ = sh.Open()
	assert.Equal(t, 2, calls)
}
