// SPDX-License-Identifier: Unlicense OR MIT

package bind_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pvrsdk/native/bind"
	"github.com/pvrsdk/native/bind/bindtest"
)

type fnID int

const (
	idGetError fnID = iota
	idClear
	idViewport
)

var fnNames = []string{"glGetError", "glClear", "glViewport"}

type fns struct {
	GetError func() uint32
	Clear    func(mask uint32)
	Viewport func(x, y, w, h int32)
}

func (f *fns) fields() []any {
	return []any{&f.GetError, &f.Clear, &f.Viewport}
}

func newLib() (*bindtest.Library, *[]uint32) {
	cleared := new([]uint32)
	lib := bindtest.NewLibrary("libtest.so", map[string]any{
		"glGetError": func() uint32 { return 0x0500 },
		"glClear":    func(mask uint32) { *cleared = append(*cleared, mask) },
		"glViewport": func(x, y, w, h int32) {},
	})
	return lib, cleared
}

func newTable(open func() (bind.Source, error), opts ...bind.Option) *bind.Table[fnID, fns] {
	opts = append([]bind.Option{bind.WithRegistrar(bindtest.Register), bind.WithLogger(zap.NewNop())}, opts...)
	return bind.NewTable[fnID]("test", fnNames, (*fns).fields, open, opts...)
}

func TestLoadForwards(t *testing.T) {
	lib, cleared := newLib()
	tab := newTable(lib.Opener())

	f, err := tab.Load()
	require.NoError(t, err)
	require.NotNil(t, f.Clear)

	f.Clear(0x4000)
	assert.Equal(t, []uint32{0x4000}, *cleared)
	assert.Equal(t, uint32(0x0500), f.GetError())
	assert.Equal(t, 1, tab.Generation())
	assert.Empty(t, tab.Missing())
	require.NoError(t, tab.Require())
}

func TestLoadIsIdempotent(t *testing.T) {
	lib, _ := newLib()
	tab := newTable(lib.Opener())

	f1, err := tab.Load()
	require.NoError(t, err)
	lookups := lib.Lookups()
	assert.Equal(t, len(fnNames), lookups)

	for i := 0; i < 3; i++ {
		f2, err := tab.Load()
		require.NoError(t, err)
		assert.Same(t, f1, f2)
	}
	addr1, err := tab.Resolve(idClear)
	require.NoError(t, err)
	addr2, err := tab.Resolve(idClear)
	require.NoError(t, err)
	assert.Equal(t, addr1, addr2)
	assert.Equal(t, lib.Addr("glClear"), addr1)

	assert.Equal(t, lookups, lib.Lookups(), "cached loads must not look symbols up again")
	assert.Equal(t, 1, lib.Opens())
}

func TestMissingLibrary(t *testing.T) {
	tab := newTable(bindtest.Missing("libnothere.so"))

	f, err := tab.Load()
	require.NotNil(t, f)
	assert.Nil(t, f.Clear)
	require.ErrorIs(t, err, bind.ErrLibraryNotFound)
	require.ErrorIs(t, err, bindtest.ErrNoLibrary)
	var le *bind.LibraryError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "test", le.Tier)

	_, err = tab.Resolve(idViewport)
	assert.ErrorIs(t, err, bind.ErrLibraryNotFound)
	assert.False(t, tab.Has(idGetError))
	assert.ErrorIs(t, tab.Require(idClear), bind.ErrLibraryNotFound)
	assert.Equal(t, fnNames, tab.Missing())
}

func TestPartialResolution(t *testing.T) {
	lib, _ := newLib()
	lib.Remove("glViewport")
	tab := newTable(lib.Opener())

	f, err := tab.Load()
	require.NoError(t, err)
	assert.NotNil(t, f.Clear)
	assert.NotNil(t, f.GetError)
	assert.Nil(t, f.Viewport)

	assert.True(t, tab.Has(idClear))
	assert.False(t, tab.Has(idViewport))

	_, err = tab.Resolve(idViewport)
	var se *bind.SymbolError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, []string{"glViewport"}, se.Names)
	assert.ErrorIs(t, err, bind.ErrSymbolNotFound)

	require.NoError(t, tab.Require(idClear, idGetError))
	err = tab.Require(idClear, idViewport)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, []string{"glViewport"}, se.Names)
	assert.ErrorIs(t, tab.Require(), bind.ErrSymbolNotFound)
	assert.Equal(t, []string{"glViewport"}, tab.Missing())
}

func TestResolveOutOfRange(t *testing.T) {
	lib, _ := newLib()
	tab := newTable(lib.Opener())
	_, err := tab.Resolve(fnID(len(fnNames)))
	assert.Error(t, err)
	assert.Equal(t, "", tab.Name(-1))
	assert.Equal(t, "glViewport", tab.Name(idViewport))
	assert.Equal(t, 3, tab.Len())
}

func TestReset(t *testing.T) {
	lib, cleared := newLib()
	tab := newTable(lib.Opener())

	old, err := tab.Load()
	require.NoError(t, err)
	oldAddr, err := tab.Resolve(idClear)
	require.NoError(t, err)

	var reloaded []uint32
	lib.Define("glClear", func(mask uint32) { reloaded = append(reloaded, mask) })
	cur, err := tab.Reset()
	require.NoError(t, err)
	assert.NotSame(t, old, cur)
	assert.Equal(t, 2, tab.Generation())
	assert.Equal(t, 2, lib.Opens())

	newAddr, err := tab.Resolve(idClear)
	require.NoError(t, err)
	assert.NotEqual(t, oldAddr, newAddr)

	old.Clear(1)
	cur.Clear(2)
	assert.Equal(t, []uint32{1}, *cleared)
	assert.Equal(t, []uint32{2}, reloaded)

	again, err := tab.Load()
	require.NoError(t, err)
	assert.Same(t, cur, again)
}

func TestResetBeforeLoad(t *testing.T) {
	lib, _ := newLib()
	tab := newTable(lib.Opener())
	assert.Equal(t, 0, tab.Generation())
	_, err := tab.Reset()
	require.NoError(t, err)
	assert.Equal(t, 1, tab.Generation())
}

func TestUnload(t *testing.T) {
	lib, _ := newLib()
	tab := newTable(lib.Opener())

	tab.Unload()
	assert.Equal(t, 0, tab.Generation())
	assert.Equal(t, 0, lib.Opens())

	old, err := tab.Load()
	require.NoError(t, err)
	tab.Unload()
	assert.Equal(t, 0, tab.Generation())
	assert.Equal(t, 1, lib.Opens())

	lib.Remove("glViewport")
	cur, err := tab.Load()
	require.NoError(t, err)
	assert.NotSame(t, old, cur)
	assert.Equal(t, 2, tab.Generation())
	assert.Equal(t, 2, lib.Opens())
	assert.Nil(t, cur.Viewport)
	assert.Equal(t, []string{"glViewport"}, tab.Missing())

	_, err = tab.Reset()
	require.NoError(t, err)
	assert.Equal(t, 3, tab.Generation())
}

func TestConcurrentLoad(t *testing.T) {
	lib, _ := newLib()
	tab := newTable(lib.Opener())

	const n = 16
	results := make([]*fns, n)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			f, err := tab.Load()
			assert.NoError(t, err)
			results[i] = f
		}()
	}
	close(start)
	wg.Wait()

	for _, f := range results {
		assert.Same(t, results[0], f)
	}
	assert.Equal(t, 1, lib.Opens())
	assert.Equal(t, len(fnNames), lib.Lookups())
}

func TestNewTableMismatch(t *testing.T) {
	assert.Panics(t, func() {
		bind.NewTable[fnID]("short", fnNames[:2], (*fns).fields, bindtest.Missing("x"))
	})
}

func TestFill(t *testing.T) {
	lib, _ := newLib()
	lib.Remove("glGetError")
	var f fns
	slots, missing := bind.Fill(fnNames, f.fields(), lib, bindtest.Register)
	assert.Equal(t, []string{"glGetError"}, missing)
	assert.Zero(t, slots[idGetError])
	assert.Equal(t, lib.Addr("glViewport"), slots[idViewport])
	assert.Nil(t, f.GetError)
	assert.NotNil(t, f.Viewport)
}

func TestProcAddress(t *testing.T) {
	src := bind.ProcAddress(func(name string) uintptr {
		if name == "eglFoo" {
			return 0x42
		}
		return 0
	})
	addr, err := src.Lookup("eglFoo")
	require.NoError(t, err)
	assert.Equal(t, uintptr(0x42), addr)
	_, err = src.Lookup("eglBar")
	assert.ErrorIs(t, err, bind.ErrSymbolNotFound)
}

func TestSymbolErrorMessage(t *testing.T) {
	err := &bind.SymbolError{Tier: "EGL", Names: []string{"eglA", "eglB"}}
	assert.Equal(t, "EGL: symbol not found: eglA, eglB", err.Error())
}
