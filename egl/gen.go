// SPDX-License-Identifier: Unlicense OR MIT

// Package egl binds EGL at run time.
//
// Nothing is linked against libEGL: the library is opened on first use and
// every entry point is looked up by name, so programs start on systems
// without EGL and can check for it with Loader.Core.
package egl

//go:generate go run ../cmd/glgen --registry $KHRONOS_REGISTRY/egl.xml --api egl --version 1.0-1.5 --type Functions --id CoreID --prefix egl --out functions.go
//go:generate go run ../cmd/glgen --registry $KHRONOS_REGISTRY/egl.xml --api egl --extensions --filter ext_commands.txt --type ExtFunctions --id ExtID --prefix egl --out ext_functions.go
