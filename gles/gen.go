// SPDX-License-Identifier: Unlicense OR MIT

// Package gles binds OpenGL ES 2.0 through 3.2 at run time.
//
// Each version tier is a struct of functions loaded from the same library
// handle. A tier loads even when some of its entry points are missing; use
// the tier's table to check with Has or Require before calling a function
// that may be nil.
package gles

//go:generate go run ../cmd/glgen --registry $KHRONOS_REGISTRY/gl.xml --api gles2 --version 2.0 --type Functions20 --id ES20ID --prefix gl --out functions20.go
//go:generate go run ../cmd/glgen --registry $KHRONOS_REGISTRY/gl.xml --api gles2 --version 3.0 --exclude-prior --type Functions30 --id ES30ID --prefix gl --out functions30.go
//go:generate go run ../cmd/glgen --registry $KHRONOS_REGISTRY/gl.xml --api gles2 --version 3.1 --exclude-prior --type Functions31 --id ES31ID --prefix gl --out functions31.go
//go:generate go run ../cmd/glgen --registry $KHRONOS_REGISTRY/gl.xml --api gles2 --version 3.2 --exclude-prior --type Functions32 --id ES32ID --prefix gl --out functions32.go
//go:generate go run ../cmd/glgen --registry $KHRONOS_REGISTRY/gl.xml --api gles2 --extensions --filter ext_commands.txt --type ExtFunctions --id ExtID --prefix gl --out ext_functions.go
