//go:build linux || darwin

package native

import (
	"github.com/ebitengine/purego"
)

// openLibrary loads the shared library at path and returns its handle
func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

// loadSymbol resolves an exported entry point by name
func loadSymbol(lib uintptr, name string) (uintptr, error) {
	return purego.Dlsym(lib, name)
}
