//go:build windows

package native

import (
	"golang.org/x/sys/windows"
)

// openLibrary loads the shared library at path and returns its handle
func openLibrary(path string) (uintptr, error) {
	handle, err := windows.LoadLibrary(path)
	return uintptr(handle), err
}

// loadSymbol resolves an exported entry point by name
func loadSymbol(lib uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(lib), name)
}
