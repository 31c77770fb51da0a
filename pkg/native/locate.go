package native

import (
	"os"
	"path/filepath"
	"runtime"
)

// EnvLibraryPath is the environment variable holding an explicit override
// path for the native shared library. When set it is tried before every
// other candidate.
const EnvLibraryPath = "TINKERGRAPH_NATIVE_LIB"

const libraryBaseName = "libtinkergraphs"

// libraryFileName derives the shared library file name for the running
// platform. Anything other than linux, darwin or windows is a hard failure.
func libraryFileName() (string, error) {
	switch runtime.GOOS {
	case "linux":
		return libraryBaseName + ".so", nil
	case "darwin":
		return libraryBaseName + ".dylib", nil
	case "windows":
		return libraryBaseName + ".dll", nil
	default:
		return "", &ErrUnsupportedPlatform{Platform: runtime.GOOS}
	}
}

// candidatePaths returns the ordered list of locations searched for the
// native library: the environment override first, then build output paths,
// then the working directory, then platform-conventional install paths.
func candidatePaths(fileName string) []string {
	var candidates []string
	if override := os.Getenv(EnvLibraryPath); override != "" {
		candidates = append(candidates, override)
	}
	candidates = append(candidates,
		filepath.Join("build", "bin", "native", "releaseShared", fileName),
		filepath.Join("build", "bin", "native", "debugShared", fileName),
		fileName,
	)
	switch runtime.GOOS {
	case "windows":
		candidates = append(candidates,
			filepath.Join("C:\\", "Program Files", "TinkerGraphs", fileName),
		)
	case "darwin":
		candidates = append(candidates,
			filepath.Join("/usr/local/lib", fileName),
			filepath.Join("/opt/homebrew/lib", fileName),
		)
	default:
		candidates = append(candidates,
			filepath.Join("/usr/local/lib", fileName),
			filepath.Join("/usr/lib", fileName),
		)
	}
	return candidates
}

// Locate searches the candidate paths for the native shared library and
// returns the first one that exists
func Locate() (string, error) {
	fileName, err := libraryFileName()
	if err != nil {
		return "", err
	}
	candidates := candidatePaths(fileName)
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			abs, err := filepath.Abs(candidate)
			if err != nil {
				return candidate, nil
			}
			return abs, nil
		}
	}
	return "", &ErrLibraryNotFound{Name: fileName, Tried: candidates}
}
