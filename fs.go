package bsmap

import (
	"os"
	"sync"
)

// FileSystem is the read/write primitive used at the load and save
// boundaries. Errors are propagated unchanged.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte) error
}

// OSFileSystem reads and writes the local disk.
type OSFileSystem struct{}

func (OSFileSystem) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

func (OSFileSystem) WriteFile(name string, data []byte) error {
	return os.WriteFile(name, data, 0o644)
}

var (
	fsMu      sync.RWMutex
	currentFS FileSystem = OSFileSystem{}
)

// SetFileSystem replaces the global file system; nil restores OSFileSystem.
func SetFileSystem(f FileSystem) {
	if f == nil {
		f = OSFileSystem{}
	}
	fsMu.Lock()
	currentFS = f
	fsMu.Unlock()
}

func getFileSystem() FileSystem {
	fsMu.RLock()
	f := currentFS
	fsMu.RUnlock()
	return f
}
