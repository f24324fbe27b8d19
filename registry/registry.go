// Package registry resolves logical icon names to loadable files.
// An unresolved name is reported as an empty path, not an error; callers
// treat it as "no icon available" and fall back to their general path
package registry

import (
	"os"
	"path/filepath"
	"sync"
)

// probeExtensions are tried, in order, when a name has no match as given
var probeExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp"}

// Registry maps icon names to files found on its search paths.
// Resolution results are memoized, including misses
type Registry struct {
	mu          sync.RWMutex
	searchPaths []string
	resolved    map[string]string
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		resolved: make(map[string]string),
	}
}

// AddSearchPath appends a directory to the search list and drops memoized
// results, since previously unresolved names may now resolve
func (r *Registry) AddSearchPath(dir string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.searchPaths = append(r.searchPaths, dir)
	r.resolved = make(map[string]string)
}

// SearchPaths returns a copy of the current search list
func (r *Registry) SearchPaths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.searchPaths))
	copy(out, r.searchPaths)
	return out
}

// FindIconFile resolves a logical icon name to a file path.
// Returns "" when the name cannot be resolved
func (r *Registry) FindIconFile(name string) string {
	if name == "" {
		return ""
	}

	r.mu.RLock()
	if path, ok := r.resolved[name]; ok {
		r.mu.RUnlock()
		return path
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if path, ok := r.resolved[name]; ok {
		return path
	}

	path := r.locate(name)
	r.resolved[name] = path
	return path
}

// locate probes the filesystem for the name. Caller holds the write lock
func (r *Registry) locate(name string) string {
	// Absolute or relative path used as-is if it exists
	if fileExists(name) {
		return name
	}

	for _, dir := range r.searchPaths {
		candidate := filepath.Join(dir, name)
		if fileExists(candidate) {
			return candidate
		}
		if filepath.Ext(name) == "" {
			for _, ext := range probeExtensions {
				withExt := candidate + ext
				if fileExists(withExt) {
					return withExt
				}
			}
		}
	}
	return ""
}

// ResetCache drops memoized resolutions, for use after files change on disk
func (r *Registry) ResetCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolved = make(map[string]string)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
