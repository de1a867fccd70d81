// FILE: lixenwraith/ini/discovery.go
package ini

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// DiscoveryOptions configures where FindFile looks for a configuration file.
type DiscoveryOptions struct {
	// Base name of config file (without extension)
	Name string

	// Extensions to try (in order)
	Extensions []string

	// Custom search paths, tried before the defaults
	Paths []string

	// Environment variable holding an explicit path
	EnvVar string

	// Whether to search in the current directory
	UseCurrentDir bool

	// Whether to search in XDG config directories
	UseXDG bool
}

// DefaultDiscoveryOptions returns the usual search setup for an application.
func DefaultDiscoveryOptions(appName string) DiscoveryOptions {
	return DiscoveryOptions{
		Name:          appName,
		Extensions:    []string{".ini", ".conf", ".cfg"},
		EnvVar:        strings.ToUpper(appName) + "_CONFIG",
		UseCurrentDir: true,
		UseXDG:        true,
	}
}

// FindFile returns the first existing configuration file described by opts.
// An explicit path from opts.EnvVar wins even when the file does not exist,
// so the later load reports it. ErrConfigNotFound is returned when nothing
// matches.
func FindFile(opts DiscoveryOptions) (string, error) {
	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			return path, nil
		}
	}

	var searchPaths []string
	searchPaths = append(searchPaths, opts.Paths...)

	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			searchPaths = append(searchPaths, cwd)
		}
	}

	if opts.UseXDG {
		searchPaths = append(searchPaths, xdgConfigPaths(opts.Name)...)
	}

	for _, dir := range searchPaths {
		for _, ext := range opts.Extensions {
			path := filepath.Join(dir, opts.Name+ext)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}
	}

	return "", ErrConfigNotFound
}

// xdgConfigPaths returns XDG-compliant config search paths. The XDG
// environment is re-read on every call so later changes are honored.
func xdgConfigPaths(appName string) []string {
	xdg.Reload()

	paths := []string{filepath.Join(xdg.ConfigHome, appName)}
	for _, dir := range xdg.ConfigDirs {
		paths = append(paths, filepath.Join(dir, appName))
	}
	return append(paths, filepath.Join("/etc", appName))
}
