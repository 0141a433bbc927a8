package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

const (
	// mutexModulePath is the module generated files depend on.
	mutexModulePath = "github.com/kolkov/mutexcap"

	// mutexPackagePath is the package generated files import.
	mutexPackagePath = mutexModulePath + "/mutex"

	// mutexPackageName is the name generated files refer to it by.
	mutexPackageName = "mutex"
)

// moduleInfo describes the module that will contain the generated file.
type moduleInfo struct {
	// GoMod is the path of the go.mod file.
	GoMod string

	// Dir is the module root directory.
	Dir string

	// Path is the module path.
	Path string

	file *modfile.File
}

// findModule locates and parses the go.mod governing startDir.
//
// Returns:
//   - nil, nil if startDir is not inside a module
//   - error if a go.mod was found but cannot be read or parsed
func findModule(startDir string) (*moduleInfo, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	goMod := findGoMod(dir)
	if goMod == "" {
		return nil, nil
	}

	data, err := os.ReadFile(goMod)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", goMod, err)
	}

	f, err := modfile.Parse(goMod, data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", goMod, err)
	}
	if f.Module == nil {
		return nil, fmt.Errorf("%s has no module directive", goMod)
	}

	return &moduleInfo{
		GoMod: goMod,
		Dir:   filepath.Dir(goMod),
		Path:  f.Module.Mod.Path,
		file:  f,
	}, nil
}

// findGoMod walks up from startDir looking for a go.mod file.
//
// Returns an empty string if the filesystem root is reached first.
func findGoMod(startDir string) string {
	dir := startDir
	for {
		modPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(modPath); err == nil {
			return modPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return ""
}

// requiresMutex reports whether code in the module can import the mutex
// package: either the module is mutexcap itself or it requires it.
func (m *moduleInfo) requiresMutex() bool {
	if m.Path == mutexModulePath {
		return true
	}
	for _, r := range m.file.Require {
		if r.Mod.Path == mutexModulePath {
			return true
		}
	}
	return false
}

// packagePath returns the import path of dir within the module.
func (m *moduleInfo) packagePath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(m.Dir, abs)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside module %s", dir, m.Path)
	}
	if rel == "." {
		return m.Path, nil
	}
	return path.Join(m.Path, filepath.ToSlash(rel)), nil
}

// lastElem returns the package-name candidate for an import path, skipping
// a major version suffix such as /v2.
func lastElem(importPath string) string {
	prefix, _, ok := module.SplitPathVersion(importPath)
	if !ok {
		prefix = importPath
	}
	return sanitizePackage(path.Base(prefix))
}
