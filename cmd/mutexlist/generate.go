package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
	"golang.org/x/tools/imports"
	"gopkg.in/yaml.v3"
)

// errNoPackage is returned when no package clause can be derived.
var errNoPackage = errors.New("cannot determine package name; use --package")

// listFile is the YAML document read by mutexlist.
type listFile struct {
	Package string      `yaml:"package"`
	Mutexes []listEntry `yaml:"mutexes"`
}

// listEntry is one mutex in the list. It may be written as a bare name or
// as a mapping with name and doc keys.
type listEntry struct {
	Name string `yaml:"name"`
	Doc  string `yaml:"doc"`

	line int
}

// UnmarshalYAML accepts both entry forms and records the source line.
func (e *listEntry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		e.Name = value.Value
		e.line = value.Line
		return nil
	}
	type plain listEntry
	if err := value.Decode((*plain)(e)); err != nil {
		return err
	}
	e.line = value.Line
	return nil
}

// declaration is one generated variable.
type declaration struct {
	Ident string
	Name  string
	Doc   string
}

// loadList reads and decodes a list file.
func loadList(path string) (*listFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mutex list: %w", err)
	}

	var list listFile
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &list, nil
}

// declarations validates the list and converts it to Go declarations.
//
// Every entry needs a non-empty name, distinct from all others, that maps
// to a valid Go identifier distinct from all others. The identifier must
// not hide the mutex import or a predeclared name.
func (l *listFile) declarations(file string, exported bool) ([]declaration, error) {
	if len(l.Mutexes) == 0 {
		return nil, &ListError{File: file, Message: "list declares no mutexes"}
	}

	decls := make([]declaration, 0, len(l.Mutexes))
	names := make(map[string]int, len(l.Mutexes))
	idents := make(map[string]string, len(l.Mutexes))

	for _, e := range l.Mutexes {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, &ListError{File: file, Line: e.line, Message: "mutex has no name"}
		}
		if prev, ok := names[name]; ok {
			return nil, &ListError{
				File:       file,
				Line:       e.line,
				Name:       name,
				Message:    fmt.Sprintf("declared twice (first on line %d)", prev),
				Suggestion: "Remove one of the entries; every name maps to a single handle",
			}
		}
		names[name] = e.line

		ident, ok := identifier(name, exported)
		if !ok {
			return nil, &ListError{
				File:       file,
				Line:       e.line,
				Name:       name,
				Message:    fmt.Sprintf("%q is not a valid Go identifier", ident),
				Suggestion: "Use letters, digits and underscores, starting with a letter",
			}
		}
		if reason := reservedIdent(ident); reason != "" {
			return nil, &ListError{
				File:       file,
				Line:       e.line,
				Name:       name,
				Message:    fmt.Sprintf("identifier %s %s", ident, reason),
				Suggestion: "Rename the mutex, or drop --unexported",
			}
		}
		if other, ok := idents[ident]; ok {
			return nil, &ListError{
				File:    file,
				Line:    e.line,
				Name:    name,
				Message: fmt.Sprintf("identifier %s is also generated for %q", ident, other),
			}
		}
		idents[ident] = name

		decls = append(decls, declaration{
			Ident: ident,
			Name:  name,
			Doc:   strings.TrimSpace(e.Doc),
		})
	}
	return decls, nil
}

// identifier converts a snake_case mutex name to a Go identifier.
//
// Examples:
//
//	identifier("scaled_font_map", true)  = "ScaledFontMap", true
//	identifier("counter_lock", false)    = "counterLock", true
//	identifier("2d_cache", true)         = "2dCache", false
func identifier(name string, exported bool) (string, bool) {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
	})

	var b strings.Builder
	for i, p := range parts {
		r, size := utf8.DecodeRuneInString(p)
		if i == 0 && !exported {
			r = unicode.ToLower(r)
		} else {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
		b.WriteString(p[size:])
	}

	ident := b.String()
	return ident, token.IsIdentifier(ident)
}

// reservedIdent reports why ident cannot name a package-level variable of
// the generated file, or "" if it can.
func reservedIdent(ident string) string {
	switch {
	case ident == mutexPackageName:
		return "clashes with the imported mutex package"
	case ident == "init":
		return "can only name a function"
	case types.Universe.Lookup(ident) != nil:
		return "shadows a predeclared identifier"
	}
	return ""
}

// sortDeclarations orders decls by mutex name.
func sortDeclarations(decls []declaration) {
	byName := make(map[string]declaration, len(decls))
	names := make([]string, 0, len(decls))
	for _, d := range decls {
		byName[d.Name] = d
		names = append(names, d.Name)
	}
	slices.Sort(names)
	for i, name := range names {
		decls[i] = byName[name]
	}
}

// packageName picks the package clause for a file written to dir.
//
// Order: explicit flag, list file, package of existing Go files in dir,
// last element of dir's import path, base name of dir.
func packageName(flag, fromList, dir string, mod *moduleInfo) (string, error) {
	candidates := []func() string{
		func() string { return flag },
		func() string { return fromList },
		func() string { return existingPackage(dir) },
		func() string {
			if mod == nil {
				return ""
			}
			p, err := mod.packagePath(dir)
			if err != nil {
				return ""
			}
			return lastElem(p)
		},
		func() string {
			abs, err := filepath.Abs(dir)
			if err != nil {
				return ""
			}
			return sanitizePackage(filepath.Base(abs))
		},
	}

	for _, candidate := range candidates {
		if name := candidate(); name != "" {
			if !token.IsIdentifier(name) {
				return "", fmt.Errorf("invalid package name %q", name)
			}
			return name, nil
		}
	}
	return "", errNoPackage
}

// existingPackage returns the package clause of the first non-test Go
// file in dir, or "" if there is none.
func existingPackage(dir string) string {
	matches, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return ""
	}
	slices.Sort(matches)

	fset := token.NewFileSet()
	for _, path := range matches {
		if strings.HasSuffix(path, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, path, nil, parser.PackageClauseOnly)
		if err != nil {
			continue
		}
		return f.Name.Name
	}
	return ""
}

// sanitizePackage maps a directory or path element to a package name.
func sanitizePackage(elem string) string {
	elem = strings.TrimPrefix(elem, "go-")
	elem = strings.TrimSuffix(elem, "-go")
	elem = strings.Map(func(r rune) rune {
		if r == '-' || r == '.' {
			return '_'
		}
		return unicode.ToLower(r)
	}, elem)
	if !token.IsIdentifier(elem) {
		return ""
	}
	return elem
}

// render produces the formatted generated file.
func render(filename, source, pkg string, decls []declaration) ([]byte, error) {
	var b bytes.Buffer

	fmt.Fprintf(&b, "// Code generated by mutexlist from %s. DO NOT EDIT.\n\n", filepath.ToSlash(filepath.Base(source)))
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "import %s\n\n", strconv.Quote(mutexPackagePath))
	b.WriteString("var (\n")
	for i, d := range decls {
		if d.Doc != "" {
			if i > 0 {
				b.WriteString("\n")
			}
			for j, line := range strings.Split(d.Doc, "\n") {
				if j == 0 {
					line = d.Ident + " " + line
				}
				fmt.Fprintf(&b, "\t// %s\n", strings.TrimSpace(line))
			}
		}
		fmt.Fprintf(&b, "\t%s = %s.Declare(%s)\n", d.Ident, mutexPackageName, strconv.Quote(d.Name))
	}
	b.WriteString(")\n")

	out, err := imports.Process(filename, b.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return out, nil
}

// generate runs one mutexlist invocation.
func generate(cmd *cobra.Command, opts options) error {
	list, err := loadList(opts.input)
	if err != nil {
		return err
	}

	decls, err := list.declarations(opts.input, !opts.unexported)
	if err != nil {
		return err
	}
	if opts.sorted {
		sortDeclarations(decls)
	}

	toStdout := opts.output == "-"
	outDir := filepath.Dir(opts.output)
	filename := opts.output
	if toStdout {
		outDir = "."
		filename = "mutex_list.go"
	}

	mod, err := findModule(outDir)
	if err != nil {
		return err
	}
	if mod != nil && !mod.requiresMutex() {
		cmd.PrintErrf("mutexlist: warning: %s does not require %s\n", mod.GoMod, mutexModulePath)
		cmd.PrintErrf("mutexlist: add it with: go get %s\n", mutexModulePath)
	}

	pkg, err := packageName(opts.pkg, list.Package, outDir, mod)
	if err != nil {
		return err
	}

	src, err := render(filename, opts.input, pkg, decls)
	if err != nil {
		return err
	}

	if toStdout {
		_, err := cmd.OutOrStdout().Write(src)
		return err
	}
	if err := os.WriteFile(opts.output, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.output, err)
	}
	return nil
}
