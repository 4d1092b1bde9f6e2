// Package java provides typesig handles for compiled classes found on a
// class path of directories and jar files.
package java

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/typefind/pkgpattern"
	"github.com/dhamidi/typefind/typesig"
)

var log = commonlog.GetLogger("typefind.java")

var ErrClassNotFound = errors.New("class not found")

// entry is one element of a class path.
type entry interface {
	// read returns the bytes of the class with the given internal name, or
	// fs.ErrNotExist.
	read(internal string) ([]byte, error)
	// list returns the internal names of all classes in lexical order.
	list() ([]string, error)
	io.Closer
}

// ClassPath resolves class names to handles. Handles are created once per
// name and loaded on first use, so they can be shared between goroutines.
type ClassPath struct {
	entries []entry

	mu      sync.Mutex
	classes map[string]*Class
}

// NewClassPath opens directories and .jar or .zip archives in order.
// Earlier entries shadow later ones.
func NewClassPath(paths ...string) (*ClassPath, error) {
	cp := &ClassPath{classes: map[string]*Class{}}
	for _, path := range paths {
		e, err := openEntry(path)
		if err != nil {
			cp.Close()
			return nil, err
		}
		cp.entries = append(cp.entries, e)
	}
	return cp, nil
}

// SplitList splits a class path string such as "lib/a.jar:classes" into its
// elements, dropping empty ones.
func SplitList(s string) []string {
	var out []string
	for _, p := range filepath.SplitList(s) {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func openEntry(path string) (entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("class path entry: %w", err)
	}
	if info.IsDir() {
		return dirEntry(path), nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jar", ".zip":
		return openJar(path)
	}
	return nil, fmt.Errorf("class path entry %s: not a directory or archive", path)
}

func (cp *ClassPath) Close() error {
	var errs []error
	for _, e := range cp.entries {
		errs = append(errs, e.Close())
	}
	return errors.Join(errs...)
}

// Load returns the loaded class with the given binary name, e.g.
// "java.util.Map$Entry".
func (cp *ClassPath) Load(name string) (*Class, error) {
	c := cp.class(name)
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

// Lookup is Load returning the typesig handle.
func (cp *ClassPath) Lookup(name string) (typesig.Class, error) {
	return cp.Load(name)
}

// class returns the handle for a binary name without loading it.
func (cp *ClassPath) class(name string) *Class {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	if c, ok := cp.classes[name]; ok {
		return c
	}
	c := newClass(cp, name)
	cp.classes[name] = c
	return c
}

func (cp *ClassPath) readClass(name string) ([]byte, error) {
	internal := classfileName(name)
	for _, e := range cp.entries {
		data, err := e.read(internal)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return data, err
	}
	return nil, fmt.Errorf("%w: %s", ErrClassNotFound, name)
}

// Classes enumerates the public classes on the class path whose package is
// allowed. A nil pattern allows every package. The package of a class is
// checked before its class file is read; classes that fail to load are
// yielded as errors.
func (cp *ClassPath) Classes(allow *pkgpattern.Pattern) iter.Seq2[typesig.Class, error] {
	return func(yield func(typesig.Class, error) bool) {
		seen := map[string]bool{}
		for _, e := range cp.entries {
			names, err := e.list()
			if err != nil {
				if !yield(nil, err) {
					return
				}
				continue
			}
			for _, internal := range names {
				name := sourceName(internal)
				if seen[name] || !isClassName(name) {
					continue
				}
				seen[name] = true
				if allow != nil && !allow.IsAllowedNamespace(packageOf(name)) {
					continue
				}

				c, err := cp.Load(name)
				if err != nil {
					if !yield(nil, err) {
						return
					}
					continue
				}
				if c.isSynthetic() || c.IsAnnotation() || !c.IsPublic() {
					continue
				}
				if allow != nil && !allow.AllowsClass(c) {
					continue
				}
				if !yield(c, nil) {
					return
				}
			}
		}
	}
}

// isClassName rejects module and package descriptors and anonymous or local
// classes, whose binary names have a digit after a '$'.
func isClassName(name string) bool {
	simple := name[strings.LastIndexByte(name, '.')+1:]
	if simple == "module-info" || simple == "package-info" {
		return false
	}
	for i := 0; i+1 < len(simple); i++ {
		if simple[i] == '$' && simple[i+1] >= '0' && simple[i+1] <= '9' {
			return false
		}
	}
	return true
}

func classfileName(name string) string {
	return strings.ReplaceAll(name, ".", "/") + ".class"
}

func sourceName(internal string) string {
	return strings.ReplaceAll(strings.TrimSuffix(internal, ".class"), "/", ".")
}

type dirEntry string

func (d dirEntry) read(internal string) ([]byte, error) {
	return os.ReadFile(filepath.Join(string(d), filepath.FromSlash(internal)))
}

func (d dirEntry) list() ([]string, error) {
	var names []string
	err := filepath.WalkDir(string(d), func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() || !strings.HasSuffix(path, ".class") {
			return nil
		}
		rel, err := filepath.Rel(string(d), path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	return names, err
}

func (d dirEntry) Close() error { return nil }

type jarEntry struct {
	zr    *zip.ReadCloser
	files map[string]*zip.File
}

func openJar(path string) (*jarEntry, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	j := &jarEntry{zr: zr, files: map[string]*zip.File{}}
	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, ".class") && !strings.HasPrefix(f.Name, "META-INF/") {
			j.files[f.Name] = f
		}
	}
	return j, nil
}

func (j *jarEntry) read(internal string) ([]byte, error) {
	f, ok := j.files[internal]
	if !ok {
		return nil, fs.ErrNotExist
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (j *jarEntry) list() ([]string, error) {
	names := make([]string, 0, len(j.files))
	for name := range j.files {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

func (j *jarEntry) Close() error { return j.zr.Close() }
