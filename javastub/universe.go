// Package javastub describes Java APIs written as stub declarations, that
// is, Java-like interface and class declarations without bodies:
//
//	package java.util.function;
//
//	@FunctionalInterface
//	public interface BiFunction<T, U, R> {
//	    R apply(T t, U u);
//	}
//
// A Universe holds the declarations of any number of stub files and hands
// out typesig handles for them, so that the signature renderings can be
// produced without compiled classes.
package javastub

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/typefind/pkgpattern"
	"github.com/dhamidi/typefind/typesig"
)

var log = commonlog.GetLogger("typefind.javastub")

var ErrClassNotFound = errors.New("class not found")

// Universe is a set of parsed stub files. All files should be parsed before
// handles are used: simple names are resolved against the declarations
// known at the time of use.
type Universe struct {
	mu       sync.Mutex
	classes  map[string]*Class
	declared []*Class
}

func New() *Universe {
	return &Universe{classes: map[string]*Class{}}
}

// Extension marks stub files inside directories given to Load.
const Extension = ".jstub"

// Load parses the stub files at paths into a new universe. Directories are
// searched recursively for files ending in Extension.
func Load(paths ...string) (*Universe, error) {
	u := New()
	for _, path := range paths {
		files, err := stubFiles(path)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			if err := u.ParseFile(file); err != nil {
				return nil, err
			}
		}
	}
	return u, nil
}

func stubFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stub file: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(p) == Extension {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}

func (u *Universe) ParseFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open stub file: %w", err)
	}
	defer f.Close()
	return u.Parse(path, f)
}

func (u *Universe) ParseString(filename, src string) error {
	return u.Parse(filename, strings.NewReader(src))
}

// Parse adds the declarations read from r. A class declared twice is an
// error.
func (u *Universe) Parse(filename string, r io.Reader) error {
	ast, err := parser.Parse(filename, r)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	file := newFileScope(u, ast)

	u.mu.Lock()
	defer u.mu.Unlock()
	for _, decl := range ast.Decls {
		name := ast.Package + "." + decl.Name
		if c, ok := u.classes[name]; ok && c.decl != nil {
			return fmt.Errorf("%s: duplicate declaration of %s", decl.Pos, name)
		}
		c := &Class{u: u, name: name, pkg: ast.Package, decl: decl, file: file}
		for _, m := range decl.Members {
			c.methods = append(c.methods, &Method{class: c, decl: m})
		}
		u.classes[name] = c
		u.declared = append(u.declared, c)
	}
	return nil
}

// class returns the handle for a binary name, creating an unresolved one
// for names that are not declared.
func (u *Universe) class(name string) *Class {
	u.mu.Lock()
	defer u.mu.Unlock()
	if c, ok := u.classes[name]; ok {
		return c
	}
	c := &Class{
		u:         u,
		name:      name,
		primitive: isPrimitive(name),
		array:     strings.HasSuffix(name, "[]"),
	}
	if !c.primitive && !c.array {
		c.pkg = packageOf(name)
	}
	u.classes[name] = c
	return c
}

func (u *Universe) isDeclared(name string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	c, ok := u.classes[name]
	return ok && c.decl != nil
}

// Lookup returns a declared class or a primitive type.
func (u *Universe) Lookup(name string) (typesig.Class, error) {
	if isPrimitive(name) || u.isDeclared(name) {
		return u.class(name), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrClassNotFound, name)
}

// Classes enumerates the public declared classes in declaration order. A
// nil pattern allows every package.
func (u *Universe) Classes(allow *pkgpattern.Pattern) iter.Seq2[typesig.Class, error] {
	return func(yield func(typesig.Class, error) bool) {
		u.mu.Lock()
		declared := append([]*Class(nil), u.declared...)
		u.mu.Unlock()

		for _, c := range declared {
			if !c.IsPublic() {
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

func (u *Universe) Close() error { return nil }

func isPrimitive(name string) bool {
	switch name {
	case "void", "boolean", "byte", "char", "short", "int", "long", "float", "double":
		return true
	}
	return false
}

func packageOf(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return ""
}
