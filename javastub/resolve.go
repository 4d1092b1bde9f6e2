package javastub

import (
	"strings"
	"unicode"
)

// javaLang lists the java.lang types a stub may mention by simple name
// without declaring them.
var javaLang = map[string]bool{
	"AutoCloseable": true, "Boolean": true, "Byte": true, "CharSequence": true,
	"Character": true, "Class": true, "ClassLoader": true, "Cloneable": true,
	"Comparable": true, "Deprecated": true, "Double": true, "Enum": true,
	"Error": true, "Exception": true, "Float": true, "FunctionalInterface": true,
	"Integer": true, "Iterable": true, "Long": true, "Math": true, "Number": true,
	"Object": true, "Override": true, "Process": true, "Record": true,
	"Runnable": true, "RuntimeException": true, "SafeVarargs": true, "Short": true,
	"String": true, "StringBuilder": true, "SuppressWarnings": true, "System": true,
	"Thread": true, "Throwable": true, "Void": true,
}

type fileScope struct {
	u        *Universe
	pkg      string
	single   map[string]string
	onDemand []string
}

func newFileScope(u *Universe, f *File) *fileScope {
	fs := &fileScope{u: u, pkg: f.Package, single: map[string]string{}}
	for _, imp := range f.Imports {
		if pkg, ok := strings.CutSuffix(imp.Name, ".*"); ok {
			fs.onDemand = append(fs.onDemand, pkg)
			continue
		}
		fs.single[imp.Name[strings.LastIndexByte(imp.Name, '.')+1:]] = imp.Name
	}
	return fs
}

// resolve turns a class name as written into a binary name. Qualified names
// are taken as written up to the first segment that starts with an upper
// case letter; the segments after it name nested classes.
func (fs *fileScope) resolve(written string) string {
	segments := strings.Split(written, ".")
	i := 0
	for i < len(segments)-1 && !isTypeSegment(segments[i]) {
		i++
	}
	var outer string
	if i == 0 {
		outer = fs.resolveSimple(segments[0])
	} else {
		outer = strings.Join(segments[:i+1], ".")
	}
	if i+1 == len(segments) {
		return outer
	}
	return outer + "$" + strings.Join(segments[i+1:], "$")
}

func isTypeSegment(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// resolveSimple looks a simple name up in the single-type imports, the
// file's package, the on-demand imports and java.lang, in that order. A name
// found nowhere is taken to be in the file's package.
func (fs *fileScope) resolveSimple(name string) string {
	if isPrimitive(name) {
		return name
	}
	if q, ok := fs.single[name]; ok {
		return q
	}
	if q := qualify(fs.pkg, name); fs.u.isDeclared(q) {
		return q
	}
	for _, pkg := range fs.onDemand {
		if q := qualify(pkg, name); fs.u.isDeclared(q) {
			return q
		}
	}
	if q := "java.lang." + name; javaLang[name] || fs.u.isDeclared(q) {
		return q
	}
	q := qualify(fs.pkg, name)
	log.Debugf("resolving undeclared %s to %s", name, q)
	return q
}

func qualify(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}
