// Package classfiletest builds class files in memory for tests of code that
// reads them.
package classfiletest

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/dhamidi/typefind/classfile"
)

// Class describes a class file to emit. Names are internal names such as
// "java/util/List"; descriptors and signatures are written as they appear in
// class files.
type Class struct {
	name        string
	access      classfile.AccessFlags
	super       string
	interfaces  []string
	signature   string
	deprecated  bool
	annotations []annotation
	methods     []*Method
}

type annotation struct {
	desc     string
	elements []Element
}

// Element is a string-valued annotation element.
type Element struct {
	Name  string
	Value string
}

type Method struct {
	access      classfile.AccessFlags
	name        string
	desc        string
	signature   string
	throws      []string
	deprecated  bool
	annotations []annotation
}

type MethodOption func(*Method)

// New starts a public class extending java/lang/Object.
func New(name string) *Class {
	return &Class{name: name, access: classfile.AccPublic | 0x0020, super: "java/lang/Object"}
}

// Interface starts a public interface.
func Interface(name string) *Class {
	return &Class{name: name, access: classfile.AccPublic | classfile.AccInterface | classfile.AccAbstract, super: "java/lang/Object"}
}

func (c *Class) Access(flags classfile.AccessFlags) *Class { c.access = flags; return c }
func (c *Class) Extends(name string) *Class                { c.super = name; return c }
func (c *Class) Signature(sig string) *Class               { c.signature = sig; return c }
func (c *Class) Deprecated() *Class                        { c.deprecated = true; return c }

func (c *Class) Implements(names ...string) *Class {
	c.interfaces = append(c.interfaces, names...)
	return c
}

// Annotate adds a runtime-visible annotation, e.g.
// Annotate("Ljava/lang/FunctionalInterface;").
func (c *Class) Annotate(desc string, elements ...Element) *Class {
	c.annotations = append(c.annotations, annotation{desc, elements})
	return c
}

func (c *Class) Method(access classfile.AccessFlags, name, desc string, opts ...MethodOption) *Class {
	m := &Method{access: access, name: name, desc: desc}
	for _, opt := range opts {
		opt(m)
	}
	c.methods = append(c.methods, m)
	return c
}

// Abstract adds a public abstract method.
func (c *Class) Abstract(name, desc string, opts ...MethodOption) *Class {
	return c.Method(classfile.AccPublic|classfile.AccAbstract, name, desc, opts...)
}

func WithSignature(sig string) MethodOption {
	return func(m *Method) { m.signature = sig }
}

func Throws(names ...string) MethodOption {
	return func(m *Method) { m.throws = append(m.throws, names...) }
}

func AnnotatedWith(desc string, elements ...Element) MethodOption {
	return func(m *Method) { m.annotations = append(m.annotations, annotation{desc, elements}) }
}

func DeprecatedMethod() MethodOption {
	return func(m *Method) { m.deprecated = true }
}

// Path is the class file's path relative to a class path root.
func (c *Class) Path() string {
	return c.name + ".class"
}

// Bytes encodes the class file.
func (c *Class) Bytes() []byte {
	p := newPool()
	var body bytes.Buffer
	w := func(v any) { binary.Write(&body, binary.BigEndian, v) }

	w(uint16(c.access))
	w(p.class(c.name))
	if c.super == "" {
		w(uint16(0))
	} else {
		w(p.class(c.super))
	}
	w(uint16(len(c.interfaces)))
	for _, iface := range c.interfaces {
		w(p.class(iface))
	}
	w(uint16(0)) // fields
	w(uint16(len(c.methods)))
	for _, m := range c.methods {
		w(uint16(m.access))
		w(p.utf8(m.name))
		w(p.utf8(m.desc))
		attrs := p.commonAttributes(m.signature, m.deprecated, m.annotations)
		if len(m.throws) > 0 {
			var info bytes.Buffer
			binary.Write(&info, binary.BigEndian, uint16(len(m.throws)))
			for _, t := range m.throws {
				binary.Write(&info, binary.BigEndian, p.class(t))
			}
			attrs = append(attrs, p.attribute(classfile.AttrExceptions, info.Bytes()))
		}
		writeAttributes(&body, attrs)
	}
	writeAttributes(&body, p.commonAttributes(c.signature, c.deprecated, c.annotations))

	var out bytes.Buffer
	binary.Write(&out, binary.BigEndian, uint32(classfile.Magic))
	binary.Write(&out, binary.BigEndian, uint16(0))
	binary.Write(&out, binary.BigEndian, uint16(52))
	binary.Write(&out, binary.BigEndian, p.count)
	out.Write(p.buf.Bytes())
	out.Write(body.Bytes())
	return out.Bytes()
}

type encodedAttribute struct {
	name uint16
	info []byte
}

func writeAttributes(buf *bytes.Buffer, attrs []encodedAttribute) {
	binary.Write(buf, binary.BigEndian, uint16(len(attrs)))
	for _, a := range attrs {
		binary.Write(buf, binary.BigEndian, a.name)
		binary.Write(buf, binary.BigEndian, uint32(len(a.info)))
		buf.Write(a.info)
	}
}

type pool struct {
	buf     bytes.Buffer
	count   uint16
	utf8s   map[string]uint16
	classes map[string]uint16
}

func newPool() *pool {
	return &pool{count: 1, utf8s: map[string]uint16{}, classes: map[string]uint16{}}
}

func (p *pool) utf8(s string) uint16 {
	if idx, ok := p.utf8s[s]; ok {
		return idx
	}
	p.buf.WriteByte(byte(classfile.ConstantUtf8))
	binary.Write(&p.buf, binary.BigEndian, uint16(len(s)))
	p.buf.WriteString(s)
	idx := p.count
	p.count++
	p.utf8s[s] = idx
	return idx
}

func (p *pool) class(name string) uint16 {
	if idx, ok := p.classes[name]; ok {
		return idx
	}
	nameIdx := p.utf8(name)
	p.buf.WriteByte(byte(classfile.ConstantClass))
	binary.Write(&p.buf, binary.BigEndian, nameIdx)
	idx := p.count
	p.count++
	p.classes[name] = idx
	return idx
}

func (p *pool) attribute(name string, info []byte) encodedAttribute {
	return encodedAttribute{name: p.utf8(name), info: info}
}

func (p *pool) commonAttributes(signature string, deprecated bool, anns []annotation) []encodedAttribute {
	var attrs []encodedAttribute
	if signature != "" {
		var info bytes.Buffer
		binary.Write(&info, binary.BigEndian, p.utf8(signature))
		attrs = append(attrs, p.attribute(classfile.AttrSignature, info.Bytes()))
	}
	if deprecated {
		attrs = append(attrs, p.attribute(classfile.AttrDeprecated, nil))
	}
	if len(anns) > 0 {
		var info bytes.Buffer
		binary.Write(&info, binary.BigEndian, uint16(len(anns)))
		for _, a := range anns {
			binary.Write(&info, binary.BigEndian, p.utf8(a.desc))
			binary.Write(&info, binary.BigEndian, uint16(len(a.elements)))
			for _, e := range a.elements {
				binary.Write(&info, binary.BigEndian, p.utf8(e.Name))
				info.WriteByte('s')
				binary.Write(&info, binary.BigEndian, p.utf8(e.Value))
			}
		}
		attrs = append(attrs, p.attribute(classfile.AttrRuntimeVisibleAnnotations, info.Bytes()))
	}
	return attrs
}

// WriteDir writes the classes below dir as a class path directory.
func WriteDir(dir string, classes ...*Class) error {
	for _, c := range classes {
		path := filepath.Join(dir, filepath.FromSlash(c.Path()))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, c.Bytes(), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// WriteJar writes the classes into a jar at path.
func WriteJar(path string, classes ...*Class) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, c := range classes {
		w, err := zw.Create(c.Path())
		if err != nil {
			return err
		}
		if _, err := w.Write(c.Bytes()); err != nil {
			return err
		}
	}
	return zw.Close()
}
