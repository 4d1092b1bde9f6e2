package classfile

import (
	"encoding/binary"
	"errors"
	"strconv"
	"strings"
)

var errTruncated = errors.New("truncated attribute")

type AttributeInfo struct {
	Name string
	Info []byte
}

func findAttribute(attrs []AttributeInfo, name string) *AttributeInfo {
	for i := range attrs {
		if attrs[i].Name == name {
			return &attrs[i]
		}
	}
	return nil
}

// cursor reads big-endian values from attribute bytes. After the first
// out-of-range read every read returns zero and err is set.
type cursor struct {
	b   []byte
	off int
	err error
}

func (c *cursor) u1() uint8 {
	if c.err != nil || c.off+1 > len(c.b) {
		c.err = errTruncated
		return 0
	}
	v := c.b[c.off]
	c.off++
	return v
}

func (c *cursor) u2() uint16 {
	if c.err != nil || c.off+2 > len(c.b) {
		c.err = errTruncated
		return 0
	}
	v := binary.BigEndian.Uint16(c.b[c.off:])
	c.off += 2
	return v
}

func signatureOf(attrs []AttributeInfo, cp ConstantPool) string {
	attr := findAttribute(attrs, AttrSignature)
	if attr == nil {
		return ""
	}
	c := &cursor{b: attr.Info}
	return cp.GetUtf8(c.u2())
}

func (a *AttributeInfo) exceptions(cp ConstantPool) []string {
	c := &cursor{b: a.Info}
	n := int(c.u2())
	var names []string
	for range n {
		name := cp.GetClassName(c.u2())
		if c.err != nil {
			break
		}
		names = append(names, name)
	}
	return names
}

type InnerClass struct {
	Name        string
	Outer       string
	SimpleName  string
	AccessFlags AccessFlags
}

// IsMember reports whether the entry is a named member of an enclosing
// class, as opposed to a local or anonymous class.
func (ic InnerClass) IsMember() bool {
	return ic.Outer != "" && ic.SimpleName != ""
}

func (a *AttributeInfo) innerClasses(cp ConstantPool) []InnerClass {
	c := &cursor{b: a.Info}
	n := int(c.u2())
	var out []InnerClass
	for range n {
		ic := InnerClass{
			Name:        cp.GetClassName(c.u2()),
			Outer:       cp.GetClassName(c.u2()),
			SimpleName:  cp.GetUtf8(c.u2()),
			AccessFlags: AccessFlags(c.u2()),
		}
		if c.err != nil {
			break
		}
		out = append(out, ic)
	}
	return out
}

// Annotation is a decoded annotation with its element values rendered as
// Java source text.
type Annotation struct {
	// Type is the binary name of the annotation type, e.g.
	// "java.lang.FunctionalInterface".
	Type     string
	Elements []ElementValuePair
	Visible  bool
}

type ElementValuePair struct {
	Name  string
	Value string
}

func (a Annotation) String() string {
	var sb strings.Builder
	sb.WriteString("@")
	sb.WriteString(a.Type)
	sb.WriteString("(")
	for i, e := range a.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.Name)
		sb.WriteString("=")
		sb.WriteString(e.Value)
	}
	sb.WriteString(")")
	return sb.String()
}

func annotationsOf(attrs []AttributeInfo, cp ConstantPool) []Annotation {
	var out []Annotation
	for _, name := range []string{AttrRuntimeVisibleAnnotations, AttrRuntimeInvisibleAnnotations} {
		attr := findAttribute(attrs, name)
		if attr == nil {
			continue
		}
		c := &cursor{b: attr.Info}
		n := int(c.u2())
		for range n {
			ann := readAnnotation(c, cp)
			if c.err != nil {
				break
			}
			ann.Visible = name == AttrRuntimeVisibleAnnotations
			out = append(out, ann)
		}
	}
	return out
}

func readAnnotation(c *cursor, cp ConstantPool) Annotation {
	ann := Annotation{Type: DescriptorToTypeName(cp.GetUtf8(c.u2()))}
	n := int(c.u2())
	for range n {
		name := cp.GetUtf8(c.u2())
		value := readElementValue(c, cp)
		if c.err != nil {
			break
		}
		ann.Elements = append(ann.Elements, ElementValuePair{Name: name, Value: value})
	}
	return ann
}

func readElementValue(c *cursor, cp ConstantPool) string {
	tag := c.u1()
	switch tag {
	case 'B', 'S', 'I', 'J', 'F', 'D', 's':
		return cp.Literal(c.u2())
	case 'Z':
		if v, ok := cp.entry(c.u2()).(*ConstantIntegerInfo); ok && v.Value != 0 {
			return "true"
		}
		return "false"
	case 'C':
		if v, ok := cp.entry(c.u2()).(*ConstantIntegerInfo); ok {
			return strconv.QuoteRune(rune(v.Value))
		}
		return ""
	case 'e':
		typeName := DescriptorToTypeName(cp.GetUtf8(c.u2()))
		return typeName + "." + cp.GetUtf8(c.u2())
	case 'c':
		return DescriptorToTypeName(cp.GetUtf8(c.u2())) + ".class"
	case '@':
		return readAnnotation(c, cp).String()
	case '[':
		n := int(c.u2())
		values := make([]string, 0, n)
		for range n {
			values = append(values, readElementValue(c, cp))
			if c.err != nil {
				break
			}
		}
		return "{" + strings.Join(values, ", ") + "}"
	}
	c.err = errTruncated
	return ""
}
