// Package classfile reads the parts of JVM class files that describe a
// class's API: names, access flags, descriptors, generic signatures, thrown
// exceptions, deprecation and annotations. Method bodies are not decoded.
package classfile

type ClassFile struct {
	MinorVersion uint16
	MajorVersion uint16
	ConstantPool ConstantPool
	AccessFlags  AccessFlags
	ThisClass    uint16
	SuperClass   uint16
	Interfaces   []uint16
	Fields       []MemberInfo
	Methods      []MemberInfo
	Attributes   []AttributeInfo
}

// ClassName is the internal name, e.g. "java/util/Map$Entry".
func (cf *ClassFile) ClassName() string {
	return cf.ConstantPool.GetClassName(cf.ThisClass)
}

func (cf *ClassFile) SuperClassName() string {
	if cf.SuperClass == 0 {
		return ""
	}
	return cf.ConstantPool.GetClassName(cf.SuperClass)
}

func (cf *ClassFile) InterfaceNames() []string {
	names := make([]string, len(cf.Interfaces))
	for i, idx := range cf.Interfaces {
		names[i] = cf.ConstantPool.GetClassName(idx)
	}
	return names
}

func (cf *ClassFile) IsInterface() bool {
	return cf.AccessFlags.IsInterface() && !cf.AccessFlags.IsAnnotation()
}

func (cf *ClassFile) IsAnnotation() bool {
	return cf.AccessFlags.IsAnnotation()
}

func (cf *ClassFile) IsModule() bool {
	return cf.AccessFlags.IsModule()
}

// GetMethod finds a method by name and, if descriptor is not empty, by
// descriptor.
func (cf *ClassFile) GetMethod(name, descriptor string) *MemberInfo {
	for i := range cf.Methods {
		m := &cf.Methods[i]
		if m.Name(cf.ConstantPool) != name {
			continue
		}
		if descriptor == "" || m.Descriptor(cf.ConstantPool) == descriptor {
			return m
		}
	}
	return nil
}

func (cf *ClassFile) GetAttribute(name string) *AttributeInfo {
	return findAttribute(cf.Attributes, name)
}

// Signature returns the generic class signature, or "" for a class that
// declares no type parameters and extends no parameterized types.
func (cf *ClassFile) Signature() string {
	return signatureOf(cf.Attributes, cf.ConstantPool)
}

func (cf *ClassFile) IsDeprecated() bool {
	return cf.GetAttribute(AttrDeprecated) != nil
}

// Annotations returns the visible annotations followed by the invisible ones.
func (cf *ClassFile) Annotations() []Annotation {
	return annotationsOf(cf.Attributes, cf.ConstantPool)
}

// InnerClasses lists the nested classes this class file knows about,
// including its own entry when it is itself nested.
func (cf *ClassFile) InnerClasses() []InnerClass {
	attr := cf.GetAttribute(AttrInnerClasses)
	if attr == nil {
		return nil
	}
	return attr.innerClasses(cf.ConstantPool)
}
