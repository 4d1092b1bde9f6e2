package classfile

// MemberInfo is a field or a method.
type MemberInfo struct {
	AccessFlags     AccessFlags
	NameIndex       uint16
	DescriptorIndex uint16
	Attributes      []AttributeInfo
}

func (m *MemberInfo) Name(cp ConstantPool) string {
	return cp.GetUtf8(m.NameIndex)
}

func (m *MemberInfo) Descriptor(cp ConstantPool) string {
	return cp.GetUtf8(m.DescriptorIndex)
}

func (m *MemberInfo) GetAttribute(name string) *AttributeInfo {
	return findAttribute(m.Attributes, name)
}

// Signature returns the generic signature, or "" when the descriptor says
// it all.
func (m *MemberInfo) Signature(cp ConstantPool) string {
	return signatureOf(m.Attributes, cp)
}

// Exceptions returns the internal names of the declared thrown types.
func (m *MemberInfo) Exceptions(cp ConstantPool) []string {
	attr := m.GetAttribute(AttrExceptions)
	if attr == nil {
		return nil
	}
	return attr.exceptions(cp)
}

func (m *MemberInfo) IsDeprecated() bool {
	return m.GetAttribute(AttrDeprecated) != nil
}

func (m *MemberInfo) Annotations(cp ConstantPool) []Annotation {
	return annotationsOf(m.Attributes, cp)
}

func (m *MemberInfo) ParsedDescriptor(cp ConstantPool) *MethodDescriptor {
	return ParseMethodDescriptor(m.Descriptor(cp))
}

func (m *MemberInfo) IsPublic() bool    { return m.AccessFlags.IsPublic() }
func (m *MemberInfo) IsStatic() bool    { return m.AccessFlags.IsStatic() }
func (m *MemberInfo) IsAbstract() bool  { return m.AccessFlags.IsAbstract() }
func (m *MemberInfo) IsBridge() bool    { return m.AccessFlags.IsBridge() }
func (m *MemberInfo) IsSynthetic() bool { return m.AccessFlags.IsSynthetic() }

func (m *MemberInfo) IsConstructor(cp ConstantPool) bool {
	return m.Name(cp) == "<init>"
}

func (m *MemberInfo) IsStaticInitializer(cp ConstantPool) bool {
	return m.Name(cp) == "<clinit>"
}
