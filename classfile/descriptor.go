package classfile

import "strings"

// FieldType is an erased type read from a descriptor.
type FieldType struct {
	BaseType   string
	ClassName  string
	ArrayDepth int
}

// String renders the type as a binary name followed by one "[]" per
// dimension, e.g. "java.lang.Object[]" or "int[][]".
func (ft *FieldType) String() string {
	var sb strings.Builder
	if ft.BaseType != "" {
		sb.WriteString(ft.BaseType)
	} else {
		sb.WriteString(InternalToSourceName(ft.ClassName))
	}
	for range ft.ArrayDepth {
		sb.WriteString("[]")
	}
	return sb.String()
}

func (ft *FieldType) IsArray() bool {
	return ft.ArrayDepth > 0
}

func (ft *FieldType) IsPrimitive() bool {
	return ft.BaseType != "" && ft.ArrayDepth == 0
}

type MethodDescriptor struct {
	Parameters []FieldType
	// ReturnType is nil for void.
	ReturnType *FieldType
}

func (md *MethodDescriptor) ParameterTypeNames() []string {
	names := make([]string, len(md.Parameters))
	for i := range md.Parameters {
		names[i] = md.Parameters[i].String()
	}
	return names
}

func (md *MethodDescriptor) String() string {
	ret := "void"
	if md.ReturnType != nil {
		ret = md.ReturnType.String()
	}
	return "(" + strings.Join(md.ParameterTypeNames(), ", ") + ") " + ret
}

func ParseFieldDescriptor(desc string) *FieldType {
	ft, n := parseFieldType(desc, 0)
	if n != len(desc) {
		return nil
	}
	return ft
}

func ParseMethodDescriptor(desc string) *MethodDescriptor {
	if len(desc) == 0 || desc[0] != '(' {
		return nil
	}

	md := &MethodDescriptor{}
	i := 1

	for i < len(desc) && desc[i] != ')' {
		ft, consumed := parseFieldType(desc, i)
		if ft == nil {
			return nil
		}
		md.Parameters = append(md.Parameters, *ft)
		i += consumed
	}

	if i >= len(desc) || desc[i] != ')' {
		return nil
	}
	i++

	if i < len(desc) && desc[i] != 'V' {
		md.ReturnType, _ = parseFieldType(desc, i)
	}

	return md
}

var baseTypes = map[byte]string{
	'B': "byte",
	'C': "char",
	'D': "double",
	'F': "float",
	'I': "int",
	'J': "long",
	'S': "short",
	'Z': "boolean",
}

func parseFieldType(desc string, start int) (*FieldType, int) {
	ft := &FieldType{}
	i := start
	for i < len(desc) && desc[i] == '[' {
		ft.ArrayDepth++
		i++
	}
	if i >= len(desc) {
		return nil, 0
	}

	if base, ok := baseTypes[desc[i]]; ok {
		ft.BaseType = base
		return ft, i - start + 1
	}
	if desc[i] != 'L' {
		return nil, 0
	}
	semicolon := strings.IndexByte(desc[i:], ';')
	if semicolon == -1 {
		return nil, 0
	}
	ft.ClassName = desc[i+1 : i+semicolon]
	return ft, i - start + semicolon + 1
}

// DescriptorToTypeName renders a field descriptor or "V" as a type name:
// "Ljava/lang/Deprecated;" becomes "java.lang.Deprecated", "[I" becomes
// "int[]". Anything unparseable is returned unchanged.
func DescriptorToTypeName(desc string) string {
	if desc == "V" {
		return "void"
	}
	if ft := ParseFieldDescriptor(desc); ft != nil {
		return ft.String()
	}
	return desc
}

func InternalToSourceName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

func SourceToInternalName(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}
