package classfile

import (
	"fmt"
	"strconv"
)

type ConstantPoolEntry interface {
	Tag() ConstantTag
}

type ConstantUtf8Info struct {
	Value string
}

func (c *ConstantUtf8Info) Tag() ConstantTag { return ConstantUtf8 }

type ConstantIntegerInfo struct {
	Value int32
}

func (c *ConstantIntegerInfo) Tag() ConstantTag { return ConstantInteger }

type ConstantFloatInfo struct {
	Value float32
}

func (c *ConstantFloatInfo) Tag() ConstantTag { return ConstantFloat }

type ConstantLongInfo struct {
	Value int64
}

func (c *ConstantLongInfo) Tag() ConstantTag { return ConstantLong }

type ConstantDoubleInfo struct {
	Value float64
}

func (c *ConstantDoubleInfo) Tag() ConstantTag { return ConstantDouble }

type ConstantClassInfo struct {
	NameIndex uint16
}

func (c *ConstantClassInfo) Tag() ConstantTag { return ConstantClass }

type ConstantStringInfo struct {
	StringIndex uint16
}

func (c *ConstantStringInfo) Tag() ConstantTag { return ConstantString }

// ConstantRefInfo stands for the entries that only matter to bytecode:
// member references, name-and-type, method handles and types, dynamic call
// sites, modules and packages. Their payload is skipped.
type ConstantRefInfo struct {
	tag ConstantTag
}

func (c *ConstantRefInfo) Tag() ConstantTag { return c.tag }

type ConstantPool []ConstantPoolEntry

func (cp ConstantPool) entry(index uint16) ConstantPoolEntry {
	if index == 0 || int(index) > len(cp) {
		return nil
	}
	return cp[index-1]
}

func (cp ConstantPool) GetUtf8(index uint16) string {
	if e, ok := cp.entry(index).(*ConstantUtf8Info); ok {
		return e.Value
	}
	return ""
}

// GetClassName returns the internal name of a class entry, e.g.
// "java/util/List".
func (cp ConstantPool) GetClassName(index uint16) string {
	if e, ok := cp.entry(index).(*ConstantClassInfo); ok {
		return cp.GetUtf8(e.NameIndex)
	}
	return ""
}

// Literal renders a loadable constant as Java source text. Strings are
// quoted; entries that are not literals render empty.
func (cp ConstantPool) Literal(index uint16) string {
	switch e := cp.entry(index).(type) {
	case *ConstantUtf8Info:
		return strconv.Quote(e.Value)
	case *ConstantStringInfo:
		return strconv.Quote(cp.GetUtf8(e.StringIndex))
	case *ConstantIntegerInfo:
		return strconv.FormatInt(int64(e.Value), 10)
	case *ConstantLongInfo:
		return strconv.FormatInt(e.Value, 10) + "L"
	case *ConstantFloatInfo:
		return strconv.FormatFloat(float64(e.Value), 'g', -1, 32) + "f"
	case *ConstantDoubleInfo:
		return strconv.FormatFloat(e.Value, 'g', -1, 64)
	}
	return ""
}

func (cp ConstantPool) String() string {
	return fmt.Sprintf("ConstantPool(%d entries)", len(cp))
}
