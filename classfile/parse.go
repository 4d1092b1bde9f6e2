package classfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

type reader struct {
	r   io.Reader
	err error
}

func (r *reader) readU1() uint8 {
	if r.err != nil {
		return 0
	}
	var buf [1]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return buf[0]
}

func (r *reader) readU2() uint16 {
	if r.err != nil {
		return 0
	}
	var buf [2]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return binary.BigEndian.Uint16(buf[:])
}

func (r *reader) readU4() uint32 {
	if r.err != nil {
		return 0
	}
	var buf [4]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return binary.BigEndian.Uint32(buf[:])
}

func (r *reader) readBytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	buf := make([]byte, n)
	_, r.err = io.ReadFull(r.r, buf)
	return buf
}

func ParseFile(path string) (*ClassFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open class file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a class file. Attributes are kept undecoded; the accessors on
// ClassFile and MemberInfo decode the ones they need.
func Parse(rd io.Reader) (*ClassFile, error) {
	r := &reader{r: rd}
	var err error

	magic := r.readU4()
	if r.err != nil {
		return nil, fmt.Errorf("failed to read magic: %w", r.err)
	}
	if magic != Magic {
		return nil, fmt.Errorf("invalid magic number: 0x%X (expected 0xCAFEBABE)", magic)
	}

	cf := &ClassFile{
		MinorVersion: r.readU2(),
		MajorVersion: r.readU2(),
	}
	if r.err != nil {
		return nil, fmt.Errorf("failed to read version: %w", r.err)
	}

	constantPoolCount := r.readU2()
	if r.err != nil {
		return nil, fmt.Errorf("failed to read constant pool count: %w", r.err)
	}

	if constantPoolCount == 0 {
		return nil, errors.New("empty constant pool")
	}
	cf.ConstantPool = make(ConstantPool, constantPoolCount-1)
	for i := uint16(1); i < constantPoolCount; i++ {
		entry, wide, err := readConstantPoolEntry(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read constant pool entry %d: %w", i, err)
		}
		cf.ConstantPool[i-1] = entry
		if wide {
			i++
			if i < constantPoolCount {
				cf.ConstantPool[i-1] = nil
			}
		}
	}

	cf.AccessFlags = AccessFlags(r.readU2())
	cf.ThisClass = r.readU2()
	cf.SuperClass = r.readU2()

	interfacesCount := r.readU2()
	if r.err != nil {
		return nil, fmt.Errorf("failed to read class info: %w", r.err)
	}

	cf.Interfaces = make([]uint16, interfacesCount)
	for i := uint16(0); i < interfacesCount; i++ {
		cf.Interfaces[i] = r.readU2()
	}
	if r.err != nil {
		return nil, fmt.Errorf("failed to read interfaces: %w", r.err)
	}

	if cf.Fields, err = readMembers(r, cf.ConstantPool); err != nil {
		return nil, fmt.Errorf("failed to read fields: %w", err)
	}
	if cf.Methods, err = readMembers(r, cf.ConstantPool); err != nil {
		return nil, fmt.Errorf("failed to read methods: %w", err)
	}
	if cf.Attributes, err = readAttributes(r, cf.ConstantPool); err != nil {
		return nil, fmt.Errorf("failed to read attributes: %w", err)
	}

	return cf, nil
}

func readConstantPoolEntry(r *reader) (ConstantPoolEntry, bool, error) {
	tag := ConstantTag(r.readU1())
	if r.err != nil {
		return nil, false, r.err
	}

	var entry ConstantPoolEntry
	wide := false
	switch tag {
	case ConstantUtf8:
		length := r.readU2()
		entry = &ConstantUtf8Info{Value: decodeModifiedUtf8(r.readBytes(int(length)))}
	case ConstantInteger:
		entry = &ConstantIntegerInfo{Value: int32(r.readU4())}
	case ConstantFloat:
		entry = &ConstantFloatInfo{Value: math.Float32frombits(r.readU4())}
	case ConstantLong:
		high, low := r.readU4(), r.readU4()
		entry = &ConstantLongInfo{Value: int64(high)<<32 | int64(low)}
		wide = true
	case ConstantDouble:
		high, low := r.readU4(), r.readU4()
		entry = &ConstantDoubleInfo{Value: math.Float64frombits(uint64(high)<<32 | uint64(low))}
		wide = true
	case ConstantClass:
		entry = &ConstantClassInfo{NameIndex: r.readU2()}
	case ConstantString:
		entry = &ConstantStringInfo{StringIndex: r.readU2()}
	case ConstantMethodType, ConstantModule, ConstantPackage:
		r.readU2()
		entry = &ConstantRefInfo{tag: tag}
	case ConstantMethodHandle:
		r.readU1()
		r.readU2()
		entry = &ConstantRefInfo{tag: tag}
	case ConstantFieldref, ConstantMethodref, ConstantInterfaceMethodref,
		ConstantNameAndType, ConstantDynamic, ConstantInvokeDynamic:
		r.readU4()
		entry = &ConstantRefInfo{tag: tag}
	default:
		return nil, false, fmt.Errorf("unknown constant pool tag: %d", tag)
	}
	if r.err != nil {
		return nil, false, r.err
	}
	return entry, wide, nil
}

func readMembers(r *reader, cp ConstantPool) ([]MemberInfo, error) {
	count := r.readU2()
	if r.err != nil {
		return nil, r.err
	}
	members := make([]MemberInfo, count)
	for i := range members {
		m, err := readMemberInfo(r, cp)
		if err != nil {
			return nil, fmt.Errorf("member %d: %w", i, err)
		}
		members[i] = *m
	}
	return members, nil
}

func readMemberInfo(r *reader, cp ConstantPool) (*MemberInfo, error) {
	member := &MemberInfo{
		AccessFlags:     AccessFlags(r.readU2()),
		NameIndex:       r.readU2(),
		DescriptorIndex: r.readU2(),
	}
	attrs, err := readAttributes(r, cp)
	if err != nil {
		return nil, err
	}
	member.Attributes = attrs
	return member, nil
}

func readAttributes(r *reader, cp ConstantPool) ([]AttributeInfo, error) {
	count := r.readU2()
	if r.err != nil {
		return nil, r.err
	}
	attrs := make([]AttributeInfo, count)
	for i := range attrs {
		nameIndex := r.readU2()
		length := r.readU4()
		info := r.readBytes(int(length))
		if r.err != nil {
			return nil, r.err
		}
		attrs[i] = AttributeInfo{Name: cp.GetUtf8(nameIndex), Info: info}
	}
	return attrs, nil
}

func decodeModifiedUtf8(bytes []byte) string {
	runes := make([]rune, 0, len(bytes))
	i := 0
	for i < len(bytes) {
		b := bytes[i]
		if b&0x80 == 0 {
			runes = append(runes, rune(b))
			i++
		} else if b&0xE0 == 0xC0 {
			if i+1 >= len(bytes) {
				break
			}
			r := rune(b&0x1F)<<6 | rune(bytes[i+1]&0x3F)
			runes = append(runes, r)
			i += 2
		} else if b&0xF0 == 0xE0 {
			if i+2 >= len(bytes) {
				break
			}
			r := rune(b&0x0F)<<12 | rune(bytes[i+1]&0x3F)<<6 | rune(bytes[i+2]&0x3F)
			if r >= 0xD800 && r <= 0xDBFF {
				if i+6 < len(bytes) && bytes[i+3] == 0xED {
					high := r
					low := rune(bytes[i+4]&0x0F)<<12 | rune(bytes[i+5]&0x3F)<<6 | rune(bytes[i+6]&0x3F)
					if low >= 0xDC00 && low <= 0xDFFF {
						r = 0x10000 + ((high - 0xD800) << 10) + (low - 0xDC00)
						runes = append(runes, r)
						i += 6
						continue
					}
				}
			}
			runes = append(runes, r)
			i += 3
		} else {
			runes = append(runes, rune(b))
			i++
		}
	}
	return string(runes)
}
